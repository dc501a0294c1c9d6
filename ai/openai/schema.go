package openai

import (
	"fmt"

	"github.com/kaptinlin/jsonschema"
)

// responseSchema is a compiled JSON Schema for one model response contract.
type responseSchema struct {
	name   string
	schema *jsonschema.Schema
}

func mustCompileSchema(name, source string) *responseSchema {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile([]byte(source))
	if err != nil {
		panic(fmt.Sprintf("compile %s schema: %v", name, err))
	}
	return &responseSchema{name: name, schema: schema}
}

// validate checks data against the schema.
func (s *responseSchema) validate(data []byte) error {
	result := s.schema.ValidateJSON(data)
	if result.IsValid() {
		return nil
	}
	return fmt.Errorf("%s schema validation failed: %v", s.name, result.Errors)
}

var (
	profileSchema     = mustCompileSchema("profile", profileResponseSchema)
	translationSchema = mustCompileSchema("translation", translationResponseSchema)
)
