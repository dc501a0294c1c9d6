package ingestion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/yojana/core"
	"gopkg.in/yaml.v3"
)

// record is one scheme as written in a corpus file. It accepts both the
// nested translations map and the flat nameHindi/eligibilityHindi/
// benefitsHindi fields produced by the scraper's structured output.
type record struct {
	Name             string                             `json:"name" yaml:"name"`
	NameHindi        string                             `json:"nameHindi" yaml:"nameHindi"`
	Eligibility      string                             `json:"eligibility" yaml:"eligibility"`
	EligibilityHindi string                             `json:"eligibilityHindi" yaml:"eligibilityHindi"`
	Benefits         string                             `json:"benefits" yaml:"benefits"`
	BenefitsHindi    string                             `json:"benefitsHindi" yaml:"benefitsHindi"`
	ApplyLink        string                             `json:"applyLink" yaml:"applyLink"`
	Category         string                             `json:"category" yaml:"category"`
	SchemeLevel      string                             `json:"schemeLevel" yaml:"schemeLevel"`
	TargetGender     string                             `json:"targetGender" yaml:"targetGender"`
	TargetAge        string                             `json:"targetAge" yaml:"targetAge"`
	TargetState      string                             `json:"targetState" yaml:"targetState"`
	TargetIncome     string                             `json:"targetIncome" yaml:"targetIncome"`
	Translations     map[core.Language]core.Translation `json:"translations" yaml:"translations"`
}

// document is the wrapped file form: {"schemes": [...]}.
type document struct {
	Schemes []record `json:"schemes" yaml:"schemes"`
}

// LoadFile reads schemes from a .yaml, .yml or .json file.
func LoadFile(path string) ([]*core.Scheme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	case ".json":
		format = "json"
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	schemes, err := Load(f, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return schemes, nil
}

// Load decodes schemes in the given format ("yaml" or "json"). The input is
// either a list of records or an object with a "schemes" list.
func Load(r io.Reader, format string) ([]*core.Scheme, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var records []record
	switch format {
	case "yaml":
		records, err = decodeYAML(data)
	case "json":
		records, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	schemes := make([]*core.Scheme, len(records))
	for i := range records {
		schemes[i] = records[i].toScheme()
	}
	return schemes, nil
}

func decodeYAML(data []byte) ([]record, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var records []record
		if err := root.Decode(&records); err != nil {
			return nil, err
		}
		return records, nil
	}
	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Schemes, nil
}

func decodeJSON(data []byte) ([]record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var records []record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return doc.Schemes, nil
}

// toScheme converts a file record. Explicit translations win over the flat
// Hindi fields. Values of "all" in the targeting fields are kept; the
// retriever treats them like absent values.
func (r *record) toScheme() *core.Scheme {
	scheme := &core.Scheme{
		Name:         strings.TrimSpace(r.Name),
		Eligibility:  strings.TrimSpace(r.Eligibility),
		Benefits:     strings.TrimSpace(r.Benefits),
		ApplyLink:    strings.TrimSpace(r.ApplyLink),
		Category:     r.Category,
		Level:        core.SchemeLevel(r.SchemeLevel),
		TargetGender: core.Gender(r.TargetGender),
		TargetAge:    r.TargetAge,
		TargetState:  r.TargetState,
		TargetIncome: strings.TrimSpace(r.TargetIncome),
	}

	translations := make(map[core.Language]core.Translation, len(r.Translations)+1)
	if r.NameHindi != "" {
		translations[core.LanguageHindi] = core.Translation{
			Name:        strings.TrimSpace(r.NameHindi),
			Eligibility: strings.TrimSpace(r.EligibilityHindi),
			Benefits:    strings.TrimSpace(r.BenefitsHindi),
		}
	}
	for lang, t := range r.Translations {
		translations[lang] = t
	}
	if len(translations) > 0 {
		scheme.Translations = translations
	}
	return scheme
}
