// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Pipeline error taxonomy. Concrete failures wrap one of these with %w.
var (
	// ErrInput indicates a missing or empty query. It is rejected before any
	// external call is made.
	ErrInput = errors.New("invalid input")

	// ErrProfileExtraction indicates the language-understanding call failed or
	// returned output that does not match the profile contract.
	ErrProfileExtraction = errors.New("profile extraction failed")

	// ErrRetrieval indicates the embedding or vector search failed, or the
	// embedding came back empty or from the wrong model.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrTranslation indicates the batch translation call failed or returned
	// unparseable output. It is always recovered locally.
	ErrTranslation = errors.New("translation failed")

	// ErrPipeline is the catch-all for anything else.
	ErrPipeline = errors.New("pipeline failed")
)

// Domain validation errors
var (
	// ErrInvalidScheme indicates a Scheme failed validation.
	ErrInvalidScheme = errors.New("invalid scheme")

	// ErrEmptySchemeName indicates the scheme Name field is empty.
	ErrEmptySchemeName = errors.New("scheme name cannot be empty")

	// ErrInvalidLanguage indicates an unsupported language code.
	ErrInvalidLanguage = errors.New("invalid language")

	// ErrInvalidGender indicates an unsupported gender value.
	ErrInvalidGender = errors.New("invalid gender")

	// ErrInvalidSchemeLevel indicates a level other than central or state.
	ErrInvalidSchemeLevel = errors.New("invalid scheme level")
)

// Classify maps err onto the pipeline taxonomy. A nil error returns nil.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInput):
		return ErrInput
	case errors.Is(err, ErrProfileExtraction):
		return ErrProfileExtraction
	case errors.Is(err, ErrRetrieval):
		return ErrRetrieval
	case errors.Is(err, ErrTranslation):
		return ErrTranslation
	default:
		return ErrPipeline
	}
}

// ErrorKind returns a short label for err's taxonomy class, for metrics.
func ErrorKind(err error) string {
	switch Classify(err) {
	case nil:
		return "none"
	case ErrInput:
		return "input"
	case ErrProfileExtraction:
		return "profile_extraction"
	case ErrRetrieval:
		return "retrieval"
	case ErrTranslation:
		return "translation"
	default:
		return "pipeline"
	}
}
