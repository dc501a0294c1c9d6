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

import (
	"fmt"
	"strings"
)

// ParseLanguage converts a language code into a Language.
// Matching is case-insensitive.
func ParseLanguage(code string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case LanguageEnglish:
		return LanguageEnglish, nil
	case LanguageHindi:
		return LanguageHindi, nil
	case LanguageBhojpuri:
		return LanguageBhojpuri, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, code)
	}
}

// ParseGender converts a gender value into a Gender.
// An empty value is GenderAll.
func ParseGender(value string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(value))) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	case GenderAll, "":
		return GenderAll, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGender, value)
	}
}

// ValidateScheme validates a Scheme according to domain rules.
// Validation rules:
//   - Name must not be empty
//   - Level, if set, must be central or state
//   - TargetGender, if set, must be male, female or all
//   - Translations may only be keyed by supported non-English languages
//
// TargetAge is deliberately not validated: malformed ranges are kept and
// treated as unconstrained by the eligibility filter.
func ValidateScheme(scheme *Scheme) error {
	if scheme == nil {
		return fmt.Errorf("%w: scheme is nil", ErrInvalidScheme)
	}

	if strings.TrimSpace(scheme.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidScheme, ErrEmptySchemeName)
	}

	switch scheme.Level {
	case "", SchemeLevelCentral, SchemeLevelState:
	default:
		return fmt.Errorf("%w: %w: %q", ErrInvalidScheme, ErrInvalidSchemeLevel, scheme.Level)
	}

	if scheme.TargetGender != "" {
		if _, err := ParseGender(string(scheme.TargetGender)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidScheme, err)
		}
	}

	for lang := range scheme.Translations {
		if lang != LanguageHindi && lang != LanguageBhojpuri {
			return fmt.Errorf("%w: %w: translation for %q", ErrInvalidScheme, ErrInvalidLanguage, lang)
		}
	}

	return nil
}

// NormalizeScheme lower-cases the metadata fields the retriever filters on
// so equality matching is case-insensitive.
func NormalizeScheme(scheme *Scheme) {
	scheme.TargetGender = Gender(strings.ToLower(strings.TrimSpace(string(scheme.TargetGender))))
	scheme.TargetState = strings.ToLower(strings.TrimSpace(scheme.TargetState))
	scheme.TargetAge = strings.TrimSpace(scheme.TargetAge)
	scheme.Level = SchemeLevel(strings.ToLower(strings.TrimSpace(string(scheme.Level))))
	scheme.Category = NormalizeCategory(scheme.Category)
}
