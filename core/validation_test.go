package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{in: "en", want: LanguageEnglish},
		{in: "HI", want: LanguageHindi},
		{in: " bho ", want: LanguageBhojpuri},
		{in: "fr", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLanguage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGender(t *testing.T) {
	g, err := ParseGender("Male")
	require.NoError(t, err)
	assert.Equal(t, GenderMale, g)

	g, err = ParseGender("")
	require.NoError(t, err)
	assert.Equal(t, GenderAll, g)

	_, err = ParseGender("other")
	assert.ErrorIs(t, err, ErrInvalidGender)
}

func TestValidateScheme(t *testing.T) {
	tests := []struct {
		name    string
		scheme  *Scheme
		wantErr error
	}{
		{
			name:   "valid scheme",
			scheme: &Scheme{Name: "PM Kisan", Level: SchemeLevelCentral, TargetGender: GenderAll},
		},
		{
			name:   "malformed age is allowed",
			scheme: &Scheme{Name: "Odd", TargetAge: "sometimes"},
		},
		{
			name:    "nil scheme",
			scheme:  nil,
			wantErr: ErrInvalidScheme,
		},
		{
			name:    "empty name",
			scheme:  &Scheme{Name: "  "},
			wantErr: ErrEmptySchemeName,
		},
		{
			name:    "bad level",
			scheme:  &Scheme{Name: "X", Level: "district"},
			wantErr: ErrInvalidSchemeLevel,
		},
		{
			name:    "bad gender",
			scheme:  &Scheme{Name: "X", TargetGender: "robot"},
			wantErr: ErrInvalidGender,
		},
		{
			name: "english translation key",
			scheme: &Scheme{Name: "X", Translations: map[Language]Translation{
				LanguageEnglish: {Name: "X"},
			}},
			wantErr: ErrInvalidLanguage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScheme(tt.scheme)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNormalizeScheme(t *testing.T) {
	s := &Scheme{
		Name:         "Mukhyamantri Kanya Utthan",
		TargetGender: " Female ",
		TargetState:  "Bihar",
		Level:        "State",
		Category:     "Women Power",
		TargetAge:    " 0-25 ",
	}
	NormalizeScheme(s)
	assert.Equal(t, GenderFemale, s.TargetGender)
	assert.Equal(t, "bihar", s.TargetState)
	assert.Equal(t, SchemeLevelState, s.Level)
	assert.Equal(t, "women", s.Category)
	assert.Equal(t, "0-25", s.TargetAge)
}
