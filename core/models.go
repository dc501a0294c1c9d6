package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Scheme IDs are content-based so re-seeding the same scheme is idempotent.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Language is a response language code.
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageHindi    Language = "hi"
	LanguageBhojpuri Language = "bho"
)

// Languages lists every supported language in canonical order.
var Languages = []Language{LanguageEnglish, LanguageHindi, LanguageBhojpuri}

// Gender is an applicant gender or a scheme's target gender.
// GenderAll means unconstrained.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderAll    Gender = "all"
)

// SchemeLevel says which tier of government runs a scheme.
type SchemeLevel string

const (
	SchemeLevelCentral SchemeLevel = "central"
	SchemeLevelState   SchemeLevel = "state"
)

// RegionAll is the unconstrained region value for both profiles and schemes.
const RegionAll = "all"

// Translation holds pre-translated display fields for one language.
type Translation struct {
	Name        string `json:"name" yaml:"name"`
	Eligibility string `json:"eligibility,omitempty" yaml:"eligibility,omitempty"`
	Benefits    string `json:"benefits,omitempty" yaml:"benefits,omitempty"`
}

// Scheme is one corpus entry. Canonical fields are English.
// Target* fields left empty are treated as absent by the retriever's
// pre-filter and therefore match every applicant.
type Scheme struct {
	Id           ID                       `json:"id" yaml:"id,omitempty"`
	Name         string                   `json:"name" yaml:"name"`
	Eligibility  string                   `json:"eligibility" yaml:"eligibility"`
	Benefits     string                   `json:"benefits" yaml:"benefits"`
	ApplyLink    string                   `json:"applyLink" yaml:"applyLink"`
	Category     string                   `json:"category,omitempty" yaml:"category,omitempty"`
	Level        SchemeLevel              `json:"schemeLevel,omitempty" yaml:"schemeLevel,omitempty"`
	Translations map[Language]Translation `json:"translations,omitempty" yaml:"translations,omitempty"`
	TargetGender Gender                   `json:"targetGender,omitempty" yaml:"targetGender,omitempty"`
	TargetAge    string                   `json:"targetAge,omitempty" yaml:"targetAge,omitempty"`
	TargetState  string                   `json:"targetState,omitempty" yaml:"targetState,omitempty"`
	TargetIncome string                   `json:"targetIncome,omitempty" yaml:"targetIncome,omitempty"`
	Vector       []float32                `json:"vector,omitempty" yaml:"-"`
	InsertedAt   time.Time                `json:"insertedAt" yaml:"-"`
	UpdatedAt    time.Time                `json:"updatedAt" yaml:"-"`
}

// Key returns the content used to derive a scheme's ID when none is set.
func (s *Scheme) Key() string {
	return s.ApplyLink + "|" + s.Name
}

// Translation returns the pre-translated fields for lang, if the record has any.
func (s *Scheme) Translation(lang Language) (Translation, bool) {
	if s.Translations == nil {
		return Translation{}, false
	}
	t, ok := s.Translations[lang]
	return t, ok
}

// ScoredScheme is a retrieval hit. Similarity is attached by the retriever
// and is never persisted with the record.
type ScoredScheme struct {
	Scheme     *Scheme
	Similarity float32
}

// ApplicantProfile is derived from a single query and never persisted.
// Age is nil when unknown.
type ApplicantProfile struct {
	Age      *int
	Gender   Gender
	Language Language
	Region   string
}

// Manifest describes how the corpus was built.
// EmbeddingModel must match the model used at query time.
type Manifest struct {
	EmbeddingModel string    `json:"embeddingModel"`
	Dimensions     int       `json:"dimensions"`
	SchemeCount    int       `json:"schemeCount"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// EmbeddingText is the text a scheme's vector is computed from: display
// fields in English and Hindi followed by the targeting metadata. Seeding
// and re-embedding must use the same text.
func (s *Scheme) EmbeddingText() string {
	parts := []string{s.Name}
	hi, hasHindi := s.Translation(LanguageHindi)
	if hasHindi {
		parts = append(parts, hi.Name)
	}
	parts = append(parts, s.Eligibility)
	if hasHindi {
		parts = append(parts, hi.Eligibility)
	}
	parts = append(parts, s.Benefits)
	if hasHindi {
		parts = append(parts, hi.Benefits)
	}
	parts = append(parts,
		"Category: "+orAll(s.Category),
		"Age: "+orAll(s.TargetAge),
		"Gender: "+orAll(string(s.TargetGender)),
		"Income: "+orAll(s.TargetIncome),
	)

	nonEmpty := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

func orAll(v string) string {
	if strings.TrimSpace(v) == "" {
		return "all"
	}
	return v
}
