package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/yojana/ai"
	"github.com/poiesic/yojana/core"
)

// ErrModelRequired is returned when an Extractor is built without a model.
var ErrModelRequired = errors.New("profile extraction model is required")

// Extractor derives an ApplicantProfile from a raw query. It makes one model
// call and then overrides the model wherever the query text gives a
// deterministic answer.
type Extractor struct {
	model  ai.ProfileExtractor
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets a custom logger. If nil, uses the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExtractor creates an Extractor backed by model.
func NewExtractor(model ai.ProfileExtractor, opts ...Option) (*Extractor, error) {
	if model == nil {
		return nil, ErrModelRequired
	}
	e := &Extractor{
		model:  model,
		logger: slog.Default().With("component", "profile-extractor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Extract returns the applicant profile for query. hint is the caller's
// preferred language; it only applies when the query contains no letters at
// all. Language and region are always resolved on success.
func (e *Extractor) Extract(ctx context.Context, query string, hint core.Language) (*core.ApplicantProfile, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query is empty", core.ErrInput)
	}

	raw, err := e.model.ExtractProfile(ctx, query)
	if err != nil {
		e.logger.Error("profile extraction call failed", "err", err)
		return nil, fmt.Errorf("%w: %w", core.ErrProfileExtraction, err)
	}

	profile := &core.ApplicantProfile{
		Language: e.resolveLanguage(query, hint, raw.Language),
		Gender:   e.resolveGender(query, raw.Gender),
		Region:   e.resolveRegion(query, raw.State),
		Age:      resolveAge(query, raw.Age),
	}

	e.logger.Debug("profile extracted",
		"age", ageAttr(profile.Age),
		"gender", profile.Gender,
		"language", profile.Language,
		"region", profile.Region)
	return profile, nil
}

func (e *Extractor) resolveLanguage(query string, hint core.Language, modelValue string) core.Language {
	if !hasLetters(query) && hint != "" {
		return hint
	}
	detected := DetectLanguage(query)
	if modelValue != string(detected) {
		e.logger.Debug("overriding model language", "model", modelValue, "detected", detected)
	}
	return detected
}

func (e *Extractor) resolveGender(query, modelValue string) core.Gender {
	if detected, ok := DetectGender(query); ok {
		return detected
	}
	gender, err := core.ParseGender(modelValue)
	if err != nil {
		e.logger.Debug("ignoring model gender", "model", modelValue)
		return core.GenderAll
	}
	return gender
}

func (e *Extractor) resolveRegion(query, modelValue string) string {
	if detected, ok := DetectRegion(query); ok {
		return detected
	}
	if normalized, ok := NormalizeRegion(modelValue); ok {
		return normalized
	}
	if modelValue != "" && !strings.EqualFold(modelValue, core.RegionAll) {
		e.logger.Debug("ignoring unknown model region", "model", modelValue)
	}
	return core.RegionAll
}

func resolveAge(query string, modelValue *int) *int {
	if modelValue != nil && *modelValue >= 0 {
		age := *modelValue
		return &age
	}
	if age, ok := DetectAge(query); ok {
		return &age
	}
	return nil
}

func ageAttr(age *int) any {
	if age == nil {
		return "unknown"
	}
	return *age
}
