package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/poiesic/yojana/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// SchemeTranslator implements ai.SchemeTranslator using OpenAI-compatible chat APIs.
type SchemeTranslator struct {
	client llms.Model
	config *ai.Config
	logger *slog.Logger
}

// translationEntry is the wire shape of one element in both directions.
type translationEntry struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Eligibility string `json:"eligibility"`
	Benefits    string `json:"benefits"`
}

func newSchemeTranslator(config *ai.Config) (*SchemeTranslator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.GenerationHost),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.GenerationModel),
	)
	if err != nil {
		return nil, err
	}

	return newSchemeTranslatorWithModel(client, config), nil
}

func newSchemeTranslatorWithModel(client llms.Model, config *ai.Config) *SchemeTranslator {
	return &SchemeTranslator{
		client: client,
		config: config,
		logger: slog.Default().With("component", "openai-translator"),
	}
}

// NewSchemeTranslator creates a new batch translator using the provided configuration.
//
// Returns ai.SchemeTranslator interface to enforce abstraction.
func NewSchemeTranslator(config *ai.Config) (ai.SchemeTranslator, error) {
	return newSchemeTranslator(config)
}

// TranslateSchemes translates all items with a single generation call.
func (t *SchemeTranslator) TranslateSchemes(ctx context.Context, target string, items []ai.TranslationItem) ([]ai.TranslationItem, error) {
	if len(items) == 0 {
		return []ai.TranslationItem{}, nil
	}

	entries := make([]translationEntry, len(items))
	for i, item := range items {
		entries[i] = translationEntry{
			ID:          item.Index,
			Name:        item.Name,
			Eligibility: item.Eligibility,
			Benefits:    item.Benefits,
		}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}

	t.logger.Debug("translating schemes", "target", target, "count", len(items))

	raw, err := generate(ctx, t.client, t.config.CallTimeout, buildTranslationPrompt(target), string(payload),
		llms.WithTemperature(t.config.Temperature))
	if err != nil {
		t.logger.Error("failed to generate translation", "target", target, "err", err)
		return nil, err
	}

	translated, err := parseTranslations(raw)
	if err != nil {
		t.logger.Warn("error parsing translation response", "response", raw, "err", err)
		return nil, err
	}
	return translated, nil
}

// parseTranslations validates raw model output against the translation contract.
func parseTranslations(raw string) ([]ai.TranslationItem, error) {
	cleaned := []byte(cleanResponse(raw, '[', ']'))

	if err := translationSchema.validate(cleaned); err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}

	var entries []translationEntry
	dec := json.NewDecoder(bytes.NewReader(cleaned))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}

	items := make([]ai.TranslationItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, ai.TranslationItem{
			Index:       e.ID,
			Name:        e.Name,
			Eligibility: e.Eligibility,
			Benefits:    e.Benefits,
		})
	}
	return items, nil
}
