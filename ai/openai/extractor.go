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

// ProfileExtractor implements ai.ProfileExtractor using OpenAI-compatible chat APIs.
type ProfileExtractor struct {
	client llms.Model
	config *ai.Config
	logger *slog.Logger
}

// profileResponse is the wire shape the model must return.
type profileResponse struct {
	Age      *int   `json:"age"`
	Gender   string `json:"gender"`
	Language string `json:"language"`
	State    string `json:"state"`
}

// newProfileExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newProfileExtractor(config *ai.Config) (*ProfileExtractor, error) {
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

	return newProfileExtractorWithModel(client, config), nil
}

func newProfileExtractorWithModel(client llms.Model, config *ai.Config) *ProfileExtractor {
	return &ProfileExtractor{
		client: client,
		config: config,
		logger: slog.Default().With("component", "openai-profile-extractor"),
	}
}

// NewProfileExtractor creates a new profile extractor using the provided configuration.
//
// Returns ai.ProfileExtractor interface to enforce abstraction.
func NewProfileExtractor(config *ai.Config) (ai.ProfileExtractor, error) {
	return newProfileExtractor(config)
}

// ExtractProfile issues one generation call and validates the response.
// There is no retry: a malformed response fails the call.
func (e *ProfileExtractor) ExtractProfile(ctx context.Context, text string) (*ai.ExtractedProfile, error) {
	text = scrubQuery(text)

	raw, err := generate(ctx, e.client, e.config.CallTimeout, buildProfilePrompt(), text,
		llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		e.logger.Error("failed to generate profile", "err", err)
		return nil, err
	}

	profile, err := parseProfile(raw)
	if err != nil {
		e.logger.Warn("error parsing profile response", "response", raw, "err", err)
		return nil, err
	}

	e.logger.Debug("extracted profile",
		"age", profile.Age,
		"gender", profile.Gender,
		"language", profile.Language,
		"state", profile.State)
	return profile, nil
}

// parseProfile validates raw model output against the profile contract.
func parseProfile(raw string) (*ai.ExtractedProfile, error) {
	cleaned := []byte(cleanResponse(raw, '{', '}'))

	if err := profileSchema.validate(cleaned); err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}

	var resp profileResponse
	dec := json.NewDecoder(bytes.NewReader(cleaned))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after profile object", ai.ErrMalformedResponse)
	}

	return &ai.ExtractedProfile{
		Age:      resp.Age,
		Gender:   resp.Gender,
		Language: resp.Language,
		State:    resp.State,
	}, nil
}
