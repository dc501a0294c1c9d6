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


package yojana

import (
	"errors"
	"io"
	"log/slog"

	"github.com/poiesic/yojana/ai"
	"github.com/poiesic/yojana/ai/openai"
	"github.com/poiesic/yojana/config"
	"github.com/poiesic/yojana/ingestion"
	"github.com/poiesic/yojana/pipeline"
	"github.com/poiesic/yojana/reembed"
	"github.com/poiesic/yojana/storage"
	"github.com/poiesic/yojana/storage/badger"
)

// ErrConfigRequired is returned by Open when no configuration is given.
var ErrConfigRequired = errors.New("config is required")

// App owns the process-wide singletons: the corpus store and the AI provider.
// Every query, seed and reembed run borrows them.
type App struct {
	cfg          *config.Config
	backend      *badger.Backend
	schemeRepo   storage.SchemeRepository
	manifestRepo storage.ManifestRepository
	provider     ai.AIProvider
	logger       *slog.Logger
}

// Option configures an App.
type Option func(*appOptions)

type appOptions struct {
	provider ai.AIProvider
}

// WithProvider uses provider instead of building an OpenAI-compatible one
// from the configuration. The App takes ownership and closes it.
func WithProvider(provider ai.AIProvider) Option {
	return func(o *appOptions) {
		o.provider = provider
	}
}

// Open opens the corpus described by cfg and connects the AI provider.
func Open(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}
	options := &appOptions{}
	for _, opt := range opts {
		opt(options)
	}

	var (
		schemeRepo   storage.SchemeRepository
		manifestRepo storage.ManifestRepository
		backend      *badger.Backend
		err          error
	)
	if cfg.Storage.InMemory {
		schemeRepo, manifestRepo, backend, err = badger.NewMemoryRepositories()
	} else {
		schemeRepo, manifestRepo, backend, err = badger.NewRepositories(cfg.Storage.Path)
	}
	if err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(cfg.AIConfig())
		if err != nil {
			schemeRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &App{
		cfg:          cfg,
		backend:      backend,
		schemeRepo:   schemeRepo,
		manifestRepo: manifestRepo,
		provider:     provider,
		logger:       slog.Default().With("component", "yojana"),
	}, nil
}

// Close releases the provider, the repositories and the store, in that order.
func (a *App) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}
	if err := a.schemeRepo.Close(); err != nil {
		a.logger.Error("error closing scheme repository", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (a *App) SchemeRepository() storage.SchemeRepository {
	return a.schemeRepo
}

func (a *App) ManifestRepository() storage.ManifestRepository {
	return a.manifestRepo
}

func (a *App) Provider() ai.AIProvider {
	return a.provider
}

// NewPipeline builds a query pipeline from the configuration. Extra options
// are applied after the configured ones.
func (a *App) NewPipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	base := []pipeline.Option{
		pipeline.WithTimeout(a.cfg.Pipeline.Timeout),
		pipeline.WithCandidateLimit(a.cfg.Pipeline.CandidateLimit),
		pipeline.WithManifests(a.manifestRepo),
	}
	return pipeline.New(a.schemeRepo, a.provider, append(base, opts...)...)
}

// NewIngestionPipeline builds a corpus seeder. The caller must Release it.
func (a *App) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	base := []ingestion.Option{
		ingestion.WithBatchSize(a.cfg.Seed.BatchSize),
		ingestion.WithPoolSize(a.cfg.Seed.Workers),
	}
	return ingestion.NewPipeline(a.schemeRepo, a.manifestRepo, a.provider, append(base, opts...)...)
}

// NewReembedder builds a reembedder that writes progress to progress.
// A nil config uses the seed batch size with reembed defaults.
func (a *App) NewReembedder(cfg *reembed.Config, progress io.Writer) (*reembed.Reembedder, error) {
	if cfg == nil {
		cfg = reembed.DefaultConfig()
		cfg.BatchSize = a.cfg.Seed.BatchSize
	}
	return reembed.NewReembedder(a.schemeRepo, a.manifestRepo, a.provider.Embedder(), cfg, progress)
}
