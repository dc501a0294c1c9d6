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


package reembed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/yojana/ai"
	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/storage"
)

// Config holds configuration for the reembedding operation.
type Config struct {
	// BatchSize is the number of schemes to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of schemes)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      32,
		ReportInterval: 32,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reembedder orchestrates the reembedding of every scheme in the corpus.
type Reembedder struct {
	schemes   storage.SchemeRepository
	manifests storage.ManifestRepository
	embedder  ai.Embedder
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
	iterator  *SchemeIterator
	logger    *slog.Logger
}

// NewReembedder creates a new reembedder.
// manifests may be nil, in which case no manifest is written.
// progress: where to write progress output (typically os.Stderr)
func NewReembedder(schemes storage.SchemeRepository, manifests storage.ManifestRepository, embedder ai.Embedder, config *Config, progress io.Writer) (*Reembedder, error) {
	if schemes == nil {
		return nil, ErrSchemeRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if progress == nil {
		progress = io.Discard
	}

	return &Reembedder{
		schemes:   schemes,
		manifests: manifests,
		embedder:  embedder,
		config:    config,
		progress:  progress,
		processor: NewBatchProcessor(schemes, embedder, config.MaxRetries, config.RetryDelay),
		iterator:  NewSchemeIterator(schemes, config.BatchSize),
		logger:    slog.Default().With("component", "reembed"),
	}, nil
}

// Run re-embeds every scheme with the configured embedder and then records
// the embedder's model in the manifest. If a batch fails, earlier batches
// stay updated and the manifest is left untouched, so queries keep being
// refused until a later run completes.
func (r *Reembedder) Run(ctx context.Context) error {
	total, err := r.schemes.CountSchemes(ctx)
	if err != nil {
		return fmt.Errorf("failed to count schemes: %w", err)
	}

	if total == 0 {
		fmt.Fprintf(r.progress, "No schemes found in corpus (0 schemes)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reembedding of %d schemes with %s (batch size: %d)\n",
		total, r.embedder.Model(), r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	dims := 0

	err = r.iterator.ForEach(ctx, func(schemes []*core.Scheme) error {
		batchDims, err := r.processor.Process(ctx, schemes)
		if err == nil && dims != 0 && batchDims != dims {
			err = fmt.Errorf("embedding dimensions changed mid-run: %d then %d", dims, batchDims)
		}
		if err != nil {
			tracker.BatchFailed(len(schemes), err)
			return fmt.Errorf("failed to process batch: %w", err)
		}
		dims = batchDims
		tracker.BatchEmbedded(len(schemes), dims)
		return nil
	})

	if err != nil {
		s := tracker.Summary()
		r.logger.Error("reembedding stopped",
			"embedded", s.Embedded, "failed", s.Failed, "remaining", s.Remaining(), "total", total, "err", err)
		return err
	}

	summary := tracker.Finish()

	if r.manifests != nil {
		manifest := &core.Manifest{
			EmbeddingModel: r.embedder.Model(),
			Dimensions:     summary.Dimensions,
			SchemeCount:    summary.Embedded,
		}
		if err := r.manifests.SaveManifest(ctx, manifest); err != nil {
			return fmt.Errorf("failed to save manifest: %w", err)
		}
	}

	fmt.Fprintf(r.progress, "Reembedding complete. Processed %d schemes in %d batches (%d dimensions) in %v (%.1f schemes/sec)\n",
		summary.Embedded, summary.Batches, summary.Dimensions, summary.Elapsed.Round(time.Second), summary.Rate())
	r.logger.Info("reembedding complete", "schemes", summary.Embedded, "batches", summary.Batches,
		"model", r.embedder.Model(), "dimensions", summary.Dimensions)

	return nil
}
