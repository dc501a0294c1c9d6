package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/yojana/ai"
	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/reembed"
)

// embeddingProcessor generates embeddings for scheme records.
type embeddingProcessor struct {
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
	logger         *slog.Logger
}

var _ processor = (*embeddingProcessor)(nil)

// newEmbeddingProcessor creates a new embedding processor.
func newEmbeddingProcessor(embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration, logger *slog.Logger) (*embeddingProcessor, error) {
	if embedder == nil {
		return nil, errors.New("embedder required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &embeddingProcessor{
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
		logger:         logger.With("processor", "embeddings"),
	}, nil
}

// process sets a unit-length vector on every scheme.
func (ep *embeddingProcessor) process(ctx context.Context, schemes []*core.Scheme) error {
	if len(schemes) == 0 {
		return nil
	}

	texts := make([]string, len(schemes))
	for i, scheme := range schemes {
		texts[i] = scheme.EmbeddingText()
	}

	ep.logger.Debug("generating embeddings for schemes", "schemes", len(texts))
	var embeddings [][]float32
	err := reembed.RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = ep.embedder.EmbedTexts(ctx, texts)
		return err
	}, ep.maxRetries, ep.retryBaseDelay)
	if err != nil {
		ep.logger.Error("error generating embeddings", "err", err)
		return fmt.Errorf("embedding %d schemes: %w", len(schemes), err)
	}

	if len(embeddings) != len(schemes) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(schemes), len(embeddings))
	}

	for i := range embeddings {
		if len(embeddings[i]) == 0 {
			return fmt.Errorf("empty embedding for scheme %q", schemes[i].Name)
		}
		schemes[i].Vector = reembed.NormalizeVector(embeddings[i])
	}
	return nil
}
