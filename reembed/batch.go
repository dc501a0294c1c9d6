package reembed

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/yojana/ai"
	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/storage"
)

// BatchProcessor re-embeds one batch of schemes and writes them back.
type BatchProcessor struct {
	repo           storage.SchemeRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(repo storage.SchemeRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process embeds each scheme's EmbeddingText, normalizes the vectors and
// updates the records. It returns the vector size of the batch.
func (bp *BatchProcessor) Process(ctx context.Context, schemes []*core.Scheme) (int, error) {
	if len(schemes) == 0 {
		return 0, nil
	}

	texts := make([]string, len(schemes))
	for i, scheme := range schemes {
		texts[i] = scheme.EmbeddingText()
	}

	// Generate embeddings with retry
	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return 0, fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(schemes) {
		return 0, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(schemes), len(embeddings))
	}

	dims := len(embeddings[0])
	for i := range schemes {
		if len(embeddings[i]) == 0 || len(embeddings[i]) != dims {
			return 0, fmt.Errorf("inconsistent embedding for scheme %q: %d dimensions, want %d",
				schemes[i].Name, len(embeddings[i]), dims)
		}
		schemes[i].Vector = NormalizeVector(embeddings[i])
	}

	if _, err := bp.repo.UpdateSchemes(ctx, schemes...); err != nil {
		return 0, fmt.Errorf("failed to update schemes: %w", err)
	}

	return dims, nil
}
