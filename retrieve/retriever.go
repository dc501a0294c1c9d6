package retrieve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/poiesic/yojana/ai"
	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/storage"
	"golang.org/x/sync/singleflight"
)

// DefaultLimit is the number of candidates fetched per query.
// Callers may raise it but not lower it below MinLimit.
const (
	DefaultLimit = 20
	MinLimit     = 20
)

// Retriever embeds a query and fetches the nearest schemes that pass the
// coarse gender and region pre-filter.
type Retriever struct {
	embedder  ai.Embedder
	schemes   storage.SchemeRepository
	manifests storage.ManifestRepository
	limit     int
	logger    *slog.Logger

	// inflight coalesces concurrent embeddings of the same query text.
	inflight singleflight.Group
}

// Option configures a Retriever.
type Option func(*Retriever)

// WithLimit sets the candidate cap. Values below MinLimit are raised to MinLimit.
func WithLimit(limit int) Option {
	return func(r *Retriever) {
		r.limit = max(limit, MinLimit)
	}
}

// WithManifests enables the embedding-model compatibility check.
func WithManifests(manifests storage.ManifestRepository) Option {
	return func(r *Retriever) {
		r.manifests = manifests
	}
}

// WithLogger sets a custom logger. If nil, uses the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRetriever creates a Retriever.
func NewRetriever(embedder ai.Embedder, schemes storage.SchemeRepository, opts ...Option) (*Retriever, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if schemes == nil {
		return nil, ErrRepositoryRequired
	}
	r := &Retriever{
		embedder: embedder,
		schemes:  schemes,
		limit:    DefaultLimit,
		logger:   slog.Default().With("component", "retriever"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Limit returns the candidate cap.
func (r *Retriever) Limit() int {
	return r.limit
}

// Retrieve embeds query and searches with the pre-filter for gender and
// region. Every failure is reported as core.ErrRetrieval.
func (r *Retriever) Retrieve(ctx context.Context, query string, gender core.Gender, region string) ([]*core.ScoredScheme, error) {
	vector, err := r.Embed(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.Search(ctx, vector, gender, region)
}

// Embed checks the corpus embedding model and embeds query. It needs only
// the raw query, so it can run alongside profile extraction.
func (r *Retriever) Embed(ctx context.Context, query string) ([]float32, error) {
	if err := r.checkModel(ctx); err != nil {
		return nil, err
	}

	vector, err := r.embedShared(ctx, query)
	if err != nil {
		r.logger.Error("query embedding failed", "err", err)
		return nil, fmt.Errorf("%w: embed query: %w", core.ErrRetrieval, err)
	}
	if len(vector) == 0 {
		return nil, fmt.Errorf("%w: %w", core.ErrRetrieval, ErrEmptyEmbedding)
	}
	return vector, nil
}

// embedShared embeds query, joining an in-flight call for the same text if
// there is one. A follower whose leader was cancelled embeds again under its
// own context.
func (r *Retriever) embedShared(ctx context.Context, query string) ([]float32, error) {
	ch := r.inflight.DoChan(query, func() (any, error) {
		return r.embedder.EmbedText(ctx, query)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			if res.Shared && ctx.Err() == nil && isContextError(res.Err) {
				return r.embedder.EmbedText(ctx, query)
			}
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]float32)), nil
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Search returns up to Limit candidates for vector, ordered by descending
// similarity, after the gender and region pre-filter.
func (r *Retriever) Search(ctx context.Context, vector []float32, gender core.Gender, region string) ([]*core.ScoredScheme, error) {
	filter := BuildFilter(gender, region)
	results, err := r.schemes.Find(ctx, filter, vector, r.limit)
	if err != nil {
		r.logger.Error("vector search failed", "filter", filter.String(), "err", err)
		return nil, fmt.Errorf("%w: search: %w", core.ErrRetrieval, err)
	}

	r.logger.Debug("retrieved candidates", "filter", filter.String(), "count", len(results))
	return results, nil
}

// checkModel fails when the manifest names a different embedding model.
// A corpus without a manifest is accepted.
func (r *Retriever) checkModel(ctx context.Context) error {
	if r.manifests == nil {
		return nil
	}
	manifest, err := r.manifests.LoadManifest(ctx)
	if err != nil {
		return fmt.Errorf("%w: load manifest: %w", core.ErrRetrieval, err)
	}
	if manifest == nil || manifest.EmbeddingModel == "" {
		return nil
	}
	if manifest.EmbeddingModel != r.embedder.Model() {
		r.logger.Error("embedding model mismatch",
			"corpus", manifest.EmbeddingModel,
			"query", r.embedder.Model())
		return fmt.Errorf("%w: %w: corpus %q, query %q",
			core.ErrRetrieval, ErrModelMismatch, manifest.EmbeddingModel, r.embedder.Model())
	}
	return nil
}

// BuildFilter builds the coarse pre-filter. Each constrained attribute
// contributes one OR-group accepting the applicant's value, the "all" value,
// or a record with no value at all. Unconstrained attributes add nothing.
func BuildFilter(gender core.Gender, region string) storage.Filter {
	var filter storage.Filter
	if gender != "" && gender != core.GenderAll {
		filter = filter.And(
			storage.Eq(storage.FieldTargetGender, string(gender)),
			storage.Eq(storage.FieldTargetGender, string(core.GenderAll)),
			storage.Absent(storage.FieldTargetGender),
		)
	}
	if region != "" && region != core.RegionAll {
		filter = filter.And(
			storage.Eq(storage.FieldTargetState, region),
			storage.Eq(storage.FieldTargetState, core.RegionAll),
			storage.Absent(storage.FieldTargetState),
		)
	}
	return filter
}
