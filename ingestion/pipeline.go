package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/yojana/ai"
	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/storage"
)

const (
	// DefaultBatchSize is the number of schemes embedded per call.
	DefaultBatchSize = 32

	// DefaultMaxRetries is the number of attempts per embedding batch.
	DefaultMaxRetries = 3

	// DefaultRetryDelay is the base delay for exponential backoff.
	DefaultRetryDelay = time.Second
)

// Pipeline orchestrates seeding of scheme records.
// Embedding batches run concurrently on a worker pool.
type Pipeline struct {
	schemeRepository   storage.SchemeRepository
	manifestRepository storage.ManifestRepository
	embedder           ai.Embedder
	embeddingPool      *ants.Pool
	embeddingProc      processor
	batchSize          int
	maxRetries         int
	retryDelay         time.Duration
	logger             *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}

		embeddingPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.embeddingPool = embeddingPool
		return nil
	}
}

// WithBatchSize sets how many schemes are embedded per call.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithRetry sets the attempts and base backoff delay per embedding batch.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if maxAttempts < 1 {
			maxAttempts = 1
		}
		p.maxRetries = maxAttempts
		p.retryDelay = baseDelay
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new seeding pipeline.
func NewPipeline(
	schemeRepository storage.SchemeRepository,
	manifestRepository storage.ManifestRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if schemeRepository == nil {
		return nil, ErrSchemeRepositoryRequired
	}
	if manifestRepository == nil {
		return nil, ErrManifestRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	embeddingPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		schemeRepository:   schemeRepository,
		manifestRepository: manifestRepository,
		embedder:           provider.Embedder(),
		embeddingPool:      embeddingPool,
		batchSize:          DefaultBatchSize,
		maxRetries:         DefaultMaxRetries,
		retryDelay:         DefaultRetryDelay,
		logger:             slog.Default().With("component", "ingestion"),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// Create processors after options are applied (so they get final config)
	embeddingProc, err := newEmbeddingProcessor(p.embedder, p.maxRetries, p.retryDelay, p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.embeddingProc = embeddingProc

	return p, nil
}

// Summary reports what an Ingest call did.
type Summary struct {
	// Loaded is the number of records passed in.
	Loaded int
	// Duplicates is the number of records that shared an ID with a later record.
	Duplicates int
	// Stored is the number of records written.
	Stored int
	// Total is the corpus size afterwards.
	Total int
	// Dimensions is the vector size of the embedding model.
	Dimensions int
}

// Ingest validates, embeds and stores schemes, then updates the manifest.
// It fails without writing anything if any record is invalid, if any
// embedding batch fails, or if the corpus was built with another model.
func (p *Pipeline) Ingest(ctx context.Context, schemes []*core.Scheme) (*Summary, error) {
	summary := &Summary{Loaded: len(schemes)}
	if len(schemes) == 0 {
		return summary, nil
	}

	if err := p.checkManifest(ctx); err != nil {
		return nil, err
	}

	unique, err := p.prepare(schemes)
	if err != nil {
		return nil, err
	}
	summary.Duplicates = len(schemes) - len(unique)

	p.logger.Info("embedding schemes", "schemes", len(unique), "batchSize", p.batchSize)
	if err := p.embed(ctx, unique); err != nil {
		return nil, err
	}

	dims := len(unique[0].Vector)
	for _, scheme := range unique {
		if len(scheme.Vector) != dims {
			return nil, fmt.Errorf("inconsistent embedding dimensions: %d and %d", dims, len(scheme.Vector))
		}
	}
	summary.Dimensions = dims

	if _, err := p.schemeRepository.AddSchemes(ctx, unique...); err != nil {
		return nil, fmt.Errorf("storing schemes: %w", err)
	}
	summary.Stored = len(unique)

	total, err := p.schemeRepository.CountSchemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting schemes: %w", err)
	}
	summary.Total = total

	manifest := &core.Manifest{
		EmbeddingModel: p.embedder.Model(),
		Dimensions:     dims,
		SchemeCount:    total,
	}
	if err := p.manifestRepository.SaveManifest(ctx, manifest); err != nil {
		return nil, fmt.Errorf("saving manifest: %w", err)
	}

	p.logger.Info("ingestion complete",
		"stored", summary.Stored,
		"duplicates", summary.Duplicates,
		"total", summary.Total,
		"model", manifest.EmbeddingModel)
	return summary, nil
}

// checkManifest refuses to mix vectors from different models in one corpus.
func (p *Pipeline) checkManifest(ctx context.Context) error {
	manifest, err := p.manifestRepository.LoadManifest(ctx)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}
	if manifest == nil || manifest.EmbeddingModel == "" || manifest.SchemeCount == 0 {
		return nil
	}
	if manifest.EmbeddingModel != p.embedder.Model() {
		return fmt.Errorf("%w: corpus %q, configured %q", ErrModelMismatch, manifest.EmbeddingModel, p.embedder.Model())
	}
	return nil
}

// prepare validates and normalizes every record, assigns content IDs and
// drops earlier duplicates. Input order is otherwise preserved.
func (p *Pipeline) prepare(schemes []*core.Scheme) ([]*core.Scheme, error) {
	for i, scheme := range schemes {
		if err := core.ValidateScheme(scheme); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		core.NormalizeScheme(scheme)
		if scheme.Id == 0 {
			scheme.Id = core.IDFromContent(scheme.Key())
		}
	}

	last := make(map[core.ID]int, len(schemes))
	for i, scheme := range schemes {
		if prev, ok := last[scheme.Id]; ok {
			p.logger.Warn("duplicate scheme, keeping the later record",
				"id", scheme.Id, "name", scheme.Name, "first", prev, "second", i)
		}
		last[scheme.Id] = i
	}

	unique := make([]*core.Scheme, 0, len(last))
	for i, scheme := range schemes {
		if last[scheme.Id] == i {
			unique = append(unique, scheme)
		}
	}
	return unique, nil
}

// embed runs one embedding batch per pool task and waits for all of them.
// The first failure cancels the batches still waiting.
func (p *Pipeline) embed(ctx context.Context, schemes []*core.Scheme) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
		cancel()
	}

	for start := 0; start < len(schemes); start += p.batchSize {
		end := min(start+p.batchSize, len(schemes))
		batch := schemes[start:end]

		wg.Add(1)
		err := p.embeddingPool.Submit(func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				return
			}
			if err := p.embeddingProc.process(ctx, batch); err != nil {
				fail(err)
			}
		})
		if err != nil {
			wg.Done()
			fail(fmt.Errorf("submitting embedding batch: %w", err))
			break
		}
	}
	wg.Wait()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return ctx.Err()
}

// Release releases resources including worker pools.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
}
