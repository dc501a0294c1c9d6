package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/yojana/ai"
	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/eligibility"
	"github.com/poiesic/yojana/localize"
	"github.com/poiesic/yojana/profile"
	"github.com/poiesic/yojana/retrieve"
	"github.com/poiesic/yojana/storage"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds a whole query including every external call.
const DefaultTimeout = 30 * time.Second

// Request is one inbound query.
type Request struct {
	Query string
	// Language is the caller's preferred language. It is only used when the
	// query itself gives no signal.
	Language core.Language
}

// Pipeline answers welfare-scheme queries. It holds no per-request state
// and is safe for concurrent use.
type Pipeline struct {
	schemes   storage.SchemeRepository
	extractor *profile.Extractor
	retriever *retrieve.Retriever
	localizer *localize.Localizer
	manifests storage.ManifestRepository
	limit     int
	timeout   time.Duration
	monitor   Monitor
	logger    *slog.Logger
	// base is the caller's logger from WithLogger, nil when unset.
	base      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets the logger for the pipeline and the stages it builds.
// Each gets its own component attribute. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			return nil
		}
		p.base = logger
		p.logger = logger.With("component", "pipeline")
		return nil
	}
}

// WithTimeout bounds each query. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Pipeline) error {
		if timeout < 0 {
			return ErrInvalidTimeout
		}
		p.timeout = timeout
		return nil
	}
}

// WithMonitor sets the monitor used by Query.
func WithMonitor(monitor Monitor) Option {
	return func(p *Pipeline) error {
		p.monitor = monitor
		return nil
	}
}

// WithManifests enables the embedding-model compatibility check.
func WithManifests(manifests storage.ManifestRepository) Option {
	return func(p *Pipeline) error {
		p.manifests = manifests
		return nil
	}
}

// WithCandidateLimit sets how many candidates retrieval fetches.
// Values below retrieve.MinLimit are raised.
func WithCandidateLimit(limit int) Option {
	return func(p *Pipeline) error {
		p.limit = limit
		return nil
	}
}

// New creates a pipeline over the scheme corpus using the provider's services.
func New(schemes storage.SchemeRepository, provider ai.AIProvider, opts ...Option) (*Pipeline, error) {
	if schemes == nil {
		return nil, ErrSchemeRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	p := &Pipeline{
		schemes: schemes,
		limit:   retrieve.DefaultLimit,
		timeout: DefaultTimeout,
		logger:  slog.Default().With("component", "pipeline"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	var err error
	p.extractor, err = profile.NewExtractor(provider.ProfileExtractor(), profile.WithLogger(p.componentLogger("profile-extractor")))
	if err != nil {
		return nil, err
	}

	retrieverOpts := []retrieve.Option{
		retrieve.WithLimit(p.limit),
		retrieve.WithLogger(p.componentLogger("retriever")),
	}
	if p.manifests != nil {
		retrieverOpts = append(retrieverOpts, retrieve.WithManifests(p.manifests))
	}
	p.retriever, err = retrieve.NewRetriever(provider.Embedder(), schemes, retrieverOpts...)
	if err != nil {
		return nil, err
	}

	p.localizer, err = localize.NewLocalizer(provider.SchemeTranslator(), localize.WithLogger(p.componentLogger("localizer")))
	if err != nil {
		return nil, err
	}

	return p, nil
}

// componentLogger derives a stage logger from the WithLogger logger. It
// returns nil without one, so the stage keeps its own default.
func (p *Pipeline) componentLogger(name string) *slog.Logger {
	if p.base == nil {
		return nil
	}
	return p.base.With("component", name)
}

// Query runs the pipeline with the configured monitor.
func (p *Pipeline) Query(ctx context.Context, req Request) *core.QueryResult {
	return p.QueryWithMonitor(ctx, req, p.monitor)
}

// QueryWithMonitor runs the pipeline. The result is always non-nil: a
// failure is a ResultError whose Err matches one of the core error kinds.
func (p *Pipeline) QueryWithMonitor(ctx context.Context, req Request, monitor Monitor) *core.QueryResult {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	start := time.Now()
	monitor.Start(req.Query)

	result := p.run(ctx, req, monitor)

	elapsed := time.Since(start)
	monitor.Finish(result, elapsed)
	if result.Err != nil {
		p.logger.Error("query failed",
			"kind", core.ErrorKind(result.Err),
			"elapsed", elapsed,
			"err", result.Err)
	} else {
		p.logger.Info("query complete",
			"result", result.Kind.String(),
			"language", result.Language,
			"region", result.Region,
			"count", len(result.Schemes),
			"elapsed", elapsed)
	}
	return result
}

func (p *Pipeline) run(ctx context.Context, req Request, monitor Monitor) *core.QueryResult {
	if strings.TrimSpace(req.Query) == "" {
		return Failure(fmt.Errorf("%w: query required", core.ErrInput), fallbackLanguage(req), core.RegionAll)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	// 1. Extract the profile and embed the query concurrently.
	var (
		applicant *core.ApplicantProfile
		vector    []float32
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stageStart := time.Now()
		var err error
		applicant, err = p.extractor.Extract(gctx, req.Query, req.Language)
		monitor.StageDone(StageExtract, time.Since(stageStart), err)
		return err
	})
	g.Go(func() error {
		stageStart := time.Now()
		var err error
		vector, err = p.retriever.Embed(gctx, req.Query)
		monitor.StageDone(StageEmbed, time.Since(stageStart), err)
		return err
	})
	if err := g.Wait(); err != nil {
		lang := fallbackLanguage(req)
		if applicant != nil {
			lang = applicant.Language
		}
		return Failure(classify(ctx, err), lang, core.RegionAll)
	}
	monitor.AfterProfileExtraction(applicant)

	// 2. Search with the coarse pre-filter.
	stageStart := time.Now()
	candidates, err := p.retriever.Search(ctx, vector, applicant.Gender, applicant.Region)
	monitor.StageDone(StageSearch, time.Since(stageStart), err)
	if err != nil {
		return Failure(classify(ctx, err), applicant.Language, applicant.Region)
	}
	monitor.AfterRetrieval(candidates)

	// 3. Deterministic eligibility cutoffs.
	stageStart = time.Now()
	survivors := eligibility.Apply(candidates, applicant)
	monitor.StageDone(StageFilter, time.Since(stageStart), nil)
	monitor.AfterEligibilityFilter(survivors)

	p.logger.Debug("candidates filtered",
		"retrieved", len(candidates),
		"eligible", len(survivors))

	if len(survivors) == 0 {
		return NoResults(applicant)
	}

	// 4. Localize. Translation failure is not fatal, but running out of time is.
	stageStart = time.Now()
	localized, report := p.localizer.Localize(ctx, survivors, applicant.Language)
	monitor.StageDone(StageLocalize, time.Since(stageStart), report.Err)
	monitor.AfterLocalization(report)

	if err := ctx.Err(); err != nil {
		return Failure(fmt.Errorf("%w: %w", core.ErrPipeline, err), applicant.Language, applicant.Region)
	}

	// 5. Assemble.
	return Assemble(localized, applicant)
}

// classify reports a request timeout or cancellation as a pipeline error
// even when a stage already wrapped it in its own kind. Anything the
// taxonomy does not know becomes a pipeline error too.
func classify(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %w (%v)", core.ErrPipeline, ctxErr, err)
	}
	if core.Classify(err) == core.ErrPipeline && !errors.Is(err, core.ErrPipeline) {
		return fmt.Errorf("%w: %w", core.ErrPipeline, err)
	}
	return err
}

// fallbackLanguage picks the language for results produced before the
// profile is known.
func fallbackLanguage(req Request) core.Language {
	if req.Language != "" {
		if lang, err := core.ParseLanguage(string(req.Language)); err == nil {
			return lang
		}
	}
	return profile.DetectLanguage(req.Query)
}
