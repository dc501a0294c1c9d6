// Package server exposes the query pipeline over HTTP.
//
// Routes:
//
//	POST /api/query-schemes        run one query
//	POST /api/schemes-by-category  list one category
//	GET  /healthz                  liveness
//	GET  /metrics                  Prometheus scrape (when metrics are enabled)
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/metrics"
	"github.com/poiesic/yojana/pipeline"
)

// ErrQuerierRequired is returned when a Server is built without a pipeline.
var ErrQuerierRequired = errors.New("querier is required")

// Querier answers queries and category listings. *pipeline.Pipeline
// implements it.
type Querier interface {
	Query(ctx context.Context, req pipeline.Request) *core.QueryResult
	ListByCategory(ctx context.Context, req pipeline.CategoryRequest) *core.QueryResult
}

// Server is the HTTP front end for a Querier.
type Server struct {
	querier        Querier
	metrics        *metrics.Metrics
	metricsPath    string
	requestTimeout time.Duration
	maxBodyBytes   int64
	logger         *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics records HTTP metrics and serves them at path.
func WithMetrics(m *metrics.Metrics, path string) Option {
	return func(s *Server) {
		s.metrics = m
		if path != "" {
			s.metricsPath = path
		}
	}
}

// WithRequestTimeout bounds each HTTP request. Zero disables the bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.requestTimeout = d
	}
}

// WithLogger sets a custom logger. If nil, uses the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Server for querier.
func New(querier Querier, opts ...Option) (*Server, error) {
	if querier == nil {
		return nil, ErrQuerierRequired
	}
	s := &Server{
		querier:      querier,
		metricsPath:  "/metrics",
		maxBodyBytes: 64 << 10,
		logger:       slog.Default().With("component", "server"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Handler builds the route table and middleware chain.
//
// Middleware chain (outermost first):
//
//	Metrics → Timeout → mux
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/query-schemes", s.handleQuery)
	mux.HandleFunc("POST /api/schemes-by-category", s.handleCategory)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("GET "+s.metricsPath, s.metrics.Handler())
	}

	var chain http.Handler = mux
	if s.requestTimeout > 0 {
		chain = Timeout(s.requestTimeout, s.logger)(chain)
	}
	if s.metrics != nil {
		chain = s.metrics.Middleware(chain)
	}
	return chain
}

// Config holds listener settings for Run.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, cfg Config) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server shutdown error", "err", err)
		return err
	}
	s.logger.Info("server stopped")
	return <-errCh
}
