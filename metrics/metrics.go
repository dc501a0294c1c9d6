// Package metrics defines the Prometheus collectors for the query service
// and implements pipeline.Monitor on top of them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/localize"
	"github.com/poiesic/yojana/pipeline"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the service.
// It is safe for concurrent use and can be shared by every request.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	QueriesTotal         *prometheus.CounterVec
	QueryErrorsTotal     *prometheus.CounterVec
	QueryDuration        prometheus.Histogram
	QueriesInFlight      prometheus.Gauge
	StageDuration        *prometheus.HistogramVec
	CandidatesRetrieved  prometheus.Histogram
	SchemesEligible      prometheus.Histogram
	LocalizedEntries     *prometheus.CounterVec
	TranslationBatchSize prometheus.Histogram
	TranslationFailures  prometheus.Counter

	gatherer prometheus.Gatherer
}

var _ pipeline.Monitor = (*Metrics)(nil)

// New creates all collectors and registers them with reg.
// A nil reg uses a fresh private registry.
func New(reg prometheus.Registerer) *Metrics {
	var gatherer prometheus.Gatherer
	if reg == nil {
		r := prometheus.NewRegistry()
		reg, gatherer = r, r
	} else if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	} else {
		gatherer = prometheus.DefaultGatherer
	}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yojana_http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "yojana_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "yojana_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yojana_queries_total",
				Help: "Total queries by result kind (ok, empty, error) and response language.",
			},
			[]string{"result", "language"},
		),
		QueryErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yojana_query_errors_total",
				Help: "Failed queries by error kind.",
			},
			[]string{"kind"},
		),
		QueryDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "yojana_query_duration_seconds",
				Help:    "End-to-end query latency in seconds.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 15, 30},
			},
		),
		QueriesInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "yojana_queries_in_flight",
				Help: "Number of queries currently running.",
			},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "yojana_stage_duration_seconds",
				Help:    "Per-stage latency in seconds by stage and status.",
				Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
			},
			[]string{"stage", "status"},
		),
		CandidatesRetrieved: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "yojana_candidates_retrieved",
				Help:    "Candidates returned by vector search per query.",
				Buckets: []float64{0, 1, 5, 10, 20, 50},
			},
		),
		SchemesEligible: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "yojana_schemes_eligible",
				Help:    "Candidates surviving the eligibility filter per query.",
				Buckets: []float64{0, 1, 3, 6, 10, 20},
			},
		),
		LocalizedEntries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "yojana_localized_entries_total",
				Help: "Localized entries by source (cached, translated, fallback).",
			},
			[]string{"source"},
		),
		TranslationBatchSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "yojana_translation_batch_size",
				Help:    "Entries sent in a single translation call.",
				Buckets: []float64{1, 2, 3, 4, 5, 6},
			},
		),
		TranslationFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "yojana_translation_failures_total",
				Help: "Translation calls that failed and fell back to English.",
			},
		),
		gatherer: gatherer,
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.QueriesTotal,
		m.QueryErrorsTotal,
		m.QueryDuration,
		m.QueriesInFlight,
		m.StageDuration,
		m.CandidatesRetrieved,
		m.SchemesEligible,
		m.LocalizedEntries,
		m.TranslationBatchSize,
		m.TranslationFailures,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler for the registry the
// collectors were registered with.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records HTTP request count, latency, and in-flight gauge.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		m.HTTPRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(sw.status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (sw *statusWriter) WriteHeader(code int) {
	if !sw.wroteHeader {
		sw.status = code
		sw.wroteHeader = true
	}
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if !sw.wroteHeader {
		sw.wroteHeader = true
	}
	return sw.ResponseWriter.Write(b)
}

// Start implements pipeline.Monitor.
func (m *Metrics) Start(_ string) {
	m.QueriesInFlight.Inc()
}

// StageDone implements pipeline.Monitor.
func (m *Metrics) StageDone(stage pipeline.Stage, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.StageDuration.WithLabelValues(string(stage), status).Observe(elapsed.Seconds())
}

// AfterProfileExtraction implements pipeline.Monitor.
func (m *Metrics) AfterProfileExtraction(_ *core.ApplicantProfile) {}

// AfterRetrieval implements pipeline.Monitor.
func (m *Metrics) AfterRetrieval(candidates []*core.ScoredScheme) {
	m.CandidatesRetrieved.Observe(float64(len(candidates)))
}

// AfterEligibilityFilter implements pipeline.Monitor.
func (m *Metrics) AfterEligibilityFilter(survivors []*core.ScoredScheme) {
	m.SchemesEligible.Observe(float64(len(survivors)))
}

// AfterLocalization implements pipeline.Monitor.
func (m *Metrics) AfterLocalization(report localize.Report) {
	m.LocalizedEntries.WithLabelValues("cached").Add(float64(report.Cached))
	m.LocalizedEntries.WithLabelValues("translated").Add(float64(report.Translated))
	m.LocalizedEntries.WithLabelValues("fallback").Add(float64(report.Fallback))
	if report.BatchSize > 0 {
		m.TranslationBatchSize.Observe(float64(report.BatchSize))
	}
	if report.Err != nil {
		m.TranslationFailures.Inc()
	}
}

// Finish implements pipeline.Monitor.
func (m *Metrics) Finish(result *core.QueryResult, elapsed time.Duration) {
	m.QueriesInFlight.Dec()
	m.QueryDuration.Observe(elapsed.Seconds())
	m.QueriesTotal.WithLabelValues(result.Kind.String(), string(result.Language)).Inc()
	if result.Err != nil {
		m.QueryErrorsTotal.WithLabelValues(core.ErrorKind(result.Err)).Inc()
	}
}
