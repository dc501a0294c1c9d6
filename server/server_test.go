package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/poiesic/yojana/ai/mock"
	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/metrics"
	"github.com/poiesic/yojana/pipeline"
	"github.com/poiesic/yojana/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuerier records requests and returns a canned result.
type fakeQuerier struct {
	mu         sync.Mutex
	reqs       []pipeline.Request
	categories []pipeline.CategoryRequest
	result     *core.QueryResult
	queryFn    func(ctx context.Context, req pipeline.Request) *core.QueryResult
}

func (f *fakeQuerier) Query(ctx context.Context, req pipeline.Request) *core.QueryResult {
	f.mu.Lock()
	f.reqs = append(f.reqs, req)
	f.mu.Unlock()
	if f.queryFn != nil {
		return f.queryFn(ctx, req)
	}
	return f.result
}

func (f *fakeQuerier) ListByCategory(ctx context.Context, req pipeline.CategoryRequest) *core.QueryResult {
	f.mu.Lock()
	f.categories = append(f.categories, req)
	f.mu.Unlock()
	return f.result
}

func post(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	return postTo(t, h, "/api/query-schemes", body)
}

func postTo(t *testing.T, h http.Handler, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	return rec, decoded
}

func newTestServer(t *testing.T, q Querier, opts ...Option) http.Handler {
	t.Helper()
	s, err := New(q, opts...)
	require.NoError(t, err)
	return s.Handler()
}

func TestNew_RequiresQuerier(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrQuerierRequired)
}

func TestQuery_OK(t *testing.T) {
	sim := float32(0.712)
	q := &fakeQuerier{result: &core.QueryResult{
		Kind:     core.ResultOK,
		Language: core.LanguageHindi,
		Region:   "bihar",
		Schemes: []core.LocalizedScheme{{
			Id:          "42",
			Name:        "वृद्धावस्था पेंशन योजना",
			Eligibility: "60 वर्ष से अधिक",
			Benefits:    "मासिक पेंशन",
			ApplyLink:   "https://example.gov.in/pension",
			Similarity:  &sim,
		}},
	}}
	h := newTestServer(t, q)

	rec, body := post(t, h, `{"query":"पेंशन योजना","language":"hi"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "hi", body["language"])
	assert.NotContains(t, body, "error")
	schemes := body["schemes"].([]any)
	require.Len(t, schemes, 1)
	first := schemes[0].(map[string]any)
	assert.Equal(t, "42", first["id"])
	assert.Equal(t, "वृद्धावस्था पेंशन योजना", first["name"])
	assert.InDelta(t, 0.712, first["similarity"], 0.0001)

	require.Len(t, q.reqs, 1)
	assert.Equal(t, pipeline.Request{Query: "पेंशन योजना", Language: core.LanguageHindi}, q.reqs[0])
}

func TestQuery_EmptyResultIsOK(t *testing.T) {
	q := &fakeQuerier{result: pipeline.NoResults(&core.ApplicantProfile{Language: core.LanguageEnglish, Region: core.RegionAll})}
	h := newTestServer(t, q)

	rec, body := post(t, h, `{"query":"something"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	schemes := body["schemes"].([]any)
	require.Len(t, schemes, 1)
	assert.Equal(t, pipeline.NoResultsID, schemes[0].(map[string]any)["id"])
}

func TestQuery_UnsupportedLanguageHintIgnored(t *testing.T) {
	q := &fakeQuerier{result: &core.QueryResult{Kind: core.ResultOK, Language: core.LanguageEnglish}}
	h := newTestServer(t, q)

	rec, _ := post(t, h, `{"query":"pension","language":"fr"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, q.reqs, 1)
	assert.Equal(t, core.Language(""), q.reqs[0].Language)
}

func TestQuery_InputError(t *testing.T) {
	q := &fakeQuerier{result: pipeline.Failure(fmt.Errorf("%w: query required", core.ErrInput), core.LanguageEnglish, "")}
	h := newTestServer(t, q)

	rec, body := post(t, h, `{"query":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": "query required"}, body)
}

func TestQuery_InvalidBody(t *testing.T) {
	q := &fakeQuerier{}
	h := newTestServer(t, q)

	rec, body := post(t, h, `{"query":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", body["error"])
	assert.Empty(t, q.reqs)
}

func TestQuery_PipelineError(t *testing.T) {
	q := &fakeQuerier{result: pipeline.Failure(fmt.Errorf("%w: embed query: connection refused", core.ErrRetrieval), core.LanguageBhojpuri, "bihar")}
	h := newTestServer(t, q)

	rec, body := post(t, h, `{"query":"हमके पेंशन चाहीं"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "retrieval", body["error"])
	assert.NotContains(t, rec.Body.String(), "connection refused", "internal error text must not reach clients")
	assert.Equal(t, "bho", body["language"])
	schemes := body["schemes"].([]any)
	require.Len(t, schemes, 1)
	assert.Equal(t, pipeline.ErrorID, schemes[0].(map[string]any)["id"])
}

func TestQuery_TimeoutErrorReportsKind(t *testing.T) {
	err := fmt.Errorf("%w: %w", core.ErrPipeline, context.DeadlineExceeded)
	q := &fakeQuerier{result: pipeline.Failure(err, core.LanguageEnglish, "")}
	h := newTestServer(t, q)

	rec, body := post(t, h, `{"query":"pension"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "pipeline", body["error"])
	assert.NotContains(t, rec.Body.String(), "deadline")
}

func TestCategory_OK(t *testing.T) {
	q := &fakeQuerier{result: &core.QueryResult{
		Kind:     core.ResultOK,
		Language: core.LanguageHindi,
		Region:   core.RegionAll,
		Schemes: []core.LocalizedScheme{{
			Id:        "7",
			Name:      "वृद्धावस्था पेंशन",
			ApplyLink: "https://example.gov.in/pension",
			Category:  "pension",
		}},
	}}
	h := newTestServer(t, q)

	rec, body := postTo(t, h, "/api/schemes-by-category", `{"category":"Social Security","language":"hi"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hi", body["language"])
	schemes := body["schemes"].([]any)
	require.Len(t, schemes, 1)
	first := schemes[0].(map[string]any)
	assert.Equal(t, "7", first["id"])
	assert.NotContains(t, first, "similarity")
	require.Len(t, q.categories, 1)
	assert.Equal(t, pipeline.CategoryRequest{Category: "Social Security", Language: core.LanguageHindi}, q.categories[0])
	assert.Empty(t, q.reqs)
}

func TestCategory_InputError(t *testing.T) {
	q := &fakeQuerier{result: pipeline.Failure(fmt.Errorf("%w: category required", core.ErrInput), core.LanguageEnglish, "")}
	h := newTestServer(t, q)

	rec, body := postTo(t, h, "/api/schemes-by-category", `{"category":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": "category required"}, body)
}

func TestCategory_InvalidBody(t *testing.T) {
	q := &fakeQuerier{}
	h := newTestServer(t, q)

	rec, body := postTo(t, h, "/api/schemes-by-category", `{"category":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", body["error"])
	assert.Empty(t, q.categories)
}

func TestCategory_StorageError(t *testing.T) {
	err := fmt.Errorf("%w: %w", core.ErrRetrieval, errors.New("value log corrupt at offset 4096"))
	q := &fakeQuerier{result: pipeline.Failure(err, core.LanguageEnglish, "")}
	h := newTestServer(t, q)

	rec, body := postTo(t, h, "/api/schemes-by-category", `{"category":"health"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "retrieval", body["error"])
	assert.NotContains(t, rec.Body.String(), "offset")
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestServer(t, &fakeQuerier{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/query-schemes", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t, &fakeQuerier{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New(nil)
	h := newTestServer(t, &fakeQuerier{}, WithMetrics(m, ""))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `yojana_http_requests_total{method="GET",path="/healthz",status="200"} 1`)
}

func TestMetricsDisabled(t *testing.T) {
	h := newTestServer(t, &fakeQuerier{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	q := &fakeQuerier{queryFn: func(ctx context.Context, req pipeline.Request) *core.QueryResult {
		<-release
		return &core.QueryResult{Kind: core.ResultOK}
	}}
	h := newTestServer(t, q, WithRequestTimeout(20*time.Millisecond))

	rec, body := post(t, h, `{"query":"slow"}`)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "request timeout", body["error"])
}

func TestEndToEnd(t *testing.T) {
	schemes, manifests, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()
	defer schemes.Close()

	provider := mock.NewMockProvider()
	embedder := provider.(*mock.MockProvider).GetMockEmbedder()
	query := "pension for old people"
	_, err = schemes.AddSchemes(context.Background(), &core.Scheme{
		Name:        "Old Age Pension",
		Eligibility: "Citizens above 60",
		Benefits:    "Monthly pension",
		ApplyLink:   "https://example.gov.in/pension",
		Category:    "pension",
		// Same text as the query so the deterministic mock vectors match exactly.
		Vector: mock.DeterministicVector(query, mock.DefaultDimensions),
	})
	require.NoError(t, err)
	require.NoError(t, manifests.SaveManifest(context.Background(), &core.Manifest{EmbeddingModel: embedder.Model()}))

	p, err := pipeline.New(schemes, provider, pipeline.WithManifests(manifests))
	require.NoError(t, err)
	h := newTestServer(t, p)

	rec, body := post(t, h, `{"query":"`+query+`"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "en", body["language"])
	got := body["schemes"].([]any)
	require.Len(t, got, 1)
	assert.Equal(t, "Old Age Pension", got[0].(map[string]any)["name"])

	rec, body = post(t, h, `{"query":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "query required", body["error"])

	rec, body = postTo(t, h, "/api/schemes-by-category", `{"category":"Social Security"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got = body["schemes"].([]any)
	require.Len(t, got, 1)
	assert.Equal(t, "Old Age Pension", got[0].(map[string]any)["name"])

	rec, body = postTo(t, h, "/api/schemes-by-category", `{"category":"housing","language":"hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got = body["schemes"].([]any)
	require.Len(t, got, 1)
	assert.Equal(t, pipeline.NoResultsID, got[0].(map[string]any)["id"])
}

func TestRun_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	s, err := New(&fakeQuerier{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Run(ctx, Config{Addr: addr, ShutdownTimeout: time.Second})
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
