package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/poiesic/yojana/core"
	"github.com/poiesic/yojana/pipeline"
)

type queryRequest struct {
	Query    string `json:"query"`
	Language string `json:"language,omitempty"`
}

type queryResponse struct {
	Schemes  []core.LocalizedScheme `json:"schemes"`
	Language core.Language          `json:"language"`
	Error    string                 `json:"error,omitempty"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var hint core.Language
	if req.Language != "" {
		lang, err := core.ParseLanguage(req.Language)
		if err != nil {
			s.logger.Debug("ignoring unsupported language hint", "language", req.Language)
		} else {
			hint = lang
		}
	}

	result := s.querier.Query(r.Context(), pipeline.Request{Query: req.Query, Language: hint})
	s.writeResult(w, r, result, "query required")
}

type categoryRequest struct {
	Category string `json:"category"`
	Language string `json:"language,omitempty"`
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := s.querier.ListByCategory(r.Context(), pipeline.CategoryRequest{
		Category: req.Category,
		Language: core.Language(req.Language),
	})
	s.writeResult(w, r, result, "category required")
}

// writeResult maps a pipeline result to a response. Failures report only
// the error kind; the full error is logged.
func (s *Server) writeResult(w http.ResponseWriter, r *http.Request, result *core.QueryResult, inputMsg string) {
	switch {
	case result.Err == nil:
		writeJSON(w, http.StatusOK, queryResponse{
			Schemes:  result.Schemes,
			Language: result.Language,
		})
	case errors.Is(result.Err, core.ErrInput):
		writeError(w, http.StatusBadRequest, inputMsg)
	default:
		kind := core.ErrorKind(result.Err)
		s.logger.Error("request failed", "path", r.URL.Path, "kind", kind, "err", result.Err)
		writeJSON(w, http.StatusInternalServerError, queryResponse{
			Schemes:  result.Schemes,
			Language: result.Language,
			Error:    kind,
		})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
