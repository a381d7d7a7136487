package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/mitsuke/internal/models"
)

// searchResponse wraps a search result with a server-assigned ID so log
// lines and responses can be correlated.
type searchResponse struct {
	SearchID string `json:"search_id"`
	*models.SearchResult
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var opts models.SearchOptions
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.runSearch(w, r, &opts)
}

// handleSearchGet serves quick queries: /api/v1/search?q=auth&root=/src
func (s *Server) handleSearchGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := models.SearchOptions{
		Query: q.Get("q"),
		Root:  q.Get("root"),
	}
	if n, err := strconv.Atoi(q.Get("max_results")); err == nil {
		opts.MaxResults = n
	}
	if n, err := strconv.Atoi(q.Get("min_score")); err == nil {
		opts.MinScore = n
	}
	if q.Get("preview") == "true" {
		opts.LinePreview = true
	}
	s.runSearch(w, r, &opts)
}

func (s *Server) runSearch(w http.ResponseWriter, r *http.Request, opts *models.SearchOptions) {
	searchID := uuid.NewString()
	s.logger.Debug("search request",
		zap.String("search_id", searchID),
		zap.String("query", opts.Query),
		zap.String("root", opts.Root),
	)
	result, err := s.engine.Search(r.Context(), opts)
	if err != nil {
		s.logger.Error("search failed", zap.String("search_id", searchID), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, &searchResponse{SearchID: searchID, SearchResult: result})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
