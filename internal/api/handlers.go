package api

import (
	"net/http"
	"strconv"

	"github.com/baxromumarov/goalie-stats/internal/core"
	"github.com/baxromumarov/goalie-stats/internal/goalie"
	"github.com/baxromumarov/goalie-stats/internal/partition"
	"github.com/baxromumarov/goalie-stats/internal/store"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

func (s *Server) handleListGoalies(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r, defaultLimit)
	q := r.URL.Query()
	f := store.Filter{
		Source:     q.Get("source"),
		SeasonType: partition.NormalizeSeasonType(q.Get("season_type")),
		Year:       q.Get("year"),
		Player:     q.Get("player"),
		Limit:      limit,
		Offset:     offset,
	}

	goalies, err := s.store.ListGoalies(r.Context(), f)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch goalies: "+err.Error())
		return
	}
	total, err := s.store.Count(r.Context(), f)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to count goalies: "+err.Error())
		return
	}
	if goalies == nil {
		goalies = []goalie.Record{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"items":  goalies,
		"limit":  limit,
		"offset": offset,
		"total":  total,
	})
}

func (s *Server) handleListPartitions(w http.ResponseWriter, r *http.Request) {
	counts, err := s.store.PartitionCounts(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch partitions: "+err.Error())
		return
	}
	if counts == nil {
		counts = []store.PartitionCount{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": counts})
}

type runResponse struct {
	*core.Report
	Summary core.Summary `json:"summary"`
}

// handleStartRun runs the pipeline synchronously and returns its report.
// A second request while a run is in flight gets 409.
func (s *Server) handleStartRun(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		respondError(w, http.StatusConflict, "A run is already in progress")
		return
	}
	s.running = true
	s.mu.Unlock()

	report, err := s.runner.Run(r.Context())

	s.mu.Lock()
	s.running = false
	if report != nil {
		s.latest = report
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("run failed", "error", err)
		if report == nil {
			respondError(w, http.StatusInternalServerError, "Run failed: "+err.Error())
			return
		}
		respondJSON(w, http.StatusInternalServerError, runResponse{Report: report, Summary: report.Summary()})
		return
	}
	respondJSON(w, http.StatusOK, runResponse{Report: report, Summary: report.Summary()})
}

func (s *Server) handleLatestRun(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	report := s.latest
	s.mu.Unlock()

	if report == nil {
		respondError(w, http.StatusNotFound, "No run yet")
		return
	}
	respondJSON(w, http.StatusOK, runResponse{Report: report, Summary: report.Summary()})
}

func parsePagination(r *http.Request, defaultLimit int) (int, int) {
	q := r.URL.Query()
	limit := defaultLimit
	offset := 0

	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
