// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/centum/internal/domain/types"
)

// SeriesDependencies defines the interface for series operations.
type SeriesDependencies interface {
	CohortSeries(ctx context.Context, cohort string) (types.Line, error)
	TopSeries(ctx context.Context, limit int) ([]types.Line, error)
}

// SeriesHandler handles chart series requests.
type SeriesHandler struct {
	deps SeriesDependencies
}

// NewSeriesHandler creates a new series handler.
func NewSeriesHandler(deps SeriesDependencies) *SeriesHandler {
	return &SeriesHandler{deps: deps}
}

// HandleGetCohortSeries handles GET /series?cohort=LLM|Agent requests.
func (h *SeriesHandler) HandleGetCohortSeries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	cohort := r.URL.Query().Get("cohort")
	if cohort == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	line, err := h.deps.CohortSeries(r.Context(), cohort)
	if err != nil {
		writeDerivationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, line)
}

// HandleGetTopSeries handles GET /series/top?limit=N requests. Limit is
// optional; the service default applies when omitted.
func (h *SeriesHandler) HandleGetTopSeries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		limit = parsed
	}
	lines, err := h.deps.TopSeries(r.Context(), limit)
	if err != nil {
		writeDerivationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lines)
}
