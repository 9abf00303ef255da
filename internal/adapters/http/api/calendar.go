// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/centum/internal/domain/types"
)

// CalendarDependencies defines the interface for calendar operations.
type CalendarDependencies interface {
	Calendar(ctx context.Context) ([]types.CalendarCell, error)
	CalendarDay(ctx context.Context, day int) (types.CalendarCell, error)
}

// CalendarHandler handles calendar requests.
type CalendarHandler struct {
	deps CalendarDependencies
}

// NewCalendarHandler creates a new calendar handler.
func NewCalendarHandler(deps CalendarDependencies) *CalendarHandler {
	return &CalendarHandler{deps: deps}
}

// HandleGetCalendar handles GET /calendar requests. Only recorded days
// are returned; the renderer fills the remaining slots as pending.
func (h *CalendarHandler) HandleGetCalendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	cells, err := h.deps.Calendar(r.Context())
	if err != nil {
		writeDerivationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cells)
}

// HandleGetCalendarDay handles GET /calendar/{day} requests. Any day in
// 1..100 resolves; unrecorded days come back as pending placeholders.
func (h *CalendarHandler) HandleGetCalendarDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /calendar/
	path := strings.TrimPrefix(r.URL.Path, "/calendar/")
	if path == "" || strings.Contains(path, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	day, err := strconv.Atoi(path)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	cellView, err := h.deps.CalendarDay(r.Context(), day)
	if err != nil {
		writeDerivationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cellView)
}
