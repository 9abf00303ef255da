// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/centum/internal/domain/types"
)

// StreakDependencies defines the interface for streak operations.
type StreakDependencies interface {
	Streak(ctx context.Context) (types.GoalProgress, error)
}

// StreakHandler handles streak requests.
type StreakHandler struct {
	deps StreakDependencies
}

// NewStreakHandler creates a new streak handler.
func NewStreakHandler(deps StreakDependencies) *StreakHandler {
	return &StreakHandler{deps: deps}
}

// HandleGetStreak handles GET /streak requests.
func (h *StreakHandler) HandleGetStreak(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	progress, err := h.deps.Streak(r.Context())
	if err != nil {
		writeDerivationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}
