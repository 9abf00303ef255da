// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/centum/internal/domain/types"
)

// ChallengesDependencies defines the interface for challenge operations.
type ChallengesDependencies interface {
	Challenges(ctx context.Context, day int) ([]types.ChallengeView, error)
}

// ChallengesHandler handles challenge requests.
type ChallengesHandler struct {
	deps ChallengesDependencies
}

// NewChallengesHandler creates a new challenges handler.
func NewChallengesHandler(deps ChallengesDependencies) *ChallengesHandler {
	return &ChallengesHandler{deps: deps}
}

// HandleGetChallenges handles GET /challenges[?day=N] requests. Without a
// day parameter the snapshot's current-day marker drives the active
// filter.
func (h *ChallengesHandler) HandleGetChallenges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	day := 0
	if dayStr := r.URL.Query().Get("day"); dayStr != "" {
		parsed, err := strconv.Atoi(dayStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		day = parsed
	}
	views, err := h.deps.Challenges(r.Context(), day)
	if err != nil {
		writeDerivationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}
