// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/okian/centum/internal/adapters/repository"
)

// ReloadDependencies defines the interface for snapshot replacement.
type ReloadDependencies interface {
	Reload(ctx context.Context) (*repository.Snapshot, error)
}

// ReloadHandler handles reload requests.
type ReloadHandler struct {
	deps ReloadDependencies
}

// NewReloadHandler creates a new reload handler.
func NewReloadHandler(deps ReloadDependencies) *ReloadHandler {
	return &ReloadHandler{deps: deps}
}

// reloadResponse summarizes the snapshot a reload installed.
type reloadResponse struct {
	SnapshotID   string    `json:"snapshot_id"`
	Source       string    `json:"source"`
	LoadedAt     time.Time `json:"loaded_at"`
	Days         int       `json:"days"`
	Participants int       `json:"participants"`
	Challenges   int       `json:"challenges"`
}

// HandlePostReload handles POST /reload requests. The feed is re-fetched
// and the record set replaced wholesale; the response reports what was
// installed.
func (h *ReloadHandler) HandlePostReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	snap, err := h.deps.Reload(r.Context())
	if err != nil {
		writeDerivationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reloadResponse{
		SnapshotID:   snap.ID,
		Source:       snap.Source,
		LoadedAt:     snap.LoadedAt,
		Days:         snap.Board.Len(),
		Participants: len(snap.Participants),
		Challenges:   len(snap.Challenges),
	})
}
