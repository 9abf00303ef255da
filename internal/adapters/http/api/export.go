// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okian/centum/internal/adapters/repository"
)

// ExportDependencies defines the interface for the export surface.
type ExportDependencies interface {
	Export(ctx context.Context) (*repository.Snapshot, error)
}

// ExportHandler serves the raw record-set snapshot for download.
type ExportHandler struct {
	deps ExportDependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps ExportDependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleGetExport handles GET /export requests. The body is a direct dump
// of the loaded payload, not a derived report.
func (h *ExportHandler) HandleGetExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	snap, err := h.deps.Export(r.Context())
	if err != nil {
		writeDerivationError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "centum-snapshot-"+snap.ID+".json"))
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(snap.Raw)
}
