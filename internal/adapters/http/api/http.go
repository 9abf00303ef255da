// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/centum/internal/adapters/repository"
	"github.com/okian/centum/internal/app"
	"github.com/okian/centum/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Streak(ctx context.Context) (types.GoalProgress, error)
	Leaderboard(ctx context.Context, limit int) ([]types.Entry, error)
	Calendar(ctx context.Context) ([]types.CalendarCell, error)
	CalendarDay(ctx context.Context, day int) (types.CalendarCell, error)
	Challenges(ctx context.Context, day int) ([]types.ChallengeView, error)
	CohortSeries(ctx context.Context, cohort string) (types.Line, error)
	TopSeries(ctx context.Context, limit int) ([]types.Line, error)
	Export(ctx context.Context) (*repository.Snapshot, error)
	Reload(ctx context.Context) (*repository.Snapshot, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	streakHandler      *StreakHandler
	leaderboardHandler *LeaderboardHandler
	calendarHandler    *CalendarHandler
	challengesHandler  *ChallengesHandler
	seriesHandler      *SeriesHandler
	exportHandler      *ExportHandler
	reloadHandler      *ReloadHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLeaderboardLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		streakHandler:      NewStreakHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps, maxLeaderboardLimit),
		calendarHandler:    NewCalendarHandler(deps),
		challengesHandler:  NewChallengesHandler(deps),
		seriesHandler:      NewSeriesHandler(deps),
		exportHandler:      NewExportHandler(deps),
		reloadHandler:      NewReloadHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/streak", MetricsMiddleware(s.streakHandler.HandleGetStreak, "streak"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/calendar", MetricsMiddleware(s.calendarHandler.HandleGetCalendar, "calendar"))
	mux.HandleFunc("/calendar/", MetricsMiddleware(s.calendarHandler.HandleGetCalendarDay, "calendar_day"))
	mux.HandleFunc("/challenges", MetricsMiddleware(s.challengesHandler.HandleGetChallenges, "challenges"))
	mux.HandleFunc("/series", MetricsMiddleware(s.seriesHandler.HandleGetCohortSeries, "series"))
	mux.HandleFunc("/series/top", MetricsMiddleware(s.seriesHandler.HandleGetTopSeries, "series_top"))
	mux.HandleFunc("/export", MetricsMiddleware(s.exportHandler.HandleGetExport, "export"))
	mux.HandleFunc("/reload", MetricsMiddleware(s.reloadHandler.HandlePostReload, "reload"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDerivationError translates upstream derivation errors. A missing
// snapshot means the service has not completed its first load yet.
func writeDerivationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNoSnapshot):
		writeError(w, http.StatusServiceUnavailable, "no_snapshot", err)
	case errors.Is(err, app.ErrUnknownCohort),
		errors.Is(err, app.ErrInvalidDay),
		errors.Is(err, app.ErrInvalidLimit):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
