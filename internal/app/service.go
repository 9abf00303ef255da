// Package app provides the core business service that implements
// the dependencies required by the HTTP API.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/centum/internal/adapters/feed"
	"github.com/okian/centum/internal/adapters/repository"
	"github.com/okian/centum/internal/domain/calendar"
	"github.com/okian/centum/internal/domain/challenge"
	"github.com/okian/centum/internal/domain/intensity"
	"github.com/okian/centum/internal/domain/model"
	"github.com/okian/centum/internal/domain/rank"
	"github.com/okian/centum/internal/domain/series"
	"github.com/okian/centum/internal/domain/streak"
	"github.com/okian/centum/internal/domain/types"
	"github.com/okian/centum/pkg/logger"
	"github.com/okian/centum/pkg/metrics"
)

// Service implements the derivation operations for the dashboard API.
// Every operation is a pure recomputation over the currently installed
// snapshot; the service itself holds no derived state.
type Service struct {
	mu sync.RWMutex

	// Core components
	store  repository.Store
	loader *feed.Loader

	// Configuration
	topCount int

	// State
	started bool

	// Logging
	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithLoader sets the feed loader used by Start and Reload.
func WithLoader(loader *feed.Loader) Option {
	return func(s *Service) {
		if loader != nil {
			s.loader = loader
		}
	}
}

// WithStore sets a custom snapshot store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithTopIndividualCount sets how many top-ranked individual lines the
// series surface exposes by default.
func WithTopIndividualCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topCount = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		topCount: series.DefaultTopLines,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start performs the initial payload load and installs the first
// snapshot. Load is fail-soft, so Start only errors on wiring defects.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.log == nil {
		s.log = logger.Get()
	}
	if s.store == nil {
		s.store = repository.NewSnapshotStore()
	}
	if s.loader == nil {
		s.loader = feed.NewLoader(feed.WithLogger(s.log))
	}

	s.log.Info(ctx, "starting derivation service...")

	payload, source := s.loader.Load(ctx)
	snap := s.store.Replace(ctx, source, payload)

	s.started = true
	s.log.Info(ctx, "derivation service started",
		logger.String("snapshot", snap.ID),
		logger.String("source", snap.Source),
		logger.Int("days", snap.Board.Len()),
		logger.Int("participants", len(snap.Participants)),
		logger.Int("challenges", len(snap.Challenges)),
	)
	return nil
}

// Stop shuts the service down. There is nothing asynchronous to drain;
// this only flips the started flag.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.log.Info(context.Background(), "derivation service stopped")
}

// Reload re-runs the loader and atomically installs a new snapshot.
// Last-resolved-wins when reloads race; readers never observe a torn
// record set.
func (s *Service) Reload(ctx context.Context) (*repository.Snapshot, error) {
	payload, source := s.loader.Load(ctx)
	snap := s.store.Replace(ctx, source, payload)
	s.log.Info(ctx, "snapshot replaced",
		logger.String("snapshot", snap.ID),
		logger.String("source", snap.Source),
	)
	return snap, nil
}

// Streak derives the streak and goal-progress view from the current
// snapshot.
func (s *Service) Streak(ctx context.Context) (types.GoalProgress, error) {
	defer observe("streak", time.Now())

	snap, err := s.store.Current(ctx)
	if err != nil {
		return types.GoalProgress{}, fmt.Errorf("streak: %w", err)
	}
	return streak.Progress(streak.Compute(snap.Board.Days())), nil
}

// Leaderboard returns the ranked participants, truncated to limit when
// limit is positive. An empty participant set ranks to an empty sequence.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]types.Entry, error) {
	defer observe("leaderboard", time.Now())

	snap, err := s.store.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	entries := rank.Rank(snap.Participants)
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

// Calendar returns the recorded day cells with their derived intensity,
// ascending by day. Unrecorded slots are not materialized; CalendarDay
// resolves those lazily.
func (s *Service) Calendar(ctx context.Context) ([]types.CalendarCell, error) {
	defer observe("calendar", time.Now())

	snap, err := s.store.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}
	days := snap.Board.Days()
	cells := make([]types.CalendarCell, len(days))
	for i, d := range days {
		cells[i] = cell(d, true)
	}
	return cells, nil
}

// CalendarDay resolves a single day slot as a total function over
// 1..calendar.TotalDays: unrecorded days yield the pending placeholder.
func (s *Service) CalendarDay(ctx context.Context, day int) (types.CalendarCell, error) {
	defer observe("calendar_day", time.Now())

	if day < 1 || day > calendar.TotalDays {
		return types.CalendarCell{}, fmt.Errorf("calendar day %d: %w", day, ErrInvalidDay)
	}
	snap, err := s.store.Current(ctx)
	if err != nil {
		return types.CalendarCell{}, fmt.Errorf("calendar day: %w", err)
	}
	if d, ok := snap.Board.Day(day); ok {
		return cell(d, true), nil
	}
	return cell(calendar.Placeholder(day), false), nil
}

// Challenges returns the active-filtered challenge views. A positive day
// overrides the snapshot's current-day marker; the literal fallback
// applies either way: all challenges when none match the marker.
func (s *Service) Challenges(ctx context.Context, day int) ([]types.ChallengeView, error) {
	defer observe("challenges", time.Now())

	snap, err := s.store.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("challenges: %w", err)
	}

	marker := snap.Campaign.CurrentDay
	if day > 0 {
		marker = day
	}

	resolver := challenge.NewResolver(snap.Participants)
	active := challenge.Active(snap.Challenges, marker)
	views := make([]types.ChallengeView, len(active))
	for i, c := range active {
		views[i] = resolver.View(c)
	}
	return views, nil
}

// CohortSeries merges performance and challenge evidence into one
// averaged line for the named cohort.
func (s *Service) CohortSeries(ctx context.Context, cohort string) (types.Line, error) {
	defer observe("series_cohort", time.Now())

	c, ok := parseCohort(cohort)
	if !ok {
		return types.Line{}, fmt.Errorf("cohort %q: %w", cohort, ErrUnknownCohort)
	}
	snap, err := s.store.Current(ctx)
	if err != nil {
		return types.Line{}, fmt.Errorf("series: %w", err)
	}
	return types.Line{
		Label:  string(c),
		Cohort: string(c),
		Points: series.Cohort(snap.Participants, snap.Challenges, c),
	}, nil
}

// TopSeries builds one unaggregated line per top-ranked participant from
// that participant's own performance points.
func (s *Service) TopSeries(ctx context.Context, limit int) ([]types.Line, error) {
	defer observe("series_top", time.Now())

	if limit <= 0 {
		limit = s.topCount
	}
	snap, err := s.store.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("series: %w", err)
	}

	byID := make(map[string]model.Participant, len(snap.Participants))
	for _, p := range snap.Participants {
		byID[p.ID] = p
	}

	entries := rank.Rank(snap.Participants)
	if limit < len(entries) {
		entries = entries[:limit]
	}
	lines := make([]types.Line, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, series.Individual(byID[e.ID]))
	}
	return lines, nil
}

// Export returns the current snapshot for the raw record-set dump.
func (s *Service) Export(ctx context.Context) (*repository.Snapshot, error) {
	defer observe("export", time.Now())

	snap, err := s.store.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return snap, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":  s.started,
		"topCount": s.topCount,
	}
	if s.store == nil {
		return stats
	}

	snap, err := s.store.Current(context.Background())
	if err != nil {
		return stats
	}
	stats["snapshotID"] = snap.ID
	stats["snapshotSource"] = snap.Source
	stats["snapshotLoadedAt"] = snap.LoadedAt
	stats["recordedDays"] = snap.Board.Len()
	stats["participants"] = len(snap.Participants)
	stats["challenges"] = len(snap.Challenges)
	stats["currentDay"] = snap.Campaign.CurrentDay
	return stats
}

// cell builds the rendered calendar shape for one record.
func cell(d model.DayRecord, recorded bool) types.CalendarCell {
	return types.CalendarCell{
		Day:          d.Day,
		Status:       string(d.Status),
		Correct:      d.Correct,
		TopPerformer: d.TopPerformer,
		Note:         d.Note,
		Intensity:    intensity.Alpha(d.Status, d.Correct),
		Recorded:     recorded,
	}
}

func parseCohort(s string) (model.Cohort, bool) {
	switch s {
	case string(model.CohortLLM):
		return model.CohortLLM, true
	case string(model.CohortAgent):
		return model.CohortAgent, true
	default:
		return "", false
	}
}

func observe(kind string, start time.Time) {
	metrics.RecordDerivation(kind)
	metrics.RecordDerivationLatency(kind, float64(time.Since(start).Milliseconds()))
}
