package repository

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/okian/centum/internal/domain/calendar"
	"github.com/okian/centum/internal/domain/model"
	"github.com/okian/centum/pkg/metrics"
)

// SnapshotStore implements Store with an atomic pointer swap. Replacement
// is publish-after-build: the new snapshot is fully assembled before it
// becomes visible, so readers never observe a torn record set. No lock is
// needed because there is exactly one writer path and replacement is
// wholesale, never field-by-field.
type SnapshotStore struct {
	current atomic.Pointer[Snapshot]
	clock   func() time.Time
}

// Option applies a configuration option to the SnapshotStore.
type Option func(*SnapshotStore)

// WithClock overrides the time source, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *SnapshotStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewSnapshotStore creates an empty snapshot store.
func NewSnapshotStore(opts ...Option) *SnapshotStore {
	s := &SnapshotStore{clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Replace normalizes payload and atomically installs it as the current
// snapshot.
func (s *SnapshotStore) Replace(_ context.Context, source string, payload *model.Payload) *Snapshot {
	if payload == nil {
		payload = &model.Payload{}
	}

	snap := &Snapshot{
		ID:           uuid.NewString(),
		LoadedAt:     s.clock(),
		Source:       source,
		Campaign:     payload.Campaign,
		Board:        calendar.Normalize(payload.Days),
		Participants: payload.Participants,
		Challenges:   payload.Challenges,
		Raw:          payload,
	}

	s.current.Store(snap)

	metrics.RecordSnapshotInstalled()
	metrics.UpdateSnapshotCounts(snap.Board.Len(), len(snap.Participants), len(snap.Challenges))
	metrics.UpdateSnapshotLoadedAt(snap.LoadedAt)

	return snap
}

// Current returns the installed snapshot or ErrNoSnapshot before the
// first load.
func (s *SnapshotStore) Current(_ context.Context) (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return snap, nil
}
