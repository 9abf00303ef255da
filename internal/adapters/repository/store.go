// Package repository defines the snapshot container holding the
// process-wide record set.
package repository

import (
	"context"
	"time"

	"github.com/okian/centum/internal/domain/calendar"
	"github.com/okian/centum/internal/domain/model"
)

// Snapshot is one immutable installed record set. All derivations read
// from a snapshot; nothing downstream ever mutates it.
type Snapshot struct {
	// ID identifies the load that produced this snapshot.
	ID string
	// LoadedAt is when the snapshot was installed.
	LoadedAt time.Time
	// Source names where the payload came from (url, file, fallback).
	Source string

	// Campaign metadata including the current-day marker.
	Campaign model.Campaign
	// Board is the normalized calendar, built once at install time.
	Board *calendar.Board
	// Participants and Challenges are the raw sequences from the payload.
	Participants []model.Participant
	Challenges   []model.Challenge

	// Raw is the payload as loaded, kept for the export surface.
	Raw *model.Payload
}

// Store provides read/replace access to the installed snapshot.
type Store interface {
	// Replace normalizes payload and atomically installs it as the current
	// snapshot. The previous snapshot stays valid for readers that already
	// hold it; last-resolved-wins when replacements race.
	Replace(ctx context.Context, source string, payload *model.Payload) *Snapshot

	// Current returns the installed snapshot. Returns ErrNoSnapshot before
	// the first Replace.
	Current(ctx context.Context) (*Snapshot, error)
}
