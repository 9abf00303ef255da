package repository

import "errors"

// Sentinel kinds for snapshot errors.
var (
	// ErrNoSnapshot means a derivation was requested before the first
	// payload load installed a snapshot. That is a programming-contract
	// violation in the caller, not a run-time feed condition.
	ErrNoSnapshot = errors.New("no snapshot installed")
)
