package app

import "errors"

// Sentinel kinds for derivation request errors.
var (
	ErrUnknownCohort = errors.New("unknown cohort")
	ErrInvalidDay    = errors.New("day outside calendar range")
	ErrInvalidLimit  = errors.New("invalid limit")
)
