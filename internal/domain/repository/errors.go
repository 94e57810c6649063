package repository

import "errors"

// Sentinel errors for expected failure modes. Callers distinguish
// not-found (a normal empty outcome) from store failures with errors.Is;
// an empty slice with a nil error means a legitimately empty result.
var (
	ErrNotFound     = errors.New("record not found")
	ErrNotConnected = errors.New("store not connected")
)
