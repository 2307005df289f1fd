package bench

import "errors"

var (
	// ErrNoDurations is returned by MedianIndex for an empty input.
	ErrNoDurations = errors.New("bench: no durations")

	// ErrMismatch is returned by a suite when two strategies disagree.
	ErrMismatch = errors.New("bench: strategies disagree")

	// ErrNotFound is returned by Store lookups with no matching sample.
	ErrNotFound = errors.New("bench: sample not found")
)
