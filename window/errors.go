package window

import "errors"

var (
	// ErrRange is returned for a range [l, r] that is empty or outside the input.
	ErrRange = errors.New("window: range out of bounds")

	// ErrWindowSize is returned when a window size is zero, negative or
	// larger than the input.
	ErrWindowSize = errors.New("window: invalid window size")
)
