// SPDX-License-Identifier: MIT

package dynarray

import "errors"

var (
	// ErrOutOfRange is returned by Get/Set when the index is outside [0, Len).
	ErrOutOfRange = errors.New("dynarray: index out of range")

	// ErrCapacityOverflow marks a capacity (or its size in bytes) that cannot
	// be represented. Growth paths panic with an error wrapping it.
	ErrCapacityOverflow = errors.New("dynarray: capacity overflow")

	// ErrUnknownPolicy is returned by NextCapacity for a Policy outside the
	// declared set.
	ErrUnknownPolicy = errors.New("dynarray: unknown growth policy")
)
