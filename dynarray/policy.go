// SPDX-License-Identifier: MIT

package dynarray

import (
	"fmt"
	"unsafe"
)

// Policy selects how a full Buffer computes its next capacity.
type Policy int

const (
	// Fixed adds a constant number of slots.
	Fixed Policy = iota
	// Golden multiplies by the configured ratio (3/2 by default).
	Golden
	// Doubling multiplies by two.
	Doubling
)

// maxInt is the largest value representable by int on this platform.
const maxInt = int(^uint(0) >> 1)

// String returns the lower-case policy name.
func (p Policy) String() string {
	switch p {
	case Fixed:
		return "fixed"
	case Golden:
		return "golden"
	case Doubling:
		return "doubling"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

func (p Policy) valid() bool { return p >= Fixed && p <= Doubling }

// Policies lists every growth policy in declaration order.
func Policies() []Policy { return []Policy{Fixed, Golden, Doubling} }

// NextCapacity returns the capacity a full buffer of the given capacity grows
// to under policy p.
//
// Implementation:
//   - Stage 1: resolve options (increment, ratio).
//   - Stage 2: compute the candidate with overflow checks.
//   - Stage 3: guarantee strict growth (Golden falls back to capacity+1).
//
// Errors:
//   - ErrUnknownPolicy for p outside {Fixed, Golden, Doubling}.
//   - ErrCapacityOverflow when the result does not fit in int.
//
// Complexity:
//   - Time O(1), Space O(1).
func NextCapacity(p Policy, capacity int, opts ...Option) (int, error) {
	o := gatherOptions(opts...)

	return nextCapacity(p, capacity, &o)
}

func nextCapacity(p Policy, capacity int, o *Options) (int, error) {
	if capacity < 0 {
		return 0, fmt.Errorf("NextCapacity(%d): %w", capacity, ErrCapacityOverflow)
	}
	base := max(capacity, 1)

	switch p {
	case Fixed:
		if capacity > maxInt-o.fixedIncrement {
			return 0, fmt.Errorf("%s growth from %d: %w", p, capacity, ErrCapacityOverflow)
		}

		return capacity + o.fixedIncrement, nil

	case Golden:
		if base > maxInt/o.growthNum {
			return 0, fmt.Errorf("%s growth from %d: %w", p, capacity, ErrCapacityOverflow)
		}
		next := base * o.growthNum / o.growthDen
		if next <= capacity {
			if capacity == maxInt {
				return 0, fmt.Errorf("%s growth from %d: %w", p, capacity, ErrCapacityOverflow)
			}
			next = capacity + 1
		}

		return next, nil

	case Doubling:
		if base > maxInt/2 {
			return 0, fmt.Errorf("%s growth from %d: %w", p, capacity, ErrCapacityOverflow)
		}

		return base * 2, nil

	default:
		return 0, fmt.Errorf("NextCapacity: %w: %s", ErrUnknownPolicy, p)
	}
}

// checkBytes reports ErrCapacityOverflow when n elements of T cannot be
// addressed as a single block.
func checkBytes[T any](n int) error {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size > 0 && n > maxInt/size {
		return fmt.Errorf("%d elements of %d bytes: %w", n, size, ErrCapacityOverflow)
	}

	return nil
}
