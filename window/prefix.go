package window

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint for summing functions.
type Number interface {
	constraints.Integer | constraints.Float
}

// PrefixSums returns p with p[i] = s[0] + ... + s[i].
func PrefixSums[T Number](s []T) []T {
	p := make([]T, len(s))
	var acc T
	for i, v := range s {
		acc += v
		p[i] = acc
	}

	return p
}

// SuffixSums returns q with q[i] = s[i] + ... + s[n-1].
func SuffixSums[T Number](s []T) []T {
	q := make([]T, len(s))
	var acc T
	for i := len(s) - 1; i >= 0; i-- {
		acc += s[i]
		q[i] = acc
	}

	return q
}

func checkRange(n, l, r int) error {
	if l < 0 || l > r || r >= n {
		return fmt.Errorf("[%d, %d] of %d: %w", l, r, n, ErrRange)
	}

	return nil
}

// RangeSumNaive returns s[l] + ... + s[r] by walking the range.
func RangeSumNaive[T Number](s []T, l, r int) (T, error) {
	var sum T
	if err := checkRange(len(s), l, r); err != nil {
		return sum, fmt.Errorf("RangeSumNaive: %w", err)
	}
	for _, v := range s[l : r+1] {
		sum += v
	}

	return sum, nil
}

// RangeSum returns the sum of the inclusive range [l, r] of the slice whose
// prefix sums are p, in O(1).
func RangeSum[T Number](p []T, l, r int) (T, error) {
	if err := checkRange(len(p), l, r); err != nil {
		var zero T
		return zero, fmt.Errorf("RangeSum: %w", err)
	}
	if l == 0 {
		return p[r], nil
	}

	return p[r] - p[l-1], nil
}

// MaxSumFixedNaive returns the largest sum of k consecutive elements,
// recomputing every window. O(n·k).
func MaxSumFixedNaive[T Number](s []T, k int) (T, error) {
	if k <= 0 || k > len(s) {
		var zero T
		return zero, fmt.Errorf("MaxSumFixedNaive(k=%d, n=%d): %w", k, len(s), ErrWindowSize)
	}

	var best T
	for i := 0; i+k <= len(s); i++ {
		var sum T
		for _, v := range s[i : i+k] {
			sum += v
		}
		if i == 0 || sum > best {
			best = sum
		}
	}

	return best, nil
}

// MaxSumFixed returns the largest sum of k consecutive elements using prefix
// sums. O(n).
func MaxSumFixed[T Number](s []T, k int) (T, error) {
	if k <= 0 || k > len(s) {
		var zero T
		return zero, fmt.Errorf("MaxSumFixed(k=%d, n=%d): %w", k, len(s), ErrWindowSize)
	}

	p := PrefixSums(s)
	best := p[k-1]
	for end := k; end < len(s); end++ {
		if sum := p[end] - p[end-k]; sum > best {
			best = sum
		}
	}

	return best, nil
}
