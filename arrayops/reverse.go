package arrayops

import "golang.org/x/exp/constraints"

// Sequential returns [1, 2, ..., n]. It returns an empty slice for n <= 0.
func Sequential[T constraints.Integer](n int) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = T(i + 1)
	}

	return out
}

// Reverse reverses s in place with two pointers moving toward each other.
func Reverse[T any](s []T) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
