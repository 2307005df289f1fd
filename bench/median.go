package bench

import (
	"sort"
	"time"
)

// MedianIndex returns the index in d of its median duration. For an even
// count the lower of the two middle values is chosen. d is not reordered.
func MedianIndex(d []time.Duration) (int, error) {
	if len(d) == 0 {
		return 0, ErrNoDurations
	}

	idx := make([]int, len(d))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return d[idx[a]] < d[idx[b]] })

	mid := len(d) / 2
	if len(d)%2 == 1 {
		return idx[mid], nil
	}

	return idx[mid-1], nil
}

// Ratio returns baseline/candidate with both clamped to at least 1ns, so a
// value above 1 means the candidate is faster.
func Ratio(baseline, candidate time.Duration) float64 {
	return float64(max(baseline, 1)) / float64(max(candidate, 1))
}
