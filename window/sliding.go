package window

import "golang.org/x/exp/constraints"

// MinLenAtLeastNaive returns the length of the shortest non-empty run of
// consecutive elements whose sum is >= target, trying every start. O(n²).
// ok is false when no run qualifies (including an empty input).
func MinLenAtLeastNaive[T Number](s []T, target T) (length int, ok bool) {
	for i := range s {
		var sum T
		for j := i; j < len(s); j++ {
			sum += s[j]
			if sum >= target {
				if !ok || j-i+1 < length {
					length, ok = j-i+1, true
				}
				break
			}
		}
	}

	return length, ok
}

// MinLenAtLeastPrefix is MinLenAtLeastNaive with each run sum taken from a
// prefix table in O(1). Still O(n²) pairs, but no inner accumulation.
func MinLenAtLeastPrefix[T Number](s []T, target T) (length int, ok bool) {
	p := make([]T, len(s)+1) // p[i] = sum of s[:i]
	for i, v := range s {
		p[i+1] = p[i] + v
	}
	for i := 0; i < len(s); i++ {
		for j := i + 1; j <= len(s); j++ {
			if ok && j-i >= length {
				break
			}
			if p[j]-p[i] >= target {
				length, ok = j-i, true
				break
			}
		}
	}

	return length, ok
}

// MinLenAtLeastSliding solves the same problem in O(n) with a window that
// grows on the right and shrinks on the left while its sum reaches target.
// Requires non-negative elements; with negatives use the prefix variant.
func MinLenAtLeastSliding[T Number](s []T, target T) (length int, ok bool) {
	var sum T
	left := 0
	for right, v := range s {
		sum += v
		for left <= right && sum >= target {
			if w := right - left + 1; !ok || w < length {
				length, ok = w, true
			}
			sum -= s[left]
			left++
		}
	}

	return length, ok
}

// CountSumKNaive counts the non-empty runs of consecutive elements summing to k. O(n²).
func CountSumKNaive[T constraints.Integer](s []T, k T) int {
	count := 0
	for i := range s {
		var sum T
		for j := i; j < len(s); j++ {
			sum += s[j]
			if sum == k {
				count++
			}
		}
	}

	return count
}

// CountSumKPrefix counts pairs i < j with P[j] - P[i] == k over the prefix
// table P (P[0] = 0). O(n²).
func CountSumKPrefix[T constraints.Integer](s []T, k T) int {
	p := make([]T, len(s)+1)
	for i, v := range s {
		p[i+1] = p[i] + v
	}
	count := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[j]-p[i] == k {
				count++
			}
		}
	}

	return count
}

// CountSumKHashed counts the same runs in O(n) by remembering how often each
// prefix sum occurred: every earlier prefix equal to sum-k closes one run.
func CountSumKHashed[T constraints.Integer](s []T, k T) int {
	seen := map[T]int{0: 1}
	var sum T
	count := 0
	for _, v := range s {
		sum += v
		count += seen[sum-k]
		seen[sum]++
	}

	return count
}

// LongestAtMostKDistinct returns the length of the longest run of consecutive
// elements containing at most k distinct values. ok is false for k <= 0 or
// an empty input.
func LongestAtMostKDistinct[T comparable](s []T, k int) (length int, ok bool) {
	if k <= 0 || len(s) == 0 {
		return 0, false
	}

	counts := make(map[T]int, k+1)
	left := 0
	for right, v := range s {
		counts[v]++
		for len(counts) > k {
			counts[s[left]]--
			if counts[s[left]] == 0 {
				delete(counts, s[left])
			}
			left++
		}
		length = max(length, right-left+1)
	}

	return length, true
}

// MinWindowSubstring returns the shortest substring of s containing every
// rune of t with multiplicity, or "" when none exists or t is empty.
// Ties resolve to the leftmost window.
func MinWindowSubstring(s, t string) string {
	if t == "" || s == "" {
		return ""
	}

	need := map[rune]int{}
	for _, r := range t {
		need[r]++
	}
	missing := len(need) // distinct runes not yet satisfied

	src := []rune(s)
	have := map[rune]int{}
	bestL, bestLen := 0, -1
	left := 0
	for right, r := range src {
		if _, wanted := need[r]; wanted {
			have[r]++
			if have[r] == need[r] {
				missing--
			}
		}
		for missing == 0 {
			if w := right - left + 1; bestLen < 0 || w < bestLen {
				bestL, bestLen = left, w
			}
			lr := src[left]
			if _, wanted := need[lr]; wanted {
				if have[lr] == need[lr] {
					missing++
				}
				have[lr]--
			}
			left++
		}
	}
	if bestLen < 0 {
		return ""
	}

	return string(src[bestL : bestL+bestLen])
}
