package arrayops

// normalize reduces k into [0, n). Negative k rotates the other way.
func normalize(k, n int) int {
	k %= n
	if k < 0 {
		k += n
	}

	return k
}

// RotateRightNaive shifts s right by one position k times.
// O(k·n) time; the baseline the reversal-based rotations are measured against.
func RotateRightNaive[T any](s []T, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	k = normalize(k, n)
	for ; k > 0; k-- {
		last := s[n-1]
		copy(s[1:], s[:n-1])
		s[0] = last
	}
}

// RotateRight rotates s right by k positions in O(n) time:
// reverse all, then reverse s[:k] and s[k:].
// [1 2 3 4 5] rotated right by 2 is [4 5 1 2 3].
func RotateRight[T any](s []T, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	k = normalize(k, n)
	Reverse(s)
	Reverse(s[:k])
	Reverse(s[k:])
}

// RotateLeft rotates s left by k positions: reverse s[:k] and s[k:], then all.
func RotateLeft[T any](s []T, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	k = normalize(k, n)
	Reverse(s[:k])
	Reverse(s[k:])
	Reverse(s)
}

// RotateLeftViaRight rotates s left by k as a right rotation by n-k.
func RotateLeftViaRight[T any](s []T, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	RotateRight(s, (n-normalize(k, n))%n)
}
