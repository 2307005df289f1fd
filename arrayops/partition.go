package arrayops

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// DutchFlag sorts a slice of 0s, 1s and 2s in one pass with three pointers:
// [0,low) holds 0s, [low,mid) 1s, (high,n) 2s, [mid,high] is unclassified.
//
// The slice is validated before any swap, so on ErrUnexpectedValue it is
// left unchanged.
func DutchFlag[T constraints.Integer](s []T) error {
	for i, v := range s {
		if v < 0 || v > 2 {
			return fmt.Errorf("DutchFlag: s[%d]=%v: %w", i, v, ErrUnexpectedValue)
		}
	}

	low, mid, high := 0, 0, len(s)-1
	for mid <= high {
		switch s[mid] {
		case 0:
			s[low], s[mid] = s[mid], s[low]
			low++
			mid++
		case 1:
			mid++
		default:
			s[mid], s[high] = s[high], s[mid]
			high--
		}
	}

	return nil
}

// Partition3 rearranges s into < pivot, == pivot, > pivot and returns the
// bounds: s[:lt] < pivot, s[lt:gt] == pivot, s[gt:] > pivot.
func Partition3[T constraints.Ordered](s []T, pivot T) (lt, gt int) {
	mid, high := 0, len(s)-1
	for mid <= high {
		switch {
		case s[mid] < pivot:
			s[lt], s[mid] = s[mid], s[lt]
			lt++
			mid++
		case s[mid] > pivot:
			s[mid], s[high] = s[high], s[mid]
			high--
		default:
			mid++
		}
	}

	return lt, high + 1
}

// MoveZerosToEnd moves every zero to the tail while keeping the relative
// order of the non-zero elements.
func MoveZerosToEnd[T constraints.Integer](s []T) {
	w := 0
	for r := range s {
		if s[r] != 0 {
			s[w], s[r] = s[r], s[w]
			w++
		}
	}
}
