// Package window implements prefix-sum and sliding-window techniques over
// numeric slices: O(1) range sums, fixed-size window maxima, shortest window
// reaching a target, counting sub-arrays with a given sum, longest window with
// at most k distinct values and the minimum window substring.
//
// Most problems come in several strategies (naive, prefix sums, sliding
// window or hashing) that return identical answers; they exist side by side
// so their costs can be compared.
package window
