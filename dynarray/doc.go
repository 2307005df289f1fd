// SPDX-License-Identifier: MIT

// Package dynarray provides Buffer, a growable contiguous sequence with an
// explicit, observable capacity and three interchangeable growth policies.
//
// A Buffer tracks its logical length and its capacity separately. Slots in
// [Len, Cap) are reserved but never readable; Get and Set reject them with
// ErrOutOfRange. When a push finds the buffer full, the selected Policy
// computes the next capacity, a fresh block is allocated, the live prefix is
// copied over and the old block is dropped.
//
// Policies:
//
//   - Fixed:    cap' = cap + increment (default increment 1000).
//     Amortized O(n) per push for large n; kept for comparison.
//   - Golden:   cap' = max(cap,1) * num / den (default 3/2), bumped to cap+1
//     when the product does not grow.
//   - Doubling: cap' = max(cap,1) * 2.
//
// Golden and Doubling give amortized O(1) pushes. Stats exposes the number
// of reallocations and element copies so the difference can be measured
// rather than assumed.
//
// Capacity arithmetic is overflow-checked. Overflow is treated as fatal:
// growth panics with an error wrapping ErrCapacityOverflow, the same class of
// failure as an impossible make() call.
//
// A Buffer is not safe for concurrent use.
package dynarray
