// SPDX-License-Identifier: MIT
// Package matrix: aggregate kernels over Nested matrices.
//
// Purpose:
//   - Row / column sums and whole-matrix sums in both traversal orders
//     (row-wise walks memory sequentially; column-wise strides across rows).
//   - 2D prefix sums with O(1) rectangular range queries.
//
// Determinism:
//   - Pure functions; inputs are never mutated.

package matrix

import "fmt"

// RowSums returns the sum of each row.
// Complexity: Time O(r*c), Space O(r).
func RowSums[T Element](m *Nested[T]) []T {
	out := make([]T, m.r)
	for i, row := range m.data {
		var s T
		for _, v := range row {
			s += v
		}
		out[i] = s
	}

	return out
}

// ColSums returns the sum of each column, accumulated row by row.
// Complexity: Time O(r*c), Space O(c).
func ColSums[T Element](m *Nested[T]) []T {
	out := make([]T, m.c)
	for _, row := range m.data {
		for j, v := range row {
			out[j] += v
		}
	}

	return out
}

// SumRowWise sums every element visiting rows outer, columns inner.
func SumRowWise[T Element](m *Nested[T]) T {
	var s T
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			s += m.data[i][j]
		}
	}

	return s
}

// SumColWise sums every element visiting columns outer, rows inner.
// Same result as SumRowWise for integers; kept to measure the stride cost.
func SumColWise[T Element](m *Nested[T]) T {
	var s T
	for j := 0; j < m.c; j++ {
		for i := 0; i < m.r; i++ {
			s += m.data[i][j]
		}
	}

	return s
}

// PrefixSum2D returns P where P[i][j] is the sum of m[0..i][0..j] (inclusive).
//
// Implementation:
//   - P[i][j] = m[i][j] + P[i-1][j] + P[i][j-1] - P[i-1][j-1], missing terms 0.
//
// Errors:
//   - ErrNilMatrix for nil m.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func PrefixSum2D[T Element](m *Nested[T]) (*Nested[T], error) {
	if m == nil {
		return nil, matrixErrorf(opPrefixSum, ErrNilMatrix)
	}

	p := newNested[T](m.r, m.c)
	var v T
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v = m.data[i][j]
			if i > 0 {
				v += p.data[i-1][j]
			}
			if j > 0 {
				v += p.data[i][j-1]
			}
			if i > 0 && j > 0 {
				v -= p.data[i-1][j-1]
			}
			p.data[i][j] = v
		}
	}

	return p, nil
}

// SubmatrixSum returns the sum of the rectangle [r0..r1]×[c0..c1] (inclusive)
// of the matrix whose prefix table is p, by inclusion-exclusion.
//
// Errors:
//   - ErrNilMatrix for nil p.
//   - ErrOutOfRange unless 0 <= r0 <= r1 < rows and 0 <= c0 <= c1 < cols.
//
// Complexity:
//   - Time O(1).
func SubmatrixSum[T Element](p *Nested[T], r0, c0, r1, c1 int) (T, error) {
	var s T
	if p == nil {
		return s, matrixErrorf(opSubmatrixSum, ErrNilMatrix)
	}
	if r0 < 0 || c0 < 0 || r0 > r1 || c0 > c1 || r1 >= p.r || c1 >= p.c {
		return s, matrixErrorf(opSubmatrixSum,
			fmt.Errorf("[%d..%d]x[%d..%d] in %dx%d: %w", r0, r1, c0, c1, p.r, p.c, ErrOutOfRange))
	}

	s = p.data[r1][c1]
	if r0 > 0 {
		s -= p.data[r0-1][c1]
	}
	if c0 > 0 {
		s -= p.data[r1][c0-1]
	}
	if r0 > 0 && c0 > 0 {
		s += p.data[r0-1][c0-1]
	}

	return s, nil
}
