// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Intention-revealing aliases and small builders over the core kernels.
//   - Zero hidden work: each helper is one kernel call plus validation.
//
// Determinism & Policy:
//   - Same validation and error wrapping as the kernels they forward to.

package matrix

// NewIdentity returns I_n as a Nested (ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) writes.
//
// AI-Hints: Use as the neutral operand when checking multiply strategies.
func NewIdentity[T Element](n int) (*Nested[T], error) {
	m, err := NewZerosNested[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i][i] = 1
	}

	return m, nil
}

// ZerosLike returns a zero Nested with the same shape as m.
func ZerosLike[T Element](m Matrix[T]) (*Nested[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewZerosNested[T](m.Rows(), m.Cols())
}

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product[T Element](a, b Matrix[T], opts ...Option) (Matrix[T], error) {
	return Mul(a, b, opts...)
}

// T is an alias for Transpose.
// Note: square *Nested / *Flat inputs are transposed in place.
func T[E Element](m Matrix[E], opts ...Option) (Matrix[E], error) {
	return Transpose(m, opts...)
}

// RowMajorOf flattens n in row-major order.
func RowMajorOf[T Element](n *Nested[T]) (*Flat[T], error) { return Flatten(n, RowMajor) }

// ColMajorOf flattens n in column-major order.
func ColMajorOf[T Element](n *Nested[T]) (*Flat[T], error) { return Flatten(n, ColMajor) }
