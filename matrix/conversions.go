// SPDX-License-Identifier: MIT
// Package matrix: conversions between the nested and flat representations,
// plus the small deterministic fillers used by examples, benches and the CLI.

package matrix

import "fmt"

// Flatten linearizes n into a new Flat with the requested order.
//
// Implementation:
//   - RowMajor: copy each row into consecutive segments.
//   - ColMajor: walk columns outer, rows inner, so writes stay sequential.
//
// Errors:
//   - ErrNilMatrix for a nil input, ErrUnknownOrder for an invalid order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Flatten[T Element](n *Nested[T], order Order) (*Flat[T], error) {
	if n == nil {
		return nil, fmt.Errorf("Flatten: %w", ErrNilMatrix)
	}
	if !order.valid() {
		return nil, fmt.Errorf("Flatten: %w: %s", ErrUnknownOrder, order)
	}

	out := newFlat[T](n.r, n.c, order)
	if order == RowMajor {
		for i := 0; i < n.r; i++ {
			copy(out.data[i*n.c:(i+1)*n.c], n.data[i])
		}

		return out, nil
	}

	var idx int
	for j := 0; j < n.c; j++ {
		for i := 0; i < n.r; i++ {
			out.data[idx] = n.data[i][j]
			idx++
		}
	}

	return out, nil
}

// ToNested rebuilds the nested representation of m.
func (m *Flat[T]) ToNested() *Nested[T] {
	out := newNested[T](m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[i][j] = m.data[m.Index(i, j)]
		}
	}

	return out
}

// WithOrder returns a copy of m linearized in the given order.
// The logical matrix is unchanged; only the buffer layout differs.
// An invalid order falls back to a plain Clone.
func (m *Flat[T]) WithOrder(order Order) *Flat[T] {
	if order == m.order || !order.valid() {
		return m.Clone()
	}

	// Re-linearizing is a physical transpose of the buffer.
	pr, pc := m.physical()
	out := newFlat[T](m.r, m.c, order)
	transposeCopyFlat(m.data, out.data, pr, pc, DefaultBlockSize)

	return out
}

// Sequential returns a rows×cols Nested filled row by row with
// start, start+1, start+2, ...
func Sequential[T Element](rows, cols int, start T) (*Nested[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("Sequential: %w", err)
	}

	out := newNested[T](rows, cols)
	v := start
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[i][j] = v
			v++
		}
	}

	return out, nil
}

// Constant returns a rows×cols Nested with every element equal to v.
func Constant[T Element](rows, cols int, v T) (*Nested[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("Constant: %w", err)
	}

	out := newNested[T](rows, cols)
	for i := range out.data {
		for j := range out.data[i] {
			out.data[i][j] = v
		}
	}

	return out, nil
}
