// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// flatErrorf wraps element-access errors with method name and indices.
func flatErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Flat.%s(%d,%d): %w", method, row, col, err)
}

// Flat is a matrix linearized into one contiguous buffer.
//   - r,c hold the logical dimensions (both > 0).
//   - order selects the linearization: RowMajor (offset r*cols + c) or
//     ColMajor (offset c*rows + r).
//   - len(data) == r*c.
//
// The "physical" shape of a Flat is the row-major shape its buffer would
// have: r×c for RowMajor, c×r for ColMajor. Transpose kernels work on the
// physical shape, which is why they accept either order.
type Flat[T Element] struct {
	r, c  int
	order Order
	data  []T
}

// newFlat allocates a zeroed Flat without validation (kernel use).
func newFlat[T Element](r, c int, order Order) *Flat[T] {
	return &Flat[T]{r: r, c: c, order: order, data: make([]T, r*c)}
}

// NewFlat builds a Flat over a copy of data.
//
// Errors:
//   - ErrBadShape when rows or cols <= 0, or len(data) != rows*cols.
//   - ErrUnknownOrder for an order outside {RowMajor, ColMajor}.
func NewFlat[T Element](data []T, rows, cols int, order Order) (*Flat[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewFlat: %w", err)
	}
	if !order.valid() {
		return nil, fmt.Errorf("NewFlat: %w: %s", ErrUnknownOrder, order)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewFlat: len %d != %d*%d: %w", len(data), rows, cols, ErrBadShape)
	}

	m := newFlat[T](rows, cols, order)
	copy(m.data, data)

	return m, nil
}

// NewZerosFlat returns a zero-filled rows×cols Flat in the given order.
func NewZerosFlat[T Element](rows, cols int, order Order) (*Flat[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewZerosFlat: %w", err)
	}
	if !order.valid() {
		return nil, fmt.Errorf("NewZerosFlat: %w: %s", ErrUnknownOrder, order)
	}

	return newFlat[T](rows, cols, order), nil
}

// Compile-time interface conformance.
var _ Matrix[int] = (*Flat[int])(nil)

// Rows returns the number of logical rows.
func (m *Flat[T]) Rows() int { return m.r }

// Cols returns the number of logical columns.
func (m *Flat[T]) Cols() int { return m.c }

// Order returns the linearization of the buffer.
func (m *Flat[T]) Order() Order { return m.order }

// IsSquare reports whether Rows == Cols.
func (m *Flat[T]) IsSquare() bool { return m.r == m.c }

// Index returns the buffer offset of logical (i, j). It does not check bounds.
func (m *Flat[T]) Index(i, j int) int {
	if m.order == ColMajor {
		return j*m.r + i
	}

	return i*m.c + j
}

// physical returns the row-major shape of the buffer.
func (m *Flat[T]) physical() (rows, cols int) {
	if m.order == ColMajor {
		return m.c, m.r
	}

	return m.r, m.c
}

// At returns the element at (i, j) or ErrOutOfRange.
func (m *Flat[T]) At(i, j int) (T, error) {
	if err := validateIndex(i, j, m.r, m.c); err != nil {
		var zero T
		return zero, flatErrorf("At", i, j, err)
	}

	return m.data[m.Index(i, j)], nil
}

// Set assigns v at (i, j) or returns ErrOutOfRange.
func (m *Flat[T]) Set(i, j int, v T) error {
	if err := validateIndex(i, j, m.r, m.c); err != nil {
		return flatErrorf("Set", i, j, err)
	}
	m.data[m.Index(i, j)] = v

	return nil
}

// Data returns a copy of the buffer in its own order.
func (m *Flat[T]) Data() []T {
	return append([]T(nil), m.data...)
}

// Clone returns a deep copy with independent storage.
func (m *Flat[T]) Clone() *Flat[T] {
	return &Flat[T]{r: m.r, c: m.c, order: m.order, data: m.Data()}
}

// String renders logical rows, one per line, regardless of order.
func (m *Flat[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[m.Index(i, j)])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
