// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// nestedErrorf wraps element-access errors with method name and indices.
func nestedErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Nested.%s(%d,%d): %w", method, row, col, err)
}

// Nested is a rectangular matrix stored as one slice per row.
//   - r,c hold dimensions (both > 0 for every constructed value).
//   - data[i] has length c for all i.
//
// Nested owns its rows: constructors copy caller input and accessors hand
// out copies, so no caller slice aliases the storage.
type Nested[T Element] struct {
	r, c int
	data [][]T
}

// newNested allocates a zeroed r×c Nested without validation (kernel use).
// One backing block serves all rows.
func newNested[T Element](r, c int) *Nested[T] {
	block := make([]T, r*c)
	rows := make([][]T, r)
	for i := range rows {
		rows[i] = block[i*c : (i+1)*c : (i+1)*c]
	}

	return &Nested[T]{r: r, c: c, data: rows}
}

// NewNested builds a Nested from row slices, copying them.
//
// Implementation:
//   - Stage 1: reject zero rows or a zero-length first row (ErrBadShape).
//   - Stage 2: reject rows whose length differs from the first (ErrRagged).
//   - Stage 3: copy into freshly owned storage.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewNested[T Element](rows [][]T) (*Nested[T], error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewNested: %w", ErrBadShape)
	}
	c := len(rows[0])
	if err := ValidateShape(len(rows), c); err != nil {
		return nil, fmt.Errorf("NewNested: %w", err)
	}
	for i := range rows {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewNested: row %d has %d cols, want %d: %w", i, len(rows[i]), c, ErrRagged)
		}
	}

	m := newNested[T](len(rows), c)
	for i := range rows {
		copy(m.data[i], rows[i])
	}

	return m, nil
}

// NewZerosNested returns a zero-filled rows×cols Nested.
func NewZerosNested[T Element](rows, cols int) (*Nested[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewZerosNested: %w", err)
	}

	return newNested[T](rows, cols), nil
}

// Compile-time interface conformance.
var _ Matrix[int] = (*Nested[int])(nil)

// Rows returns the number of rows.
func (m *Nested[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Nested[T]) Cols() int { return m.c }

// IsSquare reports whether Rows == Cols.
func (m *Nested[T]) IsSquare() bool { return m.r == m.c }

// At returns the element at (i, j) or ErrOutOfRange.
func (m *Nested[T]) At(i, j int) (T, error) {
	if err := validateIndex(i, j, m.r, m.c); err != nil {
		var zero T
		return zero, nestedErrorf("At", i, j, err)
	}

	return m.data[i][j], nil
}

// Set assigns v at (i, j) or returns ErrOutOfRange.
func (m *Nested[T]) Set(i, j int, v T) error {
	if err := validateIndex(i, j, m.r, m.c); err != nil {
		return nestedErrorf("Set", i, j, err)
	}
	m.data[i][j] = v

	return nil
}

// Row returns a copy of row i.
func (m *Nested[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, nestedErrorf("Row", i, 0, ErrOutOfRange)
	}

	return append([]T(nil), m.data[i]...), nil
}

// Slices returns a deep copy of the rows.
func (m *Nested[T]) Slices() [][]T {
	return m.Clone().data
}

// Clone returns a deep copy with independent storage.
func (m *Nested[T]) Clone() *Nested[T] {
	out := newNested[T](m.r, m.c)
	for i := range m.data {
		copy(out.data[i], m.data[i])
	}

	return out
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Nested[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[i][j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
