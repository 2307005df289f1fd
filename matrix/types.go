// SPDX-License-Identifier: MIT

// Package matrix defines the element constraint, the Matrix capability
// interface and the storage order shared by both representations.
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Element is the set of scalar types the kernels accept.
// Integer elements give exact results that do not depend on the chosen
// strategy; integer overflow wraps as in plain Go arithmetic.
type Element interface {
	constraints.Integer | constraints.Float
}

// Matrix is the capability shared by Nested and Flat: shape plus checked
// element access. Kernels take concrete types for their fast paths and fall
// back to this interface for foreign implementations.
type Matrix[T Element] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j) or ErrOutOfRange.
	At(i, j int) (T, error)

	// Set assigns v at (i, j) or returns ErrOutOfRange.
	Set(i, j int, v T) error
}

// Order is the linearization used by Flat.
type Order int

const (
	// RowMajor places (r, c) at r*cols + c.
	RowMajor Order = iota
	// ColMajor places (r, c) at c*rows + r.
	ColMajor
)

// String returns "row-major" or "col-major".
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

func (o Order) valid() bool { return o == RowMajor || o == ColMajor }

// String formatting tokens shared by Nested.String and Flat.String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)
