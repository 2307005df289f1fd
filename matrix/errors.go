// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Kernels wrap with matrixErrorf(op, err); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> dimension mismatch -> block size -> index.

var (
	// ErrBadShape is returned when a requested or supplied shape is invalid
	// (rows <= 0, cols <= 0, or a flat buffer whose length is not rows*cols).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRagged is returned when nested rows do not all have the same length.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadBlockSize is returned by tiled kernels for a block size <= 0.
	ErrBadBlockSize = errors.New("matrix: block size must be > 0")

	// ErrUnknownOrder is returned for an Order outside {RowMajor, ColMajor}.
	ErrUnknownOrder = errors.New("matrix: unknown storage order")
)

// Aliases kept for call sites that read better with the longer name.
var (
	ErrIndexOutOfBounds  = ErrOutOfRange
	ErrInvalidDimensions = ErrBadShape
)
