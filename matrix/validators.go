// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/block checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is non-nil, including typed nil *Nested / *Flat
// stored in the interface.
//
// Returns ErrNilMatrix if m is nil.
// Complexity: O(1).
func ValidateNotNil[T Element](m Matrix[T]) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures rows and cols are both positive.
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrBadShape)
	}

	return nil
}

// ValidateBlockSize ensures a tile edge is positive.
func ValidateBlockSize(block int) error {
	if block <= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateBlockSize(%d)", block), ErrBadBlockSize)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil, have no empty
// dimension, and a.Cols == b.Rows.
//
// Implementation: NotNil(a) → NotNil(b) → Shape(a) → Shape(b) → inner dimension check.
// Complexity: O(1).
// AI-Hints: run before any allocation so a mismatch costs nothing.
func ValidateMulCompatible[T Element](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if err := ValidateShape(a.Rows(), a.Cols()); err != nil {
		return err
	}
	if err := ValidateShape(b.Rows(), b.Cols()); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible(%dx%d · %dx%d)", a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape[T Element](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// validateIndex reports ErrOutOfRange for (i, j) outside rows×cols.
func validateIndex(i, j, rows, cols int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return ErrOutOfRange
	}

	return nil
}

// isNil detects both untyped nil and typed nil pointers of the package's
// own representations.
func isNil[T Element](m Matrix[T]) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *Nested[T]:
		return v == nil
	case *Flat[T]:
		return v == nil
	default:
		return false
	}
}
