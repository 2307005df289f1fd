// SPDX-License-Identifier: MIT
// Package matrix provides the generic facades Transpose and Mul over any
// Matrix implementation, plus structural equality.
//
// Purpose:
//   - Dispatch *Nested / *Flat operands to their tiled kernels.
//   - Fall back to At/Set loops for foreign Matrix implementations.
//   - Define operation tags for uniform error wrapping.
//
// Notes:
//   - Kernels live in impl_transpose.go and impl_multiply.go.
//   - All kernels use central validators and are wrapped via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul             = "Mul"
	opMulNaive        = "MulNaive"
	opMulTransposed   = "MulTransposedB"
	opMulTiled        = "MulTiled"
	opMulFlat         = "MulFlat"
	opMulParallel     = "MulFlatTiledParallel"
	opMulCached       = "MulCached"
	opTranspose       = "Transpose"
	opTransposeNested = "TransposeNested"
	opTransposeFlat   = "TransposeFlat"
	opRotate          = "Rotate90"
	opPrefixSum       = "PrefixSum2D"
	opSubmatrixSum    = "SubmatrixSum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asMatrix lifts a concrete kernel result into the interface, keeping the
// result a true nil on error.
func asMatrix[T Element](m Matrix[T], err error) (Matrix[T], error) {
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Transpose returns mᵀ.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateShape(m); resolve options.
//   - Stage 2: *Nested → TransposeNestedTiled; *Flat → TransposeFlatTiled
//     (TransposeFlatTiledScratch under WithScratch).
//   - Stage 3: any other Matrix → a new RowMajor *Flat via At.
//
// Behavior highlights:
//   - For *Nested / *Flat the in-place contract of the kernels applies: a
//     square input is transposed in place and returned.
//   - Foreign implementations are never mutated.
//
// Errors:
//   - ErrNilMatrix; ErrBadShape for an empty dimension; ErrOutOfRange
//     surfaced by a misbehaving foreign At.
//
// Complexity:
//   - Time O(r*c).
func Transpose[T Element](m Matrix[T], opts ...Option) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err := ValidateShape(m.Rows(), m.Cols()); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	o := gatherOptions(opts...)

	switch v := m.(type) {
	case *Nested[T]:
		return asMatrix[T](TransposeNestedTiled(v, o.block))
	case *Flat[T]:
		if o.scratch {
			return asMatrix[T](TransposeFlatTiledScratch(v, o.block))
		}
		return asMatrix[T](TransposeFlatTiled(v, o.block))
	default:
		return asMatrix[T](transposeAny(m))
	}
}

// Mul returns A·B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) before any allocation.
//   - Stage 2: two *Nested → MulTiled; two *Flat → MulFlatTiled, or
//     MulFlatTiledParallel when WithWorkers resolves to more than one.
//   - Stage 3: mixed or foreign operands → i-j-k over At into a RowMajor *Flat.
//
// Determinism:
//   - Every path accumulates in ascending k; integer results are identical.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape for an empty dimension, ErrDimensionMismatch.
func Mul[T Element](a, b Matrix[T], opts ...Option) (Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)

	switch av := a.(type) {
	case *Nested[T]:
		if bv, ok := b.(*Nested[T]); ok {
			return asMatrix[T](MulTiled(av, bv, o.block))
		}
	case *Flat[T]:
		if bv, ok := b.(*Flat[T]); ok {
			if o.workers > 1 {
				return asMatrix[T](MulFlatTiledParallel(av, bv, o.block, o.workers))
			}
			return asMatrix[T](MulFlatTiled(av, bv, o.block))
		}
	}

	return asMatrix[T](mulAny(a, b))
}

// Equal reports whether a and b have the same shape and elements.
// Representation and order do not matter. nil equals only nil.
func Equal[T Element](a, b Matrix[T]) bool {
	an, bn := isNil(a), isNil(b)
	if an || bn {
		return an && bn
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}

	// same-order flat buffers compare directly
	if af, ok := a.(*Flat[T]); ok {
		if bf, ok := b.(*Flat[T]); ok && af.order == bf.order {
			for i := range af.data {
				if af.data[i] != bf.data[i] {
					return false
				}
			}
			return true
		}
	}

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, aerr := a.At(i, j)
			bv, berr := b.At(i, j)
			if aerr != nil || berr != nil || av != bv {
				return false
			}
		}
	}

	return true
}
