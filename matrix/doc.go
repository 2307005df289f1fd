// Package matrix implements dense integer/float matrices in two
// representations and cache-aware transpose and multiply kernels over them.
//
// Representations:
//
//   - Nested: one slice per row. Natural to build, one indirection per row.
//   - Flat: one contiguous buffer in RowMajor or ColMajor order.
//
// Both satisfy the Matrix capability interface (Rows, Cols, At, Set); the
// generic facades Transpose and Mul dispatch on the concrete type and fall
// back to At/Set for any other implementation.
//
// Transpose kernels (naive, tiled, tiled with a scratch tile) transpose square
// inputs in place and return the same value; non-square inputs yield a new
// c×r matrix. Multiply kernels (naive, with pre-transposed B, tiled,
// flat row-major × row-/col-major, parallel tiled, cached) never mutate their
// operands and agree exactly on integer inputs.
//
// Supporting kernels: Rotate90, RowSums/ColSums, SumRowWise/SumColWise,
// PrefixSum2D with SubmatrixSum, Flatten/ToNested/WithOrder, Equal,
// Fingerprint and TransposeCache.
//
// All validation errors are package sentinels (ErrBadShape, ErrRagged,
// ErrDimensionMismatch, ErrBadBlockSize, ...) wrapped with an operation tag;
// match them with errors.Is.
package matrix
