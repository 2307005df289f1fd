// SPDX-License-Identifier: MIT
// Package matrix: multiplication kernels.
//
// Every kernel:
//   - validates A.Cols == B.Rows before allocating (ErrDimensionMismatch),
//   - never mutates its operands,
//   - accumulates each output cell in ascending k order, so all strategies
//     produce identical results for identical inputs.

package matrix

import (
	"fmt"
	"sync"
)

// MulNaive computes A·B with the i-j-k triple loop.
//
// Complexity:
//   - Time O(n·m·p), Space O(n·p) for the result.
func MulNaive[T Element](a, b *Nested[T]) (*Nested[T], error) {
	if err := validateNestedMul(a, b); err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}

	out := newNested[T](a.r, b.c)
	var sum T
	for i := 0; i < a.r; i++ {
		ai := a.data[i]
		for j := 0; j < b.c; j++ {
			sum = 0
			for k := 0; k < a.c; k++ {
				sum += ai[k] * b.data[k][j]
			}
			out.data[i][j] = sum
		}
	}

	return out, nil
}

// MulPretransposed computes A·B given bt = Bᵀ, reading both operands along
// rows: C[i][j] = Σ_k A[i][k]·bt[j][k].
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when A.Cols != bt.Cols.
func MulPretransposed[T Element](a, bt *Nested[T]) (*Nested[T], error) {
	if a == nil || bt == nil {
		return nil, matrixErrorf(opMulTransposed, ErrNilMatrix)
	}
	if a.c != bt.c {
		return nil, matrixErrorf(opMulTransposed,
			fmt.Errorf("%dx%d · (%dx%d)ᵀ: %w", a.r, a.c, bt.r, bt.c, ErrDimensionMismatch))
	}

	out := newNested[T](a.r, bt.r)
	var sum T
	for i := 0; i < a.r; i++ {
		ai := a.data[i]
		for j := 0; j < bt.r; j++ {
			bj := bt.data[j]
			sum = 0
			for k := range ai {
				sum += ai[k] * bj[k]
			}
			out.data[i][j] = sum
		}
	}

	return out, nil
}

// MulTransposedB transposes a copy of B with the tiled kernel and then runs
// MulPretransposed. B itself is left untouched.
//
// Complexity:
//   - Time O(n·m·p + m·p), extra Space O(m·p) for Bᵀ.
func MulTransposedB[T Element](a, b *Nested[T], block int) (*Nested[T], error) {
	if err := validateNestedMul(a, b); err != nil {
		return nil, matrixErrorf(opMulTransposed, err)
	}

	bt, err := TransposeNestedTiled(b.Clone(), block)
	if err != nil {
		return nil, matrixErrorf(opMulTransposed, err)
	}

	return MulPretransposed(a, bt)
}

// MulTiled computes A·B with six nested loops: block row, block column and
// block k outside; row, column and k inside each tile. Edge tiles are clipped.
//
// Errors:
//   - ErrNilMatrix, ErrBadBlockSize, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n·m·p); the working set of the inner loops is three
//     block×block tiles.
func MulTiled[T Element](a, b *Nested[T], block int) (*Nested[T], error) {
	if err := validateNestedMul(a, b); err != nil {
		return nil, matrixErrorf(opMulTiled, err)
	}
	if err := ValidateBlockSize(block); err != nil {
		return nil, matrixErrorf(opMulTiled, err)
	}

	n, m, p := a.r, a.c, b.c
	out := newNested[T](n, p)
	var (
		i, j, k          int
		iEnd, jEnd, kEnd int
		sum              T
	)
	for bi := 0; bi < n; bi += block {
		iEnd = min(bi+block, n)
		for bj := 0; bj < p; bj += block {
			jEnd = min(bj+block, p)
			for bk := 0; bk < m; bk += block {
				kEnd = min(bk+block, m)
				for i = bi; i < iEnd; i++ {
					ai, ci := a.data[i], out.data[i]
					for j = bj; j < jEnd; j++ {
						sum = ci[j]
						for k = bk; k < kEnd; k++ {
							sum += ai[k] * b.data[k][j]
						}
						ci[j] = sum
					}
				}
			}
		}
	}

	return out, nil
}

// MulFlatNaive computes A·B over flat operands of any order with the i-j-k
// loop. The result is RowMajor.
func MulFlatNaive[T Element](a, b *Flat[T]) (*Flat[T], error) {
	if err := validateFlatMul(a, b); err != nil {
		return nil, matrixErrorf(opMulFlat, err)
	}

	out := newFlat[T](a.r, b.c, RowMajor)
	var sum T
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.c; j++ {
			sum = 0
			for k := 0; k < a.c; k++ {
				sum += a.data[a.Index(i, k)] * b.data[b.Index(k, j)]
			}
			out.data[i*b.c+j] = sum
		}
	}

	return out, nil
}

// MulFlatTiled computes A·B with the six-loop tiling over flat buffers.
// The result is RowMajor.
//
// Implementation:
//   - Stage 1: validate; re-linearize a ColMajor A to RowMajor.
//   - Stage 2: pick the kernel by B's order: B[k*p+j] for RowMajor,
//     B[j*m+k] for ColMajor (contiguous in k, the inner loop).
//   - Stage 3: run every block row through mulFlatRowBlock.
//
// Errors:
//   - ErrNilMatrix, ErrBadBlockSize, ErrDimensionMismatch.
func MulFlatTiled[T Element](a, b *Flat[T], block int) (*Flat[T], error) {
	if err := validateFlatMul(a, b); err != nil {
		return nil, matrixErrorf(opMulFlat, err)
	}
	if err := ValidateBlockSize(block); err != nil {
		return nil, matrixErrorf(opMulFlat, err)
	}

	a = rowMajorOperand(a)
	out := newFlat[T](a.r, b.c, RowMajor)
	for bi := 0; bi < a.r; bi += block {
		mulFlatRowBlock(out.data, a, b, bi, block)
	}

	return out, nil
}

// MulFlatTiledParallel is MulFlatTiled with block rows of the output spread
// over workers goroutines. Each output cell belongs to exactly one block row,
// so workers never write the same memory. workers <= 0 means one worker.
//
// Determinism:
//   - Identical output to MulFlatTiled for every worker count.
func MulFlatTiledParallel[T Element](a, b *Flat[T], block, workers int) (*Flat[T], error) {
	if err := validateFlatMul(a, b); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	if err := ValidateBlockSize(block); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	a = rowMajorOperand(a)
	out := newFlat[T](a.r, b.c, RowMajor)

	blocks := (a.r + block - 1) / block
	workers = max(1, min(workers, blocks))
	next := make(chan int, blocks)
	for bi := 0; bi < a.r; bi += block {
		next <- bi
	}
	close(next)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for bi := range next {
				mulFlatRowBlock(out.data, a, b, bi, block)
			}
		}()
	}
	wg.Wait()

	return out, nil
}

// mulFlatRowBlock accumulates rows [bi, bi+block) of A·B into the row-major
// buffer c. A must be RowMajor; B may be either order.
func mulFlatRowBlock[T Element](c []T, a, b *Flat[T], bi, block int) {
	n, m, p := a.r, a.c, b.c
	iEnd := min(bi+block, n)
	var (
		i, j, k    int
		jEnd, kEnd int
		sum        T
	)
	for bj := 0; bj < p; bj += block {
		jEnd = min(bj+block, p)
		for bk := 0; bk < m; bk += block {
			kEnd = min(bk+block, m)
			if b.order == ColMajor {
				for i = bi; i < iEnd; i++ {
					ai := a.data[i*m : (i+1)*m]
					for j = bj; j < jEnd; j++ {
						bcol := b.data[j*m : (j+1)*m]
						sum = c[i*p+j]
						for k = bk; k < kEnd; k++ {
							sum += ai[k] * bcol[k]
						}
						c[i*p+j] = sum
					}
				}
				continue
			}
			for i = bi; i < iEnd; i++ {
				ai := a.data[i*m : (i+1)*m]
				for j = bj; j < jEnd; j++ {
					sum = c[i*p+j]
					for k = bk; k < kEnd; k++ {
						sum += ai[k] * b.data[k*p+j]
					}
					c[i*p+j] = sum
				}
			}
		}
	}
}

// rowMajorOperand returns a itself when RowMajor, else a RowMajor copy.
func rowMajorOperand[T Element](a *Flat[T]) *Flat[T] {
	if a.order == RowMajor {
		return a
	}

	return a.WithOrder(RowMajor)
}

// mulAny is the interface fallback: i-j-k over At into a RowMajor Flat.
func mulAny[T Element](a, b Matrix[T]) (*Flat[T], error) {
	n, m, p := a.Rows(), a.Cols(), b.Cols()
	out := newFlat[T](n, p, RowMajor)
	var (
		av, bv, sum T
		err         error
	)
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			sum = 0
			for k := 0; k < m; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum += av * bv
			}
			out.data[i*p+j] = sum
		}
	}

	return out, nil
}

func validateNestedMul[T Element](a, b *Nested[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}

	return ValidateMulCompatible[T](a, b)
}

func validateFlatMul[T Element](a, b *Flat[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}

	return ValidateMulCompatible[T](a, b)
}
