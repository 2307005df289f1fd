// SPDX-License-Identifier: MIT
// Package matrix: transpose kernels over both representations.
//
// Contract shared by every kernel in this file:
//   - Square input is transposed IN PLACE and the same pointer is returned;
//     the caller's value is consumed.
//   - Non-square input is left untouched and a freshly allocated c×r result
//     is returned.
//   - Tiled kernels clip boundary tiles, so any block size > 0 is valid for
//     any shape.
//   - Flat kernels work on the physical (row-major) shape of the buffer, so
//     RowMajor and ColMajor inputs are both accepted and the result keeps the
//     input's order.

package matrix

import "fmt"

// TransposeNested returns mᵀ using the straightforward element loop.
//
// Implementation:
//   - Square: swap (r,c) with (c,r) for every c > r; the diagonal stays put.
//   - Otherwise: out[c][r] = m[r][c] into a new c×r matrix.
//
// Errors:
//   - ErrNilMatrix for nil m.
//
// Complexity:
//   - Time O(r*c). Space O(1) square, O(r*c) otherwise.
func TransposeNested[T Element](m *Nested[T]) (*Nested[T], error) {
	if m == nil {
		return nil, matrixErrorf(opTransposeNested, ErrNilMatrix)
	}

	if m.r == m.c {
		d := m.data
		for r := 0; r < m.r; r++ {
			for c := r + 1; c < m.c; c++ {
				d[r][c], d[c][r] = d[c][r], d[r][c]
			}
		}

		return m, nil
	}

	out := newNested[T](m.c, m.r)
	for r := 0; r < m.r; r++ {
		for c := 0; c < m.c; c++ {
			out.data[c][r] = m.data[r][c]
		}
	}

	return out, nil
}

// TransposeNestedTiled returns mᵀ visiting the matrix tile by tile.
//
// Implementation:
//   - Square: iterate tile pairs (br, bc) with bc >= br. A diagonal tile swaps
//     only its own upper triangle; an off-diagonal tile swaps every cell with
//     its mirror in tile (bc, br), which is never visited on its own.
//   - Otherwise: copy each source tile into its transposed position.
//
// Errors:
//   - ErrNilMatrix, ErrBadBlockSize.
//
// Complexity:
//   - Time O(r*c). Each tile pair is touched once, which keeps both the read
//     and the write side cache resident for block² elements.
func TransposeNestedTiled[T Element](m *Nested[T], block int) (*Nested[T], error) {
	if m == nil {
		return nil, matrixErrorf(opTransposeNested, ErrNilMatrix)
	}
	if err := ValidateBlockSize(block); err != nil {
		return nil, matrixErrorf(opTransposeNested, err)
	}

	var r, c, rEnd, cEnd int
	if m.r == m.c {
		n, d := m.r, m.data
		for br := 0; br < n; br += block {
			rEnd = min(br+block, n)
			for bc := br; bc < n; bc += block {
				cEnd = min(bc+block, n)
				if br == bc {
					for r = br; r < rEnd; r++ {
						for c = r + 1; c < cEnd; c++ {
							d[r][c], d[c][r] = d[c][r], d[r][c]
						}
					}
					continue
				}
				for r = br; r < rEnd; r++ {
					for c = bc; c < cEnd; c++ {
						d[r][c], d[c][r] = d[c][r], d[r][c]
					}
				}
			}
		}

		return m, nil
	}

	out := newNested[T](m.c, m.r)
	for br := 0; br < m.r; br += block {
		rEnd = min(br+block, m.r)
		for bc := 0; bc < m.c; bc += block {
			cEnd = min(bc+block, m.c)
			for r = br; r < rEnd; r++ {
				for c = bc; c < cEnd; c++ {
					out.data[c][r] = m.data[r][c]
				}
			}
		}
	}

	return out, nil
}

// TransposeFlat returns mᵀ with the element loop over the flat buffer.
// Square buffers swap data[r*n+c] with data[c*n+r] in place.
//
// Errors:
//   - ErrNilMatrix for nil m.
func TransposeFlat[T Element](m *Flat[T]) (*Flat[T], error) {
	if m == nil {
		return nil, matrixErrorf(opTransposeFlat, ErrNilMatrix)
	}

	pr, pc := m.physical()
	if pr == pc {
		transposeSquareFlat(m.data, pr)
		return m, nil
	}

	out := newFlat[T](m.c, m.r, m.order)
	transposeCopyFlatNaive(m.data, out.data, pr, pc)

	return out, nil
}

// TransposeFlatTiled is the tiled counterpart of TransposeFlat.
//
// Errors:
//   - ErrNilMatrix, ErrBadBlockSize.
//
// Complexity:
//   - Time O(r*c); Space O(1) square, O(r*c) otherwise.
func TransposeFlatTiled[T Element](m *Flat[T], block int) (*Flat[T], error) {
	if m == nil {
		return nil, matrixErrorf(opTransposeFlat, ErrNilMatrix)
	}
	if err := ValidateBlockSize(block); err != nil {
		return nil, matrixErrorf(opTransposeFlat, err)
	}

	pr, pc := m.physical()
	if pr == pc {
		transposeSquareFlatTiled(m.data, pr, block)
		return m, nil
	}

	out := newFlat[T](m.c, m.r, m.order)
	transposeCopyFlat(m.data, out.data, pr, pc, block)

	return out, nil
}

// TransposeFlatTiledScratch transposes through a block×block scratch tile:
// each source tile is staged into the scratch buffer and written back
// transposed. The output is identical to TransposeFlatTiled.
//
// Implementation (square):
//   - Diagonal tile: stage, then write back with swapped scratch indices.
//   - Tile pair (i,j), i < j: stage tile (i,j); walk tile (j,i) writing the
//     staged value into it while moving its old value into tile (i,j).
//
// Notes:
//   - The scratch variant is an alternative, not the facade default; it
//     trades one extra copy per element for strictly sequential writes.
func TransposeFlatTiledScratch[T Element](m *Flat[T], block int) (*Flat[T], error) {
	if m == nil {
		return nil, matrixErrorf(opTransposeFlat, ErrNilMatrix)
	}
	if err := ValidateBlockSize(block); err != nil {
		return nil, matrixErrorf(opTransposeFlat, err)
	}

	pr, pc := m.physical()
	buf := make([]T, min(block, pr)*min(block, pc))
	stride := min(block, pc)
	if pr == pc {
		transposeSquareFlatScratch(m.data, pr, block, stride, buf)
		return m, nil
	}

	out := newFlat[T](m.c, m.r, m.order)
	var r, c, rEnd, cEnd int
	for i := 0; i < pr; i += block {
		rEnd = min(i+block, pr)
		for j := 0; j < pc; j += block {
			cEnd = min(j+block, pc)
			for r = i; r < rEnd; r++ {
				for c = j; c < cEnd; c++ {
					buf[(r-i)*stride+(c-j)] = m.data[r*pc+c]
				}
			}
			for c = j; c < cEnd; c++ {
				for r = i; r < rEnd; r++ {
					out.data[c*pr+r] = buf[(r-i)*stride+(c-j)]
				}
			}
		}
	}

	return out, nil
}

// transposeSquareFlat swaps the upper and lower triangles of an n×n buffer.
func transposeSquareFlat[T Element](d []T, n int) {
	for r := 0; r < n; r++ {
		for c := r + 1; c < n; c++ {
			d[r*n+c], d[c*n+r] = d[c*n+r], d[r*n+c]
		}
	}
}

// transposeSquareFlatTiled is transposeSquareFlat visited tile pair by tile pair.
func transposeSquareFlatTiled[T Element](d []T, n, block int) {
	var r, c, rEnd, cEnd int
	for br := 0; br < n; br += block {
		rEnd = min(br+block, n)
		for bc := br; bc < n; bc += block {
			cEnd = min(bc+block, n)
			if br == bc {
				for r = br; r < rEnd; r++ {
					for c = r + 1; c < cEnd; c++ {
						d[r*n+c], d[c*n+r] = d[c*n+r], d[r*n+c]
					}
				}
				continue
			}
			for r = br; r < rEnd; r++ {
				for c = bc; c < cEnd; c++ {
					d[r*n+c], d[c*n+r] = d[c*n+r], d[r*n+c]
				}
			}
		}
	}
}

// transposeSquareFlatScratch is the staged variant; buf holds stride×stride slots.
func transposeSquareFlatScratch[T Element](d []T, n, block, stride int, buf []T) {
	var r, c, rowEnd, colEnd int
	for i := 0; i < n; i += block {
		rowEnd = min(i+block, n)
		for j := i; j < n; j += block {
			colEnd = min(j+block, n)

			// stage tile (i,j)
			for r = i; r < rowEnd; r++ {
				for c = j; c < colEnd; c++ {
					buf[(r-i)*stride+(c-j)] = d[r*n+c]
				}
			}

			if i == j {
				for r = i; r < rowEnd; r++ {
					for c = j; c < colEnd; c++ {
						d[r*n+c] = buf[(c-j)*stride+(r-i)]
					}
				}
				continue
			}

			// tile (j,i) receives the staged values; its old values move to (i,j)
			for r = j; r < colEnd; r++ {
				for c = i; c < rowEnd; c++ {
					tmp := d[r*n+c]
					d[r*n+c] = buf[(c-i)*stride+(r-j)]
					d[c*n+r] = tmp
				}
			}
		}
	}
}

// transposeCopyFlatNaive writes the pc×pr transpose of the pr×pc buffer src into dst.
func transposeCopyFlatNaive[T Element](src, dst []T, pr, pc int) {
	for r := 0; r < pr; r++ {
		for c := 0; c < pc; c++ {
			dst[c*pr+r] = src[r*pc+c]
		}
	}
}

// transposeCopyFlat is transposeCopyFlatNaive visited tile by tile.
func transposeCopyFlat[T Element](src, dst []T, pr, pc, block int) {
	var r, c, rEnd, cEnd int
	for br := 0; br < pr; br += block {
		rEnd = min(br+block, pr)
		for bc := 0; bc < pc; bc += block {
			cEnd = min(bc+block, pc)
			for r = br; r < rEnd; r++ {
				for c = bc; c < cEnd; c++ {
					dst[c*pr+r] = src[r*pc+c]
				}
			}
		}
	}
}

// transposeAny is the interface fallback: a fresh row-major Flat holding mᵀ.
func transposeAny[T Element](m Matrix[T]) (*Flat[T], error) {
	rows, cols := m.Rows(), m.Cols()
	out := newFlat[T](cols, rows, RowMajor)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[j*rows+i] = v
		}
	}

	return out, nil
}
