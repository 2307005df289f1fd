// SPDX-License-Identifier: MIT

package matrix

// Rotate90 returns m rotated 90° clockwise: an r×c input becomes c×r with
// out[c][r-1-i] = m[i][c]. The input is not modified. Tiles of block×block
// keep both the read and the write side cache resident.
//
// Errors:
//   - ErrNilMatrix, ErrBadBlockSize.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Rotate90[T Element](m *Nested[T], block int) (*Nested[T], error) {
	if m == nil {
		return nil, matrixErrorf(opRotate, ErrNilMatrix)
	}
	if err := ValidateBlockSize(block); err != nil {
		return nil, matrixErrorf(opRotate, err)
	}

	out := newNested[T](m.c, m.r)
	var i, j, iEnd, jEnd int
	for bi := 0; bi < m.r; bi += block {
		iEnd = min(bi+block, m.r)
		for bj := 0; bj < m.c; bj += block {
			jEnd = min(bj+block, m.c)
			for i = bi; i < iEnd; i++ {
				for j = bj; j < jEnd; j++ {
					out.data[j][m.r-1-i] = m.data[i][j]
				}
			}
		}
	}

	return out, nil
}
