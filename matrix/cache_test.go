// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlarray/matrix"
)

func TestFingerprint(t *testing.T) {
	n := MustNested(t, [][]int{{1, 2}, {3, 4}})
	a := MustFlat(t, n, matrix.RowMajor)
	b := MustFlat(t, n, matrix.RowMajor)
	assert.Equal(t, matrix.Fingerprint(a), matrix.Fingerprint(b))

	assert.NotEqual(t, matrix.Fingerprint(a), matrix.Fingerprint(MustFlat(t, n, matrix.ColMajor)))

	// same buffer, different shape
	wide, err := matrix.NewFlat([]int{1, 2, 3, 4}, 1, 4, matrix.RowMajor)
	require.NoError(t, err)
	assert.NotEqual(t, matrix.Fingerprint(a), matrix.Fingerprint(wide))

	require.NoError(t, b.Set(1, 1, 5))
	assert.NotEqual(t, matrix.Fingerprint(a), matrix.Fingerprint(b))
	assert.Zero(t, matrix.Fingerprint[int](nil))
}

func TestTransposeCache_MulCached(t *testing.T) {
	tc, err := matrix.NewTransposeCache[int](1 << 20)
	require.NoError(t, err)
	defer tc.Close()

	a := MustFlat(t, RandomNested(t, 12, 9, 1), matrix.RowMajor)
	b := MustFlat(t, RandomNested(t, 9, 7, 2), matrix.RowMajor)
	want, err := matrix.MulFlatTiled(a, b, 4)
	require.NoError(t, err)

	assert.False(t, tc.Contains(b))
	got, err := matrix.MulCached(a, b, tc, 4)
	require.NoError(t, err)
	assert.Equal(t, want.Data(), got.Data())
	assert.True(t, tc.Contains(b))

	// second product reuses the cached layout
	a2 := MustFlat(t, RandomNested(t, 3, 9, 3), matrix.ColMajor)
	want2, err := matrix.MulFlatNaive(a2, b)
	require.NoError(t, err)
	got2, err := matrix.MulCached(a2, b, tc, 4)
	require.NoError(t, err)
	assert.Equal(t, want2.Data(), got2.Data())
}

func TestTransposeCache_Transposed(t *testing.T) {
	tc, err := matrix.NewTransposeCache[int](1 << 16)
	require.NoError(t, err)
	defer tc.Close()

	b := MustFlat(t, MustNested(t, [][]int{{1, 2, 3}, {4, 5, 6}}), matrix.RowMajor)
	bt, err := tc.Transposed(b)
	require.NoError(t, err)
	assert.Equal(t, 3, bt.Rows())
	assert.Equal(t, 2, bt.Cols())
	assert.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", bt.String())

	// mutating the returned copy does not poison the cache
	require.NoError(t, bt.Set(0, 0, 100))
	again, err := tc.Transposed(b)
	require.NoError(t, err)
	v, _ := again.At(0, 0)
	assert.Equal(t, 1, v)
}

func TestTransposeCache_Errors(t *testing.T) {
	_, err := matrix.NewTransposeCache[int](0)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	a := MustFlat(t, MustNested(t, [][]int{{1, 2}}), matrix.RowMajor)
	_, err = matrix.MulCached(a, a, nil, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	tc, err := matrix.NewTransposeCache[int](1 << 10)
	require.NoError(t, err)
	defer tc.Close()
	_, err = matrix.MulCached(a, a, tc, 2)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = tc.Transposed(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
