// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels.
//   - Keep values small so integer products never overflow.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlarray/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback paths of the facades.
type hide struct{ matrix.Matrix[int] }

// empty is a foreign Matrix reporting a shape with a zero dimension.
// Any element access fails.
type empty struct{ r, c int }

func (e empty) Rows() int { return e.r }
func (e empty) Cols() int { return e.c }
func (e empty) At(i, j int) (int, error) { return 0, matrix.ErrOutOfRange }
func (e empty) Set(i, j int, v int) error { return matrix.ErrOutOfRange }

// MustNested builds a *Nested from literal rows or fails the test.
func MustNested(t testing.TB, rows [][]int) *matrix.Nested[int] {
	t.Helper()
	m, err := matrix.NewNested(rows)
	if err != nil {
		t.Fatalf("NewNested: %v", err)
	}

	return m
}

// MustFlat flattens n in the given order or fails the test.
func MustFlat(t testing.TB, n *matrix.Nested[int], order matrix.Order) *matrix.Flat[int] {
	t.Helper()
	f, err := matrix.Flatten(n, order)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}

	return f
}

// RandomNested returns an r×c matrix of values in [-9, 9] from a fixed seed.
func RandomNested(t testing.TB, r, c int, seed int64) *matrix.Nested[int] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int, r)
	for i := range rows {
		rows[i] = make([]int, c)
		for j := range rows[i] {
			rows[i][j] = rng.Intn(19) - 9
		}
	}

	return MustNested(t, rows)
}

// naiveTransposeRows is an independent oracle: out[j][i] = in[i][j].
func naiveTransposeRows(in [][]int) [][]int {
	out := make([][]int, len(in[0]))
	for j := range out {
		out[j] = make([]int, len(in))
		for i := range in {
			out[j][i] = in[i][j]
		}
	}

	return out
}

// shapes covers square, tall, wide, vector-like and prime-sized matrices.
var shapes = [][2]int{
	{1, 1}, {2, 2}, {3, 3}, {7, 7}, {33, 33}, {64, 64},
	{1, 9}, {9, 1}, {3, 5}, {5, 3}, {17, 40}, {40, 17},
}

// blocks includes 1, non-divisors and a block larger than every shape.
var blocks = []int{1, 2, 3, 8, 16, 100}
