// Package lvlarray is an in-memory engine for growable buffers and 2D grids,
// built to compare how the layout of data in memory shapes the cost of the
// same computation.
//
// What is inside?
//
//   - Growable buffers: fixed-increment, golden and doubling growth with
//     per-buffer copy and reallocation counters
//   - Matrices: nested rows vs. one flat buffer, row- or column-major
//   - Transpose: naive and tiled, in place for square inputs
//   - Multiply: naive, pre-transposed B, tiled, flat, parallel and cached
//   - Traversal: row-wise vs. column-wise sums, tiled 90° rotation
//   - Array kernels: reversal rotation, three-way partitions
//   - Front insert: a slice against a linked list, with the size where the
//     slice stops winning
//   - Windows: prefix sums, sliding windows, hashed sub-array counts
//
// Packages:
//
//	dynarray/      Buffer[T] and its growth policies
//	matrix/        Nested / Flat grids, transpose, multiply, prefix sums
//	arrayops/      in-place rotation and partitioning over slices
//	window/        range sums and window searches over slices
//	bench/         timing runner, memdb sample store, report tables
//	cmd/lvlarray/  the command line front end over bench
//
// The four computational packages are pure: no logging, no I/O, no shared
// state. Logging lives in bench and the command.
//
// Quick example:
//
//	a, _ := matrix.Sequential[int64](256, 256, 1)
//	b, _ := matrix.Sequential[int64](256, 256, 2)
//	c, _ := matrix.MulTiled(a, b, 32)
//
//	go install github.com/katalvlaran/lvlarray/cmd/lvlarray@latest
package lvlarray
