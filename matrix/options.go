// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the generic facades
// (Transpose, Mul). This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state. Worker count changes the
//     schedule, never the result.
//   - No dead switches: each flag impacts dispatch and is covered by tests.
//
// Notes:
//   - Kernels with an explicit block parameter (TransposeNestedTiled, MulTiled, ...)
//     ignore Options; the facades resolve Options and call those kernels.
package matrix

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBlockSize is the tile edge used by the facades.
	// 32×32 tiles of 8-byte elements occupy 8 KiB, well inside a typical L1d.
	DefaultBlockSize = 32

	// DefaultWorkers keeps Mul single-threaded unless asked otherwise.
	DefaultWorkers = 1

	// DefaultScratch selects the plain tiled transpose over the scratch-buffer one.
	DefaultScratch = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicBlockSizeInvalid = "matrix: WithBlockSize: block must be > 0"
	panicWorkersInvalid   = "matrix: WithWorkers: workers must be >= 0"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	block   int  // > 0; DefaultBlockSize
	workers int  // >= 1 after finalize; DefaultWorkers
	scratch bool // DefaultScratch
}

// WithBlockSize sets the tile edge used by tiled kernels.
//
// Errors:
//   - Panics with a stable message when block <= 0.
//
// AI-Hints:
//   - Sweep 16..128 with the bench package; the optimum depends on element
//     size and cache geometry, not on matrix size.
func WithBlockSize(block int) Option {
	if block <= 0 {
		panic(panicBlockSizeInvalid)
	}

	return func(o *Options) { o.block = block }
}

// WithWorkers sets the goroutine count for the parallel tiled multiply.
// Zero selects runtime.GOMAXPROCS(0); one keeps Mul sequential.
func WithWorkers(workers int) Option {
	if workers < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithScratch makes Transpose use the scratch-buffer tiled kernel for *Flat inputs.
func WithScratch() Option {
	return func(o *Options) { o.scratch = true }
}

// gatherOptions applies user options over the defaults (last writer wins)
// and finalizes derived values.
func gatherOptions(user ...Option) Options {
	o := Options{
		block:   DefaultBlockSize,
		workers: DefaultWorkers,
		scratch: DefaultScratch,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
func finalizeOptions(o *Options) {
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
}
