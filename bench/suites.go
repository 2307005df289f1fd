package bench

import (
	"fmt"
	"math/rand"
	"slices"
	"unsafe"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlarray/arrayops"
	"github.com/katalvlaran/lvlarray/dynarray"
	"github.com/katalvlaran/lvlarray/matrix"
	"github.com/katalvlaran/lvlarray/window"
)

// Suite names, also used as Store keys.
const (
	SuiteGrowth    = "growth"
	SuiteTranspose = "transpose"
	SuiteMultiply  = "multiply"
	SuiteRotate    = "rotate"
	SuiteCountSumK = "count-sum-k"
	SuiteMinLen    = "min-len"

	SuiteTraversal   = "traversal"
	SuiteRotate90    = "rotate90"
	SuiteFrontInsert = "front-insert"
)

// Baselines maps each suite to the case its speed-ups are measured against.
var Baselines = map[string]string{
	SuiteGrowth:    dynarray.Fixed.String(),
	SuiteTranspose: "nested/naive",
	SuiteMultiply:  "naive",
	SuiteRotate:    "naive",
	SuiteCountSumK: "naive",
	SuiteMinLen:    "naive",

	SuiteTraversal:   caseColWise,
	SuiteRotate90:    caseUntiled,
	SuiteFrontInsert: caseList,
}

// dataSeed keeps generated inputs identical across runs.
const dataSeed = 42

// GrowthSuite pushes n int64 values into an empty buffer under each policy.
// Each sample carries the reallocation and copy counts of the run and the
// size of the final block.
func (r *Runner) GrowthSuite(sizes []int) ([]Sample, error) {
	var out []Sample
	for _, n := range sizes {
		for _, p := range dynarray.Policies() {
			var stats dynarray.Stats
			s, err := r.measure(SuiteGrowth, p.String(), n, nil, func() {
				b := dynarray.New[int64]()
				for i := 0; i < n; i++ {
					b.Push(int64(i), p)
				}
				stats = b.Stats()
				b.Release()
			})
			if err != nil {
				return out, err
			}

			// one untimed pass with the growth hook feeding the debug log
			var last dynarray.GrowthEvent
			b := dynarray.New[int64](dynarray.WithGrowthHook(func(e dynarray.GrowthEvent) {
				last = e
				if ce := r.logger.Check(zap.DebugLevel, "grow"); ce != nil {
					ce.Write(
						zap.Stringer("policy", e.Policy),
						zap.Int("old_cap", e.OldCap),
						zap.Int("new_cap", e.NewCap),
						zap.Int("moved", e.Moved),
					)
				}
			}))
			for i := 0; i < n; i++ {
				b.Push(int64(i), p)
			}
			b.Release()

			s.Reallocations = stats.Reallocations
			s.Copies = stats.ElementsCopied
			s.Bytes = last.Bytes
			if err = r.record(s); err != nil {
				return out, err
			}
			out = append(out, s)
		}
	}

	return out, nil
}

// transposeCase is one transpose strategy: run transposes m and returns the result.
type transposeCase struct {
	name string
	run  func(*matrix.Nested[int64]) (matrix.Matrix[int64], error)
}

func transposeCases(blocks []int) []transposeCase {
	cases := []transposeCase{
		{"nested/naive", func(m *matrix.Nested[int64]) (matrix.Matrix[int64], error) {
			return matrix.TransposeNested(m)
		}},
		{"flat/naive", func(m *matrix.Nested[int64]) (matrix.Matrix[int64], error) {
			f, err := matrix.RowMajorOf(m)
			if err != nil {
				return nil, err
			}
			return matrix.TransposeFlat(f)
		}},
	}
	for _, b := range blocks {
		cases = append(cases,
			transposeCase{fmt.Sprintf("nested/tiled-%d", b), func(m *matrix.Nested[int64]) (matrix.Matrix[int64], error) {
				return matrix.TransposeNestedTiled(m, b)
			}},
			transposeCase{fmt.Sprintf("flat/tiled-%d", b), func(m *matrix.Nested[int64]) (matrix.Matrix[int64], error) {
				f, err := matrix.RowMajorOf(m)
				if err != nil {
					return nil, err
				}
				return matrix.TransposeFlatTiled(f, b)
			}},
			transposeCase{fmt.Sprintf("flat/scratch-%d", b), func(m *matrix.Nested[int64]) (matrix.Matrix[int64], error) {
				f, err := matrix.RowMajorOf(m)
				if err != nil {
					return nil, err
				}
				return matrix.TransposeFlatTiledScratch(f, b)
			}},
		)
	}

	return cases
}

// TransposeSuite times every transpose strategy on n×n matrices, one tiled
// case per block size. Flat cases include flattening, done in setup.
func (r *Runner) TransposeSuite(sizes, blocks []int) ([]Sample, error) {
	var out []Sample
	cases := transposeCases(blocks)
	for _, n := range sizes {
		src, err := matrix.Sequential[int64](n, n, 1)
		if err != nil {
			return out, err
		}

		// verify on a rectangular input too, where the in-place path is not taken
		rect, err := matrix.Sequential[int64](n, n+1, 1)
		if err != nil {
			return out, err
		}
		for _, in := range []*matrix.Nested[int64]{src, rect} {
			want, err := matrix.TransposeNested(in.Clone())
			if err != nil {
				return out, err
			}
			for _, c := range cases {
				got, err := c.run(in.Clone())
				if err != nil {
					return out, fmt.Errorf("bench: %s %s: %w", SuiteTranspose, c.name, err)
				}
				if !matrix.Equal[int64](want, got) {
					return out, r.mismatch(SuiteTranspose, c.name, n)
				}
			}
		}

		for _, c := range cases {
			var (
				m    *matrix.Nested[int64]
				kerr error
			)
			s, err := r.Measure(SuiteTranspose, c.name, n,
				func() { m = src.Clone() },
				func() { _, kerr = c.run(m) },
			)
			if err != nil {
				return out, err
			}
			if kerr != nil {
				return out, kerr
			}
			out = append(out, s)
		}
	}

	return out, nil
}

// mulCase is one multiply strategy over prepared operands.
type mulCase struct {
	name string
	run  func() (matrix.Matrix[int64], error)
}

// MultiplySuite times every multiply strategy on n×n operands, one tiled
// case per block size. The parallel case uses workers goroutines (0 means
// GOMAXPROCS). Operands are flattened and the cache is warmed outside timing.
func (r *Runner) MultiplySuite(sizes, blocks []int, workers int) ([]Sample, error) {
	var out []Sample
	for _, n := range sizes {
		a, err := matrix.Sequential[int64](n, n, 1)
		if err != nil {
			return out, err
		}
		b, err := matrix.Sequential[int64](n, n, 2)
		if err != nil {
			return out, err
		}
		fa, err := matrix.RowMajorOf(a)
		if err != nil {
			return out, err
		}
		fb, err := matrix.RowMajorOf(b)
		if err != nil {
			return out, err
		}
		fbCol, err := matrix.ColMajorOf(b)
		if err != nil {
			return out, err
		}

		var zero int64
		cache, err := matrix.NewTransposeCache[int64](int64(4*n*n) * int64(unsafe.Sizeof(zero)))
		if err != nil {
			return out, err
		}

		cases := []mulCase{
			{"naive", func() (matrix.Matrix[int64], error) { return matrix.MulNaive(a, b) }},
		}
		for _, blk := range blocks {
			cases = append(cases,
				mulCase{fmt.Sprintf("transposedB-%d", blk), func() (matrix.Matrix[int64], error) { return matrix.MulTransposedB(a, b, blk) }},
				mulCase{fmt.Sprintf("tiled-%d", blk), func() (matrix.Matrix[int64], error) { return matrix.MulTiled(a, b, blk) }},
				mulCase{fmt.Sprintf("flat-rowB-%d", blk), func() (matrix.Matrix[int64], error) { return matrix.MulFlatTiled(fa, fb, blk) }},
				mulCase{fmt.Sprintf("flat-colB-%d", blk), func() (matrix.Matrix[int64], error) { return matrix.MulFlatTiled(fa, fbCol, blk) }},
				mulCase{fmt.Sprintf("parallel-%d", blk), func() (matrix.Matrix[int64], error) {
					return matrix.Mul[int64](fa, fb, matrix.WithBlockSize(blk), matrix.WithWorkers(workers))
				}},
				mulCase{fmt.Sprintf("cached-%d", blk), func() (matrix.Matrix[int64], error) { return matrix.MulCached(fa, fb, cache, blk) }},
			)
		}

		samples, err := r.runMulCases(n, cases)
		cache.Close()
		out = append(out, samples...)
		if err != nil {
			return out, err
		}
	}

	return out, nil
}

func (r *Runner) runMulCases(n int, cases []mulCase) ([]Sample, error) {
	want, err := cases[0].run()
	if err != nil {
		return nil, err
	}
	for _, c := range cases[1:] {
		got, err := c.run()
		if err != nil {
			return nil, fmt.Errorf("bench: %s %s: %w", SuiteMultiply, c.name, err)
		}
		if !matrix.Equal(want, got) {
			return nil, r.mismatch(SuiteMultiply, c.name, n)
		}
	}

	var out []Sample
	for _, c := range cases {
		s, err := r.Measure(SuiteMultiply, c.name, n, nil, func() { _, _ = c.run() })
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}

	return out, nil
}

// RotateSuite rotates [1..n] right by n/3 with the naive and the reversal
// strategy, and left with both left-rotation strategies.
func (r *Runner) RotateSuite(sizes []int) ([]Sample, error) {
	type rotateCase struct {
		name string
		run  func([]int, int)
	}
	cases := []rotateCase{
		{"naive", arrayops.RotateRightNaive[int]},
		{"reversals", arrayops.RotateRight[int]},
		{"left", arrayops.RotateLeft[int]},
		{"left-via-right", arrayops.RotateLeftViaRight[int]},
	}

	var out []Sample
	for _, n := range sizes {
		k := n / 3
		naive, fast := arrayops.Sequential[int](n), arrayops.Sequential[int](n)
		arrayops.RotateRightNaive(naive, k)
		arrayops.RotateRight(fast, k)
		left, via := arrayops.Sequential[int](n), arrayops.Sequential[int](n)
		arrayops.RotateLeft(left, k)
		arrayops.RotateLeftViaRight(via, k)
		if !slices.Equal(naive, fast) {
			return out, r.mismatch(SuiteRotate, "reversals", n)
		}
		if !slices.Equal(left, via) {
			return out, r.mismatch(SuiteRotate, "left-via-right", n)
		}

		for _, c := range cases {
			var s []int
			sample, err := r.Measure(SuiteRotate, c.name, n,
				func() { s = arrayops.Sequential[int](n) },
				func() { c.run(s, k) },
			)
			if err != nil {
				return out, err
			}
			out = append(out, sample)
		}
	}

	return out, nil
}

// CountSumKSuite counts runs summing to 7 over values in [-5, 5].
func (r *Runner) CountSumKSuite(sizes []int) ([]Sample, error) {
	strategies := []struct {
		name string
		run  func([]int, int) int
	}{
		{"naive", window.CountSumKNaive[int]},
		{"prefix", window.CountSumKPrefix[int]},
		{"hashed", window.CountSumKHashed[int]},
	}

	var out []Sample
	for _, n := range sizes {
		data := randomInts(n, -5, 5)
		want := strategies[0].run(data, 7)
		for _, st := range strategies[1:] {
			if st.run(data, 7) != want {
				return out, r.mismatch(SuiteCountSumK, st.name, n)
			}
		}
		for _, st := range strategies {
			s, err := r.Measure(SuiteCountSumK, st.name, n, nil, func() { _ = st.run(data, 7) })
			if err != nil {
				return out, err
			}
			out = append(out, s)
		}
	}

	return out, nil
}

// MinLenSuite finds the shortest run reaching a target over values in [0, 9].
// The target is a quarter of the total, so the answer is far from trivial.
func (r *Runner) MinLenSuite(sizes []int) ([]Sample, error) {
	strategies := []struct {
		name string
		run  func([]int, int) (int, bool)
	}{
		{"naive", window.MinLenAtLeastNaive[int]},
		{"prefix", window.MinLenAtLeastPrefix[int]},
		{"sliding", window.MinLenAtLeastSliding[int]},
	}

	var out []Sample
	for _, n := range sizes {
		data := randomInts(n, 0, 9)
		total := 0
		for _, v := range data {
			total += v
		}
		target := max(1, total/4)

		wantLen, wantOK := strategies[0].run(data, target)
		for _, st := range strategies[1:] {
			if l, ok := st.run(data, target); l != wantLen || ok != wantOK {
				return out, r.mismatch(SuiteMinLen, st.name, n)
			}
		}
		for _, st := range strategies {
			s, err := r.Measure(SuiteMinLen, st.name, n, nil, func() { _, _ = st.run(data, target) })
			if err != nil {
				return out, err
			}
			out = append(out, s)
		}
	}

	return out, nil
}

// mismatch logs and returns ErrMismatch for a strategy disagreeing with the baseline.
func (r *Runner) mismatch(suite, name string, size int) error {
	r.logger.Error("strategy disagrees with baseline",
		zap.String("suite", suite), zap.String("case", name), zap.Int("size", size))

	return fmt.Errorf("bench: %s %s at %d: %w", suite, name, size, ErrMismatch)
}

func randomInts(n, lo, hi int) []int {
	rng := rand.New(rand.NewSource(dataSeed))
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo+1)
	}

	return out
}
