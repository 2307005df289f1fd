package bench_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlarray/bench"
)

func TestTraversalSuite(t *testing.T) {
	r, logs := observed(t, zap.NewAtomicLevelAt(zap.InfoLevel))

	samples, err := r.TraversalSuite([]int{5, 16}, []int{4, 7})
	require.NoError(t, err)
	require.Len(t, samples, 2*(2+3))
	assert.Equal(t,
		[]string{"col-wise", "row-wise", "untiled", "tiled-4", "tiled-7"},
		casesOf(samples[:5]))
	assert.Zero(t, logs.FilterMessage("strategy disagrees with baseline").Len())

	trav, err := r.Store().BySuite(bench.SuiteTraversal)
	require.NoError(t, err)
	assert.Len(t, trav, 4)
	rot, err := r.Store().BySuiteSize(bench.SuiteRotate90, 16)
	require.NoError(t, err)
	assert.Len(t, rot, 3)
}

func TestFrontInsertSuite(t *testing.T) {
	r, _ := observed(t, zap.NewAtomicLevelAt(zap.InfoLevel))

	samples, err := r.FrontInsertSuite([]int{1, 10, 200})
	require.NoError(t, err)
	require.Len(t, samples, 3*2)
	assert.Equal(t, []string{"array", "list"}, casesOf(samples[:2]))
	for _, s := range samples {
		assert.Equal(t, bench.SuiteFrontInsert, s.Suite)
	}
}

func TestFrontInsertKnee(t *testing.T) {
	at := func(name string, size int, median int64) bench.Sample {
		s := sample(bench.SuiteFrontInsert, name, size, 0)
		s.Median = time.Duration(median)
		return s
	}

	samples := []bench.Sample{
		at("array", 1000, 50), at("list", 1000, 80),
		at("array", 100, 5), at("list", 100, 9),
		at("array", 10000, 900), at("list", 10000, 800),
		at("array", 5000, 400), at("list", 5000, 300),
		sample("traversal", "array", 10, 999), // other suites are ignored
	}
	size, ok := bench.FrontInsertKnee(samples)
	require.True(t, ok)
	assert.Equal(t, 5000, size)

	_, ok = bench.FrontInsertKnee(samples[:4])
	assert.False(t, ok)

	_, ok = bench.FrontInsertKnee([]bench.Sample{at("array", 10, 99)}) // no list to compare with
	assert.False(t, ok)
}

func TestBaselines_MemoryAccessSuites(t *testing.T) {
	assert.Equal(t, "col-wise", bench.Baselines[bench.SuiteTraversal])
	assert.Equal(t, "untiled", bench.Baselines[bench.SuiteRotate90])
	assert.Equal(t, "list", bench.Baselines[bench.SuiteFrontInsert])
}
