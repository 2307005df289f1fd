package bench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlarray/bench"
	"github.com/katalvlaran/lvlarray/dynarray"
)

func casesOf(samples []bench.Sample) []string {
	out := make([]string, 0, len(samples))
	for _, s := range samples {
		out = append(out, s.Case)
	}

	return out
}

func TestGrowthSuite(t *testing.T) {
	r, logs := observed(t, zap.NewAtomicLevelAt(zap.DebugLevel))

	samples, err := r.GrowthSuite([]int{10000})
	require.NoError(t, err)
	require.Len(t, samples, 3)
	assert.Equal(t, []string{"fixed", "golden", "doubling"}, casesOf(samples))

	byCase := map[string]bench.Sample{}
	for _, s := range samples {
		byCase[s.Case] = s
		assert.Positive(t, s.Bytes)
	}
	assert.Equal(t, 45000, byCase["fixed"].Copies)
	assert.Equal(t, 16382, byCase["doubling"].Copies)
	assert.Less(t, byCase["golden"].Copies, 3*10000)
	assert.Equal(t, 9, byCase["fixed"].Reallocations)     // 1000 → 10000
	assert.Equal(t, 13, byCase["doubling"].Reallocations) // 2 → 16384
	assert.Equal(t, uint64(16384*8), byCase["doubling"].Bytes)

	assert.NotZero(t, logs.FilterMessage("grow").Len())
	assert.Equal(t, 3, logs.FilterMessage("sample").Len())
}

func TestGrowthSuite_NoGrowLogsAboveDebug(t *testing.T) {
	r, logs := observed(t, zap.NewAtomicLevelAt(zap.InfoLevel))
	_, err := r.GrowthSuite([]int{100})
	require.NoError(t, err)
	assert.Zero(t, logs.FilterMessage("grow").Len())
}

func TestTransposeSuite(t *testing.T) {
	r, _ := observed(t, zap.NewAtomicLevelAt(zap.InfoLevel))

	samples, err := r.TransposeSuite([]int{5, 16}, []int{4})
	require.NoError(t, err)
	assert.Len(t, samples, 2*5)
	assert.Equal(t,
		[]string{"nested/naive", "flat/naive", "nested/tiled-4", "flat/tiled-4", "flat/scratch-4"},
		casesOf(samples[:5]))
}

func TestMultiplySuite(t *testing.T) {
	r, logs := observed(t, zap.NewAtomicLevelAt(zap.InfoLevel))

	samples, err := r.MultiplySuite([]int{7, 16}, []int{3, 8}, 2)
	require.NoError(t, err)
	assert.Len(t, samples, 2*(1+2*6))
	assert.Zero(t, logs.FilterMessage("strategy disagrees with baseline").Len())

	stored, err := r.Store().BySuiteSize(bench.SuiteMultiply, 16)
	require.NoError(t, err)
	assert.Len(t, stored, 13)
}

func TestRotateSuite(t *testing.T) {
	r, _ := observed(t, zap.NewAtomicLevelAt(zap.InfoLevel))
	samples, err := r.RotateSuite([]int{1, 10, 99})
	require.NoError(t, err)
	assert.Len(t, samples, 3*4)
}

func TestWindowSuites(t *testing.T) {
	r, _ := observed(t, zap.NewAtomicLevelAt(zap.InfoLevel))

	counts, err := r.CountSumKSuite([]int{50, 200})
	require.NoError(t, err)
	assert.Len(t, counts, 2*3)

	lens, err := r.MinLenSuite([]int{50, 200})
	require.NoError(t, err)
	assert.Len(t, lens, 2*3)

	suites, err := r.Store().Suites()
	require.NoError(t, err)
	assert.Equal(t, []string{bench.SuiteCountSumK, bench.SuiteMinLen}, suites)
}

func TestBaselines_NameRealCases(t *testing.T) {
	assert.Equal(t, dynarray.Fixed.String(), bench.Baselines[bench.SuiteGrowth])
	for _, suite := range []string{
		bench.SuiteGrowth, bench.SuiteTranspose, bench.SuiteMultiply,
		bench.SuiteRotate, bench.SuiteCountSumK, bench.SuiteMinLen,
	} {
		assert.NotEmpty(t, bench.Baselines[suite], suite)
	}
}
