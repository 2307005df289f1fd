package bench_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlarray/bench"
)

func sample(suite, name string, size int, median time.Duration) bench.Sample {
	return bench.Sample{ID: uuid.NewString(), Suite: suite, Case: name, Size: size, Median: median}
}

func fillStore(t *testing.T) *bench.Store {
	t.Helper()
	st, err := bench.NewStore()
	require.NoError(t, err)
	for _, s := range []bench.Sample{
		sample("multiply", "naive", 64, 900),
		sample("multiply", "tiled-32", 64, 300),
		sample("multiply", "naive", 128, 7000),
		sample("rotate", "naive", 64, 50),
		sample("multiply", "flat-rowB-32", 64, 200),
	} {
		require.NoError(t, st.Insert(s))
	}

	return st
}

func TestStore_BySuiteKeepsInsertionOrder(t *testing.T) {
	st := fillStore(t)

	got, err := st.BySuite("multiply")
	require.NoError(t, err)
	require.Len(t, got, 4)
	var cases []string
	for i, s := range got {
		cases = append(cases, s.Case)
		if i > 0 {
			assert.Greater(t, s.Seq, got[i-1].Seq)
		}
	}
	assert.Equal(t, []string{"naive", "tiled-32", "naive", "flat-rowB-32"}, cases)
}

func TestStore_BySuiteSize(t *testing.T) {
	st := fillStore(t)

	got, err := st.BySuiteSize("multiply", 64)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = st.BySuiteSize("multiply", 256)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_Fastest(t *testing.T) {
	st := fillStore(t)

	best, err := st.Fastest("multiply", 64)
	require.NoError(t, err)
	assert.Equal(t, "flat-rowB-32", best.Case)

	_, err = st.Fastest("transpose", 64)
	require.ErrorIs(t, err, bench.ErrNotFound)
}

func TestStore_GetAndSuites(t *testing.T) {
	st, err := bench.NewStore()
	require.NoError(t, err)
	s := sample("window", "hashed", 10, 1)
	require.NoError(t, st.Insert(s))
	require.NoError(t, st.Insert(sample("growth", "fixed", 10, 1)))

	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed", got.Case)
	assert.Equal(t, 1, got.Seq)

	_, err = st.Get(uuid.NewString())
	require.ErrorIs(t, err, bench.ErrNotFound)

	suites, err := st.Suites()
	require.NoError(t, err)
	assert.Equal(t, []string{"growth", "window"}, suites)
}

func TestStore_DuplicateIDReplaces(t *testing.T) {
	st, err := bench.NewStore()
	require.NoError(t, err)
	s := sample("rotate", "naive", 8, 10)
	require.NoError(t, st.Insert(s))
	s.Median = 5
	require.NoError(t, st.Insert(s))

	all, err := st.BySuite("rotate")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, time.Duration(5), all[0].Median)
}
