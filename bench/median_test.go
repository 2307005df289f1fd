package bench_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlarray/bench"
)

func TestMedianIndex(t *testing.T) {
	cases := []struct {
		name string
		in   []time.Duration
		want int
	}{
		{"single", []time.Duration{7}, 0},
		{"odd", []time.Duration{30, 10, 20}, 2},
		{"even takes lower middle", []time.Duration{40, 10, 30, 20}, 3},
		{"ties", []time.Duration{5, 5, 5}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := append([]time.Duration(nil), tc.in...)
			got, err := bench.MedianIndex(in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.in, in) // input order untouched
		})
	}
}

func TestMedianIndex_Empty(t *testing.T) {
	_, err := bench.MedianIndex(nil)
	require.ErrorIs(t, err, bench.ErrNoDurations)
}

func TestRatio(t *testing.T) {
	assert.InDelta(t, 4.0, bench.Ratio(400, 100), 1e-9)
	assert.InDelta(t, 0.5, bench.Ratio(100, 200), 1e-9)
	assert.InDelta(t, 10.0, bench.Ratio(10, 0), 1e-9) // candidate clamped to 1ns
	assert.InDelta(t, 1.0, bench.Ratio(0, 0), 1e-9)
}
