// SPDX-License-Identifier: MIT

package dynarray_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlarray/dynarray"
)

func TestNew_Empty(t *testing.T) {
	b := dynarray.New[int]()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cap())
	assert.Equal(t, dynarray.Stats{}, b.Stats()) // no allocation for an empty buffer

	_, err := b.Get(0)
	require.ErrorIs(t, err, dynarray.ErrOutOfRange)
}

func TestZeroValue_UsesDefaults(t *testing.T) {
	for _, p := range dynarray.Policies() {
		t.Run(p.String(), func(t *testing.T) {
			var b dynarray.Buffer[int]
			for i := 0; i < 10; i++ {
				b.Push(i, p)
			}
			assert.Equal(t, 10, b.Len())
			assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, b.Values())
		})
	}

	var fixed dynarray.Buffer[int]
	fixed.PushFixed(1)
	assert.Equal(t, dynarray.DefaultFixedIncrement, fixed.Cap())

	var golden dynarray.Buffer[int]
	for i := 0; i < 5; i++ {
		golden.PushGolden(i)
	}
	assert.Equal(t, 6, golden.Cap()) // 1 → 2 → 3 → 4 → 6

	var appended dynarray.Buffer[string]
	appended.Append("a")
	assert.Equal(t, 2, appended.Cap()) // DefaultPolicy is Doubling
}

func TestNewWithCapacity(t *testing.T) {
	b := dynarray.NewWithCapacity[int](1)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 1, b.Cap())
	assert.Equal(t, 1, b.Stats().Allocations)

	z := dynarray.NewWithCapacity[int](0)
	assert.Equal(t, 0, z.Cap())
	assert.Equal(t, 0, z.Stats().Allocations) // zero capacity allocates nothing
}

func TestNewWithCapacity_PanicsOnOverflow(t *testing.T) {
	assertOverflowPanic(t, func() { dynarray.NewWithCapacity[int](-1) })
	assertOverflowPanic(t, func() { dynarray.NewWithCapacity[[1024]byte](int(^uint(0)>>1) / 512) })
}

func TestPush_FirstAllocationPerPolicy(t *testing.T) {
	cases := []struct {
		policy dynarray.Policy
		cap    int
	}{
		{dynarray.Fixed, 1000},
		{dynarray.Golden, 1},
		{dynarray.Doubling, 2},
	}
	for _, tc := range cases {
		t.Run(tc.policy.String(), func(t *testing.T) {
			b := dynarray.New[int]()
			b.Push(42, tc.policy)
			assert.Equal(t, 1, b.Len())
			assert.Equal(t, tc.cap, b.Cap())
			v, err := b.Get(0)
			require.NoError(t, err)
			assert.Equal(t, 42, v)
			assert.Equal(t, 0, b.Stats().Reallocations) // first block is not a move
		})
	}
}

func TestPush_DoublingFromCapacityOne(t *testing.T) {
	b := dynarray.NewWithCapacity[int](1)
	b.PushDoubling(1)
	b.PushDoubling(2)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 2, b.Cap())
	assert.Equal(t, []int{1, 2}, b.Values())
	assert.Equal(t, 1, b.Stats().ElementsCopied)
}

func TestPush_NoDataLoss(t *testing.T) {
	const n = 5000
	for _, p := range dynarray.Policies() {
		t.Run(p.String(), func(t *testing.T) {
			b := dynarray.New[int]()
			for i := 0; i < n; i++ {
				b.Push(i*7, p)
				require.LessOrEqual(t, b.Len(), b.Cap())
			}
			require.Equal(t, n, b.Len())
			for i := 0; i < n; i++ {
				v, err := b.Get(i)
				require.NoError(t, err)
				require.Equal(t, i*7, v)
			}
			for k := 0; k < 3; k++ {
				_, err := b.Get(n + k)
				require.ErrorIs(t, err, dynarray.ErrOutOfRange) // reserved slots stay unreadable
			}
		})
	}
}

func TestPush_MixedPolicies(t *testing.T) {
	b := dynarray.New[string]()
	b.PushGolden("a")
	b.PushFixed("b")
	b.PushDoubling("c")
	b.Append("d")
	assert.Equal(t, []string{"a", "b", "c", "d"}, b.Values())
	assert.Equal(t, 1001, b.Cap()) // golden→1, fixed→1001, no further growth
}

func TestGrowthCost_AmortizedVersusLinear(t *testing.T) {
	const n = 10000
	copies := map[dynarray.Policy]int{}
	for _, p := range dynarray.Policies() {
		b := dynarray.New[int32]()
		for i := 0; i < n; i++ {
			b.Push(int32(i), p)
		}
		copies[p] = b.Stats().ElementsCopied
	}

	assert.Equal(t, 45000, copies[dynarray.Fixed])    // 1000+2000+...+9000
	assert.Equal(t, 16382, copies[dynarray.Doubling]) // 2+4+...+8192
	assert.Less(t, copies[dynarray.Golden], 3*n)
	assert.Less(t, copies[dynarray.Doubling], 2*n)
}

func TestGrowthCost_FixedIsQuadratic(t *testing.T) {
	run := func(n int) int {
		b := dynarray.New[byte]()
		for i := 0; i < n; i++ {
			b.PushFixed(byte(i))
		}
		return b.Stats().ElementsCopied
	}
	small, large := run(20000), run(40000)
	// doubling n roughly quadruples the copy work
	assert.Greater(t, large, 3*small)
}

func TestGetSet_Bounds(t *testing.T) {
	b := dynarray.NewWithCapacity[int](8)
	b.Append(1)
	b.Append(2)

	require.NoError(t, b.Set(1, 20))
	v, err := b.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	for _, i := range []int{-1, 2, 7, 8} {
		_, err = b.Get(i)
		assert.ErrorIs(t, err, dynarray.ErrOutOfRange, "Get(%d)", i)
		assert.ErrorIs(t, b.Set(i, 0), dynarray.ErrOutOfRange, "Set(%d)", i)
	}
}

func TestRange_StopsEarly(t *testing.T) {
	b := dynarray.New[int]()
	for i := 1; i <= 5; i++ {
		b.Append(i)
	}
	var seen []int
	b.Range(func(i, v int) bool {
		seen = append(seen, v)
		return i < 2
	})
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestRelease_ExactlyOnce(t *testing.T) {
	b := dynarray.New[int]()
	b.Release() // nothing to drop
	assert.Equal(t, 0, b.Stats().Releases)

	b.Append(1)
	b.Release()
	b.Release()
	assert.Equal(t, 1, b.Stats().Releases)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cap())

	b.Append(9) // reusable after release
	v, err := b.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

func TestGrowthHook(t *testing.T) {
	var events []dynarray.GrowthEvent
	b := dynarray.New[int64](dynarray.WithGrowthHook(func(e dynarray.GrowthEvent) {
		events = append(events, e)
	}))
	for i := 0; i < 5; i++ {
		b.PushDoubling(int64(i))
	}

	require.Len(t, events, 3) // 0→2, 2→4, 4→8
	assert.Equal(t, dynarray.GrowthEvent{Policy: dynarray.Doubling, OldCap: 0, NewCap: 2, Bytes: 16}, events[0])
	assert.Equal(t, 4, events[2].OldCap)
	assert.Equal(t, 8, events[2].NewCap)
	assert.Equal(t, 4, events[2].Moved)
	assert.Equal(t, uint64(64), events[2].Bytes)
}

func TestPush_UnknownPolicyPanics(t *testing.T) {
	b := dynarray.New[int]()
	assert.PanicsWithError(t,
		fmt.Sprintf("dynarray: Push: NextCapacity: %s: policy(7)", dynarray.ErrUnknownPolicy),
		func() { b.Push(1, dynarray.Policy(7)) })
}

// assertOverflowPanic runs f and checks it panics with an error wrapping ErrCapacityOverflow.
func assertOverflowPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		require.True(t, errors.Is(err, dynarray.ErrCapacityOverflow), "got %v", err)
	}()
	f()
}
