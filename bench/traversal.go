package bench

import (
	"container/list"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlarray/matrix"
)

// Case names shared by the suites below and Baselines.
const (
	caseColWise = "col-wise"
	caseRowWise = "row-wise"
	caseUntiled = "untiled"
	caseArray   = "array"
	caseList    = "list"
)

// traversalFill is the value of every traversal matrix element.
const traversalFill = 1

// sumSink keeps timed sums observable.
var sumSink int64

// TraversalSuite sums an n×n matrix of ones visiting columns outer and then
// rows outer, and rotates it 90° clockwise untiled (one n×n tile) and once
// per block size. Samples of both suites, SuiteTraversal and SuiteRotate90,
// are returned in measurement order.
func (r *Runner) TraversalSuite(sizes, blocks []int) ([]Sample, error) {
	var out []Sample
	for _, n := range sizes {
		m, err := matrix.Constant[int64](n, n, traversalFill)
		if err != nil {
			return out, err
		}

		want := int64(n) * int64(n) * traversalFill
		if got := matrix.SumColWise(m); got != want {
			return out, r.mismatch(SuiteTraversal, caseColWise, n)
		}
		if got := matrix.SumRowWise(m); got != want {
			return out, r.mismatch(SuiteTraversal, caseRowWise, n)
		}

		for _, c := range []struct {
			name string
			sum  func(*matrix.Nested[int64]) int64
		}{
			{caseColWise, matrix.SumColWise[int64]},
			{caseRowWise, matrix.SumRowWise[int64]},
		} {
			s, err := r.Measure(SuiteTraversal, c.name, n, nil, func() { sumSink = c.sum(m) })
			if err != nil {
				return out, err
			}
			out = append(out, s)
		}

		rot, err := r.rotate90Cases(n, blocks)
		out = append(out, rot...)
		if err != nil {
			return out, err
		}
	}

	return out, nil
}

func (r *Runner) rotate90Cases(n int, blocks []int) ([]Sample, error) {
	src, err := matrix.Sequential[int64](n, n, 1)
	if err != nil {
		return nil, err
	}
	want, err := matrix.Rotate90(src, n)
	if err != nil {
		return nil, err
	}

	type rotCase struct {
		name  string
		block int
	}
	cases := []rotCase{{caseUntiled, n}}
	for _, b := range blocks {
		cases = append(cases, rotCase{fmt.Sprintf("tiled-%d", b), b})
	}
	for _, c := range cases[1:] {
		got, err := matrix.Rotate90(src, c.block)
		if err != nil {
			return nil, fmt.Errorf("bench: %s %s: %w", SuiteRotate90, c.name, err)
		}
		if !matrix.Equal[int64](want, got) {
			return nil, r.mismatch(SuiteRotate90, c.name, n)
		}
	}

	var out []Sample
	for _, c := range cases {
		s, err := r.Measure(SuiteRotate90, c.name, n, nil, func() { _, _ = matrix.Rotate90(src, c.block) })
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}

	return out, nil
}

// FrontInsertSuite inserts 1..n one at a time at the front of a slice with
// capacity n, and of a singly linked list. The slice shifts every element
// per insert; the list allocates a node per insert. The first size at which
// the slice is slower is logged as the knee.
func (r *Runner) FrontInsertSuite(sizes []int) ([]Sample, error) {
	var out []Sample
	for _, n := range sizes {
		arr, lst := frontInsertSlice(n), frontInsertList(n)
		if lst.Len() != len(arr) {
			return out, r.mismatch(SuiteFrontInsert, caseList, n)
		}
		i := 0
		for e := lst.Front(); e != nil; e = e.Next() {
			if e.Value.(int) != arr[i] {
				return out, r.mismatch(SuiteFrontInsert, caseList, n)
			}
			i++
		}

		sa, err := r.Measure(SuiteFrontInsert, caseArray, n, nil, func() { _ = frontInsertSlice(n) })
		if err != nil {
			return out, err
		}
		sl, err := r.Measure(SuiteFrontInsert, caseList, n, nil, func() { _ = frontInsertList(n) })
		if err != nil {
			return out, err
		}
		out = append(out, sa, sl)
	}

	if size, ok := FrontInsertKnee(out); ok {
		r.logger.Info("knee", zap.String("suite", SuiteFrontInsert), zap.Int("size", size))
	}

	return out, nil
}

// FrontInsertKnee returns the smallest size at which the slice case of
// SuiteFrontInsert has a larger median than the list case. ok is false
// when the slice never loses within samples.
func FrontInsertKnee(samples []Sample) (size int, ok bool) {
	type pair struct{ array, list *Sample }
	bySize := map[int]*pair{}
	var sizes []int
	for i := range samples {
		s := &samples[i]
		if s.Suite != SuiteFrontInsert {
			continue
		}
		p, seen := bySize[s.Size]
		if !seen {
			p = &pair{}
			bySize[s.Size] = p
			sizes = append(sizes, s.Size)
		}
		switch s.Case {
		case caseArray:
			p.array = s
		case caseList:
			p.list = s
		}
	}
	slices.Sort(sizes)

	for _, n := range sizes {
		p := bySize[n]
		if p.array != nil && p.list != nil && p.array.Median > p.list.Median {
			return n, true
		}
	}

	return 0, false
}

// frontInsertSlice returns [n, n-1, ..., 1] built by front inserts.
func frontInsertSlice(n int) []int {
	s := make([]int, 0, n)
	for v := 1; v <= n; v++ {
		s = slices.Insert(s, 0, v)
	}

	return s
}

// frontInsertList returns n, n-1, ..., 1 built by PushFront.
func frontInsertList(n int) *list.List {
	l := list.New()
	for v := 1; v <= n; v++ {
		l.PushFront(v)
	}

	return l
}
