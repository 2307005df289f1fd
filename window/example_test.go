package window_test

import (
	"fmt"

	"github.com/katalvlaran/lvlarray/window"
)

func ExampleRangeSum() {
	p := window.PrefixSums([]int{1, 2, 3, 4, 5})
	s, _ := window.RangeSum(p, 1, 3)
	fmt.Println(s)
	// Output: 9
}

func ExampleCountSumKHashed() {
	fmt.Println(window.CountSumKHashed([]int{3, 4, 7, 2, -3, 1, 4, 2}, 7))
	// Output: 4
}
