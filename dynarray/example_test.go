package dynarray_test

import (
	"fmt"

	"github.com/katalvlaran/lvlarray/dynarray"
)

// ExampleBuffer_Push shows how each policy sizes the first block and how the
// capacity evolves as elements are pushed.
func ExampleBuffer_Push() {
	for _, p := range dynarray.Policies() {
		b := dynarray.New[int]()
		var caps []int
		for i := 0; i < 6; i++ {
			b.Push(i, p)
			caps = append(caps, b.Cap())
		}
		fmt.Printf("%-8s %v\n", p, caps)
	}
	// Output:
	// fixed    [1000 1000 1000 1000 1000 1000]
	// golden   [1 2 3 4 6 6]
	// doubling [2 2 4 4 8 8]
}

func ExampleBuffer_Get() {
	b := dynarray.NewWithCapacity[string](4)
	b.Append("x")
	v, _ := b.Get(0)
	_, err := b.Get(1) // reserved but not live
	fmt.Println(v, b.Len(), b.Cap(), err)
	// Output:
	// x 1 4 Buffer.Get(1) len=1: dynarray: index out of range
}
