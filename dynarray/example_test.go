package dynarray_test

import (
	"fmt"

	"github.com/katalvlaran/lvmat/dynarray"
)

// ExampleArray_Reserve shows the two reserve modes.
func ExampleArray_Reserve() {
	a := dynarray.Of(1, 2, 3)

	_ = a.Reserve(5, true) // keep the prefix, zero-fill the rest
	fmt.Println(a)

	_ = a.Reserve(2, false) // discard everything
	fmt.Println(a)

	// Output:
	// [1 2 3 0 0]
	// [0 0]
}
