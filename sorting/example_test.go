// SPDX-License-Identifier: MIT

package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/cphb/sorting"
)

func ExampleInversions() {
	fmt.Println(sorting.Inversions([]int{1, 3, 8, 2, 9, 2, 5, 6}))
	// Output: 9
}

func ExampleEqualRange() {
	xs := []int{1, 2, 3, 5, 5, 5, 8, 9}
	lo, hi := sorting.EqualRange(xs, 5)
	fmt.Println(lo, hi, hi-lo)
	// Output: 3 6 3
}
