// SPDX-License-Identifier: MIT

package arrays_test

import (
	"fmt"

	"github.com/katalvlaran/cphb/arrays"
)

func ExampleMaxSubarray() {
	best, lo, hi := arrays.MaxSubarray([]int64{-1, 2, 4, -3, 5, 2, -5, 2})
	fmt.Println(best, lo, hi)
	// Output: 10 1 6
}

func ExampleSlidingWindowMin() {
	mins, _ := arrays.SlidingWindowMin([]int{2, 1, 4, 5, 3, 4, 1, 2}, 4)
	fmt.Println(mins)
	// Output: [1 1 3 1 1]
}
