// SPDX-License-Identifier: MIT

package rangeq_test

import (
	"fmt"

	"github.com/katalvlaran/cphb/rangeq"
)

func ExampleFenwick() {
	f := rangeq.NewFenwickFrom([]int64{1, 3, 4, 8, 6, 1, 4, 2})
	s, _ := f.RangeSum(3, 6)
	_ = f.Add(4, 3)
	t, _ := f.RangeSum(3, 6)
	fmt.Println(s, t)
	// Output: 19 22
}

func ExampleSegmentTree() {
	st := rangeq.NewSegmentTree([]int64{5, 8, 6, 3, 1, 7, 2, 6}, rangeq.MinMonoid)
	m, _ := st.Query(1, 6)
	fmt.Println(m)
	// Output: 1
}
