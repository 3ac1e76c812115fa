// SPDX-License-Identifier: MIT

package segtree_test

import (
	"fmt"

	"github.com/katalvlaran/cphb/segtree"
)

func ExampleLazy() {
	lt := segtree.NewLazy([]int64{1, 2, 3, 4, 5})
	_ = lt.Add(0, 4, 1)
	_ = lt.Assign(1, 2, 0)
	s, _ := lt.Sum(0, 4)
	fmt.Println(s)
	// Output: 13
}

func ExamplePersistent() {
	p, _ := segtree.NewPersistent([]int64{1, 2, 3})
	v1, _ := p.Set(0, 1, 20)
	old, _ := p.Sum(0, 0, 2)
	cur, _ := p.Sum(v1, 0, 2)
	fmt.Println(old, cur)
	// Output: 6 24
}
