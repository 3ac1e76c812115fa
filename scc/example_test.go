// SPDX-License-Identifier: MIT

package scc_test

import (
	"fmt"

	"github.com/katalvlaran/cphb/core"
	"github.com/katalvlaran/cphb/scc"
)

func ExampleKosaraju() {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{
		{"1", "2"}, {"1", "4"}, {"2", "1"}, {"2", "5"}, {"3", "2"},
		{"3", "7"}, {"5", "4"}, {"6", "3"}, {"6", "5"}, {"7", "6"},
	} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	comps, _ := scc.Kosaraju(g)
	fmt.Println(comps)
	// Output: [[3 6 7] [1 2] [5] [4]]
}

func ExampleTwoSAT() {
	s := scc.NewTwoSAT(2)
	_ = s.AddClause(scc.Pos(0), scc.Pos(1)) // x0 ∨ x1
	_ = s.AddClause(scc.Neg(0), scc.Neg(0)) // ¬x0
	assign, ok := s.Solve()
	fmt.Println(ok, assign)
	// Output: true [false true]
}
