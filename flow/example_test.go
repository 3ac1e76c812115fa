// SPDX-License-Identifier: MIT

package flow_test

import (
	"fmt"

	"github.com/katalvlaran/cphb/core"
	"github.com/katalvlaran/cphb/flow"
)

// ExampleFordFulkerson_medium shows Ford–Fulkerson on a two‐path network.
// Graph:
//
//	s→a(3)→t(2)
//	s→b(2)→t(3)
//
// Each route is limited by its narrowest edge: 2 + 2 = 4.
func ExampleFordFulkerson_medium() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("s", "a", 3)
	_, _ = g.AddEdge("a", "t", 2)
	_, _ = g.AddEdge("s", "b", 2)
	_, _ = g.AddEdge("b", "t", 3)

	maxFlow, _, _ := flow.FordFulkerson(g, "s", "t", flow.DefaultOptions())
	fmt.Println(maxFlow)
	// Output:
	// 4
}

// ExampleDinic_medium demonstrates Dinic on a network with two augmenting paths.
func ExampleDinic_medium() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("s", "a", 5)
	_, _ = g.AddEdge("a", "t", 4)
	_, _ = g.AddEdge("s", "b", 3)
	_, _ = g.AddEdge("b", "t", 6)

	maxFlow, _, _ := flow.Dinic(g, "s", "t", flow.DefaultOptions())
	fmt.Println(maxFlow)
	// Output:
	// 7
}

// ExampleMinCut prints the edges whose removal separates 1 from 6 at minimum cost.
func ExampleMinCut() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range []struct {
		u, v string
		c    int64
	}{
		{"1", "2", 5}, {"1", "4", 4}, {"2", "3", 6}, {"4", "2", 3},
		{"4", "5", 1}, {"3", "5", 8}, {"3", "6", 5}, {"5", "6", 2},
	} {
		_, _ = g.AddEdge(e.u, e.v, e.c)
	}

	cut, err := flow.MinCut(g, "1", "6", flow.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("value:", cut.Value, "source side:", cut.Source)
	for _, e := range cut.Edges {
		fmt.Printf("%s->%s (%d)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// value: 7 source side: [1 2 4]
	// 2->3 (6)
	// 4->5 (1)
}

// ExampleEdgeDisjointPaths lists two routes that share vertex c but no edge.
func ExampleEdgeDisjointPaths() {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{
		{"s", "a"}, {"s", "b"}, {"a", "c"}, {"b", "c"},
		{"c", "d"}, {"c", "e"}, {"d", "t"}, {"e", "t"},
	} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	paths, _ := flow.EdgeDisjointPaths(g, "s", "t", flow.DefaultOptions())
	for _, p := range paths {
		fmt.Println(p)
	}
	// Output:
	// [s a c d t]
	// [s b c e t]
}
