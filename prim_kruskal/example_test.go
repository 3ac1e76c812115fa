// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cphb/core"
	"github.com/katalvlaran/cphb/prim_kruskal"
)

func printTree(edges []core.Edge, total int64) {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.From + "-" + e.To
	}
	fmt.Printf("Total: %d, Edges: %s\n", total, strings.Join(parts, " "))
}

// ExampleKruskal connects six towns as cheaply as possible.
func ExampleKruskal() {
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    int64
	}{
		{"1", "2", 3}, {"1", "5", 5}, {"2", "3", 5}, {"2", "5", 6},
		{"3", "4", 9}, {"3", "6", 3}, {"4", "6", 7}, {"5", "6", 2},
	} {
		_, _ = g.AddEdge(e.u, e.v, e.w)
	}

	edges, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	printTree(edges, total)

	// Output:
	// Total: 20, Edges: 5-6 1-2 3-6 1-5 4-6
}

// ExamplePrim grows the tree of a seven-vertex graph from A.
func ExamplePrim() {
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    int64
	}{
		{"A", "B", 2}, {"A", "C", 4}, {"B", "C", 1}, {"B", "D", 3},
		{"C", "E", 5}, {"D", "E", 1}, {"D", "F", 7}, {"E", "G", 2}, {"F", "G", 4},
	} {
		_, _ = g.AddEdge(e.u, e.v, e.w)
	}

	edges, total, err := prim_kruskal.Prim(g, "A")
	if err != nil {
		fmt.Println(err)
		return
	}
	printTree(edges, total)

	// Output:
	// Total: 13, Edges: A-B B-C B-D D-E E-G F-G
}

// ExampleCompute shows the error for a graph with nothing to span.
func ExampleCompute() {
	_, _, err := prim_kruskal.Compute(core.NewGraph(core.WithWeighted()), prim_kruskal.DefaultOptions())
	fmt.Println(err)

	// Output:
	// prim_kruskal: graph is disconnected
}
