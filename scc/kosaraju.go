// SPDX-License-Identifier: MIT

package scc

import (
	"sort"

	"github.com/katalvlaran/cphb/core"
)

// Kosaraju returns the strongly connected components of g in topological
// order of the component graph.
//
// Steps:
//  1. DFS over the whole graph records vertices in order of completion.
//  2. Walking that list backwards, a DFS on the transposed graph from each
//     unassigned vertex collects exactly one component.
//
// Complexity: O(V + E).
func Kosaraju(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	c := core.Compact(g)
	n := c.N()

	// 1) Completion order.
	adj := arcLists(c)
	visited := make([]bool, n)
	order := make([]int, 0, n)
	var first func(int)
	first = func(u int) {
		visited[u] = true
		for _, v := range adj[u] {
			if !visited[v] {
				first(v)
			}
		}
		order = append(order, u)
	}
	for u := 0; u < n; u++ {
		if !visited[u] {
			first(u)
		}
	}

	// 2) Components on the transpose.
	radj := arcLists(c.Reverse())
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	count := 0
	var second func(int)
	second = func(u int) {
		comp[u] = count
		for _, v := range radj[u] {
			if comp[v] < 0 {
				second(v)
			}
		}
	}
	for i := n - 1; i >= 0; i-- {
		if u := order[i]; comp[u] < 0 {
			second(u)
			count++
		}
	}

	return group(c, comp, count), nil
}

// Condensation builds the component graph of g. Component indices follow
// the topological order produced by Kosaraju.
// Complexity: O(V + E log E).
func Condensation(g *core.Graph) (*Condensed, error) {
	comps, err := Kosaraju(g)
	if err != nil {
		return nil, err
	}

	cd := &Condensed{
		Components: comps,
		Of:         make(map[string]int, g.VertexCount()),
		DAG:        make([][]int, len(comps)),
	}
	for i, ids := range comps {
		for _, id := range ids {
			cd.Of[id] = i
		}
	}

	seen := make(map[[2]int]bool)
	for _, id := range g.Vertices() {
		nbs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		from := cd.Of[id]
		for _, nb := range nbs {
			to := cd.Of[nb]
			if to == from || seen[[2]int{from, to}] {
				continue
			}
			seen[[2]int{from, to}] = true
			cd.DAG[from] = append(cd.DAG[from], to)
		}
	}
	for _, out := range cd.DAG {
		sort.Ints(out)
	}

	return cd, nil
}
