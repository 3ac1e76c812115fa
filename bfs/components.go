// SPDX-License-Identifier: MIT

package bfs

import (
	"sort"

	"github.com/katalvlaran/cphb/core"
)

// Components partitions an undirected graph into connected components.
// Each component is sorted ascending; components are ordered by their
// smallest vertex ID. A graph is connected iff len(result) <= 1.
//
// Returns ErrGraphNil or ErrDirectedGraph.
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.HasDirectedEdges() {
		return nil, ErrDirectedGraph
	}

	var comps [][]string
	seen := make(map[string]bool, g.VertexCount())
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		for _, v := range comp {
			seen[v] = true
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// Bipartite tries to 2-color an undirected graph so that adjacent vertices
// get different colors. Each component's smallest vertex gets color 0 and
// the rest alternate by BFS depth parity.
//
// It returns the coloring and true on success, or nil and false when an
// odd cycle (including a self-loop) exists.
// Complexity: O(V + E).
func Bipartite(g *core.Graph) (map[string]int, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if g.HasDirectedEdges() {
		return nil, false, ErrDirectedGraph
	}

	color := make(map[string]int, g.VertexCount())
	for _, id := range g.Vertices() {
		if _, done := color[id]; done {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, false, err
		}
		for v, d := range res.Depth {
			color[v] = d % 2
		}
	}

	// A BFS layering is a proper coloring iff no edge joins equal colors.
	for _, e := range g.Edges() {
		if color[e.From] == color[e.To] {
			return nil, false, nil
		}
	}

	return color, true, nil
}
