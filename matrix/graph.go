// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/cphb/core"
)

// GraphMatrix is a square Matrix whose rows and columns are the vertices
// of a graph in sorted order.
type GraphMatrix struct {
	Vertices []string
	M        *Matrix
	index    map[string]int
}

// At returns the entry for the ordered pair (from, to).
func (gm *GraphMatrix) At(from, to string) (int64, error) {
	i, ok := gm.index[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, from)
	}
	j, ok := gm.index[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, to)
	}

	return gm.M.data[i*gm.M.c+j], nil
}

// adjacency builds the n×n matrix of g with cell(i, j) folded over every
// arc i→j. Undirected edges contribute both arcs; loops contribute one.
func adjacency(g *core.Graph, mod, zero int64, cell func(old int64, a core.Arc) int64) (*GraphMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	c := core.Compact(g)
	n := c.N()
	if n == 0 {
		return nil, fmt.Errorf("%w: graph has no vertices", ErrBadShape)
	}
	m, err := New(n, n, mod)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = zero
	}
	for u, arcs := range c.Arcs {
		for _, a := range arcs {
			m.data[u*n+a.To] = cell(m.data[u*n+a.To], a)
		}
	}

	index := make(map[string]int, n)
	for i, id := range c.IDs() {
		index[id] = i
	}

	return &GraphMatrix{Vertices: c.IDs(), M: m, index: index}, nil
}

// CountPaths returns the number of walks with exactly length edges between
// every ordered pair of vertices: the length-th power of the adjacency
// matrix, where parallel edges count separately. Counts are reduced by
// mod when mod > 0.
// Complexity: O(n³ log length).
func CountPaths(g *core.Graph, length, mod int64) (*GraphMatrix, error) {
	if mod < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadModulus, mod)
	}
	gm, err := adjacency(g, mod, 0, func(old int64, _ core.Arc) int64 { return old + 1 })
	if err != nil {
		return nil, err
	}
	for i, v := range gm.M.data {
		gm.M.data[i] = gm.M.norm(v)
	}
	if gm.M, err = Pow(gm.M, length); err != nil {
		return nil, err
	}

	return gm, nil
}

// ShortestFixedLength returns, for every ordered pair, the length of the
// shortest walk with exactly length edges, or Inf when none exists.
// Edge lengths are weights for weighted graphs and 1 otherwise.
// Complexity: O(n³ log length).
func ShortestFixedLength(g *core.Graph, length int64) (*GraphMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	unit := !g.Weighted()
	gm, err := adjacency(g, 0, Inf, func(old int64, a core.Arc) int64 {
		w := a.Weight
		if unit {
			w = 1
		}
		return min(old, w)
	})
	if err != nil {
		return nil, err
	}
	if gm.M, err = MinPlusPow(gm.M, length); err != nil {
		return nil, err
	}

	return gm, nil
}

// SpanningTreeCount returns the number of spanning trees of an undirected
// graph modulo a prime mod, by Kirchhoff's theorem: the determinant of the
// Laplacian with its first row and column removed. Parallel edges count
// separately; loops are ignored. A disconnected graph has 0 trees and a
// single vertex has 1.
// Complexity: O(n³).
func SpanningTreeCount(g *core.Graph, mod int64) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if g.HasDirectedEdges() {
		return 0, ErrDirectedGraph
	}
	if mod <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadModulus, mod)
	}
	c := core.Compact(g)
	n := c.N()
	if n <= 1 {
		return int64(n) % mod, nil
	}

	lap, err := New(n-1, n-1, mod)
	if err != nil {
		return 0, err
	}
	bump := func(i, j int, d int64) {
		if i > 0 && j > 0 {
			k := (i-1)*(n-1) + j - 1
			lap.data[k] = lap.norm(lap.data[k] + d)
		}
	}
	for _, e := range c.Edges {
		if e.From == e.To {
			continue
		}
		bump(e.From, e.From, 1)
		bump(e.To, e.To, 1)
		bump(e.From, e.To, -1)
		bump(e.To, e.From, -1)
	}

	return DeterminantMod(lap)
}
