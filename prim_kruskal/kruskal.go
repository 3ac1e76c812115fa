// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/cphb/core"
	"github.com/katalvlaran/cphb/dsu"
)

// Kruskal builds a minimum spanning tree by scanning edges from lightest
// to heaviest and keeping each edge that joins two different components.
// Components live in a union-find over core.Compact indices. Equal weights
// keep creation order, so the result is deterministic. Self-loops are never
// taken.
//
// Edges are returned in the order they were accepted.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal(g *core.Graph) ([]core.Edge, int64, error) {
	n, err := checkGraph(g)
	if err != nil {
		return nil, 0, err
	}

	c := core.Compact(g)
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	sets := dsu.New(n)
	tree := make([]core.Edge, 0, n-1)
	var total int64
	for _, e := range edges {
		if len(tree) == n-1 {
			break
		}
		u, _ := c.IndexOf(e.From)
		v, _ := c.IndexOf(e.To)
		if sets.Union(u, v) {
			tree = append(tree, *e)
			total += e.Weight
		}
	}
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
