// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/cphb/core"
)

// CountPaths returns the number of distinct directed paths from -> to in a
// DAG. Parallel edges yield distinct paths; from == to counts the empty path.
//
// Dynamic programming over a topological order:
//
//	paths(from) = 1
//	paths(v)    = Σ paths(u) over edges u→v
//
// Errors: ErrGraphNil, ErrVertexNotFound, ErrUndirectedEdge, ErrCycleDetected.
// The count wraps on int64 overflow.
// Complexity: O(V + E).
func CountPaths(g *core.Graph, from, to string) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasVertex(from) {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	order, err := TopologicalSort(g)
	if err != nil {
		return 0, err
	}

	paths := make(map[string]int64, len(order))
	paths[from] = 1
	for _, u := range order {
		if paths[u] == 0 {
			continue
		}
		edges, err := g.Neighbors(u)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, e := range edges {
			paths[e.To] += paths[u]
		}
	}

	return paths[to], nil
}
