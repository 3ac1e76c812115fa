// SPDX-License-Identifier: MIT

package matching

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/cphb/bfs"
	"github.com/katalvlaran/cphb/core"
	"github.com/katalvlaran/cphb/dfs"
)

// dag checks that g is a directed acyclic graph and returns its vertices.
func dag(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, err := dfs.TopologicalSort(g); err != nil {
		if errors.Is(err, dfs.ErrCycleDetected) || errors.Is(err, dfs.ErrUndirectedEdge) {
			return nil, fmt.Errorf("%w: %v", ErrNotDAG, err)
		}
		return nil, err
	}

	return g.Vertices(), nil
}

// cover matches out-copies to in-copies over succ and returns the paths
// formed by following matched edges, sorted by first vertex.
func cover(ids []string, succ [][]int) ([][]string, *bipartite, error) {
	n := len(ids)
	b := &bipartite{nLeft: n, nRight: n, adj: succ}
	if err := b.solve(); err != nil {
		return nil, nil, err
	}

	var paths [][]string
	for v := 0; v < n; v++ {
		if b.matchR[v] >= 0 {
			continue // v has a predecessor
		}
		var path []string
		for u := v; u >= 0; u = b.matchL[u] {
			path = append(path, ids[u])
		}
		paths = append(paths, path)
	}

	return paths, b, nil
}

// direct returns the arc lists of g over sorted vertex indices.
func direct(g *core.Graph, ids []string) [][]int {
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	succ := make([][]int, len(ids))
	seen := make(map[[2]int]bool)
	for _, e := range g.Edges() {
		key := [2]int{index[e.From], index[e.To]}
		if !seen[key] {
			seen[key] = true
			succ[key[0]] = append(succ[key[0]], key[1])
		}
	}
	for _, list := range succ {
		sort.Ints(list)
	}

	return succ
}

// closure returns, for every vertex, all vertices reachable from it.
func closure(g *core.Graph, ids []string) ([][]int, error) {
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	succ := make([][]int, len(ids))
	for i, id := range ids {
		res, err := bfs.BFS(g, id)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			if v != id {
				succ[i] = append(succ[i], index[v])
			}
		}
		sort.Ints(succ[i])
	}

	return succ, nil
}

// MinPathCover returns the fewest vertex-disjoint paths that together
// contain every vertex of a DAG. Its size is n minus a maximum matching
// between out-copies and in-copies of the vertices.
// Complexity: O(E·√V).
func MinPathCover(g *core.Graph) ([][]string, error) {
	ids, err := dag(g)
	if err != nil {
		return nil, err
	}
	paths, _, err := cover(ids, direct(g, ids))

	return paths, err
}

// MinGeneralPathCover returns the fewest paths covering every vertex of a
// DAG when paths may share vertices. Consecutive entries of a returned
// path are joined by a path in g, not necessarily by a single edge.
// Complexity: O(V·(V+E)) for the transitive closure plus the matching.
func MinGeneralPathCover(g *core.Graph) ([][]string, error) {
	ids, err := dag(g)
	if err != nil {
		return nil, err
	}
	succ, err := closure(g, ids)
	if err != nil {
		return nil, err
	}
	paths, _, err := cover(ids, succ)

	return paths, err
}

// MaxAntichain returns a largest set of vertices of a DAG no two of which
// are connected by a path, sorted. By Dilworth's theorem its size equals
// the minimum general path cover.
//
// In the closure's split graph, a vertex belongs to the antichain when
// neither of its copies is in König's minimum vertex cover.
func MaxAntichain(g *core.Graph) ([]string, error) {
	ids, err := dag(g)
	if err != nil {
		return nil, err
	}
	succ, err := closure(g, ids)
	if err != nil {
		return nil, err
	}
	_, b, err := cover(ids, succ)
	if err != nil {
		return nil, err
	}

	cl, cr := b.cover()
	var out []string
	for v := range ids {
		if !cl[v] && !cr[v] {
			out = append(out, ids[v])
		}
	}

	return out, nil
}
