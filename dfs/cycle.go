// SPDX-License-Identifier: MIT
//
// FindCycle reports one cycle of a directed, undirected or mixed graph using
// three-color DFS: a cycle exists iff some edge leads back to a Gray vertex.
// In undirected graphs the edge used to enter a vertex is not reused, so a
// pair of parallel edges forms a cycle but a single edge does not.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (recursion stack + state map)

package dfs

import (
	"fmt"

	"github.com/katalvlaran/cphb/core"
)

// cycleFinder holds the DFS state of one FindCycle call.
type cycleFinder struct {
	graph *core.Graph
	state map[string]int
	path  []string
	cycle []string
}

// FindCycle returns a closed cycle [v0, v1, ..., v0] if g has one.
// Vertices are tried in sorted order and neighbors in edge creation order,
// so the reported cycle is deterministic. A self-loop is reported as [v, v].
func FindCycle(g *core.Graph) ([]string, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}

	verts := g.Vertices()
	f := &cycleFinder{
		graph: g,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if f.state[v] != white {
			continue
		}
		found, err := f.visit(v, "")
		if err != nil {
			return nil, false, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		if found {
			return f.cycle, true, nil
		}
	}

	return nil, false, nil
}

// visit explores id, entered through edge via (empty for roots).
func (f *cycleFinder) visit(id, via string) (bool, error) {
	f.state[id] = gray
	f.path = append(f.path, id)

	edges, err := f.graph.Neighbors(id)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, e := range edges {
		if !e.Directed && e.ID == via {
			continue
		}
		nbr := e.Other(id)
		switch f.state[nbr] {
		case white:
			found, err := f.visit(nbr, e.ID)
			if err != nil || found {
				return found, err
			}
		case gray:
			f.cycle = f.closeCycle(nbr)

			return true, nil
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = black

	return false, nil
}

// closeCycle copies the stack segment starting at start and closes it.
func (f *cycleFinder) closeCycle(start string) []string {
	i := len(f.path) - 1
	for f.path[i] != start {
		i--
	}
	out := append([]string(nil), f.path[i:]...)

	return append(out, start)
}
