// SPDX-License-Identifier: MIT

package euler

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cphb/core"
)

// incidence is one usable direction of edge idx.
type incidence struct {
	to, idx int
}

// multigraph is the edge-indexed view Hierholzer walks on.
type multigraph struct {
	c        *core.Compacted
	directed bool
	adj      [][]incidence
	deg      []int // undirected degree (loops count twice) or out-degree
	in       []int // in-degree, directed only
}

// load validates g and builds incidence lists sorted by (to, edge).
func load(g *core.Graph) (*multigraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	c := core.Compact(g)
	n := c.N()
	m := &multigraph{c: c, adj: make([][]incidence, n), deg: make([]int, n), in: make([]int, n)}

	var dir, undir int
	for i, e := range c.Edges {
		if e.Directed {
			dir++
			m.adj[e.From] = append(m.adj[e.From], incidence{e.To, i})
			m.deg[e.From]++
			m.in[e.To]++

			continue
		}
		undir++
		m.adj[e.From] = append(m.adj[e.From], incidence{e.To, i})
		m.deg[e.From]++
		m.deg[e.To]++
		if e.From != e.To {
			m.adj[e.To] = append(m.adj[e.To], incidence{e.From, i})
		}
	}
	if dir > 0 && undir > 0 {
		return nil, ErrMixedGraph
	}
	m.directed = dir > 0
	for _, list := range m.adj {
		sort.Slice(list, func(a, b int) bool {
			if list[a].to != list[b].to {
				return list[a].to < list[b].to
			}
			return list[a].idx < list[b].idx
		})
	}

	return m, nil
}

// start picks the first vertex of an Eulerian path, or reports why none exists.
// circuit additionally demands that the walk can close.
func (m *multigraph) start(circuit bool) (int, error) {
	first := -1
	for v := range m.deg {
		if m.deg[v] > 0 {
			first = v
			break
		}
	}

	if !m.directed {
		var odd []int
		for v, d := range m.deg {
			if d%2 == 1 {
				odd = append(odd, v)
			}
		}
		switch {
		case len(odd) == 0:
			return first, nil
		case len(odd) == 2 && !circuit:
			return odd[0], nil
		default:
			return -1, fmt.Errorf("%w: %d odd-degree vertices", ErrNoEulerianPath, len(odd))
		}
	}

	from, to := -1, -1
	for v := range m.deg {
		switch diff := m.deg[v] - m.in[v]; {
		case diff == 0:
		case diff == 1 && from < 0 && !circuit:
			from = v
		case diff == -1 && to < 0 && !circuit:
			to = v
		default:
			return -1, fmt.Errorf("%w: vertex %q has out-in = %d", ErrNoEulerianPath, m.c.ID(v), diff)
		}
	}
	if (from < 0) != (to < 0) {
		return -1, fmt.Errorf("%w: unbalanced endpoints", ErrNoEulerianPath)
	}
	if from >= 0 {
		return from, nil
	}

	return first, nil
}

// hierholzer walks every edge from s and returns the vertex sequence.
//
// Steps:
//  1. Follow unused edges from the top of the stack, pushing each endpoint.
//  2. When the top has no unused edge left, pop it onto the circuit.
//  3. The circuit is built backwards; reverse it.
//
// Complexity: O(V + E).
func (m *multigraph) hierholzer(s int) []int {
	used := make([]bool, len(m.c.Edges))
	next := make([]int, len(m.adj))
	stack := []int{s}
	var walk []int

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		for next[u] < len(m.adj[u]) && used[m.adj[u][next[u]].idx] {
			next[u]++
		}
		if next[u] == len(m.adj[u]) {
			walk = append(walk, u)
			stack = stack[:len(stack)-1]
			continue
		}
		inc := m.adj[u][next[u]]
		used[inc.idx] = true
		stack = append(stack, inc.to)
	}

	for i, j := 0, len(walk)-1; i < j; i, j = i+1, j-1 {
		walk[i], walk[j] = walk[j], walk[i]
	}

	return walk
}

func (m *multigraph) path(circuit bool) ([]string, error) {
	if m.c.N() == 0 {
		return nil, nil
	}
	s, err := m.start(circuit)
	if err != nil {
		return nil, err
	}
	if len(m.c.Edges) == 0 {
		return []string{m.c.ID(0)}, nil
	}

	walk := m.hierholzer(s)
	if len(walk) != len(m.c.Edges)+1 {
		return nil, fmt.Errorf("%w: edges are not connected", ErrNoEulerianPath)
	}
	out := make([]string, len(walk))
	for i, v := range walk {
		out[i] = m.c.ID(v)
	}

	return out, nil
}

// EulerianPath returns a walk that uses every edge exactly once, as the
// sequence of visited vertices (len = E+1). Isolated vertices are ignored.
// An edgeless graph yields its smallest vertex.
//
// Undirected graphs need zero or two odd-degree vertices; the walk starts
// at the smaller odd vertex, or at the smallest non-isolated vertex.
// Directed graphs need in = out everywhere, or exactly one vertex with
// out-in = 1 (the start) and one with in-out = 1.
//
// Complexity: O(V + E log E).
func EulerianPath(g *core.Graph) ([]string, error) {
	m, err := load(g)
	if err != nil {
		return nil, err
	}

	return m.path(false)
}

// EulerianCircuit returns a closed walk [v0 ... v0] that uses every edge
// exactly once. All degrees must be even (undirected) or balanced (directed).
// Complexity: O(V + E log E).
func EulerianCircuit(g *core.Graph) ([]string, error) {
	m, err := load(g)
	if err != nil {
		return nil, err
	}

	return m.path(true)
}
