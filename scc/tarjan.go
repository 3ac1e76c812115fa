// SPDX-License-Identifier: MIT

package scc

import (
	"sort"

	"github.com/katalvlaran/cphb/core"
)

// tarjan holds the state of one run over a dense adjacency list.
type tarjan struct {
	adj     [][]int
	indices []int // discovery order, -1 = unvisited
	lowlink []int // smallest index reachable through the DFS subtree
	onStack []bool
	stack   []int
	comp    []int // component id, assigned in completion order
	index   int
	count   int
}

// tarjanIDs labels every vertex of adj with its component id.
// Ids follow completion order, so they are a reverse topological order
// of the component graph: sinks get the smallest ids.
func tarjanIDs(adj [][]int) (comp []int, count int) {
	n := len(adj)
	t := &tarjan{
		adj:     adj,
		indices: make([]int, n),
		lowlink: make([]int, n),
		onStack: make([]bool, n),
		comp:    make([]int, n),
	}
	for i := range t.indices {
		t.indices[i] = -1
	}
	for v := 0; v < n; v++ {
		if t.indices[v] == -1 {
			t.strongConnect(v)
		}
	}

	return t.comp, t.count
}

func (t *tarjan) strongConnect(v int) {
	t.indices[v] = t.index
	t.lowlink[v] = t.index
	t.index++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.adj[v] {
		if t.indices[w] == -1 {
			t.strongConnect(w)
			t.lowlink[v] = min(t.lowlink[v], t.lowlink[w])
		} else if t.onStack[w] {
			t.lowlink[v] = min(t.lowlink[v], t.indices[w])
		}
	}

	// v is the root of a component: pop it off.
	if t.lowlink[v] == t.indices[v] {
		for {
			w := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[w] = false
			t.comp[w] = t.count
			if w == v {
				break
			}
		}
		t.count++
	}
}

// Tarjan returns the strongly connected components of g in topological
// order, using a single DFS with low-link values.
func Tarjan(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	c := core.Compact(g)
	comp, count := tarjanIDs(arcLists(c))

	// Reverse completion order gives topological order.
	for i := range comp {
		comp[i] = count - 1 - comp[i]
	}

	return group(c, comp, count), nil
}

// arcLists strips weights and edge IDs from c.Arcs.
func arcLists(c *core.Compacted) [][]int {
	adj := make([][]int, c.N())
	for u, arcs := range c.Arcs {
		adj[u] = make([]int, len(arcs))
		for i, a := range arcs {
			adj[u][i] = a.To
		}
	}

	return adj
}

// group collects vertex IDs per component id. IDs come out sorted since
// c indexes vertices in sorted order.
func group(c *core.Compacted, comp []int, count int) [][]string {
	out := make([][]string, count)
	for v, k := range comp {
		out[k] = append(out[k], c.ID(v))
	}
	for _, ids := range out {
		sort.Strings(ids)
	}

	return out
}
