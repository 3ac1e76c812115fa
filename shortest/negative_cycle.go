// SPDX-License-Identifier: MIT

package shortest

import "github.com/katalvlaran/cphb/core"

// NegativeCycle searches the whole graph for a cycle of negative total weight.
//
// It runs Bellman-Ford from a virtual source joined to every vertex by a
// zero-weight arc (all distances start at 0). If the n-th round still
// relaxes some vertex x, following predecessors n times from x lands on a
// cycle, which is then read off.
//
// The cycle is returned closed, [v0, v1, ..., v0], in arc direction.
// Complexity: O(V·E).
func NegativeCycle(g *core.Graph) ([]string, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	c := core.Compact(g)
	n := c.N()
	if n == 0 {
		return nil, false, nil
	}

	dist := make([]int64, n)
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}

	last := -1
	for round := 0; round < n; round++ {
		last = -1
		for u, arcs := range c.Arcs {
			for _, a := range arcs {
				if nd := dist[u] + a.Weight; nd < dist[a.To] {
					dist[a.To] = nd
					prev[a.To] = u
					last = a.To
				}
			}
		}
		if last < 0 {
			return nil, false, nil
		}
	}

	// Step back n times to be sure we stand on the cycle.
	x := last
	for i := 0; i < n; i++ {
		x = prev[x]
	}

	cycle := []string{c.ID(x)}
	for v := prev[x]; v != x; v = prev[v] {
		cycle = append(cycle, c.ID(v))
	}
	cycle = append(cycle, c.ID(x))
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}

	return cycle, true, nil
}
