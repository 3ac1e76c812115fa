// SPDX-License-Identifier: MIT

package shortest

import (
	"fmt"

	"github.com/katalvlaran/cphb/core"
)

// BellmanFord computes distances from src to every vertex.
//
// Steps:
//  1. dist[src] = 0, all others Inf.
//  2. Up to n-1 rounds: relax every arc; stop early once a round changes nothing.
//  3. One extra round: if any arc still relaxes, a negative cycle is
//     reachable from src and ErrNegativeCycle is returned.
//
// Complexity: O(V·E) time, O(V) memory.
func BellmanFord(g *core.Graph, src string) (*Result, error) {
	c, s, err := compactFrom(g, src)
	if err != nil {
		return nil, err
	}

	n := c.N()
	dist := make([]int64, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i], prev[i] = Inf, -1
	}
	dist[s] = 0

	// 2) n-1 rounds.
	for round := 0; round < n-1; round++ {
		if !relaxAll(c, dist, prev) {
			break
		}
	}

	// 3) Any further improvement means a reachable negative cycle.
	if relaxAll(c, dist, prev) {
		return nil, fmt.Errorf("%w: reachable from %q", ErrNegativeCycle, src)
	}

	return toResult(c, src, dist, prev), nil
}

// relaxAll performs one Bellman-Ford round and reports whether any
// distance decreased.
func relaxAll(c *core.Compacted, dist []int64, prev []int) bool {
	changed := false
	for u, arcs := range c.Arcs {
		if dist[u] == Inf {
			continue
		}
		for _, a := range arcs {
			if nd := dist[u] + a.Weight; nd < dist[a.To] {
				dist[a.To] = nd
				prev[a.To] = u
				changed = true
			}
		}
	}

	return changed
}

// compactFrom validates g and src and returns the dense view with src's index.
func compactFrom(g *core.Graph, src string) (*core.Compacted, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	c := core.Compact(g)
	s, ok := c.IndexOf(src)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrSourceNotFound, src)
	}

	return c, s, nil
}

// toResult converts dense arrays into a Result keyed by vertex ID.
func toResult(c *core.Compacted, src string, dist []int64, prev []int) *Result {
	r := &Result{
		Source: src,
		Dist:   make(map[string]int64, c.N()),
		Prev:   make(map[string]string),
	}
	for i, d := range dist {
		id := c.ID(i)
		r.Dist[id] = d
		if prev[i] >= 0 {
			r.Prev[id] = c.ID(prev[i])
		}
	}

	return r
}
