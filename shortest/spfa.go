// SPDX-License-Identifier: MIT

package shortest

import (
	"fmt"

	"github.com/katalvlaran/cphb/core"
)

// SPFA computes the same distances as BellmanFord but only re-examines
// vertices whose distance just decreased, using a FIFO queue.
//
// Each vertex remembers how many arcs its current best path uses; a path of
// n arcs must repeat a vertex, which proves a reachable negative cycle,
// reported as ErrNegativeCycle.
//
// Complexity: O(V·E) worst case, typically O(E).
func SPFA(g *core.Graph, src string) (*Result, error) {
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

	inQueue := make([]bool, n)
	arcsUsed := make([]int, n)
	queue := []int{s}
	inQueue[s] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		inQueue[u] = false

		for _, a := range c.Arcs[u] {
			if nd := dist[u] + a.Weight; nd < dist[a.To] {
				dist[a.To] = nd
				prev[a.To] = u
				arcsUsed[a.To] = arcsUsed[u] + 1
				if arcsUsed[a.To] >= n {
					return nil, fmt.Errorf("%w: reachable from %q", ErrNegativeCycle, src)
				}
				if !inQueue[a.To] {
					inQueue[a.To] = true
					queue = append(queue, a.To)
				}
			}
		}
	}

	return toResult(c, src, dist, prev), nil
}
