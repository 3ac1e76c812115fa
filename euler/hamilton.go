// SPDX-License-Identifier: MIT

package euler

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/cphb/core"
)

const inf = math.MaxInt64

// dense loads g into a small vertex set for subset DP.
func dense(g *core.Graph) (*core.Compacted, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	c := core.Compact(g)
	if c.N() > MaxHamiltonVertices {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, c.N(), MaxHamiltonVertices)
	}

	return c, nil
}

// HamiltonianPath returns a path that visits every vertex exactly once,
// following edge directions, or false when none exists.
//
// reach[mask] is the set of vertices v such that some path visits exactly
// the vertices of mask and ends at v. The path is rebuilt backwards from
// the smallest feasible end, always stepping to the smallest predecessor.
//
// Complexity: O(2ⁿ·n²) time, O(2ⁿ) memory.
func HamiltonianPath(g *core.Graph) ([]string, bool, error) {
	c, err := dense(g)
	if err != nil {
		return nil, false, err
	}
	n := c.N()
	if n == 0 {
		return nil, false, nil
	}

	out := make([]uint32, n) // out[u]: bitset of arc heads
	for u, arcs := range c.Arcs {
		for _, a := range arcs {
			if a.To != u {
				out[u] |= 1 << a.To
			}
		}
	}

	full := 1<<n - 1
	reach := make([]uint32, full+1)
	for v := 0; v < n; v++ {
		reach[1<<v] = 1 << v
	}
	for mask := 1; mask <= full; mask++ {
		for ends := reach[mask]; ends != 0; ends &= ends - 1 {
			v := bits.TrailingZeros32(ends)
			for next := out[v] &^ uint32(mask); next != 0; next &= next - 1 {
				w := bits.TrailingZeros32(next)
				reach[mask|1<<w] |= 1 << w
			}
		}
	}
	if reach[full] == 0 {
		return nil, false, nil
	}

	path := make([]string, n)
	mask, v := full, bits.TrailingZeros32(reach[full])
	for i := n - 1; i >= 0; i-- {
		path[i] = c.ID(v)
		prev := mask &^ (1 << v)
		if prev == 0 {
			break
		}
		cand := reach[prev]
		for ; cand != 0; cand &= cand - 1 {
			u := bits.TrailingZeros32(cand)
			if out[u]&(1<<v) != 0 {
				break
			}
		}
		mask, v = prev, bits.TrailingZeros32(cand)
	}

	return path, true, nil
}

// ShortestHamiltonianCycle returns a minimum-length closed tour
// [v0 ... v0] through every vertex, starting at the smallest vertex ID,
// and its length. Edge lengths are the weights for weighted graphs and 1
// otherwise; parallel edges use the shortest one, loops are ignored.
//
// Steps (Held-Karp):
//  1. dp[mask][j]: shortest path from vertex 0 through exactly mask, ending at j.
//  2. Extend every state by one arc, remembering the predecessor.
//  3. Close the tour with the best arc back to 0 and walk the parents.
//
// Complexity: O(2ⁿ·n²) time, O(2ⁿ·n) memory.
func ShortestHamiltonianCycle(g *core.Graph) ([]string, int64, error) {
	c, err := dense(g)
	if err != nil {
		return nil, 0, err
	}
	n := c.N()
	if n < 2 {
		return nil, 0, fmt.Errorf("%w: need at least two vertices", ErrNoHamiltonianCycle)
	}
	unit := !g.Weighted()

	// 1) Cheapest arc per ordered pair.
	dist := make([][]int64, n)
	for u := range dist {
		dist[u] = make([]int64, n)
		for v := range dist[u] {
			dist[u][v] = inf
		}
	}
	for u, arcs := range c.Arcs {
		for _, a := range arcs {
			w := a.Weight
			if unit {
				w = 1
			}
			if a.To != u && w < dist[u][a.To] {
				dist[u][a.To] = w
			}
		}
	}

	full := 1<<n - 1
	dp := make([][]int64, full+1)
	parent := make([][]int8, full+1)
	for mask := range dp {
		dp[mask] = make([]int64, n)
		parent[mask] = make([]int8, n)
		for j := range dp[mask] {
			dp[mask][j] = inf
			parent[mask][j] = -1
		}
	}
	dp[1][0] = 0

	// 2) Masks always contain vertex 0.
	for mask := 1; mask <= full; mask += 2 {
		for j := 0; j < n; j++ {
			if dp[mask][j] == inf {
				continue
			}
			for k := 1; k < n; k++ {
				if mask&(1<<k) != 0 || dist[j][k] == inf {
					continue
				}
				next := mask | 1<<k
				if cand := dp[mask][j] + dist[j][k]; cand < dp[next][k] {
					dp[next][k] = cand
					parent[next][k] = int8(j)
				}
			}
		}
	}

	// 3) Close the tour.
	best, last := int64(inf), -1
	for j := 1; j < n; j++ {
		if dp[full][j] == inf || dist[j][0] == inf {
			continue
		}
		if total := dp[full][j] + dist[j][0]; total < best {
			best, last = total, j
		}
	}
	if last < 0 {
		return nil, 0, ErrNoHamiltonianCycle
	}

	tour := make([]string, n+1)
	tour[0], tour[n] = c.ID(0), c.ID(0)
	for mask, j, i := full, last, n-1; i >= 1; i-- {
		tour[i] = c.ID(j)
		p := int(parent[mask][j])
		mask ^= 1 << j
		j = p
	}

	return tour, best, nil
}
