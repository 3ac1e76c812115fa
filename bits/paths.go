// SPDX-License-Identifier: MIT

package bits

import (
	"fmt"

	"github.com/katalvlaran/cphb/core"
)

// CountHamiltonianPaths returns the number of paths that visit every vertex
// of g exactly once. Directed edges are followed in their direction. In a
// graph without directed edges a path and its reverse count once. Parallel
// edges and loops do not create additional paths.
//
// count[S][v] is the number of paths that visit exactly the vertices of S
// and end at v.
//
// Complexity: O(2^n · n²).
func CountHamiltonianPaths(g *core.Graph) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	c := core.Compact(g)
	n := c.N()
	if n > MaxItems {
		return 0, fmt.Errorf("%w: %d vertices, limit %d", ErrTooLarge, n, MaxItems)
	}
	if n == 0 {
		return 0, nil
	}

	pred := make([]uint32, n) // pred[v]: bitset of u with an arc u→v
	for u, arcs := range c.Arcs {
		for _, a := range arcs {
			if a.To != u {
				pred[a.To] |= 1 << u
			}
		}
	}

	full := 1<<n - 1
	count := make([][]int64, full+1)
	for s := range count {
		count[s] = make([]int64, n)
	}
	for v := 0; v < n; v++ {
		count[1<<v][v] = 1
	}
	for s := 1; s <= full; s++ {
		for v := 0; v < n; v++ {
			if s&(1<<v) == 0 || s == 1<<v {
				continue
			}
			rest := s &^ (1 << v)
			for u := 0; u < n; u++ {
				if pred[v]&(1<<u) != 0 && rest&(1<<u) != 0 {
					count[s][v] += count[rest][u]
				}
			}
		}
	}

	var total int64
	for v := 0; v < n; v++ {
		total += count[full][v]
	}
	if n > 1 && !g.HasDirectedEdges() {
		total /= 2
	}

	return total, nil
}
