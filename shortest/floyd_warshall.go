// SPDX-License-Identifier: MIT

package shortest

import (
	"fmt"

	"github.com/katalvlaran/cphb/core"
)

// AllPairs holds the Floyd–Warshall distance matrix of a graph.
type AllPairs struct {
	c    *core.Compacted
	dist [][]int64
	next [][]int // next[i][j]: vertex after i on a shortest i→j path, -1 if none
}

// FloydWarshall computes shortest distances between all pairs of vertices.
//
// Steps:
//  1. dist[i][i] = 0, dist[i][j] = lightest arc i→j, Inf otherwise.
//  2. For k, i, j in that fixed order relax dist[i][j] through k.
//  3. A negative diagonal entry means a negative cycle: ErrNegativeCycle.
//
// Complexity: O(V³) time, O(V²) memory.
func FloydWarshall(g *core.Graph) (*AllPairs, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	c := core.Compact(g)
	n := c.N()

	// 1) Initial matrix.
	dist := make([][]int64, n)
	next := make([][]int, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]int64, n)
		next[i] = make([]int, n)
		for j := range dist[i] {
			dist[i][j], next[i][j] = Inf, -1
		}
		dist[i][i], next[i][i] = 0, i
	}
	for u, arcs := range c.Arcs {
		for _, a := range arcs {
			if a.Weight < dist[u][a.To] {
				dist[u][a.To] = a.Weight
				next[u][a.To] = a.To
			}
		}
	}

	// 2) Triple loop, k outermost.
	var ik, cand int64
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if ik = dist[i][k]; ik == Inf {
				continue
			}
			for j := 0; j < n; j++ {
				if dist[k][j] == Inf {
					continue
				}
				if cand = ik + dist[k][j]; cand < dist[i][j] {
					dist[i][j] = cand
					next[i][j] = next[i][k]
				}
			}
		}
	}

	// 3) Negative cycle check.
	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, fmt.Errorf("%w: through %q", ErrNegativeCycle, c.ID(i))
		}
	}

	return &AllPairs{c: c, dist: dist, next: next}, nil
}

// Dist returns the shortest distance u→v, Inf if v is unreachable.
func (ap *AllPairs) Dist(u, v string) (int64, error) {
	i, j, err := ap.pair(u, v)
	if err != nil {
		return 0, err
	}

	return ap.dist[i][j], nil
}

// Path returns one shortest path u → … → v.
func (ap *AllPairs) Path(u, v string) ([]string, error) {
	i, j, err := ap.pair(u, v)
	if err != nil {
		return nil, err
	}
	if ap.next[i][j] < 0 {
		return nil, fmt.Errorf("%w: %q to %q", ErrNoPath, u, v)
	}

	path := []string{u}
	for i != j {
		i = ap.next[i][j]
		path = append(path, ap.c.ID(i))
	}

	return path, nil
}

// Matrix returns a copy of the distance matrix with rows and columns in
// the order of Vertices().
func (ap *AllPairs) Matrix() [][]int64 {
	out := make([][]int64, len(ap.dist))
	for i, row := range ap.dist {
		out[i] = append([]int64(nil), row...)
	}

	return out
}

// Vertices returns the vertex IDs indexing Matrix.
func (ap *AllPairs) Vertices() []string {
	return append([]string(nil), ap.c.IDs()...)
}

func (ap *AllPairs) pair(u, v string) (int, int, error) {
	i, ok := ap.c.IndexOf(u)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	j, ok := ap.c.IndexOf(v)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}

	return i, j, nil
}
