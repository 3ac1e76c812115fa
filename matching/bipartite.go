// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/cphb/core"
	"github.com/katalvlaran/cphb/flow"
)

// bipartite is a dense bipartite graph: left i is adjacent to right adj[i][k].
type bipartite struct {
	nLeft, nRight int
	adj           [][]int
	matchL        []int // right partner of left i, or -1
	matchR        []int // left partner of right j, or -1
}

// solve fills matchL and matchR with a maximum matching.
//
// The network is source → l<i> → r<j> → sink with unit capacities; every
// edge-disjoint source-sink path is one matched pair.
func (b *bipartite) solve() error {
	net := core.NewGraph(core.WithDirected(true))
	const source, sink = "s", "t"
	left := func(i int) string { return "l" + strconv.Itoa(i) }
	right := func(j int) string { return "r" + strconv.Itoa(j) }

	for _, v := range []string{source, sink} {
		if err := net.AddVertex(v); err != nil {
			return err
		}
	}
	for i := 0; i < b.nLeft; i++ {
		if _, err := net.AddEdge(source, left(i), 0); err != nil {
			return err
		}
		for _, j := range b.adj[i] {
			if _, err := net.AddEdge(left(i), right(j), 0); err != nil {
				return err
			}
		}
	}
	for j := 0; j < b.nRight; j++ {
		if _, err := net.AddEdge(right(j), sink, 0); err != nil {
			return err
		}
	}

	paths, err := flow.EdgeDisjointPaths(net, source, sink, flow.DefaultOptions())
	if err != nil {
		return err
	}

	b.matchL = fill(b.nLeft)
	b.matchR = fill(b.nRight)
	for _, p := range paths {
		// p = [s, l<i>, r<j>, t]
		i, _ := strconv.Atoi(p[1][1:])
		j, _ := strconv.Atoi(p[2][1:])
		b.matchL[i], b.matchR[j] = j, i
	}

	return nil
}

func fill(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = -1
	}

	return xs
}

// alternating returns the vertices reachable from unmatched left vertices
// along alternating paths: any edge left→right, matched edges right→left.
func (b *bipartite) alternating() (zl, zr []bool) {
	zl, zr = make([]bool, b.nLeft), make([]bool, b.nRight)
	var queue []int
	for i, j := range b.matchL {
		if j < 0 {
			zl[i] = true
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, j := range b.adj[i] {
			if zr[j] {
				continue
			}
			zr[j] = true
			if k := b.matchR[j]; k >= 0 && !zl[k] {
				zl[k] = true
				queue = append(queue, k)
			}
		}
	}

	return zl, zr
}

// cover returns König's minimum vertex cover: unreached left vertices plus
// reached right vertices.
func (b *bipartite) cover() (cl, cr []bool) {
	zl, zr := b.alternating()
	cl = make([]bool, b.nLeft)
	for i := range cl {
		cl[i] = !zl[i]
	}

	return cl, zr
}

// sides maps a graph onto a bipartite structure with the given left side.
type sides struct {
	b           *bipartite
	left, right []string
}

func split(g *core.Graph, left []string) (*sides, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	isLeft := make(map[string]bool, len(left))
	for _, v := range left {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
		}
		isLeft[v] = true
	}

	s := &sides{}
	li, ri := make(map[string]int), make(map[string]int)
	for _, v := range g.Vertices() {
		if isLeft[v] {
			li[v] = len(s.left)
			s.left = append(s.left, v)
		} else {
			ri[v] = len(s.right)
			s.right = append(s.right, v)
		}
	}

	s.b = &bipartite{nLeft: len(s.left), nRight: len(s.right), adj: make([][]int, len(s.left))}
	seen := make(map[[2]int]bool)
	for _, e := range g.Edges() {
		u, v := e.From, e.To
		if isLeft[u] == isLeft[v] {
			return nil, fmt.Errorf("%w: %q-%q", ErrNotBipartite, u, v)
		}
		if !isLeft[u] {
			u, v = v, u
		}
		key := [2]int{li[u], ri[v]}
		if !seen[key] {
			seen[key] = true
			s.b.adj[key[0]] = append(s.b.adj[key[0]], key[1])
		}
	}
	for _, list := range s.b.adj {
		sort.Ints(list)
	}

	if err := s.b.solve(); err != nil {
		return nil, err
	}

	return s, nil
}
