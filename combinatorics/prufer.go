// SPDX-License-Identifier: MIT

package combinatorics

import (
	"fmt"

	"github.com/katalvlaran/cphb/dsu"
)

// PruferEncode returns the Prüfer code of a tree on vertices 1..n: n-2
// labels, obtained by repeatedly removing the smallest leaf and recording
// its neighbour.
//
// Steps:
//  1. Check that the n-1 edges join 1..n without a cycle (union-find).
//  2. Walk a pointer over leaves in increasing order; when removing a leaf
//     turns its neighbour into a smaller leaf, take that one next.
//
// Complexity: O(n α(n)).
func PruferEncode(n int, edges [][2]int) ([]int, error) {
	if n < 2 || len(edges) != n-1 {
		return nil, fmt.Errorf("%w: %d vertices, %d edges", ErrNotTree, n, len(edges))
	}
	uf := dsu.New(n + 1)
	adj := make([][]int, n+1)
	deg := make([]int, n+1)
	for _, e := range edges {
		a, b := e[0], e[1]
		if a < 1 || a > n || b < 1 || b > n || !uf.Union(a, b) {
			return nil, fmt.Errorf("%w: edge %d-%d", ErrNotTree, a, b)
		}
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
		deg[a]++
		deg[b]++
	}

	removed := make([]bool, n+1)
	neighbour := func(v int) int {
		for _, u := range adj[v] {
			if !removed[u] {
				return u
			}
		}

		return 0
	}

	code := make([]int, 0, n-2)
	ptr := 1
	for deg[ptr] != 1 {
		ptr++
	}
	leaf := ptr
	for len(code) < n-2 {
		next := neighbour(leaf)
		code = append(code, next)
		removed[leaf] = true
		deg[next]--
		if deg[next] == 1 && next < ptr {
			leaf = next
			continue
		}
		ptr++
		for deg[ptr] != 1 || removed[ptr] {
			ptr++
		}
		leaf = ptr
	}

	return code, nil
}

// PruferDecode rebuilds the tree on 1..len(code)+2 from its Prüfer code.
// Vertex v appears in the code exactly deg(v)-1 times, which gives every
// degree up front; leaves are then consumed in the same order as encoding.
func PruferDecode(code []int) ([][2]int, error) {
	n := len(code) + 2
	deg := make([]int, n+1)
	for i := 1; i <= n; i++ {
		deg[i] = 1
	}
	for i, x := range code {
		if x < 1 || x > n {
			return nil, fmt.Errorf("%w: code[%d] = %d not in [1, %d]", ErrBadCode, i, x, n)
		}
		deg[x]++
	}

	edges := make([][2]int, 0, n-1)
	ptr := 1
	for deg[ptr] != 1 {
		ptr++
	}
	leaf := ptr
	for _, x := range code {
		edges = append(edges, [2]int{leaf, x})
		deg[leaf] = 0
		deg[x]--
		if deg[x] == 1 && x < ptr {
			leaf = x
			continue
		}
		ptr++
		for deg[ptr] != 1 {
			ptr++
		}
		leaf = ptr
	}
	edges = append(edges, [2]int{leaf, n})

	return edges, nil
}
