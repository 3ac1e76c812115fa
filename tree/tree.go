// SPDX-License-Identifier: MIT

package tree

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/cphb/core"
)

var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("tree: graph is nil")

	// ErrNotTree is returned when the graph is directed, disconnected,
	// or has |E| != |V|-1.
	ErrNotTree = errors.New("tree: graph is not a tree")

	// ErrVertexNotFound is returned for unknown vertex IDs.
	ErrVertexNotFound = errors.New("tree: vertex not found")

	// ErrNoAncestor is returned when k exceeds the depth of the vertex.
	ErrNoAncestor = errors.New("tree: no such ancestor")
)

// Tree is a rooted tree over dense vertex indices.
type Tree struct {
	c      *core.Compacted
	root   int
	parent []int   // -1 for the root
	length []int64 // length of the edge to the parent
	depth  []int   // number of edges from the root
	dist   []int64 // summed edge lengths from the root
	kids   [][]int
	order  []int // preorder
	tin    []int // position in order
	size   []int
	up     [][]int // up[j][v]: 2^j-th ancestor, root maps to itself
}

// New roots g at root.
//
// Steps:
//  1. Validate: non-nil, no directed edges, |E| = |V|-1, root present.
//  2. Iterative DFS from root fills parent, depth, dist and preorder;
//     every vertex must be reached exactly once.
//  3. Subtree sizes in reverse preorder.
//  4. Binary-lifting table.
//
// Complexity: O(n log n).
func New(g *core.Graph, root string) (*Tree, error) {
	// 1) Validate.
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.HasDirectedEdges() {
		return nil, fmt.Errorf("%w: directed edges present", ErrNotTree)
	}
	c := core.Compact(g)
	n := c.N()
	if len(c.Edges) != n-1 {
		return nil, fmt.Errorf("%w: %d vertices, %d edges", ErrNotTree, n, len(c.Edges))
	}
	r, ok := c.IndexOf(root)
	if !ok {
		return nil, fmt.Errorf("%w: root %q", ErrVertexNotFound, root)
	}
	unit := !g.Weighted()

	t := &Tree{
		c:      c,
		root:   r,
		parent: make([]int, n),
		length: make([]int64, n),
		depth:  make([]int, n),
		dist:   make([]int64, n),
		kids:   make([][]int, n),
		order:  make([]int, 0, n),
		tin:    make([]int, n),
		size:   make([]int, n),
	}
	for i := range t.parent {
		t.parent[i] = -2 // unvisited
	}

	// 2) DFS; children pushed in reverse so they pop in arc order.
	t.parent[r] = -1
	stack := []int{r}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t.tin[u] = len(t.order)
		t.order = append(t.order, u)

		arcs := c.Arcs[u]
		for i := len(arcs) - 1; i >= 0; i-- {
			a := arcs[i]
			if a.To == t.parent[u] {
				continue
			}
			if t.parent[a.To] != -2 {
				return nil, fmt.Errorf("%w: cycle through %q", ErrNotTree, c.ID(a.To))
			}
			w := a.Weight
			if unit {
				w = 1
			}
			t.parent[a.To] = u
			t.length[a.To] = w
			t.depth[a.To] = t.depth[u] + 1
			t.dist[a.To] = t.dist[u] + w
			stack = append(stack, a.To)
		}
	}
	if len(t.order) != n {
		return nil, fmt.Errorf("%w: disconnected", ErrNotTree)
	}
	for _, u := range t.order {
		if p := t.parent[u]; p >= 0 {
			t.kids[p] = append(t.kids[p], u)
		}
	}

	// 3) Subtree sizes.
	for i := n - 1; i >= 0; i-- {
		u := t.order[i]
		t.size[u]++
		if p := t.parent[u]; p >= 0 {
			t.size[p] += t.size[u]
		}
	}

	// 4) Lifting table.
	levels := max(1, bits.Len(uint(n)))
	t.up = make([][]int, levels)
	t.up[0] = make([]int, n)
	for v := range t.up[0] {
		t.up[0][v] = max(t.parent[v], 0)
		if v == r {
			t.up[0][v] = r
		}
	}
	for j := 1; j < levels; j++ {
		t.up[j] = make([]int, n)
		for v := 0; v < n; v++ {
			t.up[j][v] = t.up[j-1][t.up[j-1][v]]
		}
	}

	return t, nil
}

// index resolves a vertex ID.
func (t *Tree) index(id string) (int, error) {
	i, ok := t.c.IndexOf(id)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return i, nil
}

// ids maps indices back to vertex IDs.
func (t *Tree) ids(xs []int) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = t.c.ID(x)
	}

	return out
}

// Root returns the root vertex.
func (t *Tree) Root() string { return t.c.ID(t.root) }

// Len returns the number of vertices.
func (t *Tree) Len() int { return t.c.N() }

// Parent returns the parent of v; the root has parent "".
func (t *Tree) Parent(v string) (string, error) {
	i, err := t.index(v)
	if err != nil {
		return "", err
	}
	if t.parent[i] < 0 {
		return "", nil
	}

	return t.c.ID(t.parent[i]), nil
}

// Depth returns the number of edges between v and the root.
func (t *Tree) Depth(v string) (int, error) {
	i, err := t.index(v)
	if err != nil {
		return 0, err
	}

	return t.depth[i], nil
}

// Children returns the children of v in edge creation order.
func (t *Tree) Children(v string) ([]string, error) {
	i, err := t.index(v)
	if err != nil {
		return nil, err
	}

	return t.ids(t.kids[i]), nil
}

// SubtreeSize returns the number of vertices in the subtree of v, v included.
func (t *Tree) SubtreeSize(v string) (int, error) {
	i, err := t.index(v)
	if err != nil {
		return 0, err
	}

	return t.size[i], nil
}

// Preorder returns the vertices in DFS preorder (the tree traversal array).
func (t *Tree) Preorder() []string { return t.ids(t.order) }
