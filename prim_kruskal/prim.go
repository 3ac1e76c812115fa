// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/cphb/core"
)

// Prim grows a minimum spanning tree from root, each step adding the
// lightest edge that leaves the tree. Candidate edges wait in a min-heap
// ordered by weight and then by insertion, so ties resolve in discovery
// order.
//
// Edges are returned in the order they joined the tree, with their stored
// orientation.
//
// Errors: ErrInvalidGraph, ErrDisconnected, ErrEmptyRoot and
// core.ErrVertexNotFound for an unknown root.
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root string) ([]core.Edge, int64, error) {
	n, err := checkGraph(g)
	if err != nil {
		return nil, 0, err
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	c := core.Compact(g)
	r, ok := c.IndexOf(root)
	if !ok {
		return nil, 0, fmt.Errorf("%w: root %q", core.ErrVertexNotFound, root)
	}

	byID := make(map[string]*core.Edge, g.EdgeCount())
	for _, e := range g.Edges() {
		byID[e.ID] = e
	}

	in := make([]bool, n)
	frontier := &candidates{}
	var pushed int
	grow := func(v int) {
		in[v] = true
		for _, a := range c.Arcs[v] {
			if !in[a.To] {
				heap.Push(frontier, candidate{to: a.To, weight: a.Weight, edgeID: a.EdgeID, seq: pushed})
				pushed++
			}
		}
	}

	tree := make([]core.Edge, 0, n-1)
	var total int64
	grow(r)
	for frontier.Len() > 0 && len(tree) < n-1 {
		next := heap.Pop(frontier).(candidate)
		if in[next.to] {
			continue
		}
		tree = append(tree, *byID[next.edgeID])
		total += next.weight
		grow(next.to)
	}
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// candidate is an edge from the tree to vertex index to.
type candidate struct {
	to     int
	weight int64
	edgeID string
	seq    int
}

type candidates []candidate

func (h candidates) Len() int { return len(h) }
func (h candidates) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}

	return h[i].seq < h[j].seq
}
func (h candidates) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *candidates) Push(x any)   { *h = append(*h, x.(candidate)) }
func (h *candidates) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]

	return x
}
