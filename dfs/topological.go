// SPDX-License-Identifier: MIT

package dfs

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/cphb/core"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext makes TopologicalSort stop with ctx.Err() once ctx is
// done.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort orders the vertices of a directed graph so that every
// edge u→v has u before v. Among all valid orders it returns the
// lexicographically smallest one.
//
// Steps:
//  1. Count the in-degree of every vertex.
//  2. Keep the vertices of in-degree zero in a min-heap.
//  3. Pop the smallest, append it and release its out-edges.
//  4. Vertices left over lie on or behind a cycle: ErrCycleDetected.
//
// Errors: ErrGraphNil, ErrUndirectedEdge, ErrCycleDetected, ctx.Err().
// Complexity: O(V log V + E) time, O(V) memory.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := requireDirected(g); err != nil {
		return nil, err
	}
	o := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&o)
	}

	verts := g.Vertices()
	indeg := make(map[string]int, len(verts))
	for _, e := range g.Edges() {
		indeg[e.To]++
	}
	ready := &idHeap{}
	for _, v := range verts {
		if indeg[v] == 0 {
			heap.Push(ready, v)
		}
	}

	order := make([]string, 0, len(verts))
	for ready.Len() > 0 {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		v := heap.Pop(ready).(string)
		order = append(order, v)
		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, e := range edges {
			if indeg[e.To]--; indeg[e.To] == 0 {
				heap.Push(ready, e.To)
			}
		}
	}
	if len(order) < len(verts) {
		return nil, fmt.Errorf("%w: %d of %d vertices ordered", ErrCycleDetected, len(order), len(verts))
	}

	return order, nil
}

// requireDirected rejects graphs that hold undirected edges.
func requireDirected(g *core.Graph) error {
	for _, e := range g.Edges() {
		if !e.Directed {
			return fmt.Errorf("%w: edge %s is undirected", ErrUndirectedEdge, e.ID)
		}
	}

	return nil
}

// idHeap is a min-heap of vertex IDs.
type idHeap []string

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x any)        { *h = append(*h, x.(string)) }
func (h *idHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]

	return x
}
