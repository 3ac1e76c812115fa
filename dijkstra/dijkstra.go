// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/cphb/core"
)

// Dijkstra computes shortest distances from the Source option to every
// vertex of a weighted graph with non-negative weights.
//
// dist holds every vertex; unreachable ones (or ones beyond MaxDistance)
// map to math.MaxInt64. prev is nil unless WithReturnPath is given, and
// then maps each reached vertex other than the source to its predecessor.
//
// Steps:
//  1. Validate options, graph and weights.
//  2. Snapshot g with core.Compact so the main loop works on indices.
//  3. Pop the closest unsettled vertex; settle it and relax its arcs,
//     pushing a fresh heap entry on every strict improvement. Stale
//     entries are skipped when popped.
//
// Ties are broken by vertex ID, so prev is deterministic.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	o := DefaultOptions("")
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}
	if o.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(o.Source) {
		return nil, nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	c := core.Compact(g)
	n := c.N()
	src, _ := c.IndexOf(o.Source)
	dist := make([]int64, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i], prev[i] = math.MaxInt64, -1
	}
	done := make([]bool, n)

	dist[src] = 0
	pq := &queue{{v: src}}
	for pq.Len() > 0 {
		top := heap.Pop(pq).(entry)
		u := top.v
		if done[u] || top.d != dist[u] {
			continue
		}
		done[u] = true
		for _, a := range c.Arcs[u] {
			if a.Weight >= o.InfEdgeThreshold || done[a.To] {
				continue
			}
			nd := dist[u] + a.Weight
			if nd > o.MaxDistance || nd >= dist[a.To] {
				continue
			}
			dist[a.To], prev[a.To] = nd, u
			heap.Push(pq, entry{v: a.To, d: nd})
		}
	}

	out := make(map[string]int64, n)
	for i, d := range dist {
		out[c.ID(i)] = d
	}
	if !o.ReturnPath {
		return out, nil, nil
	}
	pred := make(map[string]string, n)
	for i, p := range prev {
		if p >= 0 {
			pred[c.ID(i)] = c.ID(p)
		}
	}

	return out, pred, nil
}

// entry is a tentative distance d for vertex index v.
type entry struct {
	v int
	d int64
}

// queue is a min-heap of entries by distance, then index. Indices follow
// sorted vertex IDs, so ties settle in ID order.
type queue []entry

func (q queue) Len() int { return len(q) }
func (q queue) Less(i, j int) bool {
	if q[i].d != q[j].d {
		return q[i].d < q[j].d
	}

	return q[i].v < q[j].v
}
func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)   { *q = append(*q, x.(entry)) }
func (q *queue) Pop() any {
	old := *q
	x := old[len(old)-1]
	*q = old[:len(old)-1]

	return x
}
