// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/cphb/core"
)

// BFSResult is the breadth-first search tree rooted at the start vertex.
type BFSResult struct {
	// Order lists visited vertices by non-decreasing distance.
	Order []string
	// Depth is the edge count from the start; discovered vertices only.
	Depth map[string]int
	// Parent links every discovered vertex except the start to the vertex
	// that discovered it.
	Parent map[string]string
}

// PathTo returns a fewest-edge path from the start to dest.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: to %q", ErrNoPath, dest)
	}
	path := make([]string, d+1)
	for cur := dest; d >= 0; d-- {
		path[d] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}

// BFS explores g from start in layers. Edge weights are ignored and
// neighbors are taken in core's deterministic order, so Order is
// reproducible.
//
// Steps:
//  1. Discover start at depth 0.
//  2. Pop the queue head, record it in Order and run OnVisit.
//  3. Unless the vertex sits at MaxDepth, discover each unseen neighbor
//     that passes the filter at depth+1.
//
// On cancellation or a hook error the partial result is returned with the
// error.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	res := &BFSResult{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	queue := make([]string, 0, n)
	discover := func(id, parent string, depth int) {
		res.Depth[id] = depth
		if parent != "" {
			res.Parent[id] = parent
		}
		if o.OnEnqueue != nil {
			o.OnEnqueue(id, depth)
		}
		queue = append(queue, id)
	}

	discover(start, "", 0)
	for head := 0; head < len(queue); head++ {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		v := queue[head]
		d := res.Depth[v]
		res.Order = append(res.Order, v)
		if o.OnVisit != nil {
			if err := o.OnVisit(v, d); err != nil {
				return res, fmt.Errorf("bfs: visit %q: %w", v, err)
			}
		}
		if o.MaxDepth > 0 && d >= o.MaxDepth {
			continue
		}

		next, err := g.NeighborIDs(v)
		if err != nil {
			return res, fmt.Errorf("bfs: neighbors of %q: %w", v, err)
		}
		for _, u := range next {
			if _, seen := res.Depth[u]; seen {
				continue
			}
			if o.FilterNeighbor != nil && !o.FilterNeighbor(v, u) {
				continue
			}
			discover(u, v, d+1)
		}
	}

	return res, nil
}
