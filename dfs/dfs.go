// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/cphb/core"
)

// DFSResult is the depth-first search tree (or forest).
type DFSResult struct {
	// Order lists vertices as they finish (postorder).
	Order []string
	// Depth is the tree depth of every discovered vertex.
	Depth map[string]int
	// Parent links each discovered non-root vertex to its discoverer.
	Parent map[string]string
	// Visited marks every discovered vertex.
	Visited map[string]bool
}

// frame is one vertex on the explicit search stack.
type frame struct {
	id    string
	depth int
	next  []string // unexplored neighbors, in edge creation order
}

// DFS searches g depth-first from start, or from every vertex with
// WithFullTraversal. Neighbors are tried in edge creation order; directed
// edges are followed forward only and self-loops are ignored.
//
// The search uses an explicit stack, so long paths do not grow the
// goroutine stack. On cancellation or a hook error the partial result is
// returned with the error.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *core.Graph, start string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}

	roots := []string{start}
	if o.FullTraversal {
		roots = g.Vertices()
	}
	for _, root := range roots {
		if res.Visited[root] {
			continue
		}
		if err := search(g, &o, res, root); err != nil {
			return res, err
		}
	}

	return res, nil
}

// search grows one DFS tree from root.
func search(g *core.Graph, o *Options, res *DFSResult, root string) error {
	var stack []frame
	enter := func(id string, depth int) error {
		res.Visited[id] = true
		res.Depth[id] = depth
		if o.OnVisit != nil {
			if err := o.OnVisit(id); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
			}
		}
		edges, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		next := make([]string, 0, len(edges))
		for _, e := range edges {
			if u := e.Other(id); u != id {
				next = append(next, u)
			}
		}
		stack = append(stack, frame{id: id, depth: depth, next: next})

		return nil
	}

	if err := enter(root, 0); err != nil {
		return err
	}
	for len(stack) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		top := &stack[len(stack)-1]
		if len(top.next) == 0 {
			stack = stack[:len(stack)-1]
			if o.OnExit != nil {
				if err := o.OnExit(top.id); err != nil {
					return fmt.Errorf("dfs: OnExit hook for %q: %w", top.id, err)
				}
			}
			res.Order = append(res.Order, top.id)

			continue
		}

		u := top.next[0]
		top.next = top.next[1:]
		if res.Visited[u] {
			continue
		}
		if o.FilterNeighbor != nil && !o.FilterNeighbor(u) {
			continue
		}
		if o.MaxDepth >= 0 && top.depth+1 > o.MaxDepth {
			continue
		}
		res.Parent[u] = top.id
		if err := enter(u, top.depth+1); err != nil {
			return err
		}
	}

	return nil
}
