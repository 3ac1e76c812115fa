// SPDX-License-Identifier: MIT

package core

import (
	"sort"
	"strconv"
)

// AddEdge adds an edge from -> to and returns its ID. IDs are "e1", "e2",
// ... in creation order. Missing endpoints are created, but only once the
// edge has passed every check:
//
//  1. empty endpoint: ErrEmptyVertexID
//  2. non-zero weight on an unweighted graph: ErrBadWeight
//  3. loop without WithLoops: ErrLoopNotAllowed
//  4. edge options without WithMixedEdges: ErrMixedEdgesNotAllowed
//  5. parallel edge without WithMultiEdges: ErrMultiEdgeNotAllowed
//
// An undirected edge is parallel to any edge between the same endpoints;
// a directed one only to an edge already traversable from -> to.
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	switch {
	case from == "" || to == "":
		return "", ErrEmptyVertexID
	case weight != 0 && !g.flags.weighted:
		return "", ErrBadWeight
	case from == to && !g.flags.loops:
		return "", ErrLoopNotAllowed
	case len(opts) > 0 && !g.flags.mixed:
		return "", ErrMixedEdgesNotAllowed
	}

	e := &Edge{From: from, To: to, Weight: weight, Directed: g.flags.directed}
	for _, opt := range opts {
		opt(e)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if !g.flags.multi && (g.linkedLocked(from, to) || (!e.Directed && g.linkedLocked(to, from))) {
		return "", ErrMultiEdgeNotAllowed
	}
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	g.lastSeq++
	e.seq = g.lastSeq
	e.ID = "e" + strconv.FormatUint(e.seq, 10)
	g.edges[e.ID] = e
	g.linkLocked(e)

	return e.ID, nil
}

// RemoveEdge deletes the edge with ID eid.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	g.unlinkLocked(e)

	return nil
}

// FilterEdges deletes every edge for which keep returns false.
func (g *Graph) FilterEdges(keep func(*Edge) bool) {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	for eid, e := range g.edges {
		if !keep(e) {
			delete(g.edges, eid)
			g.unlinkLocked(e)
		}
	}
}

// HasEdge reports whether some edge can be traversed from -> to; an
// undirected edge answers in both directions.
//
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return g.linkedLocked(from, to)
}

// GetEdge returns the edge with ID eid.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	if e, ok := g.edges[eid]; ok {
		return e, nil
	}

	return nil, ErrEdgeNotFound
}

// Edges returns every edge in creation order. The pointers are the
// graph's own; do not modify them.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdge.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdge.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether any stored edge is directed.
func (g *Graph) HasDirectedEdges() bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// linkedLocked reports whether incident[u] holds an edge leading to v.
func (g *Graph) linkedLocked(u, v string) bool {
	for _, e := range g.incident[u] {
		if e.Other(u) == v {
			return true
		}
	}

	return false
}

// linkLocked appends e to the incidence lists it belongs to. Edges are
// linked in seq order, which keeps every list sorted by creation.
func (g *Graph) linkLocked(e *Edge) {
	g.incident[e.From] = append(g.incident[e.From], e)
	if !e.Directed && e.From != e.To {
		g.incident[e.To] = append(g.incident[e.To], e)
	}
}

func (g *Graph) unlinkLocked(e *Edge) {
	g.incident[e.From] = without(g.incident[e.From], e)
	if e.From != e.To {
		g.incident[e.To] = without(g.incident[e.To], e)
	}
}

// without removes e from list in place, keeping the order.
func without(list []*Edge, e *Edge) []*Edge {
	for i, x := range list {
		if x == e {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil

			return list[:len(list)-1]
		}
	}

	return list
}
