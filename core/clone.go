// SPDX-License-Identifier: MIT

package core

// CloneEmpty returns a graph with g's flags and vertices and no edges.
func (g *Graph) CloneEmpty() *Graph {
	c := NewGraph(g.flags.options()...)
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}

	return c
}

// Clone returns an independent copy of g. Edges keep their IDs and order,
// and the clone continues g's ID sequence.
//
// Complexity: O(V + E log E).
func (g *Graph) Clone() *Graph {
	c := g.CloneEmpty()
	for _, e := range g.Edges() {
		cp := *e
		c.vertices[cp.From], c.vertices[cp.To] = struct{}{}, struct{}{}
		c.edges[cp.ID] = &cp
		c.linkLocked(&cp)
	}
	g.muEdge.RLock()
	c.lastSeq = g.lastSeq
	g.muEdge.RUnlock()

	return c
}

// Clear removes all vertices and edges and restarts edge IDs at "e1".
// Flags are kept.
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	g.vertices = make(map[string]struct{})
	g.edges = make(map[string]*Edge)
	g.incident = make(map[string][]*Edge)
	g.lastSeq = 0
}
