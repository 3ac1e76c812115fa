// SPDX-License-Identifier: MIT

package core

import "sort"

// AddVertex inserts id; adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether id exists. The empty ID never does.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes id together with every edge touching it.
//
// Complexity: O(E).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			delete(g.edges, eid)
			g.unlinkLocked(e)
		}
	}
	delete(g.incident, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns every vertex ID in ascending order.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree counts the edges at id by kind. A directed edge u->v is out for u
// and in for v, so a directed loop counts once in each. An undirected edge
// counts once per endpoint, an undirected loop twice.
//
// Complexity: O(E).
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return 0, 0, 0, ErrVertexNotFound
	}

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	for _, e := range g.edges {
		ends := 0
		if e.From == id {
			ends++
			if e.Directed {
				out++
			}
		}
		if e.To == id {
			ends++
			if e.Directed {
				in++
			}
		}
		if !e.Directed {
			undirected += ends
		}
	}

	return in, out, undirected, nil
}
