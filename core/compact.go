// SPDX-License-Identifier: MIT
//
// File: compact.go
// Role: Dense integer view of a Graph for index-based algorithms.
// Determinism:
//   - Index i corresponds to the i-th vertex ID in sorted order.
//   - Arcs[i] follows Neighbors(ID(i)) order; Edges follows creation order.

package core

// Arc is one traversable half of an edge in a Compacted graph.
type Arc struct {
	To     int
	Weight int64
	EdgeID string
}

// IndexedEdge is an edge with both endpoints mapped to dense indices.
type IndexedEdge struct {
	ID       string
	From     int
	To       int
	Weight   int64
	Directed bool
}

// Compacted is an immutable snapshot of a Graph with vertices numbered 0..N()-1.
type Compacted struct {
	ids   []string
	index map[string]int

	// Arcs[i] lists the arcs leaving vertex i.
	Arcs [][]Arc
	// Edges lists every edge once, in creation order.
	Edges []IndexedEdge
}

// Compact snapshots g into a Compacted graph.
// Later mutations of g are not reflected.
// Complexity: O(V log V + E log E).
func Compact(g *Graph) *Compacted {
	ids := g.Vertices()
	c := &Compacted{
		ids:   ids,
		index: make(map[string]int, len(ids)),
		Arcs:  make([][]Arc, len(ids)),
	}
	for i, id := range ids {
		c.index[id] = i
	}

	for i, id := range ids {
		nbs, err := g.Neighbors(id)
		if err != nil {
			continue
		}
		arcs := make([]Arc, 0, len(nbs))
		for _, e := range nbs {
			j, ok := c.index[e.Other(id)]
			if !ok {
				continue
			}
			arcs = append(arcs, Arc{To: j, Weight: e.Weight, EdgeID: e.ID})
		}
		c.Arcs[i] = arcs
	}

	for _, e := range g.Edges() {
		u, okU := c.index[e.From]
		v, okV := c.index[e.To]
		if !okU || !okV {
			continue
		}
		c.Edges = append(c.Edges, IndexedEdge{ID: e.ID, From: u, To: v, Weight: e.Weight, Directed: e.Directed})
	}

	return c
}

// N returns the number of vertices.
func (c *Compacted) N() int { return len(c.ids) }

// IndexOf returns the dense index of id.
func (c *Compacted) IndexOf(id string) (int, bool) {
	i, ok := c.index[id]

	return i, ok
}

// ID returns the vertex ID at index i.
func (c *Compacted) ID(i int) string { return c.ids[i] }

// IDs returns the vertex IDs in index order. The slice must not be modified.
func (c *Compacted) IDs() []string { return c.ids }

// Reverse returns the transpose: every arc u->v becomes v->u.
// Undirected edges are already symmetric and come out unchanged.
// Complexity: O(V + E).
func (c *Compacted) Reverse() *Compacted {
	r := &Compacted{
		ids:   c.ids,
		index: c.index,
		Arcs:  make([][]Arc, len(c.ids)),
		Edges: make([]IndexedEdge, len(c.Edges)),
	}
	for u, arcs := range c.Arcs {
		for _, a := range arcs {
			r.Arcs[a.To] = append(r.Arcs[a.To], Arc{To: u, Weight: a.Weight, EdgeID: a.EdgeID})
		}
	}
	for i, e := range c.Edges {
		e.From, e.To = e.To, e.From
		r.Edges[i] = e
	}

	return r
}
