// SPDX-License-Identifier: MIT

package core

import "sync"

// Edge joins From and To. Undirected edges are traversable both ways;
// in graphs without mixed mode Directed always equals the graph default.
type Edge struct {
	ID       string
	From     string
	To       string
	Weight   int64
	Directed bool

	seq uint64
}

// Other returns the endpoint opposite to id. For a self-loop, or an id that
// is not an endpoint, it returns To.
func (e *Edge) Other(id string) string {
	if e.To == id {
		return e.From
	}

	return e.To
}

// Graph is a thread-safe in-memory graph with string vertex IDs.
//
// Every vertex owns an incidence list of the edges that can be traversed
// out of it: its outgoing directed edges and all its undirected edges, a
// loop listed once. Lists are appended in creation order and never
// re-sorted.
type Graph struct {
	muVert sync.RWMutex // vertices
	muEdge sync.RWMutex // edges, incident, lastSeq

	flags flags

	vertices map[string]struct{}
	edges    map[string]*Edge
	incident map[string][]*Edge
	lastSeq  uint64
}

// GraphStats is a snapshot of a graph's flags and sizes.
type GraphStats struct {
	DirectedDefault     bool
	Weighted            bool
	AllowsMulti         bool
	AllowsLoops         bool
	MixedMode           bool
	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
}

// NewGraph returns an empty graph. Without options it is undirected and
// unweighted, and rejects loops and parallel edges.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		edges:    make(map[string]*Edge),
		incident: make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(&g.flags)
	}

	return g
}

// NewMixedGraph is NewGraph with WithMixedEdges applied first.
func NewMixedGraph(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithMixedEdges()}, opts...)...)
}

// Directed reports the default orientation of new edges. See
// HasDirectedEdges for what is actually stored.
func (g *Graph) Directed() bool { return g.flags.directed }

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool { return g.flags.weighted }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.flags.loops }

// Stats counts vertices and edges, splitting edges by orientation.
// Vertices and edges are counted under separate locks, so a concurrent
// writer may land in between.
//
// Complexity: O(E).
func (g *Graph) Stats() *GraphStats {
	st := &GraphStats{
		DirectedDefault: g.flags.directed,
		Weighted:        g.flags.weighted,
		AllowsMulti:     g.flags.multi,
		AllowsLoops:     g.flags.loops,
		MixedMode:       g.flags.mixed,
		VertexCount:     g.VertexCount(),
	}

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	st.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.Directed {
			st.DirectedEdgeCount++
		}
	}
	st.UndirectedEdgeCount = st.EdgeCount - st.DirectedEdgeCount

	return st
}
