// SPDX-License-Identifier: MIT
//
// File: utils.go
// Role: Residual network shared by all max-flow engines.
// Determinism:
//   - adjacency lists are sorted, so augmenting paths and flow
//     decompositions do not depend on map iteration order.

package flow

import (
	"sort"

	"github.com/katalvlaran/cphb/core"
)

// network holds residual capacities keyed by vertex ID.
//
// cap[u][v] is the remaining capacity on u→v. Every arc has a twin v→u
// (possibly with zero capacity) so that flow can be cancelled.
// orig keeps the capacities the network was built with.
type network struct {
	nodes []string
	cap   map[string]map[string]int64
	orig  map[string]map[string]int64
	adj   map[string][]string
}

// newNetwork allocates an empty network over nodes.
func newNetwork(nodes []string) *network {
	n := &network{
		nodes: nodes,
		cap:   make(map[string]map[string]int64, len(nodes)),
		orig:  make(map[string]map[string]int64, len(nodes)),
		adj:   make(map[string][]string, len(nodes)),
	}
	for _, u := range nodes {
		n.cap[u] = make(map[string]int64)
		n.orig[u] = make(map[string]int64)
	}

	return n
}

// addCap adds c units of capacity on u→v, creating the twin arc if needed.
func (n *network) addCap(u, v string, c int64) {
	// arcs and twins are always created in pairs
	if _, ok := n.orig[u][v]; !ok {
		n.orig[u][v], n.orig[v][u] = 0, 0
		n.cap[u][v], n.cap[v][u] = 0, 0
		n.adj[u] = append(n.adj[u], v)
		n.adj[v] = append(n.adj[v], u)
	}
	n.cap[u][v] += c
	n.orig[u][v] += c
}

// seal sorts every adjacency list.
func (n *network) seal() {
	for _, u := range n.nodes {
		sort.Strings(n.adj[u])
	}
}

// buildNetwork converts g into a residual network.
//
// Steps:
//  1. Add every vertex of g.
//  2. For each edge (creation order): skip loops, reject negative weight,
//     add u→v; undirected edges also add v→u.
//  3. Parallel edges aggregate into one arc.
//
// Complexity: O(V log V + E log E).
func buildNetwork(g *core.Graph) (*network, error) {
	n := newNetwork(g.Vertices())
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if e.Weight < 0 {
			return nil, EdgeError{From: e.From, To: e.To, Cap: e.Weight}
		}
		n.addCap(e.From, e.To, e.Weight)
		if !e.Directed {
			n.addCap(e.To, e.From, e.Weight)
		}
	}
	n.seal()

	return n, nil
}

// flowOn returns the net flow currently sent along u→v.
// It is antisymmetric: flowOn(u,v) == -flowOn(v,u).
func (n *network) flowOn(u, v string) int64 {
	return n.orig[u][v] - n.cap[u][v]
}

// reachable returns the set of vertices reachable from s through arcs
// with positive residual capacity.
func (n *network) reachable(s string) map[string]bool {
	seen := map[string]bool{s: true}
	queue := []string{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range n.adj[u] {
			if n.cap[u][v] > 0 && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// residualGraph materializes the residual network as a directed, weighted
// core.Graph holding one edge u→v per arc with positive remaining capacity.
func (n *network) residualGraph() (*core.Graph, error) {
	r := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, u := range n.nodes {
		if err := r.AddVertex(u); err != nil {
			return nil, err
		}
	}
	for _, u := range n.nodes {
		for _, v := range n.adj[u] {
			if c := n.cap[u][v]; c > 0 {
				if _, err := r.AddEdge(u, v, c); err != nil {
					return nil, err
				}
			}
		}
	}

	return r, nil
}

// decompose splits the current s→t flow into unit paths and returns
// count of them. Each unit of flow is consumed as it is walked, so
// the method is destructive on a copy of the flow values only.
// Cycles met on the way are cut out of the path.
func (n *network) decompose(s, t string, count int64) [][]string {
	rest := make(map[string]map[string]int64, len(n.nodes))
	for _, u := range n.nodes {
		rest[u] = make(map[string]int64)
		for _, v := range n.adj[u] {
			if f := n.flowOn(u, v); f > 0 {
				rest[u][v] = f
			}
		}
	}

	paths := make([][]string, 0, count)
	for k := int64(0); k < count; k++ {
		path := []string{s}
		pos := map[string]int{s: 0}
		for u := s; u != t; {
			next := ""
			for _, v := range n.adj[u] {
				if rest[u][v] > 0 {
					next = v
					break
				}
			}
			if next == "" {
				// conservation violated; cannot happen for a valid flow
				return paths
			}
			rest[u][next]--
			if i, seen := pos[next]; seen {
				for _, x := range path[i+1:] {
					delete(pos, x)
				}
				path = path[:i+1]
			} else {
				pos[next] = len(path)
				path = append(path, next)
			}
			u = next
		}
		paths = append(paths, path)
	}

	return paths
}

// prepare validates inputs and builds the network.
func prepare(g *core.Graph, source, sink string, opts *FlowOptions) (*network, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSourceIsSink
	}
	if err := opts.Ctx.Err(); err != nil {
		return nil, err
	}

	return buildNetwork(g)
}
