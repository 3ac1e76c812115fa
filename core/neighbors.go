// SPDX-License-Identifier: MIT

package core

import "sort"

// Neighbors returns the edges that can be traversed out of id: outgoing
// directed edges and every incident undirected edge, in creation order.
// Use Edge.Other(id) for the far end.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return append([]*Edge(nil), g.incident[id]...), nil
}

// NeighborIDs returns the distinct far ends of Neighbors(id), sorted.
// A self-loop contributes id itself.
//
// Complexity: O(deg(id) log deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		if nb := e.Other(id); !seen[nb] {
			seen[nb] = true
			ids = append(ids, nb)
		}
	}
	sort.Strings(ids)

	return ids, nil
}
