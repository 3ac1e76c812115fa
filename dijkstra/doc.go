// SPDX-License-Identifier: MIT

// Package dijkstra finds single-source shortest paths in weighted graphs
// whose edge weights are all non-negative.
//
// The implementation works on a core.Compact snapshot and a binary heap
// with lazy deletion: improved distances are pushed again and stale heap
// entries are dropped when popped. Once a vertex is popped its distance is
// final.
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	path, err := dijkstra.PathTo(prev, "A", "D")
//
// Options bound the search (WithMaxDistance) or turn heavy edges into
// walls (WithInfEdgeThreshold). Directed edges are followed forward only,
// undirected edges both ways. Unreachable vertices keep distance
// math.MaxInt64. Graphs with negative weights are rejected with
// ErrNegativeWeight; package shortest handles those.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
package dijkstra
