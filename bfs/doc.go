// SPDX-License-Identifier: MIT

// Package bfs implements breadth-first search on a core.Graph together with
// its two classic uses: connectivity checks and 2-coloring.
//
// BFS visits vertices in order of their distance, in edges, from the start
// vertex. The resulting BFSResult gives the visit order, the distance of
// every discovered vertex and a parent link for path reconstruction:
//
//	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(3))
//	path, _ := res.PathTo("K") // fewest-edge route A → K
//
// Directed edges are followed forward only; undirected edges both ways.
// Weights are ignored. Neighbors are expanded in ascending ID order so
// results are deterministic.
//
// Components partitions an undirected graph into connected components and
// Bipartite tries to 2-color it. Both run one BFS per component.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ErrDirectedGraph, plus hook errors wrapped with the vertex that raised
// them and ctx.Err() on cancellation.
package bfs
