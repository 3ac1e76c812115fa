// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search on a core.Graph and the
// algorithms built on it: cycle detection, topological sorting and path
// counting in directed acyclic graphs.
//
// DFS walks an explicit stack, reporting vertices in postorder together
// with discovery depth and parent links. Hooks run on discovery (OnVisit)
// and on finish (OnExit); either may abort the search with an error.
//
//	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(4))
//	forest, err := dfs.DFS(g, "", dfs.WithFullTraversal())
//
// FindCycle colors vertices white, gray and black; an edge into a gray
// vertex closes a cycle. It handles directed, undirected and mixed graphs.
//
// TopologicalSort and CountPaths require every edge to be directed. The
// sort is Kahn's algorithm over a min-heap, so the order it returns is the
// lexicographically smallest valid one.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrCycleDetected,
// ErrUndirectedEdge, ErrVertexNotFound, ErrNeighborFetch, hook errors and
// ctx.Err().
package dfs
