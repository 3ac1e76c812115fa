// SPDX-License-Identifier: MIT

package dfs

import "errors"

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when DFS starts at a missing vertex.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected is returned by the DAG algorithms on a cyclic graph.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirectedEdge is returned by the DAG algorithms when the graph
	// holds an undirected edge.
	ErrUndirectedEdge = errors.New("dfs: operation requires directed graph")

	// ErrVertexNotFound reports a missing CountPaths endpoint.
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrNeighborFetch wraps a failed adjacency lookup.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// Vertex colors of a three-state search.
const (
	white = iota // undiscovered
	gray         // on the current search path
	black        // finished
)
