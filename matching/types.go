// SPDX-License-Identifier: MIT

package matching

import "errors"

var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrVertexNotFound is returned when a left-side vertex is missing.
	ErrVertexNotFound = errors.New("matching: vertex not found")

	// ErrNotBipartite is returned when an edge joins two vertices on the same side.
	ErrNotBipartite = errors.New("matching: edge inside one side")

	// ErrNotDAG is returned by path covers on undirected or cyclic graphs.
	ErrNotDAG = errors.New("matching: graph is not a directed acyclic graph")
)

// Pair is one matched edge.
type Pair struct {
	Left, Right string
}
