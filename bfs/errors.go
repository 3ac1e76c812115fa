// SPDX-License-Identifier: MIT

package bfs

import "errors"

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation reports an invalid Option, such as a negative depth.
	ErrOptionViolation = errors.New("bfs: invalid option")

	// ErrDirectedGraph is returned by Components and Bipartite, which need
	// every edge to be undirected.
	ErrDirectedGraph = errors.New("bfs: directed edges not supported")

	// ErrNoPath is returned by PathTo for a vertex the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)
