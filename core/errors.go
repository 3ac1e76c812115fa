// SPDX-License-Identifier: MIT

package core

import "errors"

var (
	// ErrEmptyVertexID is returned for a zero-length vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound is returned when an operation names a missing vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound is returned when an operation names a missing edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight is returned for a non-zero weight on an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed is returned for a self-loop without WithLoops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed is returned for a parallel edge without WithMultiEdges.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed is returned for an edge option without WithMixedEdges.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)
