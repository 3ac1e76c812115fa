// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory Graph shared by the
// graph packages of cphb.
//
// Vertices are non-empty strings and edges carry int64 weights. The kind of
// graph is fixed by options at construction:
//
//	WithDirected(true)   new edges are one-way
//	WithWeighted()       non-zero weights allowed
//	WithMultiEdges()     parallel edges allowed
//	WithLoops()          self-loops allowed
//	WithMixedEdges()     AddEdge accepts WithEdgeDirected per edge
//
// Each vertex keeps an incidence list of the edges that leave it, appended
// in creation order; undirected edges appear in both endpoints' lists and
// loops once. Two RWMutexes guard the graph, one for the vertex set and
// one for edges and incidence lists, always taken in that order. Flags are
// fixed at construction and read without locking.
//
// Iteration order never depends on map order:
//
//	Vertices()       ascending ID
//	Edges()          creation order ("e1", "e2", ...)
//	Neighbors(id)    creation order
//	NeighborIDs(id)  distinct, ascending ID
//
// Index-based algorithms (union-find, binary lifting, bit DP, dense flows)
// work on Compact(g): vertices numbered 0..n-1 in ID order with the
// adjacency copied into arc slices.
//
// Errors:
//
//	ErrEmptyVertexID        zero-length vertex ID
//	ErrVertexNotFound       missing vertex
//	ErrEdgeNotFound         missing edge
//	ErrBadWeight            non-zero weight on an unweighted graph
//	ErrLoopNotAllowed       self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed  parallel edge when multi-edges are disabled
//	ErrMixedEdgesNotAllowed per-edge override without mixed mode
package core
