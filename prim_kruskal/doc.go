// SPDX-License-Identifier: MIT

// Package prim_kruskal computes minimum spanning trees of undirected,
// weighted graphs.
//
// A spanning tree connects all n vertices with n-1 edges; a minimum one
// has the smallest possible total weight. Two classic algorithms are
// provided and always agree on the total:
//
//   - Kruskal scans edges by increasing weight and keeps those that join
//     two components of a union-find (package dsu). Equal weights keep
//     edge creation order.
//   - Prim grows one tree from a root, repeatedly taking the lightest
//     edge that leaves it, using a binary heap.
//
// Compute selects between them through MSTOptions.
//
// Errors:
//
//	ErrInvalidGraph    nil, directed or unweighted graph
//	ErrDisconnected    empty or disconnected graph
//	ErrEmptyRoot       Prim without a root
//	ErrUnknownMethod   Compute with an unsupported method
//
// A single vertex yields an empty tree of weight 0.
//
// Complexity: O(E log E) for both.
package prim_kruskal
