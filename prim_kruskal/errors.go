// SPDX-License-Identifier: MIT

package prim_kruskal

import "errors"

var (
	// ErrInvalidGraph is returned for nil, directed or unweighted graphs.
	ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

	// ErrEmptyRoot is returned when Prim gets no root.
	ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

	// ErrDisconnected is returned when no spanning tree exists, including
	// for the empty graph.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrUnknownMethod is returned by Compute for an unsupported method.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)
