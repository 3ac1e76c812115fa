// SPDX-License-Identifier: MIT

package euler

import "errors"

// MaxHamiltonVertices bounds the subset DP of the Hamiltonian searches.
const MaxHamiltonVertices = 20

var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("euler: graph is nil")

	// ErrMixedGraph is returned when directed and undirected edges are mixed.
	ErrMixedGraph = errors.New("euler: graph mixes directed and undirected edges")

	// ErrNoEulerianPath is returned when the degree conditions fail or the
	// edges do not form one connected piece.
	ErrNoEulerianPath = errors.New("euler: no eulerian path")

	// ErrNoHamiltonianCycle is returned when no cycle visits every vertex.
	ErrNoHamiltonianCycle = errors.New("euler: no hamiltonian cycle")

	// ErrTooLarge is returned when a Hamiltonian search exceeds MaxHamiltonVertices.
	ErrTooLarge = errors.New("euler: too many vertices")

	// ErrBadAlphabet is returned for an empty alphabet or repeated symbols.
	ErrBadAlphabet = errors.New("euler: alphabet must be non-empty with distinct symbols")

	// ErrBadLength is returned when the De Bruijn word length is below 1.
	ErrBadLength = errors.New("euler: word length must be positive")
)
