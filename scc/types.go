// SPDX-License-Identifier: MIT

package scc

import "errors"

var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("scc: graph is nil")

	// ErrVariableOutOfRange is returned for a 2SAT literal over an unknown variable.
	ErrVariableOutOfRange = errors.New("scc: variable out of range")
)

// Condensed is the component graph of a directed graph.
//
// Components[i] lists the vertices of component i (sorted);
// Of maps every vertex to its component index;
// DAG[i] lists the components reachable from i by one edge, sorted and unique.
type Condensed struct {
	Components [][]string
	Of         map[string]int
	DAG        [][]int
}
