// SPDX-License-Identifier: MIT

// Package scc finds strongly connected components of directed graphs and
// builds on them to solve 2SAT.
//
//   - Kosaraju: two depth-first searches, the second on the transposed graph.
//   - Tarjan: one depth-first search with low-link values.
//   - Condensation: the component DAG.
//   - TwoSAT: satisfiability of 2-CNF formulas via the implication graph.
//
// Components are returned in topological order of the component graph:
// no edge leads from a later component to an earlier one. Vertices inside
// a component are sorted. Undirected edges count as two opposite arcs.
//
// Complexity: O(V + E) for every algorithm.
package scc
