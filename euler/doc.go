// SPDX-License-Identifier: MIT

// Package euler finds paths and circuits that use every edge (Eulerian)
// or every vertex (Hamiltonian) of a *core.Graph exactly once.
//
//   - EulerianPath / EulerianCircuit: Hierholzer's algorithm, O(V + E).
//     Works on fully directed or fully undirected graphs, including
//     self-loops and parallel edges.
//   - HamiltonianPath: reachability DP over vertex subsets, O(2ⁿ·n²).
//   - ShortestHamiltonianCycle: Held-Karp, O(2ⁿ·n²) time, O(2ⁿ·n) memory.
//   - DeBruijn: a shortest string containing every word of length n,
//     built as an Eulerian circuit of the word-overlap graph.
//
// Hamiltonian searches are limited to MaxHamiltonVertices vertices.
// Ties between equal choices always go to the smallest vertex ID, so
// every result is deterministic.
package euler
