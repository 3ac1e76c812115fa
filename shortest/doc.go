// SPDX-License-Identifier: MIT

// Package shortest computes shortest paths on graphs that may carry
// negative edge weights, complementing package dijkstra.
//
//   - BellmanFord: single source, n-1 rounds of edge relaxation, O(V·E).
//   - SPFA: queue-driven Bellman-Ford; same worst case, usually far faster.
//   - NegativeCycle: finds a negative cycle anywhere in the graph.
//   - FloydWarshall: all pairs, O(V³), with path reconstruction.
//
// Undirected edges are treated as two opposite arcs, so a negative
// undirected edge is itself a negative cycle. Unreachable vertices keep
// distance Inf.
//
// Every function converts its input through core.Compact and works on dense
// indices; results are keyed by vertex ID again.
package shortest
