// SPDX-License-Identifier: MIT

// Package cphb is a library of competitive-programming algorithms with a
// small command-line front end.
//
// Everything is organised as focused subpackages. The graph packages share
// one representation, *core.Graph, with string vertex IDs and int64 weights:
//
//	core/          Graph, Vertex, Edge, Compact index view
//	builder/       canonical and random graph constructors
//	bfs/ dfs/      traversals, components, bipartiteness, topological order, cycles
//	dijkstra/      single-source shortest paths with non-negative weights
//	shortest/      Bellman-Ford, SPFA, Floyd-Warshall
//	prim_kruskal/  minimum spanning trees
//	dsu/           union-find
//	scc/           strongly connected components, 2-SAT
//	euler/         Eulerian and Hamiltonian paths, De Bruijn sequences
//	flow/          maximum flow, minimum cut, disjoint paths
//	matching/      bipartite matching, König, Hall, path covers
//	tree/          diameters, subtree and path queries, LCA
//	successor/     functional graphs, cycle detection
//	gridgraph/     grids as implicit graphs, knight's tours
//	matrix/        modular matrices, linear recurrences, Kirchhoff
//
// The rest covers sequences, counting and geometry:
//
//	arrays/ sorting/ dp/ greedy/ complete/ bits/
//	rangeq/ segtree/ sqrtdecomp/ stringalgo/
//	numtheory/ combinatorics/ probability/ games/ geometry/
//
// Index ranges follow two conventions. arrays reports half-open results,
// where (lo, hi) denotes xs[lo:hi]. The range-query packages rangeq,
// segtree and sqrtdecomp take inclusive ranges [a, b], so a single element
// is [k, k].
//
// The cphb command (cmd/cphb) runs any algorithm from internal/catalog on a
// YAML input, either one at a time or as a batch of tasks on a bounded
// worker pool:
//
//	cphb list
//	cphb solve dijkstra -i graph.yaml
//	cphb gen grid -n 3 -m 4 | cphb solve bfs
//	cphb run tasks.yaml --workers 8 -o json
//
// All algorithms are deterministic: ties are broken by vertex ID, edge
// creation order or input position, and every random source is seeded
// explicitly.
package cphb
