// SPDX-License-Identifier: MIT

// Package matching solves bipartite matching problems and the path
// cover problems that reduce to them.
//
// Bipartite problems take a *core.Graph plus the list of left-side
// vertices; every other vertex is on the right, and every edge must join
// the two sides (its direction is ignored).
//
//   - MaxBipartite: maximum matching via unit-capacity max flow (Dinic).
//   - MinVertexCover: König's construction from a maximum matching.
//   - MaxIndependentSet: the complement of a minimum vertex cover.
//   - HallViolation: a left subset X with |N(X)| < |X| when no perfect
//     matching of the left side exists.
//
// Directed acyclic graphs:
//
//   - MinPathCover: fewest vertex-disjoint paths covering every vertex.
//   - MinGeneralPathCover: fewest paths when vertices may be shared.
//   - MaxAntichain: a largest set of pairwise unreachable vertices
//     (Dilworth: its size equals the general path cover).
//
// All outputs are sorted, so results are deterministic.
package matching
