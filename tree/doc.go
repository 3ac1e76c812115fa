// SPDX-License-Identifier: MIT

// Package tree implements algorithms on rooted trees built from an
// undirected, connected, acyclic *core.Graph.
//
// New roots the tree once (iterative DFS, children in edge creation order)
// and precomputes parents, depths, subtree sizes, preorder positions and
// binary-lifting tables. On top of that:
//
//   - Diameter and FarthestDistances: longest paths, O(n).
//   - KthAncestor, LCA, Distance: binary lifting, O(log n) per query.
//   - EulerLCA: LCA via Euler tour + sparse table, O(1) per query.
//   - SubtreeQueries: subtree sums and root-path sums under point updates,
//     O(log n) per operation (tree traversal array + Fenwick trees).
//   - DistinctInSubtrees: offline small-to-large merging, O(n log² n).
//
// Edge lengths are the edge weights for weighted graphs and 1 otherwise.
package tree
