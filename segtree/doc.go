// SPDX-License-Identifier: MIT

// Package segtree extends the segment tree of package rangeq.
//
//   - Lazy: range add and range assign with range sums, via lazy propagation.
//   - Dynamic: point add and range sum over a huge index space; nodes are
//     created only along updated paths.
//   - Persistent: point assign that keeps every earlier version queryable.
//   - Tree2D: point add and rectangle sum on a grid.
//
// Every operation runs in O(log n), or O(log n · log m) for Tree2D.
// Indices are 0-based and ranges [a, b] are inclusive.
package segtree
