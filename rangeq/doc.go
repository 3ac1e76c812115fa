// SPDX-License-Identifier: MIT

// Package rangeq answers range queries over arrays.
//
// Static arrays:
//   - PrefixSums / PrefixSums2D: O(1) sum queries after O(n) preprocessing.
//   - SparseTable: O(1) queries for idempotent operations (min, max, gcd).
//
// Dynamic arrays:
//   - Fenwick: point add, prefix and range sums in O(log n).
//   - RangeFenwick: range add, point query in O(log n).
//   - SegmentTree: point assign and range query for any monoid in O(log n).
//
// All indices are 0-based and every range [a, b] is inclusive.
package rangeq
