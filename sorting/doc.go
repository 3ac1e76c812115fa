// SPDX-License-Identifier: MIT

// Package sorting provides sorting and searching on slices of ordered values.
//
// Sorting:
//   - BubbleSort: O(n²), returns the number of swaps, which equals the
//     number of inversions.
//   - MergeSort: O(n log n), stable.
//   - CountingSort: O(n + c) for integer keys in [0, c].
//   - Inversions: counts pairs i < j with xs[i] > xs[j] in O(n log n).
//
// Searching on sorted input:
//   - BinarySearch halves the active range; JumpSearch jumps with
//     decreasing powers of two.
//   - LowerBound, UpperBound and EqualRange mirror the C++ library.
//   - SmallestTrue finds the first position where a monotone predicate
//     becomes true; UnimodalMax finds the peak of a unimodal function.
//
// QuickSelect returns the k-th smallest value in expected O(n) time.
package sorting
