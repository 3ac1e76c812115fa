// SPDX-License-Identifier: MIT

// Package arrays collects linear-time techniques on sequences.
//
// Maximum subarray sum is given three times, in O(n³), O(n²) and O(n)
// (Kadane), so the implementations can be compared against each other.
// The empty subarray is allowed, hence every maximum is at least 0.
//
// Amortized techniques:
//   - SubarrayWithSum and TwoSum use two pointers that only move forward.
//   - NearestSmaller keeps a stack of candidates.
//   - SlidingWindowMin keeps an increasing deque of window positions.
//
// Result ranges are half-open: (lo, hi) denotes xs[lo:hi].
package arrays
