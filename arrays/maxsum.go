// SPDX-License-Identifier: MIT

package arrays

// MaxSubarrayCubic returns the maximum subarray sum by trying every range
// and summing it from scratch.
//
// Complexity: O(n³).
func MaxSubarrayCubic(xs []int64) int64 {
	var best int64
	for a := range xs {
		for b := a; b < len(xs); b++ {
			var sum int64
			for k := a; k <= b; k++ {
				sum += xs[k]
			}
			best = max(best, sum)
		}
	}

	return best
}

// MaxSubarrayQuadratic extends the sum of each range by one element at a
// time instead of recomputing it.
//
// Complexity: O(n²).
func MaxSubarrayQuadratic(xs []int64) int64 {
	var best int64
	for a := range xs {
		var sum int64
		for b := a; b < len(xs); b++ {
			sum += xs[b]
			best = max(best, sum)
		}
	}

	return best
}

// MaxSubarray is Kadane's algorithm. It returns the maximum sum together
// with the bounds of one optimal range xs[lo:hi]; among equal sums the range
// that ends first wins. An all-negative input yields the empty range (0, 0, 0).
//
// Steps:
//  1. sum holds the best sum of a range ending at k, restarting at k when
//     the running sum has dropped to zero or below.
//  2. Every strictly better sum updates best and its bounds.
//
// Complexity: O(n) time, O(1) memory.
func MaxSubarray(xs []int64) (best int64, lo, hi int) {
	var sum int64
	start := 0
	for k, x := range xs {
		if sum <= 0 {
			sum, start = x, k
		} else {
			sum += x
		}
		if sum > best {
			best, lo, hi = sum, start, k+1
		}
	}

	return best, lo, hi
}
