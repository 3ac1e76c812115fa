// SPDX-License-Identifier: MIT

package arrays

import (
	"fmt"
	"sort"
)

// SubarrayWithSum finds a contiguous range xs[lo:hi] whose sum is target.
// All values must be positive, which makes the window sum monotone in both
// pointers. The range with the smallest lo is returned.
//
// Complexity: O(n); each pointer moves at most n steps.
func SubarrayWithSum(xs []int64, target int64) (lo, hi int, ok bool, err error) {
	for i, x := range xs {
		if x <= 0 {
			return 0, 0, false, fmt.Errorf("%w: xs[%d] = %d", ErrNonPositive, i, x)
		}
	}

	var sum int64
	for lo < len(xs) {
		for hi < len(xs) && sum+xs[hi] <= target {
			sum += xs[hi]
			hi++
		}
		if sum == target && hi > lo {
			return lo, hi, true, nil
		}
		if hi == lo {
			// xs[lo] alone exceeds target.
			lo++
			hi++
			continue
		}
		sum -= xs[lo]
		lo++
	}

	return 0, 0, false, nil
}

// TwoSum returns positions i < j with xs[i] + xs[j] == target. The input is
// not modified: positions are sorted by value and scanned with two pointers
// from both ends.
//
// Complexity: O(n log n).
func TwoSum(xs []int64, target int64) (i, j int, ok bool) {
	idx := make([]int, len(xs))
	for k := range idx {
		idx[k] = k
	}
	sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	l, r := 0, len(idx)-1
	for l < r {
		switch s := xs[idx[l]] + xs[idx[r]]; {
		case s == target:
			i, j = idx[l], idx[r]
			if i > j {
				i, j = j, i
			}

			return i, j, true
		case s < target:
			l++
		default:
			r--
		}
	}

	return 0, 0, false
}
