// SPDX-License-Identifier: MIT

package dp

import (
	"cmp"
	"sort"
)

// LIS returns the length of a longest strictly increasing subsequence of
// xs and the positions of one such subsequence. Among equal lengths the
// subsequence ending first is reported.
//
// Complexity: O(n²).
func LIS[T cmp.Ordered](xs []T) (int, []int) {
	if len(xs) == 0 {
		return 0, nil
	}
	length := make([]int, len(xs))
	prev := make([]int, len(xs))
	end := 0
	for k := range xs {
		length[k], prev[k] = 1, -1
		for i := 0; i < k; i++ {
			if xs[i] < xs[k] && length[i]+1 > length[k] {
				length[k], prev[k] = length[i]+1, i
			}
		}
		if length[k] > length[end] {
			end = k
		}
	}

	pos := make([]int, length[end])
	for k, i := end, len(pos)-1; k >= 0; k, i = prev[k], i-1 {
		pos[i] = k
	}

	return length[end], pos
}

// LISFast returns the length of a longest strictly increasing subsequence.
// tails[l] is the smallest value that ends an increasing subsequence of
// length l+1; each element replaces the first tail not smaller than it.
//
// Complexity: O(n log n).
func LISFast[T cmp.Ordered](xs []T) int {
	tails := make([]T, 0, len(xs))
	for _, x := range xs {
		k := sort.Search(len(tails), func(i int) bool { return tails[i] >= x })
		if k == len(tails) {
			tails = append(tails, x)
		} else {
			tails[k] = x
		}
	}

	return len(tails)
}
