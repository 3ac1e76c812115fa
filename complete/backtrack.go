// SPDX-License-Identifier: MIT

package complete

import (
	"fmt"
	"math/bits"
	"sort"
)

// NQueens counts the ways to place n queens on an n×n board so that no two
// attack each other. Rows are filled top to bottom; column and diagonal
// occupancy are bitmasks, so each candidate square is checked in O(1).
func NQueens(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	if n > MaxQueens {
		return 0, fmt.Errorf("%w: board %d, limit %d", ErrTooLarge, n, MaxQueens)
	}
	if n == 0 {
		return 1, nil
	}

	full := uint32(1)<<n - 1
	var search func(cols, diag1, diag2 uint32) int64
	search = func(cols, diag1, diag2 uint32) int64 {
		if cols == full {
			return 1
		}
		var count int64
		free := full &^ (cols | diag1 | diag2)
		for free != 0 {
			bit := free & -free
			free ^= bit
			count += search(cols|bit, (diag1|bit)<<1&full, (diag2|bit)>>1)
		}

		return count
	}

	return search(0, 0, 0), nil
}

// SubsetSumMeetInMiddle reports whether some subset of xs sums to target
// and returns the ascending indices of one such subset.
//
// Steps:
//  1. Split xs into halves A and B.
//  2. Record every subset sum of A with the first mask producing it.
//  3. For every subset sum s of B, look up target-s among the sums of A.
//
// Complexity: O(2^(n/2)) time and memory, against O(2^n) for plain search.
func SubsetSumMeetInMiddle(xs []int64, target int64) ([]int, bool, error) {
	if len(xs) > MaxMeetInMiddle {
		return nil, false, fmt.Errorf("%w: %d values, limit %d", ErrTooLarge, len(xs), MaxMeetInMiddle)
	}
	half := len(xs) / 2
	left, right := xs[:half], xs[half:]

	seen := make(map[int64]uint32, 1<<len(left))
	for _, s := range subsetSums(left) {
		if _, ok := seen[s.sum]; !ok {
			seen[s.sum] = s.mask
		}
	}
	for _, s := range subsetSums(right) {
		lm, ok := seen[target-s.sum]
		if !ok {
			continue
		}
		var idx []int
		for m := lm; m != 0; m &= m - 1 {
			idx = append(idx, bits.TrailingZeros32(m))
		}
		for m := s.mask; m != 0; m &= m - 1 {
			idx = append(idx, half+bits.TrailingZeros32(m))
		}
		sort.Ints(idx)

		return idx, true, nil
	}

	return nil, false, nil
}

type maskSum struct {
	mask uint32
	sum  int64
}

// subsetSums lists the sums of all subsets of xs, indexed by mask; each
// mask extends the mask without its lowest bit.
func subsetSums(xs []int64) []maskSum {
	res := make([]maskSum, 1<<len(xs))
	for m := 1; m < len(res); m++ {
		low := bits.TrailingZeros(uint(m))
		prev := res[m&(m-1)]
		res[m] = maskSum{mask: uint32(m), sum: prev.sum + xs[low]}
	}

	return res
}
