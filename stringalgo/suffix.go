// SPDX-License-Identifier: MIT

package stringalgo

import (
	"fmt"
	"sort"
)

// SuffixArray returns the start offsets of the suffixes of s in
// lexicographic order.
//
// Steps:
//  1. Rank every suffix by its first byte.
//  2. Double k: sort by the pair (rank[i], rank[i+k]), where a missing
//     second half ranks below everything, then re-rank.
//  3. Stop once all ranks are distinct.
//
// Complexity: O(n log² n).
func SuffixArray(s string) []int {
	n := len(s)
	sa := make([]int, n)
	rank := make([]int, n)
	tmp := make([]int, n)
	for i := 0; i < n; i++ {
		sa[i] = i
		rank[i] = int(s[i])
	}
	if n <= 1 {
		return sa
	}

	for k := 1; ; k <<= 1 {
		second := func(i int) int {
			if i+k < n {
				return rank[i+k]
			}

			return -1
		}
		less := func(a, b int) bool {
			if rank[a] != rank[b] {
				return rank[a] < rank[b]
			}

			return second(a) < second(b)
		}
		sort.Slice(sa, func(x, y int) bool { return less(sa[x], sa[y]) })

		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			if less(sa[i-1], sa[i]) {
				tmp[sa[i]]++
			}
		}
		copy(rank, tmp)
		if rank[sa[n-1]] == n-1 {
			break
		}
	}

	return sa
}

// LCPArray returns lcp where lcp[i] is the length of the longest common
// prefix of the suffixes sa[i] and sa[i+1] (len(lcp) = n-1, empty for n < 2).
//
// Complexity: O(n) (Kasai: the LCP drops by at most one per step in text order).
func LCPArray(s string, sa []int) ([]int, error) {
	n := len(s)
	if len(sa) != n {
		return nil, fmt.Errorf("%w: %d offsets for %d bytes", ErrSuffixArrayMismatch, len(sa), n)
	}
	if n < 2 {
		return []int{}, nil
	}
	rank := make([]int, n)
	seen := make([]bool, n)
	for i, p := range sa {
		if p < 0 || p >= n || seen[p] {
			return nil, fmt.Errorf("%w: bad offset %d", ErrSuffixArrayMismatch, p)
		}
		seen[p] = true
		rank[p] = i
	}

	lcp := make([]int, n-1)
	h := 0
	for i := 0; i < n; i++ {
		if rank[i] == n-1 {
			h = 0
			continue
		}
		j := sa[rank[i]+1]
		for i+h < n && j+h < n && s[i+h] == s[j+h] {
			h++
		}
		lcp[rank[i]] = h
		if h > 0 {
			h--
		}
	}

	return lcp, nil
}

// CountDistinctSubstrings returns the number of distinct non-empty
// substrings of s: n(n+1)/2 minus the sum of the LCP array.
func CountDistinctSubstrings(s string) int64 {
	n := int64(len(s))
	total := n * (n + 1) / 2
	lcp, _ := LCPArray(s, SuffixArray(s))
	for _, v := range lcp {
		total -= int64(v)
	}

	return total
}
