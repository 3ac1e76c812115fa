// SPDX-License-Identifier: MIT

package rangeq

import "math/bits"

// SparseTable answers range queries for an idempotent, associative
// combine function (min, max, gcd, ...) in O(1).
//
// table[j][i] = combine of xs[i .. i+2^j-1].
type SparseTable[T any] struct {
	table   [][]T
	combine func(a, b T) T
}

// NewSparseTable builds the table in O(n log n).
// combine must satisfy combine(x, x) == x.
func NewSparseTable[T any](xs []T, combine func(a, b T) T) *SparseTable[T] {
	n := len(xs)
	levels := bits.Len(uint(n))
	if levels == 0 {
		levels = 1
	}
	table := make([][]T, levels)
	table[0] = append([]T(nil), xs...)
	for j := 1; j < levels; j++ {
		half := 1 << (j - 1)
		width := n - (1 << j) + 1
		table[j] = make([]T, width)
		for i := 0; i < width; i++ {
			table[j][i] = combine(table[j-1][i], table[j-1][i+half])
		}
	}

	return &SparseTable[T]{table: table, combine: combine}
}

// Len returns the array length.
func (st *SparseTable[T]) Len() int { return len(st.table[0]) }

// Query returns combine over xs[a..b] using two overlapping blocks of
// length 2^k, where 2^k is the largest power of two not above b-a+1.
func (st *SparseTable[T]) Query(a, b int) (T, error) {
	if err := checkRange(a, b, st.Len()); err != nil {
		var zero T
		return zero, err
	}
	k := bits.Len(uint(b-a+1)) - 1

	return st.combine(st.table[k][a], st.table[k][b-(1<<k)+1]), nil
}
