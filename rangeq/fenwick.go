// SPDX-License-Identifier: MIT

package rangeq

// Fenwick is a binary indexed tree over int64 values.
// tree is 1-indexed: tree[k] covers the p(k) = k & -k values ending at k.
type Fenwick struct {
	tree []int64
}

// NewFenwick creates a tree of n zeros. n must lie in [0, MaxLen].
func NewFenwick(n int) (*Fenwick, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}

	return &Fenwick{tree: make([]int64, n+1)}, nil
}

// NewFenwickFrom builds a tree holding xs in O(n).
func NewFenwickFrom(xs []int64) *Fenwick {
	f := &Fenwick{tree: make([]int64, len(xs)+1)}
	copy(f.tree[1:], xs)
	for k := 1; k < len(f.tree); k++ {
		if parent := k + k&-k; parent < len(f.tree) {
			f.tree[parent] += f.tree[k]
		}
	}

	return f
}

// Len returns the array length.
func (f *Fenwick) Len() int { return len(f.tree) - 1 }

// Add increases the value at index k by x.
// Complexity: O(log n).
func (f *Fenwick) Add(k int, x int64) error {
	if err := checkIndex(k, f.Len()); err != nil {
		return err
	}
	for k++; k < len(f.tree); k += k & -k {
		f.tree[k] += x
	}

	return nil
}

// PrefixSum returns the sum of values at 0..k. k = -1 yields 0.
// Complexity: O(log n).
func (f *Fenwick) PrefixSum(k int) (int64, error) {
	if k < -1 || k >= f.Len() {
		return 0, checkIndex(k, f.Len())
	}

	return f.prefix(k + 1), nil
}

// prefix sums the first k values (1-indexed bound).
func (f *Fenwick) prefix(k int) int64 {
	var s int64
	for ; k > 0; k -= k & -k {
		s += f.tree[k]
	}

	return s
}

// RangeSum returns the sum of values at a..b.
func (f *Fenwick) RangeSum(a, b int) (int64, error) {
	if err := checkRange(a, b, f.Len()); err != nil {
		return 0, err
	}

	return f.prefix(b+1) - f.prefix(a), nil
}

// RangeFenwick supports adding to a whole range and reading single values.
// It stores the difference array in a Fenwick tree: the value at k is the
// prefix sum of differences up to k.
type RangeFenwick struct {
	diff *Fenwick
}

// NewRangeFenwick creates n zeros. n must lie in [0, MaxLen].
func NewRangeFenwick(n int) (*RangeFenwick, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}

	return &RangeFenwick{diff: &Fenwick{tree: make([]int64, n+2)}}, nil
}

// Len returns the array length.
func (rf *RangeFenwick) Len() int { return rf.diff.Len() - 1 }

// AddRange increases every value at a..b by x.
// Complexity: O(log n).
func (rf *RangeFenwick) AddRange(a, b int, x int64) error {
	if err := checkRange(a, b, rf.Len()); err != nil {
		return err
	}
	_ = rf.diff.Add(a, x)
	_ = rf.diff.Add(b+1, -x)

	return nil
}

// Get returns the current value at k.
// Complexity: O(log n).
func (rf *RangeFenwick) Get(k int) (int64, error) {
	if err := checkIndex(k, rf.Len()); err != nil {
		return 0, err
	}

	return rf.diff.prefix(k + 1), nil
}
