// SPDX-License-Identifier: MIT

package rangeq

// Monoid is an associative operation with an identity element.
type Monoid[T any] struct {
	Identity T
	Combine  func(a, b T) T
}

// SumMonoid adds int64 values.
var SumMonoid = Monoid[int64]{Identity: 0, Combine: func(a, b int64) int64 { return a + b }}

// MinMonoid keeps the smaller int64; its identity is the largest int64.
var MinMonoid = Monoid[int64]{Identity: 1<<63 - 1, Combine: func(a, b int64) int64 { return min(a, b) }}

// MaxMonoid keeps the larger int64; its identity is the smallest int64.
var MaxMonoid = Monoid[int64]{Identity: -1 << 63, Combine: func(a, b int64) int64 { return max(a, b) }}

// SegmentTree is a bottom-up segment tree: leaves live at tree[n+k] and
// every internal node tree[k] combines tree[2k] and tree[2k+1].
// Combine order is preserved, so non-commutative monoids work.
type SegmentTree[T any] struct {
	n    int
	tree []T
	m    Monoid[T]
}

// NewSegmentTree builds a tree over xs in O(n).
func NewSegmentTree[T any](xs []T, m Monoid[T]) *SegmentTree[T] {
	n := len(xs)
	tree := make([]T, 2*n)
	copy(tree[n:], xs)
	for k := n - 1; k > 0; k-- {
		tree[k] = m.Combine(tree[2*k], tree[2*k+1])
	}

	return &SegmentTree[T]{n: n, tree: tree, m: m}
}

// Len returns the array length.
func (st *SegmentTree[T]) Len() int { return st.n }

// Set assigns xs[k] = v and refreshes its ancestors.
// Complexity: O(log n).
func (st *SegmentTree[T]) Set(k int, v T) error {
	if err := checkIndex(k, st.n); err != nil {
		return err
	}
	k += st.n
	st.tree[k] = v
	for k /= 2; k >= 1; k /= 2 {
		st.tree[k] = st.m.Combine(st.tree[2*k], st.tree[2*k+1])
	}

	return nil
}

// Get returns xs[k].
func (st *SegmentTree[T]) Get(k int) (T, error) {
	if err := checkIndex(k, st.n); err != nil {
		var zero T
		return zero, err
	}

	return st.tree[st.n+k], nil
}

// Query combines xs[a..b] in order.
// Complexity: O(log n).
func (st *SegmentTree[T]) Query(a, b int) (T, error) {
	if err := checkRange(a, b, st.n); err != nil {
		var zero T
		return zero, err
	}
	left, right := st.m.Identity, st.m.Identity
	for a, b = a+st.n, b+st.n; a <= b; a, b = a/2, b/2 {
		if a%2 == 1 {
			left = st.m.Combine(left, st.tree[a])
			a++
		}
		if b%2 == 0 {
			right = st.m.Combine(st.tree[b], right)
			b--
		}
	}

	return st.m.Combine(left, right), nil
}
