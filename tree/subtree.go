// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"

	"github.com/katalvlaran/cphb/rangeq"
)

// SubtreeQueries keeps a value per vertex and answers, under point
// updates, the sum over a subtree and the sum on the path from the root.
//
// A subtree is a contiguous block [tin, tin+size) of the preorder array,
// so subtree sums are Fenwick range sums. A value at v contributes to the
// root path sum of every vertex in v's subtree, so path sums are point
// reads of a range-add Fenwick tree.
type SubtreeQueries struct {
	t      *Tree
	values []int64
	sub    *rangeq.Fenwick
	path   *rangeq.RangeFenwick
}

// NewSubtreeQueries starts with every value set to zero.
func NewSubtreeQueries(t *Tree) (*SubtreeQueries, error) {
	n := t.Len()
	sub, err := rangeq.NewFenwick(n)
	if err != nil {
		return nil, err
	}
	path, err := rangeq.NewRangeFenwick(n)
	if err != nil {
		return nil, err
	}

	return &SubtreeQueries{t: t, values: make([]int64, n), sub: sub, path: path}, nil
}

// SetValue assigns x to vertex v.
// Complexity: O(log n).
func (q *SubtreeQueries) SetValue(v string, x int64) error {
	i, err := q.t.index(v)
	if err != nil {
		return err
	}
	delta := x - q.values[i]
	q.values[i] = x

	lo, hi := q.t.tin[i], q.t.tin[i]+q.t.size[i]-1
	if err := q.sub.Add(lo, delta); err != nil {
		return fmt.Errorf("tree: subtree index: %w", err)
	}
	if err := q.path.AddRange(lo, hi, delta); err != nil {
		return fmt.Errorf("tree: path index: %w", err)
	}

	return nil
}

// Value returns the current value of v.
func (q *SubtreeQueries) Value(v string) (int64, error) {
	i, err := q.t.index(v)
	if err != nil {
		return 0, err
	}

	return q.values[i], nil
}

// SubtreeSum returns the sum of values in the subtree of v.
// Complexity: O(log n).
func (q *SubtreeQueries) SubtreeSum(v string) (int64, error) {
	i, err := q.t.index(v)
	if err != nil {
		return 0, err
	}

	return q.sub.RangeSum(q.t.tin[i], q.t.tin[i]+q.t.size[i]-1)
}

// PathSum returns the sum of values on the path from the root to v, both included.
// Complexity: O(log n).
func (q *SubtreeQueries) PathSum(v string) (int64, error) {
	i, err := q.t.index(v)
	if err != nil {
		return 0, err
	}

	return q.path.Get(q.t.tin[i])
}
