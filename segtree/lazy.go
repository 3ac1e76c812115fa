// SPDX-License-Identifier: MIT

package segtree

// Lazy is a sum segment tree supporting two range updates: add x to every
// element, or assign x to every element.
//
// A node stores the sum of its range and at most one pending update for
// its children. A pending assignment absorbs later additions (set += x),
// and a new assignment discards a pending addition.
type Lazy struct {
	n      int
	sum    []int64
	add    []int64
	set    []int64
	hasSet []bool
}

// NewLazy builds a tree over a copy of xs.
func NewLazy(xs []int64) *Lazy {
	n := len(xs)
	size := 4 * max(n, 1)
	lt := &Lazy{
		n:      n,
		sum:    make([]int64, size),
		add:    make([]int64, size),
		set:    make([]int64, size),
		hasSet: make([]bool, size),
	}
	if n > 0 {
		lt.build(1, 0, n-1, xs)
	}

	return lt
}

// Len returns the number of elements.
func (lt *Lazy) Len() int { return lt.n }

// Add adds x to every element in [a, b].
func (lt *Lazy) Add(a, b int, x int64) error {
	if err := checkRange(a, b, lt.n); err != nil {
		return err
	}
	lt.update(1, 0, lt.n-1, a, b, x, false)

	return nil
}

// Assign sets every element in [a, b] to x.
func (lt *Lazy) Assign(a, b int, x int64) error {
	if err := checkRange(a, b, lt.n); err != nil {
		return err
	}
	lt.update(1, 0, lt.n-1, a, b, x, true)

	return nil
}

// Sum returns the sum of the elements in [a, b].
func (lt *Lazy) Sum(a, b int) (int64, error) {
	if err := checkRange(a, b, lt.n); err != nil {
		return 0, err
	}

	return lt.query(1, 0, lt.n-1, a, b), nil
}

func (lt *Lazy) build(v, l, r int, xs []int64) {
	if l == r {
		lt.sum[v] = xs[l]
		return
	}
	m := (l + r) / 2
	lt.build(2*v, l, m, xs)
	lt.build(2*v+1, m+1, r, xs)
	lt.sum[v] = lt.sum[2*v] + lt.sum[2*v+1]
}

func (lt *Lazy) applySet(v, l, r int, x int64) {
	lt.sum[v] = x * int64(r-l+1)
	lt.set[v], lt.hasSet[v] = x, true
	lt.add[v] = 0
}

func (lt *Lazy) applyAdd(v, l, r int, x int64) {
	lt.sum[v] += x * int64(r-l+1)
	if lt.hasSet[v] {
		lt.set[v] += x
	} else {
		lt.add[v] += x
	}
}

// push hands the pending update of v to its children.
func (lt *Lazy) push(v, l, r int) {
	m := (l + r) / 2
	if lt.hasSet[v] {
		lt.applySet(2*v, l, m, lt.set[v])
		lt.applySet(2*v+1, m+1, r, lt.set[v])
		lt.hasSet[v] = false
	} else if lt.add[v] != 0 {
		lt.applyAdd(2*v, l, m, lt.add[v])
		lt.applyAdd(2*v+1, m+1, r, lt.add[v])
		lt.add[v] = 0
	}
}

func (lt *Lazy) update(v, l, r, a, b int, x int64, assign bool) {
	if b < l || r < a {
		return
	}
	if a <= l && r <= b {
		if assign {
			lt.applySet(v, l, r, x)
		} else {
			lt.applyAdd(v, l, r, x)
		}
		return
	}
	lt.push(v, l, r)
	m := (l + r) / 2
	lt.update(2*v, l, m, a, b, x, assign)
	lt.update(2*v+1, m+1, r, a, b, x, assign)
	lt.sum[v] = lt.sum[2*v] + lt.sum[2*v+1]
}

func (lt *Lazy) query(v, l, r, a, b int) int64 {
	if b < l || r < a {
		return 0
	}
	if a <= l && r <= b {
		return lt.sum[v]
	}
	lt.push(v, l, r)
	m := (l + r) / 2

	return lt.query(2*v, l, m, a, b) + lt.query(2*v+1, m+1, r, a, b)
}
