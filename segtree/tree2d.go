// SPDX-License-Identifier: MIT

package segtree

import "fmt"

// Tree2D answers rectangle sums on an n×m grid with point additions. Each
// node of a bottom-up segment tree over rows holds a bottom-up segment
// tree over columns.
//
// Memory: O(n·m).
type Tree2D struct {
	n, m int
	t    [][]int64 // t[i][j], i in [1, 2n), j in [1, 2m)
}

// NewTree2D returns an all-zero n×m tree.
func NewTree2D(n, m int) (*Tree2D, error) {
	if n <= 0 || m <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadSize, n, m)
	}
	if n > MaxCells2D/m {
		return nil, fmt.Errorf("%w: %d×%d, limit %d cells", ErrTooLarge, n, m, MaxCells2D)
	}
	t := make([][]int64, 2*n)
	for i := range t {
		t[i] = make([]int64, 2*m)
	}

	return &Tree2D{n: n, m: m, t: t}, nil
}

// Add adds v to cell (y, x).
func (tt *Tree2D) Add(y, x int, v int64) error {
	if err := checkIndex(y, tt.n); err != nil {
		return err
	}
	if err := checkIndex(x, tt.m); err != nil {
		return err
	}
	for i := y + tt.n; i > 0; i >>= 1 {
		for j := x + tt.m; j > 0; j >>= 1 {
			tt.t[i][j] += v
		}
	}

	return nil
}

// Sum returns the sum over rows [y1, y2] and columns [x1, x2].
func (tt *Tree2D) Sum(y1, x1, y2, x2 int) (int64, error) {
	if err := checkRange(y1, y2, tt.n); err != nil {
		return 0, err
	}
	if err := checkRange(x1, x2, tt.m); err != nil {
		return 0, err
	}

	var s int64
	a, b := y1+tt.n, y2+tt.n
	for a <= b {
		if a&1 == 1 {
			s += tt.rowSum(a, x1, x2)
			a++
		}
		if b&1 == 0 {
			s += tt.rowSum(b, x1, x2)
			b--
		}
		a >>= 1
		b >>= 1
	}

	return s, nil
}

func (tt *Tree2D) rowSum(i, x1, x2 int) int64 {
	row := tt.t[i]
	var s int64
	a, b := x1+tt.m, x2+tt.m
	for a <= b {
		if a&1 == 1 {
			s += row[a]
			a++
		}
		if b&1 == 0 {
			s += row[b]
			b--
		}
		a >>= 1
		b >>= 1
	}

	return s
}
