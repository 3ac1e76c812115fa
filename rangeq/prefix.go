// SPDX-License-Identifier: MIT

package rangeq

import "fmt"

// PrefixSums answers sum queries on a static array.
// p[k] holds the sum of the first k values.
type PrefixSums struct {
	p []int64
}

// NewPrefixSums precomputes prefix sums of xs in O(n).
func NewPrefixSums(xs []int64) *PrefixSums {
	p := make([]int64, len(xs)+1)
	for i, x := range xs {
		p[i+1] = p[i] + x
	}

	return &PrefixSums{p: p}
}

// Sum returns xs[a] + ... + xs[b].
func (ps *PrefixSums) Sum(a, b int) (int64, error) {
	if err := checkRange(a, b, len(ps.p)-1); err != nil {
		return 0, err
	}

	return ps.p[b+1] - ps.p[a], nil
}

// PrefixSums2D answers rectangle sum queries on a static grid.
// p[y][x] holds the sum of the rectangle with corners (0,0) and (y-1,x-1).
type PrefixSums2D struct {
	p          [][]int64
	rows, cols int
}

// NewPrefixSums2D precomputes 2D prefix sums in O(rows·cols).
// All rows must have the same length.
func NewPrefixSums2D(grid [][]int64) (*PrefixSums2D, error) {
	rows, cols := len(grid), 0
	if rows > 0 {
		cols = len(grid[0])
	}
	p := make([][]int64, rows+1)
	p[0] = make([]int64, cols+1)
	for y, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d, want %d", ErrRagged, y, len(row), cols)
		}
		p[y+1] = make([]int64, cols+1)
		for x, v := range row {
			p[y+1][x+1] = v + p[y][x+1] + p[y+1][x] - p[y][x]
		}
	}

	return &PrefixSums2D{p: p, rows: rows, cols: cols}, nil
}

// Sum returns the sum of the rectangle with top-left (y1, x1) and
// bottom-right (y2, x2), inclusive, by inclusion-exclusion.
func (ps *PrefixSums2D) Sum(y1, x1, y2, x2 int) (int64, error) {
	if err := checkRange(y1, y2, ps.rows); err != nil {
		return 0, err
	}
	if err := checkRange(x1, x2, ps.cols); err != nil {
		return 0, err
	}
	p := ps.p

	return p[y2+1][x2+1] - p[y1][x2+1] - p[y2+1][x1] + p[y1][x1], nil
}
