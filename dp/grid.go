// SPDX-License-Identifier: MIT

package dp

import "fmt"

// GridMaxPath returns the maximum sum of a path from the upper-left to the
// lower-right corner of grid that only moves down or right.
// An empty grid yields 0.
//
// Complexity: O(rows · cols) time, O(cols) memory.
func GridMaxPath(grid [][]int64) (int64, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, nil
	}
	cols := len(grid[0])
	sum := make([]int64, cols)
	for y, row := range grid {
		if len(row) != cols {
			return 0, fmt.Errorf("%w: row %d has %d, want %d", ErrRagged, y, len(row), cols)
		}
		for x, v := range row {
			switch {
			case y == 0 && x == 0:
				sum[x] = v
			case y == 0:
				sum[x] = sum[x-1] + v
			case x == 0:
				sum[x] += v
			default:
				// sum[x] still holds the cell above; sum[x-1] is already this row.
				sum[x] = max(sum[x], sum[x-1]) + v
			}
		}
	}

	return sum[cols-1], nil
}

// CountTilings counts the ways to cover an n×m grid with 1×2 and 2×1
// dominoes, modulo mod when mod > 0.
//
// Steps:
//  1. Let m be the smaller side; cells are filled row by row.
//  2. Bit j of the profile tells whether the next unfilled cell in
//     column j is already covered by a vertical domino from above.
//  3. An uncovered cell takes a vertical domino (covering the cell below)
//     or a horizontal one (covering its right neighbour).
//  4. The answer is the count of the empty profile after the last cell.
//
// Complexity: O(n · m · 2^m).
func CountTilings(n, m int, mod int64) (int64, error) {
	if n <= 0 || m <= 0 {
		return 0, fmt.Errorf("%w: %d×%d", ErrNonPositive, n, m)
	}
	if m > n {
		n, m = m, n
	}
	if m > MaxTilingWidth {
		return 0, fmt.Errorf("%w: %d×%d, width limit %d", ErrTooLarge, n, m, MaxTilingWidth)
	}

	cur := make([]int64, 1<<m)
	next := make([]int64, 1<<m)
	cur[0] = 1
	add := func(mask int, v int64) {
		next[mask] += v
		if mod > 0 {
			next[mask] %= mod
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			clear(next)
			for mask, v := range cur {
				if v == 0 {
					continue
				}
				bit := 1 << j
				if mask&bit != 0 {
					add(mask&^bit, v)
					continue
				}
				if i+1 < n {
					add(mask|bit, v)
				}
				if j+1 < m && mask&(bit<<1) == 0 {
					add(mask|bit<<1, v)
				}
			}
			cur, next = next, cur
		}
	}

	return cur[0], nil
}
