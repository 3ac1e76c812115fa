// SPDX-License-Identifier: MIT

package dp

import "fmt"

// EditDistance returns the Levenshtein distance between a and b: the
// minimum number of insertions, deletions and substitutions turning a
// into b. With opts.ReturnScript the edit script is returned as well.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate the (n+1)×(m+1) table D.
//  2. D[i][0] = i and D[0][j] = j.
//  3. D[i][j] = min(D[i-1][j] + 1, D[i][j-1] + 1, D[i-1][j-1] + cost),
//     where cost is 0 when a[i-1] == b[j-1] and 1 otherwise.
//  4. The distance is D[n][m]; the script is read back from (n, m),
//     preferring the diagonal, then deletion, then insertion.
//
// RollingArray mode keeps two rows and cannot rebuild the script.
//
// Complexity: O(n·m) time; O(n·m) or O(m) memory.
func EditDistance[T comparable](a, b []T, opts EditOptions) (int, []EditOp, error) {
	if opts.ReturnScript && opts.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}
	n, m := len(a), len(b)

	if opts.MemoryMode == RollingArray {
		prev := make([]int, m+1)
		curr := make([]int, m+1)
		for j := range prev {
			prev[j] = j
		}
		for i := 1; i <= n; i++ {
			curr[0] = i
			for j := 1; j <= m; j++ {
				curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost(a[i-1], b[j-1]))
			}
			prev, curr = curr, prev
		}

		return prev[m], nil, nil
	}

	if !fits(n+1, m+1) {
		return 0, nil, fmt.Errorf("%w: %d×%d matrix, use RollingArray", ErrTooLarge, n+1, m+1)
	}
	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost(a[i-1], b[j-1]))
		}
	}
	if !opts.ReturnScript {
		return d[n][m], nil, nil
	}

	var script []EditOp
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && d[i][j] == d[i-1][j-1]+cost(a[i-1], b[j-1]):
			kind := Match
			if a[i-1] != b[j-1] {
				kind = Substitute
			}
			script = append(script, EditOp{Kind: kind, I: i - 1, J: j - 1})
			i--
			j--
		case i > 0 && d[i][j] == d[i-1][j]+1:
			script = append(script, EditOp{Kind: Delete, I: i - 1, J: -1})
			i--
		default:
			script = append(script, EditOp{Kind: Insert, I: -1, J: j - 1})
			j--
		}
	}
	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}

	return d[n][m], script, nil
}

func cost[T comparable](x, y T) int {
	if x == y {
		return 0
	}

	return 1
}
