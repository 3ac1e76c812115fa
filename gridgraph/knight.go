// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"sort"
)

// knightMoves lists the eight knight jumps in a fixed order used for ties.
var knightMoves = [8][2]int{{1, -2}, {2, -1}, {2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}}

const (
	// MaxTourSide bounds the board side accepted by KnightsTour.
	MaxTourSide = 256

	// maxTourSteps bounds the backtracking fallback.
	maxTourSteps = 1 << 22
)

// KnightsTour returns an n×n board where board[y][x] is the move number
// (1..n²) at which a knight starting on (x,y) visits that square, so that
// every square is visited exactly once.
//
// Warnsdorf's rule always jumps to the square with the fewest onward
// moves (ties in knightMoves order). If the greedy walk gets stuck it
// backtracks, trying the next candidates in the same order, until a step
// budget runs out.
//
// Returns ErrBoardSize for n < 1, ErrTooLarge for n > MaxTourSide,
// ErrBlockedCell for a start outside the board and ErrNoTour when the
// search fails.
func KnightsTour(n, x, y int) ([][]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBoardSize, n)
	}
	if n > MaxTourSide {
		return nil, fmt.Errorf("%w: %d, limit %d", ErrTooLarge, n, MaxTourSide)
	}
	if x < 0 || x >= n || y < 0 || y >= n {
		return nil, fmt.Errorf("%w: (%d,%d) on %d×%d", ErrBlockedCell, x, y, n, n)
	}

	board := make([][]int, n)
	for i := range board {
		board[i] = make([]int, n)
	}
	free := func(cx, cy int) bool {
		return cx >= 0 && cx < n && cy >= 0 && cy < n && board[cy][cx] == 0
	}
	degree := func(cx, cy int) int {
		d := 0
		for _, m := range knightMoves {
			if free(cx+m[0], cy+m[1]) {
				d++
			}
		}
		return d
	}

	steps := 0
	var walk func(cx, cy, move int) bool
	walk = func(cx, cy, move int) bool {
		board[cy][cx] = move
		if move == n*n {
			return true
		}
		if steps++; steps > maxTourSteps {
			board[cy][cx] = 0
			return false
		}

		type cand struct{ x, y, deg int }
		var next []cand
		for _, m := range knightMoves {
			if nx, ny := cx+m[0], cy+m[1]; free(nx, ny) {
				next = append(next, cand{nx, ny, degree(nx, ny)})
			}
		}
		sort.SliceStable(next, func(i, j int) bool { return next[i].deg < next[j].deg })
		for _, c := range next {
			if walk(c.x, c.y, move+1) {
				return true
			}
		}
		board[cy][cx] = 0

		return false
	}

	if !walk(x, y, 1) {
		return nil, fmt.Errorf("%w: from (%d,%d) on %d×%d", ErrNoTour, x, y, n, n)
	}

	return board, nil
}
