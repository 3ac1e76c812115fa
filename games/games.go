// SPDX-License-Identifier: MIT

package games

import (
	"errors"
	"fmt"
)

var (
	// ErrNegative indicates a negative heap or state count.
	ErrNegative = errors.New("games: negative value")

	// ErrCyclicGame indicates a state reachable from itself; Grundy numbers need a finite DAG.
	ErrCyclicGame = errors.New("games: state graph has a cycle")

	// ErrNilMoves indicates Grundy was called without a move function.
	ErrNilMoves = errors.New("games: nil move function")
)

// NimSum returns x1 ⊕ x2 ⊕ ... ⊕ xn.
func NimSum(heaps ...int) int {
	s := 0
	for _, h := range heaps {
		s ^= h
	}

	return s
}

// NimWinning reports whether the player to move wins nim with the given
// heaps: exactly when the nim sum is non-zero.
func NimWinning(heaps ...int) bool {
	return NimSum(heaps...) != 0
}

// NimMove returns a winning move: remove take sticks from heap i so that
// the nim sum becomes 0. ok is false in a losing position.
func NimMove(heaps ...int) (i, take int, ok bool) {
	s := NimSum(heaps...)
	if s == 0 {
		return 0, 0, false
	}
	for i, h := range heaps {
		if h^s < h {
			return i, h - (h ^ s), true
		}
	}

	return 0, 0, false
}

// MisereNimWinning reports whether the player to move wins misère nim,
// where taking the last stick loses. Play is as in normal nim until every
// heap has at most one stick; from there the player to move wins iff the
// number of single sticks is even.
func MisereNimWinning(heaps ...int) bool {
	ones, big := 0, false
	for _, h := range heaps {
		switch {
		case h > 1:
			big = true
		case h == 1:
			ones++
		}
	}
	if !big {
		return ones%2 == 0
	}

	return NimWinning(heaps...)
}

// Grundy returns the Grundy number of state: the smallest non-negative
// integer that is not the Grundy number of a state reachable in one move.
// States are memoized; moves must describe a finite acyclic game.
//
// Complexity: O(S + M) for S reachable states and M moves among them.
func Grundy[S comparable](state S, moves func(S) []S) (int, error) {
	if moves == nil {
		return 0, ErrNilMoves
	}
	memo := make(map[S]int)
	active := make(map[S]bool)

	var grundy func(s S) (int, error)
	grundy = func(s S) (int, error) {
		if g, ok := memo[s]; ok {
			return g, nil
		}
		if active[s] {
			return 0, fmt.Errorf("%w: state %v", ErrCyclicGame, s)
		}
		active[s] = true
		next := moves(s)
		seen := make([]bool, len(next)+1)
		for _, t := range next {
			g, err := grundy(t)
			if err != nil {
				return 0, err
			}
			if g < len(seen) {
				seen[g] = true
			}
		}
		mex := 0
		for seen[mex] {
			mex++
		}
		delete(active, s)
		memo[s] = mex

		return mex, nil
	}

	return grundy(state)
}

// SubtractionStates classifies the states 0..n of the game where a move
// removes m sticks for some m in moves: win[k] reports whether the player
// to move with k sticks wins. State k wins iff some move leads to a
// losing state.
func SubtractionStates(n int, moves []int) ([]bool, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d states", ErrNegative, n)
	}
	for i, m := range moves {
		if m <= 0 {
			return nil, fmt.Errorf("%w: move %d removes %d", ErrNegative, i, m)
		}
	}
	win := make([]bool, n+1)
	for k := 1; k <= n; k++ {
		for _, m := range moves {
			if m <= k && !win[k-m] {
				win[k] = true
				break
			}
		}
	}

	return win, nil
}
