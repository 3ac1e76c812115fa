// SPDX-License-Identifier: MIT

// Package successor works with successor graphs (functional graphs), where
// every vertex has exactly one outgoing edge given by succ[x].
//
// New precomputes binary-lifting tables so that the vertex reached after k
// steps is found in O(log k). FloydCycle finds the cycle entered from a
// start vertex with O(1) memory.
package successor

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrBadSuccessor is returned when succ contains an out-of-range vertex.
	ErrBadSuccessor = errors.New("successor: successor out of range")

	// ErrVertexOutOfRange is returned for a query vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("successor: vertex out of range")

	// ErrStepsOutOfRange is returned for k < 0 or k > maxSteps.
	ErrStepsOutOfRange = errors.New("successor: step count out of range")
)

// Graph answers "where am I after k steps" queries.
//
// up[j][x] is the vertex reached from x after 2^j steps.
type Graph struct {
	up       [][]int
	maxSteps int
}

// New validates succ and builds lifting tables for k up to maxSteps.
// Complexity: O(n log maxSteps) time and memory.
func New(succ []int, maxSteps int) (*Graph, error) {
	if maxSteps < 0 {
		return nil, fmt.Errorf("%w: maxSteps %d", ErrStepsOutOfRange, maxSteps)
	}
	n := len(succ)
	for x, s := range succ {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: succ[%d] = %d", ErrBadSuccessor, x, s)
		}
	}

	levels := bits.Len(uint(maxSteps))
	if levels == 0 {
		levels = 1
	}
	up := make([][]int, levels)
	up[0] = append([]int(nil), succ...)
	for j := 1; j < levels; j++ {
		up[j] = make([]int, n)
		for x := 0; x < n; x++ {
			up[j][x] = up[j-1][up[j-1][x]]
		}
	}

	return &Graph{up: up, maxSteps: maxSteps}, nil
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.up[0]) }

// Succ returns the vertex reached from x after k steps, succ(x, 0) = x.
// Complexity: O(log k).
func (g *Graph) Succ(x, k int) (int, error) {
	if x < 0 || x >= g.Len() {
		return 0, fmt.Errorf("%w: %d", ErrVertexOutOfRange, x)
	}
	if k < 0 || k > g.maxSteps {
		return 0, fmt.Errorf("%w: %d (max %d)", ErrStepsOutOfRange, k, g.maxSteps)
	}
	for j := 0; k > 0; j, k = j+1, k>>1 {
		if k&1 == 1 {
			x = g.up[j][x]
		}
	}

	return x, nil
}

// FloydCycle walks from x with a slow and a fast pointer (tortoise and hare).
// It returns the first vertex of the cycle reached from x and the cycle
// length.
// Complexity: O(n) time, O(1) memory.
func FloydCycle(succ []int, x int) (first, length int, err error) {
	n := len(succ)
	if x < 0 || x >= n {
		return 0, 0, fmt.Errorf("%w: %d", ErrVertexOutOfRange, x)
	}
	for i, s := range succ {
		if s < 0 || s >= n {
			return 0, 0, fmt.Errorf("%w: succ[%d] = %d", ErrBadSuccessor, i, s)
		}
	}

	// 1) Meet somewhere inside the cycle.
	a, b := succ[x], succ[succ[x]]
	for a != b {
		a, b = succ[a], succ[succ[b]]
	}

	// 2) Restart one pointer at x; they meet at the cycle entrance.
	a = x
	for a != b {
		a, b = succ[a], succ[b]
	}
	first = a

	// 3) Walk once around.
	length = 1
	for b = succ[a]; a != b; b = succ[b] {
		length++
	}

	return first, length, nil
}
