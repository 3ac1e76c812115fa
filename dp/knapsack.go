// SPDX-License-Identifier: MIT

package dp

import "fmt"

// KnapsackSums returns every sum, in ascending order, that some subset of
// weights adds up to. The empty subset contributes 0.
//
// Complexity: O(n · W), W the total weight.
func KnapsackSums(weights []int) ([]int, error) {
	total := 0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: weight[%d] = %d", ErrNegative, i, w)
		}
		if w >= MaxTable-total {
			return nil, fmt.Errorf("%w: total weight above %d", ErrTooLarge, MaxTable-1)
		}
		total += w
	}

	possible := make([]bool, total+1)
	possible[0] = true
	for _, w := range weights {
		// Descending, so each weight is used at most once.
		for s := total; s >= w; s-- {
			if possible[s-w] {
				possible[s] = true
			}
		}
	}

	var sums []int
	for s, ok := range possible {
		if ok {
			sums = append(sums, s)
		}
	}

	return sums, nil
}

// Knapsack01 picks a subset of items with total weight at most capacity and
// maximum total value. It returns the value and the chosen item indices in
// ascending order.
//
// Steps:
//  1. best[k][c] is the optimum over the first k items with capacity c.
//  2. Item k is either skipped or taken when it fits.
//  3. Walk back from best[n][capacity] to recover the chosen items.
//
// Complexity: O(n · capacity).
func Knapsack01(weights []int, values []int64, capacity int) (int64, []int, error) {
	if len(weights) != len(values) {
		return 0, nil, fmt.Errorf("%w: %d weights, %d values", ErrLengthMismatch, len(weights), len(values))
	}
	if capacity < 0 {
		return 0, nil, fmt.Errorf("%w: capacity %d", ErrNegative, capacity)
	}
	for i, w := range weights {
		if w < 0 {
			return 0, nil, fmt.Errorf("%w: weight[%d] = %d", ErrNegative, i, w)
		}
	}

	n := len(weights)
	if !fits(n+1, capacity+1) {
		return 0, nil, fmt.Errorf("%w: %d items × capacity %d", ErrTooLarge, n, capacity)
	}
	best := make([][]int64, n+1)
	best[0] = make([]int64, capacity+1)
	for k := 1; k <= n; k++ {
		best[k] = make([]int64, capacity+1)
		w, v := weights[k-1], values[k-1]
		for c := 0; c <= capacity; c++ {
			best[k][c] = best[k-1][c]
			if w <= c && best[k-1][c-w]+v > best[k][c] {
				best[k][c] = best[k-1][c-w] + v
			}
		}
	}

	var items []int
	for k, c := n, capacity; k > 0; k-- {
		if best[k][c] != best[k-1][c] {
			items = append(items, k-1)
			c -= weights[k-1]
		}
	}
	for a, b := 0, len(items)-1; a < b; a, b = a+1, b-1 {
		items[a], items[b] = items[b], items[a]
	}

	return best[n][capacity], items, nil
}
