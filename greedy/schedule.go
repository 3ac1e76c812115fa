// SPDX-License-Identifier: MIT

package greedy

import (
	"fmt"
	"sort"
)

// CoinsGreedy forms sum from coins by repeatedly taking the largest coin
// that still fits and returns the coins taken in that order.
// With coins {1, 3, 4} and sum 6 it returns 4+1+1 although 3+3 is better;
// dp.MinCoins gives the optimum for any coin system.
func CoinsGreedy(coins []int64, sum int64) ([]int64, error) {
	if sum < 0 {
		return nil, fmt.Errorf("%w: sum %d", ErrNonPositive, sum)
	}
	sorted := append([]int64(nil), coins...)
	for i, c := range sorted {
		if c <= 0 {
			return nil, fmt.Errorf("%w: coin[%d] = %d", ErrNonPositive, i, c)
		}
	}
	sort.Slice(sorted, func(a, b int) bool { return sorted[a] > sorted[b] })

	var used []int64
	for _, c := range sorted {
		for sum >= c {
			used = append(used, c)
			sum -= c
		}
	}
	if sum != 0 {
		return nil, fmt.Errorf("%w: remainder %d", ErrNoChange, sum)
	}

	return used, nil
}

// MaxEvents selects a maximum set of pairwise compatible events and
// returns their indices in time order.
//
// Steps:
//  1. Sort events by end time, breaking ties by index.
//  2. Take every event that starts no earlier than the last taken one ends.
//
// Complexity: O(n log n).
func MaxEvents(events []Event) ([]int, error) {
	idx := make([]int, len(events))
	for i, e := range events {
		if e.End < e.Start {
			return nil, fmt.Errorf("%w: event %d [%d, %d)", ErrBadInterval, i, e.Start, e.End)
		}
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return events[idx[a]].End < events[idx[b]].End })

	var chosen []int
	var free int64
	for k, i := range idx {
		if k == 0 || events[i].Start >= free {
			chosen = append(chosen, i)
			free = events[i].End
		}
	}

	return chosen, nil
}

// TasksDeadlines orders tasks to maximize the total score and returns the
// order together with that score. The optimal order ignores deadlines
// entirely: shorter tasks go first.
//
// Complexity: O(n log n).
func TasksDeadlines(tasks []Task) ([]int, int64, error) {
	order := make([]int, len(tasks))
	for i, t := range tasks {
		if t.Duration <= 0 {
			return nil, 0, fmt.Errorf("%w: task %d duration %d", ErrNonPositive, i, t.Duration)
		}
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return tasks[order[a]].Duration < tasks[order[b]].Duration })

	var now, score int64
	for _, i := range order {
		now += tasks[i].Duration
		score += tasks[i].Deadline - now
	}

	return order, score, nil
}

// MinAbsSum returns the x minimizing |a1-x| + ... + |an-x| and the minimum.
// Any median works; the lower median is returned.
func MinAbsSum(xs []int64) (x, cost int64, err error) {
	if len(xs) == 0 {
		return 0, 0, ErrEmpty
	}
	sorted := append([]int64(nil), xs...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a] < sorted[b] })
	x = sorted[(len(sorted)-1)/2]
	for _, a := range sorted {
		if a > x {
			cost += a - x
		} else {
			cost += x - a
		}
	}

	return x, cost, nil
}

// MinSquareSum returns the real x minimizing (a1-x)² + ... + (an-x)²,
// which is the mean, and the minimum.
func MinSquareSum(xs []int64) (x, cost float64, err error) {
	if len(xs) == 0 {
		return 0, 0, ErrEmpty
	}
	var sum float64
	for _, a := range xs {
		sum += float64(a)
	}
	x = sum / float64(len(xs))
	for _, a := range xs {
		d := float64(a) - x
		cost += d * d
	}

	return x, cost, nil
}
