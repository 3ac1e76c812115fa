// SPDX-License-Identifier: MIT

package bits

import (
	"fmt"
	"math"
	"math/bits"
)

const unreachable = math.MaxInt64

// OptimalSelection returns the minimum cost of buying every product once,
// with at most one purchase per day. prices[x][d] is the price of product
// x on day d.
//
// Steps:
//  1. total[S] is the best cost of buying the products in S within the days seen so far.
//  2. On day d, total[S] either stays or buys some x in S for prices[x][d]
//     on top of total[S without x] from the previous day.
//
// Complexity: O(n · 2^k · k) for k products and n days.
func OptimalSelection(prices [][]int64) (int64, error) {
	k := len(prices)
	if k > MaxItems {
		return 0, fmt.Errorf("%w: %d products, limit %d", ErrTooLarge, k, MaxItems)
	}
	if k == 0 {
		return 0, nil
	}
	days := len(prices[0])
	for x, row := range prices {
		if len(row) != days {
			return 0, fmt.Errorf("%w: product %d has %d days, want %d", ErrRagged, x, len(row), days)
		}
	}
	if days < k {
		return 0, fmt.Errorf("%w: %d products over %d days", ErrInfeasible, k, days)
	}

	full := 1<<k - 1
	prev := make([]int64, full+1)
	cur := make([]int64, full+1)
	for s := 1; s <= full; s++ {
		prev[s] = unreachable
	}
	for d := 0; d < days; d++ {
		cur[0] = 0
		for s := 1; s <= full; s++ {
			cur[s] = prev[s]
			for rest := s; rest != 0; rest &= rest - 1 {
				x := bits.TrailingZeros(uint(rest))
				if before := prev[s&^(1<<x)]; before != unreachable {
					cur[s] = min(cur[s], before+prices[x][d])
				}
			}
		}
		prev, cur = cur, prev
	}

	return prev[full], nil
}

// ElevatorRides returns the minimum number of rides needed to carry every
// person when the weights in one ride may not exceed capacity.
//
// best[S] holds (rides, last) for the people in S: the fewest rides and,
// among those, the smallest weight of the last ride.
//
// Complexity: O(2^n · n).
func ElevatorRides(weights []int64, capacity int64) (int, error) {
	n := len(weights)
	if n > MaxItems {
		return 0, fmt.Errorf("%w: %d people, limit %d", ErrTooLarge, n, MaxItems)
	}
	for i, w := range weights {
		if w > capacity {
			return 0, fmt.Errorf("%w: person %d weighs %d, capacity %d", ErrTooHeavy, i, w, capacity)
		}
	}
	if n == 0 {
		return 0, nil
	}

	type ride struct {
		count int
		last  int64
	}
	less := func(a, b ride) bool {
		return a.count < b.count || (a.count == b.count && a.last < b.last)
	}

	best := make([]ride, 1<<n)
	best[0] = ride{count: 1}
	for s := 1; s < 1<<n; s++ {
		best[s] = ride{count: n + 1}
		for rest := s; rest != 0; rest &= rest - 1 {
			p := bits.TrailingZeros(uint(rest))
			opt := best[s&^(1<<p)]
			if opt.last+weights[p] <= capacity {
				opt.last += weights[p]
			} else {
				opt.count++
				opt.last = weights[p]
			}
			if less(opt, best[s]) {
				best[s] = opt
			}
		}
	}

	return best[1<<n-1].count, nil
}

// SumOverSubsets returns sum where sum[S] = Σ values[T] over all T ⊆ S.
// len(values) must be a power of two. partial[S][k] from the book is
// folded into one array by processing bit k in turn.
//
// Complexity: O(2^n · n).
func SumOverSubsets(values []int64) ([]int64, error) {
	m := len(values)
	if m == 0 || m&(m-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, m)
	}
	n := bits.TrailingZeros(uint(m))
	if n > MaxItems {
		return nil, fmt.Errorf("%w: 2^%d entries, limit 2^%d", ErrTooLarge, n, MaxItems)
	}

	sum := append([]int64(nil), values...)
	for k := 0; k < n; k++ {
		for s := 0; s < m; s++ {
			if s&(1<<k) != 0 {
				sum[s] += sum[s^(1<<k)]
			}
		}
	}

	return sum, nil
}
