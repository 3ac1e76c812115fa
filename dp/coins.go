// SPDX-License-Identifier: MIT

package dp

import "fmt"

// MinCoins returns the fewest coins summing to x and one such selection,
// listed in the order the reconstruction finds them.
//
// Steps:
//  1. value[s] is the minimum for sum s; value[0] = 0.
//  2. value[s] = min over coins c <= s of value[s-c] + 1.
//  3. first[s] remembers the coin used, so the selection is read back from x.
//
// Complexity: O(x · len(coins)).
func MinCoins(coins []int, x int) (int, []int, error) {
	if err := checkCoins(coins, x); err != nil {
		return 0, nil, err
	}

	const unset = -1
	value := make([]int, x+1)
	first := make([]int, x+1)
	for s := 1; s <= x; s++ {
		value[s] = unset
		for _, c := range coins {
			if c <= s && value[s-c] != unset && (value[s] == unset || value[s-c]+1 < value[s]) {
				value[s] = value[s-c] + 1
				first[s] = c
			}
		}
	}
	if value[x] == unset {
		return 0, nil, fmt.Errorf("%w: sum %d", ErrNoSolution, x)
	}

	picked := make([]int, 0, value[x])
	for s := x; s > 0; s -= first[s] {
		picked = append(picked, first[s])
	}

	return value[x], picked, nil
}

// CoinWays counts the ordered sequences of coins summing to x, so 1+3 and
// 3+1 are different. Counts are reduced modulo mod when mod > 0.
//
// Complexity: O(x · len(coins)).
func CoinWays(coins []int, x int, mod int64) (int64, error) {
	if err := checkCoins(coins, x); err != nil {
		return 0, err
	}

	count := make([]int64, x+1)
	count[0] = 1
	for s := 1; s <= x; s++ {
		for _, c := range coins {
			if c <= s {
				count[s] += count[s-c]
				if mod > 0 {
					count[s] %= mod
				}
			}
		}
	}

	return count[x], nil
}

func checkCoins(coins []int, x int) error {
	if x < 0 {
		return fmt.Errorf("%w: sum %d", ErrNegative, x)
	}
	if !fits(x+1, 1) {
		return fmt.Errorf("%w: sum %d, limit %d", ErrTooLarge, x, MaxTable-1)
	}
	for i, c := range coins {
		if c <= 0 {
			return fmt.Errorf("%w: coin[%d] = %d", ErrNonPositive, i, c)
		}
	}

	return nil
}
