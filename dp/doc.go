// SPDX-License-Identifier: MIT

// Package dp solves classical dynamic programming problems.
//
// Coin problems:
//   - MinCoins: fewest coins forming a sum, with one optimal selection.
//   - CoinWays: number of ordered ways to form a sum.
//
// Sequences and grids:
//   - LIS (O(n²), reconstructs a subsequence) and LISFast (O(n log n)).
//   - GridMaxPath: best down/right path sum.
//   - EditDistance: Levenshtein distance with an optional edit script.
//
// Subsets and counting:
//   - KnapsackSums: every sum reachable by a subset of weights.
//   - Knapsack01: maximum value within a capacity.
//   - CountTilings: domino tilings of an n×m grid by broken-profile DP.
//   - DiceSumDistribution: probability of every sum of several dice.
//
// Memory:
//
// EditDistance supports two storage modes, as in sequence alignment
// tools: FullMatrix keeps the whole table and can rebuild the edit script,
// RollingArray keeps two rows and returns the distance only.
package dp
