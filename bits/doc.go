// SPDX-License-Identifier: MIT

// Package bits implements algorithms built on bit representations:
// subsets of {0, ..., n-1} are stored as the bits of an integer mask.
//
//   - Hamming / MinHammingDistance: XOR and population count.
//   - OptimalSelection: buy every product once over several days.
//   - ElevatorRides: the fewest rides for a group under a weight limit.
//   - SumOverSubsets: for every mask, the sum over all of its submasks.
//   - CountHamiltonianPaths: subset DP over a core.Graph.
//
// Subset DP tables have 2^n entries, so n is bounded by MaxItems.
package bits
