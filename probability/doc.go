// SPDX-License-Identifier: MIT

// Package probability evaluates discrete random processes.
//
// Markov advances a probability distribution through a Markov chain one
// step at a time, which costs O(steps·n²). ExpectedValue sums outcomes
// weighted by their probabilities.
//
// Randomized algorithms from the same chapter live next to the problems
// they solve: sorting.QuickSelect and matrix.Freivalds.
package probability
