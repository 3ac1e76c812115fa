// SPDX-License-Identifier: MIT

package probability

import (
	"errors"
	"fmt"
	"math"
)

// Tolerance is the allowed deviation of a probability vector's sum from 1.
const Tolerance = 1e-9

var (
	// ErrDimension indicates vectors or matrices of inconsistent sizes.
	ErrDimension = errors.New("probability: dimension mismatch")

	// ErrNotDistribution indicates negative entries or a sum different from 1.
	ErrNotDistribution = errors.New("probability: not a probability distribution")

	// ErrNegativeSteps indicates a negative number of steps.
	ErrNegativeSteps = errors.New("probability: negative step count")
)

// checkDistribution validates a probability vector.
func checkDistribution(p []float64) error {
	var sum float64
	for i, x := range p {
		if x < 0 || math.IsNaN(x) {
			return fmt.Errorf("%w: entry %d is %v", ErrNotDistribution, i, x)
		}
		sum += x
	}
	if math.Abs(sum-1) > Tolerance {
		return fmt.Errorf("%w: sums to %v", ErrNotDistribution, sum)
	}

	return nil
}

// Markov returns the state distribution after the given number of steps.
// dist[i] is the initial probability of state i and transition[i][j] the
// probability of moving from state i to state j; every row of transition
// must be a distribution.
//
// Each step computes next[j] = Σᵢ dist[i]·transition[i][j].
func Markov(dist []float64, transition [][]float64, steps int) ([]float64, error) {
	n := len(dist)
	if steps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSteps, steps)
	}
	if len(transition) != n {
		return nil, fmt.Errorf("%w: %d states, %d transition rows", ErrDimension, n, len(transition))
	}
	if err := checkDistribution(dist); err != nil {
		return nil, fmt.Errorf("initial: %w", err)
	}
	for i, row := range transition {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrDimension, i, len(row), n)
		}
		if err := checkDistribution(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	cur := append([]float64(nil), dist...)
	next := make([]float64, n)
	for s := 0; s < steps; s++ {
		clear(next)
		for i, p := range cur {
			if p == 0 {
				continue
			}
			for j, q := range transition[i] {
				next[j] += p * q
			}
		}
		cur, next = next, cur
	}

	return cur, nil
}

// ExpectedValue returns E[X] = Σ P(X = xᵢ)·xᵢ for outcomes xᵢ with the
// given probabilities.
func ExpectedValue(outcomes, probs []float64) (float64, error) {
	if len(outcomes) != len(probs) {
		return 0, fmt.Errorf("%w: %d outcomes, %d probabilities", ErrDimension, len(outcomes), len(probs))
	}
	if err := checkDistribution(probs); err != nil {
		return 0, err
	}
	var e float64
	for i, x := range outcomes {
		e += probs[i] * x
	}

	return e, nil
}
