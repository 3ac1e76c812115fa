// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes builderConfig before construction begins.
// Invalid values do not panic; they surface as ErrOptionViolation from
// BuildGraph.
type BuilderOption func(*builderConfig)

// WithSeed attaches a rand.Rand seeded with seed, making stochastic
// constructors reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit random source.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.fail(fmt.Errorf("WithRand(nil): %w", ErrOptionViolation))
			return
		}
		c.rng = r
	}
}

// WithIDFn sets the vertex ID scheme: index -> ID.
func WithIDFn(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.fail(fmt.Errorf("WithIDFn(nil): %w", ErrOptionViolation))
			return
		}
		c.idFn = fn
	}
}

// WithWeightRange draws each edge weight uniformly from [lo, hi] on
// weighted graphs. Requires a random source.
func WithWeightRange(lo, hi int64) BuilderOption {
	return func(c *builderConfig) {
		if lo > hi {
			c.fail(fmt.Errorf("WithWeightRange(%d, %d): %w", lo, hi, ErrOptionViolation))
			return
		}
		c.weightLo, c.weightHi, c.weightRange = lo, hi, true
	}
}
