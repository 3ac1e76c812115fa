// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge on a weighted graph when no
// weight range is configured.
const DefaultEdgeWeight int64 = 1

// builderConfig aggregates the knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn IDFn
	rng  *rand.Rand

	weightLo, weightHi int64
	weightRange        bool

	// err records the first invalid option; BuildGraph reports it.
	err error
}

// newBuilderConfig applies opts in order over the defaults (later wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the weight of the next edge on g.
func (cfg builderConfig) weight(weighted bool) (int64, error) {
	if !weighted {
		return 0, nil
	}
	if !cfg.weightRange {
		return DefaultEdgeWeight, nil
	}
	if cfg.rng == nil {
		return 0, fmt.Errorf("weight range [%d,%d]: %w", cfg.weightLo, cfg.weightHi, ErrNeedRandSource)
	}

	return cfg.weightLo + cfg.rng.Int63n(cfg.weightHi-cfg.weightLo+1), nil
}

// fail records err unless an earlier option already failed.
func (cfg *builderConfig) fail(err error) {
	if cfg.err == nil {
		cfg.err = err
	}
}
