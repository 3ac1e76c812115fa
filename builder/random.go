// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/cphb/combinatorics"
	"github.com/katalvlaran/cphb/core"
)

const (
	methodRandomTree   = "RandomTree"
	methodRandomSparse = "RandomSparse"
)

// RandomTree builds a uniformly random labeled tree on idFn(0..n-1), n ≥ 1.
// It draws a random Prüfer code of length n-2 and decodes it, so each of
// the n^(n-2) labeled trees is equally likely. Requires a random source.
//
// Complexity: O(n log n).
func RandomTree(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodRandomTree, n, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomTree, n); err != nil {
			return err
		}
		if n == 1 {
			return nil
		}

		code := make([]int, n-2)
		for i := range code {
			code[i] = 1 + cfg.rng.Intn(n)
		}
		edges, err := combinatorics.PruferDecode(code)
		if err != nil {
			return fmt.Errorf("%s: %w", methodRandomTree, err)
		}
		for _, e := range edges {
			// Prüfer labels are 1-based.
			if err := addEdge(g, cfg, methodRandomTree, cfg.idFn(e[0]-1), cfg.idFn(e[1]-1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi graph G(n, p) on idFn(0..n-1): each
// admissible pair gets an edge independently with probability p. Pairs
// are tried in order (i asc, j asc); undirected graphs try i<j only and
// directed ones every ordered pair, including (i, i) under core.WithLoops.
//
// p of exactly 0 or 1 needs no random source; anything else does.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		keep := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}
		directed, loops := g.Directed(), g.Looped()
		for i := 0; i < n; i++ {
			j0 := i + 1
			if directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !keep() {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
