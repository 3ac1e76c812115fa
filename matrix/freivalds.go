// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/rand"
)

// Freivalds checks whether a·b == c with a one-sided probabilistic test:
// for a random 0/1 vector x it compares a·(b·x) with c·x. A true product
// always passes; a wrong one is caught with probability ≥ 1/2 per round.
// rng == nil uses a fixed seed.
// Complexity: O(rounds·n²).
func Freivalds(a, b, c *Matrix, rounds int, rng *rand.Rand) (bool, error) {
	if a.c != b.r || a.r != c.r || b.c != c.c {
		return false, fmt.Errorf("Freivalds: %dx%d · %dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, c.r, c.c, ErrDimensionMismatch)
	}
	if a.mod != b.mod || a.mod != c.mod {
		return false, fmt.Errorf("Freivalds: %w", ErrModulusMismatch)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	x := &Matrix{r: c.c, c: 1, mod: c.mod, data: make([]int64, c.c)}
	for round := 0; round < rounds; round++ {
		for i := range x.data {
			x.data[i] = int64(rng.Intn(2))
		}
		bx, err := Mul(b, x)
		if err != nil {
			return false, err
		}
		abx, err := Mul(a, bx)
		if err != nil {
			return false, err
		}
		cx, err := Mul(c, x)
		if err != nil {
			return false, err
		}
		if !Equal(abx, cx) {
			return false, nil
		}
	}

	return true, nil
}
