// SPDX-License-Identifier: MIT

package euler

import (
	"fmt"
	"strings"
)

// DeBruijn returns a shortest string over alphabet that contains every
// word of length n as a substring. Its length is kⁿ + n - 1 for an
// alphabet of k symbols.
//
// Vertices are the kⁿ⁻¹ words of length n-1 (as base-k numbers) and each
// symbol c is an arc u → (u·k + c) mod kⁿ⁻¹. The graph is balanced and
// connected, so Hierholzer's walk from the all-first-symbol word uses
// every arc once; the string is that word followed by the arc symbols.
//
// Complexity: O(kⁿ).
func DeBruijn(alphabet string, n int) (string, error) {
	symbols := []rune(alphabet)
	k := len(symbols)
	seen := make(map[rune]bool, k)
	for _, r := range symbols {
		if seen[r] {
			return "", fmt.Errorf("%w: %q repeated", ErrBadAlphabet, r)
		}
		seen[r] = true
	}
	if k == 0 {
		return "", ErrBadAlphabet
	}
	if n < 1 {
		return "", fmt.Errorf("%w: %d", ErrBadLength, n)
	}

	m := 1
	for i := 1; i < n; i++ {
		m *= k
	}

	type step struct{ node, sym int }
	next := make([]int, m)
	stack := []step{{0, -1}}
	var syms []int
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		u := top.node
		if next[u] < k {
			c := next[u]
			next[u]++
			stack = append(stack, step{(u*k + c) % m, c})
			continue
		}
		stack = stack[:len(stack)-1]
		if top.sym >= 0 {
			syms = append(syms, top.sym)
		}
	}

	var sb strings.Builder
	sb.Grow(len(syms) + n - 1)
	for i := 1; i < n; i++ {
		sb.WriteRune(symbols[0])
	}
	for i := len(syms) - 1; i >= 0; i-- {
		sb.WriteRune(symbols[syms[i]])
	}

	return sb.String(), nil
}
