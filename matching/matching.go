// SPDX-License-Identifier: MIT

package matching

import (
	"sort"

	"github.com/katalvlaran/cphb/core"
)

// MaxBipartite returns a maximum matching between left and the remaining
// vertices, sorted by Left.
// Complexity: O(E·√V).
func MaxBipartite(g *core.Graph, left []string) ([]Pair, error) {
	s, err := split(g, left)
	if err != nil {
		return nil, err
	}

	var pairs []Pair
	for i, j := range s.b.matchL {
		if j >= 0 {
			pairs = append(pairs, Pair{Left: s.left[i], Right: s.right[j]})
		}
	}

	return pairs, nil
}

// MinVertexCover returns a smallest vertex set touching every edge, sorted.
// By König's theorem its size equals the maximum matching.
//
// The cover is built from the alternating closure Z of the unmatched left
// vertices: it holds the left vertices outside Z and the right vertices
// inside Z. When several minimum covers exist, this is the one returned.
func MinVertexCover(g *core.Graph, left []string) ([]string, error) {
	s, err := split(g, left)
	if err != nil {
		return nil, err
	}
	cl, cr := s.b.cover()

	return s.pick(cl, cr, true), nil
}

// MaxIndependentSet returns a largest set of pairwise non-adjacent
// vertices, sorted: every vertex outside a minimum vertex cover.
func MaxIndependentSet(g *core.Graph, left []string) ([]string, error) {
	s, err := split(g, left)
	if err != nil {
		return nil, err
	}
	cl, cr := s.b.cover()

	return s.pick(cl, cr, false), nil
}

// HallViolation returns a set X of left vertices with fewer than |X|
// neighbors, and true, when the left side has no perfect matching.
// X is the left part of the alternating closure of the unmatched left
// vertices; its neighborhood is entirely matched into X.
func HallViolation(g *core.Graph, left []string) ([]string, bool, error) {
	s, err := split(g, left)
	if err != nil {
		return nil, false, err
	}
	zl, _ := s.b.alternating()

	var x []string
	for i, in := range zl {
		if in {
			x = append(x, s.left[i])
		}
	}

	return x, len(x) > 0, nil
}

// pick collects the vertices whose membership flag equals want.
func (s *sides) pick(cl, cr []bool, want bool) []string {
	var out []string
	for i, in := range cl {
		if in == want {
			out = append(out, s.left[i])
		}
	}
	for j, in := range cr {
		if in == want {
			out = append(out, s.right[j])
		}
	}
	sort.Strings(out)

	return out
}
