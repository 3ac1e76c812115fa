// SPDX-License-Identifier: MIT

package scc

import "fmt"

// Literal is a variable or its negation. Variable i is encoded as 2i and
// its negation as 2i+1.
type Literal int

// Pos returns the literal x_i.
func Pos(i int) Literal { return Literal(2 * i) }

// Neg returns the literal ¬x_i.
func Neg(i int) Literal { return Literal(2*i + 1) }

// Not returns the complementary literal.
func (l Literal) Not() Literal { return l ^ 1 }

// Var returns the variable index of l.
func (l Literal) Var() int { return int(l) / 2 }

// TwoSAT collects clauses (a ∨ b) over n boolean variables.
type TwoSAT struct {
	n   int
	adj [][]int // implication graph over 2n literals
}

// NewTwoSAT creates an empty formula over n variables. A negative n is
// treated as 0.
func NewTwoSAT(n int) *TwoSAT {
	n = max(n, 0)

	return &TwoSAT{n: n, adj: make([][]int, 2*n)}
}

// AddClause adds (a ∨ b), stored as the implications ¬a → b and ¬b → a.
// Use AddClause(a, a) to force a literal.
func (s *TwoSAT) AddClause(a, b Literal) error {
	for _, l := range []Literal{a, b} {
		if l < 0 || l.Var() >= s.n {
			return fmt.Errorf("%w: variable %d of %d", ErrVariableOutOfRange, l.Var(), s.n)
		}
	}
	s.adj[a.Not()] = append(s.adj[a.Not()], int(b))
	s.adj[b.Not()] = append(s.adj[b.Not()], int(a))

	return nil
}

// Solve returns a satisfying assignment, or false if none exists.
//
// The formula is unsatisfiable iff some x_i and ¬x_i share a component.
// Otherwise x_i is true when its component comes after ¬x_i's in
// topological order.
// Complexity: O(n + clauses).
func (s *TwoSAT) Solve() ([]bool, bool) {
	comp, _ := tarjanIDs(s.adj)

	assign := make([]bool, s.n)
	for i := 0; i < s.n; i++ {
		p, q := comp[Pos(i)], comp[Neg(i)]
		if p == q {
			return nil, false
		}
		// Tarjan ids run in reverse topological order.
		assign[i] = p < q
	}

	return assign, true
}
