// SPDX-License-Identifier: MIT

package scc_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cphb/scc"
)

type clause [2]scc.Literal

func holds(l scc.Literal, assign []bool) bool {
	v := assign[l.Var()]
	if l == scc.Neg(l.Var()) {
		return !v
	}

	return v
}

func satisfies(clauses []clause, assign []bool) bool {
	for _, c := range clauses {
		if !holds(c[0], assign) && !holds(c[1], assign) {
			return false
		}
	}

	return true
}

func build(t *testing.T, n int, clauses []clause) *scc.TwoSAT {
	s := scc.NewTwoSAT(n)
	for _, c := range clauses {
		require.NoError(t, s.AddClause(c[0], c[1]))
	}

	return s
}

func TestTwoSAT_Satisfiable(t *testing.T) {
	// (x2 ∨ ¬x1) ∧ (¬x1 ∨ ¬x2) ∧ (x1 ∨ x3) ∧ (¬x2 ∨ ¬x3) ∧ (x1 ∨ x4), 0-indexed
	clauses := []clause{
		{scc.Pos(1), scc.Neg(0)}, {scc.Neg(0), scc.Neg(1)}, {scc.Pos(0), scc.Pos(2)},
		{scc.Neg(1), scc.Neg(2)}, {scc.Pos(0), scc.Pos(3)},
	}
	assign, ok := build(t, 4, clauses).Solve()
	require.True(t, ok)
	assert.True(t, satisfies(clauses, assign))
	assert.Equal(t, []bool{false, false, true, true}, assign)
}

func TestTwoSAT_Unsatisfiable(t *testing.T) {
	clauses := []clause{
		{scc.Pos(0), scc.Pos(1)}, {scc.Pos(0), scc.Neg(1)},
		{scc.Neg(0), scc.Pos(2)}, {scc.Neg(0), scc.Neg(2)},
	}
	_, ok := build(t, 3, clauses).Solve()
	assert.False(t, ok)
}

func TestTwoSAT_ForcedLiteral(t *testing.T) {
	s := scc.NewTwoSAT(2)
	require.NoError(t, s.AddClause(scc.Neg(1), scc.Neg(1)))
	require.NoError(t, s.AddClause(scc.Pos(0), scc.Pos(1)))
	assign, ok := s.Solve()
	require.True(t, ok)
	assert.Equal(t, []bool{true, false}, assign)
}

func TestTwoSAT_OutOfRange(t *testing.T) {
	s := scc.NewTwoSAT(2)
	assert.ErrorIs(t, s.AddClause(scc.Pos(0), scc.Pos(2)), scc.ErrVariableOutOfRange)
	assert.ErrorIs(t, s.AddClause(scc.Literal(-1), scc.Pos(0)), scc.ErrVariableOutOfRange)

	empty := scc.NewTwoSAT(-3)
	assert.ErrorIs(t, empty.AddClause(scc.Pos(0), scc.Pos(0)), scc.ErrVariableOutOfRange)
	assign, ok := empty.Solve()
	assert.True(t, ok)
	assert.Empty(t, assign)
}

func TestTwoSAT_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	lit := func(n int) scc.Literal {
		if r.Intn(2) == 0 {
			return scc.Pos(r.Intn(n))
		}

		return scc.Neg(r.Intn(n))
	}

	for round := 0; round < 200; round++ {
		n := 1 + r.Intn(5)
		clauses := make([]clause, 1+r.Intn(8))
		for i := range clauses {
			clauses[i] = clause{lit(n), lit(n)}
		}

		want := false
		for mask := 0; mask < 1<<n && !want; mask++ {
			assign := make([]bool, n)
			for i := range assign {
				assign[i] = mask>>i&1 == 1
			}
			want = satisfies(clauses, assign)
		}

		assign, ok := build(t, n, clauses).Solve()
		require.Equal(t, want, ok, "round %d", round)
		if ok {
			require.True(t, satisfies(clauses, assign), "round %d", round)
		}
	}
}
