// SPDX-License-Identifier: MIT

package catalog

import (
	"context"

	"github.com/katalvlaran/cphb/combinatorics"
	"github.com/katalvlaran/cphb/games"
	"github.com/katalvlaran/cphb/matrix"
	"github.com/katalvlaran/cphb/numtheory"
	"github.com/katalvlaran/cphb/probability"
)

func mathSolvers() []Solver {
	return []Solver{
		{Name: "primes", Summary: "primes up to n (sieve of Eratosthenes)", solve: solvePrimes},
		{Name: "factors", Summary: "prime factorization of n", solve: solveFactors},
		{Name: "crt", Summary: "Chinese remainder theorem", solve: solveCRT},
		{Name: "binomial", Summary: "binomial coefficient n choose k", solve: solveBinomial},
		{Name: "fibonacci", Summary: "n-th Fibonacci number by matrix power", solve: solveFibonacci},
		{Name: "nim", Summary: "nim sum and a winning move", solve: solveNim},
		{Name: "markov", Summary: "Markov chain distribution after k steps", solve: solveMarkov},
	}
}

func solvePrimes(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		N int `yaml:"n"`
	}](req)
	if err != nil {
		return nil, err
	}

	return numtheory.Sieve(in.N)
}

func solveFactors(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		N int64 `yaml:"n"`
	}](req)
	if err != nil {
		return nil, err
	}

	return numtheory.Factors(in.N)
}

func solveCRT(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		Remainders []int64 `yaml:"remainders"`
		Moduli     []int64 `yaml:"moduli"`
	}](req)
	if err != nil {
		return nil, err
	}
	x, m, err := numtheory.CRT(in.Remainders, in.Moduli)
	if err != nil {
		return nil, err
	}

	return struct {
		X       int64 `yaml:"x" json:"x"`
		Modulus int64 `yaml:"modulus" json:"modulus"`
	}{x, m}, nil
}

func solveBinomial(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		N int64 `yaml:"n"`
		K int64 `yaml:"k"`
	}](req)
	if err != nil {
		return nil, err
	}

	return combinatorics.Binomial(in.N, in.K)
}

func solveFibonacci(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		N   int64 `yaml:"n"`
		Mod int64 `yaml:"mod"`
	}](req)
	if err != nil {
		return nil, err
	}
	mod := in.Mod
	if mod == 0 {
		mod = 1_000_000_007
	}

	return matrix.Fibonacci(in.N, mod)
}

func solveNim(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		Heaps []int `yaml:"heaps"`
	}](req)
	if err != nil {
		return nil, err
	}
	out := struct {
		NimSum  int  `yaml:"nim_sum" json:"nim_sum"`
		Winning bool `yaml:"winning" json:"winning"`
		Heap    *int `yaml:"heap,omitempty" json:"heap,omitempty"`
		Take    *int `yaml:"take,omitempty" json:"take,omitempty"`
	}{NimSum: games.NimSum(in.Heaps...)}
	// heap 0 is a valid move, so absence is encoded by nil
	heap, take, ok := games.NimMove(in.Heaps...)
	if ok {
		out.Winning, out.Heap, out.Take = true, &heap, &take
	}

	return out, nil
}

func solveMarkov(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		Distribution []float64   `yaml:"distribution"`
		Transition   [][]float64 `yaml:"transition"`
		Steps        int         `yaml:"steps"`
	}](req)
	if err != nil {
		return nil, err
	}

	return probability.Markov(in.Distribution, in.Transition, in.Steps)
}
