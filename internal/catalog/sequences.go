// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cphb/arrays"
	"github.com/katalvlaran/cphb/complete"
	"github.com/katalvlaran/cphb/dp"
	"github.com/katalvlaran/cphb/greedy"
	"github.com/katalvlaran/cphb/sorting"
)

type valuesInput struct {
	Values []int64 `yaml:"values"`
}

func sequenceSolvers() []Solver {
	return []Solver{
		{Name: "max-subarray", Summary: "largest subarray sum (Kadane)", solve: solveMaxSubarray},
		{Name: "inversions", Summary: "number of inversions (merge sort)", solve: solveInversions},
		{Name: "lis", Summary: "longest increasing subsequence", solve: solveLIS},
		{Name: "edit-distance", Summary: "Levenshtein distance with edit script", solve: solveEditDistance},
		{Name: "knapsack", Summary: "0/1 knapsack maximum value", solve: solveKnapsack},
		{Name: "coin-change", Summary: "fewest coins summing to target", solve: solveCoinChange},
		{Name: "schedule", Summary: "maximum number of non-overlapping events", solve: solveSchedule},
		{Name: "huffman", Summary: "optimal prefix code for symbol frequencies", solve: solveHuffman},
		{Name: "nqueens", Summary: "number of n-queens placements", solve: solveNQueens},
	}
}

func solveMaxSubarray(_ context.Context, req Request) (any, error) {
	in, err := decode[valuesInput](req)
	if err != nil {
		return nil, err
	}
	best, lo, hi := arrays.MaxSubarray(in.Values)

	return struct {
		Sum int64 `yaml:"sum" json:"sum"`
		Lo  int   `yaml:"lo" json:"lo"`
		Hi  int   `yaml:"hi" json:"hi"`
	}{best, lo, hi}, nil
}

func solveInversions(_ context.Context, req Request) (any, error) {
	in, err := decode[valuesInput](req)
	if err != nil {
		return nil, err
	}

	return sorting.Inversions(in.Values), nil
}

func solveLIS(_ context.Context, req Request) (any, error) {
	in, err := decode[valuesInput](req)
	if err != nil {
		return nil, err
	}
	n, positions := dp.LIS(in.Values)

	return struct {
		Length    int   `yaml:"length" json:"length"`
		Positions []int `yaml:"positions" json:"positions"`
	}{n, positions}, nil
}

func solveEditDistance(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		A string `yaml:"a"`
		B string `yaml:"b"`
	}](req)
	if err != nil {
		return nil, err
	}
	d, script, err := dp.EditDistance([]rune(in.A), []rune(in.B), dp.DefaultEditOptions())
	if err != nil {
		return nil, err
	}
	ops := make([]string, len(script))
	for i, op := range script {
		ops[i] = op.Kind.String()
	}

	return struct {
		Distance int      `yaml:"distance" json:"distance"`
		Script   []string `yaml:"script" json:"script"`
	}{d, ops}, nil
}

func solveKnapsack(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		Weights  []int   `yaml:"weights"`
		Values   []int64 `yaml:"values"`
		Capacity int     `yaml:"capacity"`
	}](req)
	if err != nil {
		return nil, err
	}
	best, items, err := dp.Knapsack01(in.Weights, in.Values, in.Capacity)
	if err != nil {
		return nil, err
	}

	return struct {
		Value int64 `yaml:"value" json:"value"`
		Items []int `yaml:"items" json:"items"`
	}{best, items}, nil
}

func solveCoinChange(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		Coins  []int `yaml:"coins"`
		Target int   `yaml:"target"`
	}](req)
	if err != nil {
		return nil, err
	}
	n, coins, err := dp.MinCoins(in.Coins, in.Target)
	if err != nil {
		return nil, err
	}

	return struct {
		Count int   `yaml:"count" json:"count"`
		Coins []int `yaml:"coins" json:"coins"`
	}{n, coins}, nil
}

func solveSchedule(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		Events [][2]int64 `yaml:"events"`
	}](req)
	if err != nil {
		return nil, err
	}
	events := make([]greedy.Event, len(in.Events))
	for i, e := range in.Events {
		events[i] = greedy.Event{Start: e[0], End: e[1]}
	}

	return greedy.MaxEvents(events)
}

func solveHuffman(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		Freq map[string]int64 `yaml:"freq"`
	}](req)
	if err != nil {
		return nil, err
	}

	return greedy.Huffman(in.Freq)
}

func solveNQueens(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		N int `yaml:"n"`
	}](req)
	if err != nil {
		return nil, err
	}
	if in.N <= 0 {
		return nil, fmt.Errorf("%w: n must be positive", ErrBadInput)
	}

	return complete.NQueens(in.N)
}
