// SPDX-License-Identifier: MIT

package catalog

import (
	"context"

	"github.com/katalvlaran/cphb/geometry"
	"github.com/katalvlaran/cphb/stringalgo"
)

type pointsInput struct {
	Points [][2]int64 `yaml:"points"`
}

func (in pointsInput) points() []geometry.Point {
	ps := make([]geometry.Point, len(in.Points))
	for i, p := range in.Points {
		ps[i] = geometry.Point{X: p[0], Y: p[1]}
	}

	return ps
}

func pairs(ps []geometry.Point) [][2]int64 {
	out := make([][2]int64, len(ps))
	for i, p := range ps {
		out[i] = [2]int64{p.X, p.Y}
	}

	return out
}

func textSolvers() []Solver {
	return []Solver{
		{Name: "z-function", Summary: "Z-array of a string", solve: solveZFunction},
		{Name: "find-all", Summary: "all occurrences of a pattern (Z-algorithm)", solve: solveFindAll},
		{Name: "suffix-array", Summary: "suffix array and LCP array", solve: solveSuffixArray},
		{Name: "convex-hull", Summary: "convex hull, counterclockwise", solve: solveConvexHull},
		{Name: "closest-pair", Summary: "closest pair of points", solve: solveClosestPair},
		{Name: "polygon-area", Summary: "twice the polygon area and Pick counts", solve: solvePolygonArea},
	}
}

func solveZFunction(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		Text string `yaml:"text"`
	}](req)
	if err != nil {
		return nil, err
	}

	return stringalgo.ZFunction(in.Text), nil
}

func solveFindAll(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		Text    string `yaml:"text"`
		Pattern string `yaml:"pattern"`
	}](req)
	if err != nil {
		return nil, err
	}

	return stringalgo.FindAll(in.Text, in.Pattern)
}

func solveSuffixArray(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		Text string `yaml:"text"`
	}](req)
	if err != nil {
		return nil, err
	}
	sa := stringalgo.SuffixArray(in.Text)
	lcp, err := stringalgo.LCPArray(in.Text, sa)
	if err != nil {
		return nil, err
	}

	return struct {
		SuffixArray []int `yaml:"suffix_array" json:"suffix_array"`
		LCP         []int `yaml:"lcp" json:"lcp"`
		Distinct    int64 `yaml:"distinct_substrings" json:"distinct_substrings"`
	}{sa, lcp, stringalgo.CountDistinctSubstrings(in.Text)}, nil
}

func solveConvexHull(_ context.Context, req Request) (any, error) {
	in, err := decode[pointsInput](req)
	if err != nil {
		return nil, err
	}

	return pairs(geometry.ConvexHull(in.points())), nil
}

func solveClosestPair(_ context.Context, req Request) (any, error) {
	in, err := decode[pointsInput](req)
	if err != nil {
		return nil, err
	}
	ps := in.points()
	i, j, d2, err := geometry.ClosestPair(ps)
	if err != nil {
		return nil, err
	}

	return struct {
		Pair  [][2]int64 `yaml:"pair" json:"pair"`
		Dist2 int64      `yaml:"dist2" json:"dist2"`
	}{pairs([]geometry.Point{ps[i], ps[j]}), d2}, nil
}

func solvePolygonArea(_ context.Context, req Request) (any, error) {
	in, err := decode[pointsInput](req)
	if err != nil {
		return nil, err
	}
	ps := in.points()
	area2, err := geometry.PolygonArea2(ps)
	if err != nil {
		return nil, err
	}
	interior, boundary, err := geometry.Pick(ps)
	if err != nil {
		return nil, err
	}

	return struct {
		Area2    int64 `yaml:"area2" json:"area2"`
		Interior int64 `yaml:"interior" json:"interior"`
		Boundary int64 `yaml:"boundary" json:"boundary"`
	}{area2, interior, boundary}, nil
}
