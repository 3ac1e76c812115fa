// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cphb/gridgraph"
)

// gridInput is a text map, for example
//
//	map: ["#...", "#.##"]
//	open: "."
//	from: [1, 0]
//	to: [3, 0]
type gridInput struct {
	Map  []string `yaml:"map"`
	Open string   `yaml:"open"`
	From [2]int   `yaml:"from"`
	To   [2]int   `yaml:"to"`
}

func (in gridInput) grid() (*gridgraph.GridGraph, error) {
	open := byte('.')
	if in.Open != "" {
		if len(in.Open) != 1 {
			return nil, fmt.Errorf("%w: open must be one byte, got %q", ErrBadInput, in.Open)
		}
		open = in.Open[0]
	}
	gg, err := gridgraph.FromLines(in.Map, open)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}

	return gg, nil
}

type roomsOutput struct {
	Rooms int   `yaml:"rooms" json:"rooms"`
	Sizes []int `yaml:"sizes" json:"sizes"`
}

type gridPathOutput struct {
	Steps int      `yaml:"steps" json:"steps"`
	Path  [][2]int `yaml:"path" json:"path"`
}

func gridSolvers() []Solver {
	return []Solver{
		{Name: "grid-rooms", Summary: "number and sizes of rooms in a map", solve: solveGridRooms},
		{Name: "grid-path", Summary: "fewest steps between two map cells", solve: solveGridPath},
		{Name: "knights-tour", Summary: "knight's tour of an n×n board (Warnsdorf)", solve: solveKnightsTour},
	}
}

func solveGridRooms(_ context.Context, req Request) (any, error) {
	in, err := decode[gridInput](req)
	if err != nil {
		return nil, err
	}
	gg, err := in.grid()
	if err != nil {
		return nil, err
	}
	rooms := gg.ConnectedComponents()
	out := roomsOutput{Rooms: len(rooms), Sizes: make([]int, len(rooms))}
	for i, r := range rooms {
		out.Sizes[i] = len(r)
	}

	return out, nil
}

func solveGridPath(_ context.Context, req Request) (any, error) {
	in, err := decode[gridInput](req)
	if err != nil {
		return nil, err
	}
	gg, err := in.grid()
	if err != nil {
		return nil, err
	}
	path, steps, err := gg.ShortestPath(
		gridgraph.Point{X: in.From[0], Y: in.From[1]},
		gridgraph.Point{X: in.To[0], Y: in.To[1]},
	)
	if err != nil {
		return nil, err
	}
	out := gridPathOutput{Steps: steps, Path: make([][2]int, len(path))}
	for i, p := range path {
		out.Path[i] = [2]int{p.X, p.Y}
	}

	return out, nil
}

func solveKnightsTour(_ context.Context, req Request) (any, error) {
	in, err := decode[struct {
		N int `yaml:"n"`
		X int `yaml:"x"`
		Y int `yaml:"y"`
	}](req)
	if err != nil {
		return nil, err
	}

	return gridgraph.KnightsTour(in.N, in.X, in.Y)
}
