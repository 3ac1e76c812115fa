// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/cphb/gridgraph"
)

// ExampleGridGraph_ConnectedComponents counts the rooms of a floor plan.
func ExampleGridGraph_ConnectedComponents() {
	gg, err := gridgraph.FromLines([]string{
		"########",
		"#..#...#",
		"####.#.#",
		"#..#...#",
		"########",
	}, '.')
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rooms := gg.ConnectedComponents()
	fmt.Println("rooms:", len(rooms))
	for i, room := range rooms {
		x, y := gg.Coordinate(room[0])
		fmt.Printf("room %d: %d cells from (%d,%d)\n", i, len(room), x, y)
	}

	// Output:
	// rooms: 3
	// room 0: 2 cells from (1,1)
	// room 1: 8 cells from (4,1)
	// room 2: 2 cells from (1,3)
}

// ExampleGridGraph_ShortestPath walks around a wall.
func ExampleGridGraph_ShortestPath() {
	gg, _ := gridgraph.FromLines([]string{
		"...",
		"##.",
		"...",
	}, '.')

	path, steps, err := gg.ShortestPath(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 0, Y: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(steps, path)

	// Output:
	// 6 [{0 0} {1 0} {2 0} {2 1} {2 2} {1 2} {0 2}]
}

// ExampleGridGraph_ExpandIsland bridges two islands (0 is water).
func ExampleGridGraph_ExpandIsland() {
	gg, _ := gridgraph.NewGridGraph([][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}, gridgraph.DefaultGridOptions())

	path, cost, _ := gg.ExpandIsland(0, 1)
	fmt.Printf("fill %d:", cost)
	for _, idx := range path {
		x, y := gg.Coordinate(idx)
		fmt.Printf(" (%d,%d)", x, y)
	}
	fmt.Println()

	// Output:
	// fill 1: (2,0) (3,0) (4,0)
}

// ExampleKnightsTour prints the first row of a 5×5 tour from the corner.
func ExampleKnightsTour() {
	board, err := gridgraph.KnightsTour(5, 0, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(board[0][0], len(board))

	// Output:
	// 1 5
}
