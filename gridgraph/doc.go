// SPDX-License-Identifier: MIT

// Package gridgraph works on 2D grids as implicit graphs.
//
// A GridGraph holds a rectangular [][]int; cells whose value reaches
// LandThreshold are open, the rest are blocked. Open cells are vertices and
// neighbors follow Conn4 (orthogonal) or Conn8 (with diagonals). No edge
// list is ever built unless ToCoreGraph is asked for one, so the general
// packages (bfs, dijkstra, prim_kruskal) can run on the same grid.
//
//	gg, _ := gridgraph.FromLines([]string{"#..#", "#.##"}, '.')
//	rooms := gg.ConnectedComponents()             // counting rooms
//	path, steps, _ := gg.ShortestPath(from, to)   // BFS
//	route, fill, _ := gg.ExpandIsland(0, 1)       // 0-1 search
//
// KnightsTour is separate: it fills an n×n board with a knight's tour
// using Warnsdorf's rule.
package gridgraph
