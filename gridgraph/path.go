// SPDX-License-Identifier: MIT

package gridgraph

import "fmt"

// ShortestPath returns a fewest-steps route of open cells from one cell to
// another, both ends included, and its number of steps. Neighbors are tried
// in NeighborOffsets order, so the route is deterministic.
//
// Returns ErrBlockedCell if an endpoint is not open and ErrNoPath if the
// cells lie in different rooms.
// Complexity: O(W·H·d).
func (gg *GridGraph) ShortestPath(from, to Point) ([]Point, int, error) {
	for _, p := range []Point{from, to} {
		if !gg.IsOpen(p.X, p.Y) {
			return nil, 0, fmt.Errorf("%w: (%d,%d)", ErrBlockedCell, p.X, p.Y)
		}
	}

	src, dst := gg.index(from.X, from.Y), gg.index(to.X, to.Y)
	prev := gg.unvisited()
	prev[src] = src
	queue := []int{src}
	for head := 0; head < len(queue) && prev[dst] < 0; head++ {
		u := queue[head]
		gg.around(u, func(v int) {
			if prev[v] < 0 && gg.open(v) {
				prev[v] = u
				queue = append(queue, v)
			}
		})
	}
	if prev[dst] < 0 {
		return nil, 0, fmt.Errorf("%w: (%d,%d) to (%d,%d)", ErrNoPath, from.X, from.Y, to.X, to.Y)
	}

	cells := gg.trace(prev, dst)
	path := make([]Point, len(cells))
	for i, c := range cells {
		x, y := gg.Coordinate(c)
		path[i] = Point{x, y}
	}

	return path, len(path) - 1, nil
}

// ExpandIsland finds the fewest blocked cells that must be opened to join
// room srcComp to room dstComp, with rooms numbered as in
// ConnectedComponents. It returns the joining route as row-major indices,
// from a cell of srcComp to a cell of dstComp, and the number of blocked
// cells on it.
//
// Steps:
//  1. Seed level 0 with every cell of srcComp.
//  2. Expand level by level: stepping onto an open cell stays on the
//     current level, stepping onto a blocked cell goes to the next.
//  3. Stop at the first dstComp cell taken off a level.
//
// Returns ErrComponentIndex for an unknown room.
// Complexity: O(W·H·d).
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) ([]int, int, error) {
	rooms := gg.ConnectedComponents()
	for _, c := range []int{srcComp, dstComp} {
		if c < 0 || c >= len(rooms) {
			return nil, 0, fmt.Errorf("%w: %d of %d", ErrComponentIndex, c, len(rooms))
		}
	}
	target := make(map[int]bool, len(rooms[dstComp]))
	for _, i := range rooms[dstComp] {
		target[i] = true
	}

	n := gg.Width * gg.Height
	cost := make([]int, n)
	for i := range cost {
		cost[i] = n + 1
	}
	prev := gg.unvisited()
	level := append([]int(nil), rooms[srcComp]...)
	for _, i := range level {
		cost[i] = 0
		prev[i] = i
	}

	for d := 0; len(level) > 0; d++ {
		var next []int
		for k := 0; k < len(level); k++ {
			u := level[k]
			if cost[u] != d {
				continue
			}
			if target[u] {
				return gg.trace(prev, u), d, nil
			}
			gg.around(u, func(v int) {
				c := d
				if !gg.open(v) {
					c++
				}
				if c >= cost[v] {
					return
				}
				cost[v], prev[v] = c, u
				if c == d {
					level = append(level, v)
				} else {
					next = append(next, v)
				}
			})
		}
		level = next
	}

	return nil, 0, ErrNoPath
}

// unvisited returns a predecessor table filled with -1.
func (gg *GridGraph) unvisited() []int {
	prev := make([]int, gg.Width*gg.Height)
	for i := range prev {
		prev[i] = -1
	}

	return prev
}

// trace follows prev from end back to a self-linked start and returns the
// cells start first.
func (gg *GridGraph) trace(prev []int, end int) []int {
	var cells []int
	for at := end; ; at = prev[at] {
		cells = append(cells, at)
		if prev[at] == at {
			break
		}
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	return cells
}
