// SPDX-License-Identifier: MIT

package gridgraph

import "github.com/katalvlaran/cphb/dsu"

// ConnectedComponents groups the open cells into rooms: maximal sets of
// cells joined through open neighbors. Each room lists its cell indices in
// row-major order and rooms are ordered by their first cell, so
// len(result) is the number of rooms.
//
// Neighboring open cells are merged in a union-find, then cells are
// bucketed by representative in one row-major sweep.
//
// Complexity: O(W·H·d·α(W·H)).
func (gg *GridGraph) ConnectedComponents() [][]int {
	n := gg.Width * gg.Height
	sets := dsu.New(n)
	for i := 0; i < n; i++ {
		if !gg.open(i) {
			continue
		}
		gg.around(i, func(j int) {
			if j > i && gg.open(j) {
				sets.Union(i, j)
			}
		})
	}

	var rooms [][]int
	slot := make(map[int]int)
	for i := 0; i < n; i++ {
		if !gg.open(i) {
			continue
		}
		r := sets.Find(i)
		k, ok := slot[r]
		if !ok {
			k = len(rooms)
			slot[r] = k
			rooms = append(rooms, make([]int, 0, sets.Size(i)))
		}
		rooms[k] = append(rooms[k], i)
	}

	return rooms
}
