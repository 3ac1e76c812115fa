// SPDX-License-Identifier: MIT

package gridgraph

import (
	"strconv"

	"github.com/katalvlaran/cphb/core"
)

// VertexID is the core.Graph vertex ID of cell (x,y): "x,y".
func VertexID(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// ToCoreGraph exports the open cells as an undirected, weighted core.Graph
// with one vertex per open cell and one edge of weight 1 per pair of
// neighboring open cells. Edges are created in row-major order of their
// lower-index endpoint.
//
// Complexity: O(W·H·d), d = 4 or 8.
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	n := gg.Width * gg.Height
	id := func(i int) string { return VertexID(gg.Coordinate(i)) }
	for i := 0; i < n; i++ {
		if gg.open(i) {
			_ = g.AddVertex(id(i))
		}
	}
	for i := 0; i < n; i++ {
		if !gg.open(i) {
			continue
		}
		gg.around(i, func(j int) {
			if j > i && gg.open(j) {
				_, _ = g.AddEdge(id(i), id(j), 1)
			}
		})
	}

	return g
}
