// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/cphb/core"
)

// Algorithm names accepted by Compute.
const (
	MethodPrim    = "prim"
	MethodKruskal = "kruskal"
)

// MSTOptions selects the algorithm and, for Prim, the root.
type MSTOptions struct {
	Method string
	Root   string // Prim only
}

// DefaultOptions selects Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the algorithm named by opts.Method. Both algorithms return
// a tree of the same total weight; the edge sets may differ when weights
// tie.
func Compute(g *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// checkGraph validates g and returns its vertex count.
func checkGraph(g *core.Graph) (int, error) {
	if g == nil || !g.Weighted() || g.Directed() || g.HasDirectedEdges() {
		return 0, ErrInvalidGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return 0, ErrDisconnected
	}

	return n, nil
}
