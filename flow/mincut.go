// SPDX-License-Identifier: MIT

package flow

import (
	"sort"

	"github.com/katalvlaran/cphb/core"
)

// MinCut finds a minimum s-t cut of g.
//
// The maximum flow is computed with Dinic; afterwards the vertices still
// reachable from source in the residual network form the source side,
// and every original edge leaving that side belongs to the cut.
// An undirected edge belongs to the cut when exactly one endpoint is
// on the source side.
//
// Complexity: that of Dinic plus O(V + E).
func MinCut(g *core.Graph, source, sink string, opts FlowOptions) (*Cut, error) {
	net, err := prepare(g, source, sink, &opts)
	if err != nil {
		return nil, err
	}
	value, err := net.dinic(source, sink, opts)
	if err != nil {
		return nil, err
	}

	side := net.reachable(source)
	cut := &Cut{Value: value, Source: make([]string, 0, len(side))}
	for v := range side {
		cut.Source = append(cut.Source, v)
	}
	sort.Strings(cut.Source)

	for _, e := range g.Edges() {
		from, to := side[e.From], side[e.To]
		switch {
		case from && !to:
			cut.Edges = append(cut.Edges, e)
		case !e.Directed && to && !from:
			cut.Edges = append(cut.Edges, e)
		}
	}

	return cut, nil
}
