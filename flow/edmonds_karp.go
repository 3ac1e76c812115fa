// SPDX-License-Identifier: MIT

package flow

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/cphb/core"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// Inputs, outputs and errors match FordFulkerson.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow int64, residual *core.Graph, err error) {
	net, err := prepare(g, source, sink, &opts)
	if err != nil {
		return 0, nil, err
	}
	if maxFlow, err = net.edmondsKarp(source, sink, opts); err != nil {
		return maxFlow, nil, err
	}
	if residual, err = net.residualGraph(); err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residual, nil
}

// edmondsKarp augments along shortest (fewest-arc) paths until saturation.
func (n *network) edmondsKarp(source, sink string, opts FlowOptions) (int64, error) {
	var total int64
	for {
		if err := opts.Ctx.Err(); err != nil {
			return total, err
		}

		// BFS for a shortest augmenting path.
		parent := make(map[string]string, len(n.nodes))
		minCap := map[string]int64{source: math.MaxInt64}
		queue := []string{source}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			if u == sink {
				break
			}
			for _, v := range n.adj[u] {
				if _, seen := minCap[v]; seen || n.cap[u][v] <= 0 {
					continue
				}
				parent[v] = u
				minCap[v] = min(minCap[u], n.cap[u][v])
				queue = append(queue, v)
			}
		}

		delta, ok := minCap[sink]
		if !ok {
			return total, nil
		}

		path := n.push(parent, source, sink, delta)
		total += delta
		opts.Logger.Debug("augmenting path",
			zap.String("algorithm", "edmonds-karp"),
			zap.Strings("path", path),
			zap.Int64("delta", delta),
			zap.Int64("total", total))
	}
}
