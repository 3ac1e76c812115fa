// SPDX-License-Identifier: MIT

package flow

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/cphb/core"
)

// FordFulkerson computes the maximum flow from `source` to `sink` using the
// Ford–Fulkerson method (DFS-based augmenting paths).
//
// Edge weights are capacities. Directed edges carry flow one way,
// undirected edges both ways; parallel edges aggregate and loops are ignored.
//
// It returns:
//   - maxFlow       : the total flow value
//   - residualGraph : a directed, weighted *core.Graph of remaining capacities
//   - err           : ErrGraphNil, ErrSourceNotFound, ErrSinkNotFound,
//     ErrSourceIsSink, EdgeError, or the context error
//
// Steps:
//  1. Normalize options and validate source and sink.
//  2. Build the residual network.
//  3. Repeat until no augmenting path:
//     a. Iterative DFS from source over arcs with positive capacity.
//     b. If sink not reached, stop.
//     c. Push the bottleneck along the path and log it at Debug level.
//  4. Materialize the residual graph.
//
// Complexity:
//
//	Time:   O(E * F) where F = maxFlow.
//	Memory: O(V + E).
func FordFulkerson(
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow int64, residualGraph *core.Graph, err error) {
	// 1-2) Validate and build.
	net, err := prepare(g, source, sink, &opts)
	if err != nil {
		return 0, nil, err
	}

	// 3) Main loop.
	maxFlow, err = net.fordFulkerson(source, sink, opts)
	if err != nil {
		return maxFlow, nil, err
	}

	// 4) Residual graph.
	residualGraph, err = net.residualGraph()
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residualGraph, nil
}

// fordFulkerson runs DFS augmentation on net until saturation.
func (n *network) fordFulkerson(source, sink string, opts FlowOptions) (int64, error) {
	var total int64
	for {
		// 3a) Check for cancellation before each search
		if err := opts.Ctx.Err(); err != nil {
			return total, err
		}

		parent := make(map[string]string, len(n.nodes))
		minCap := map[string]int64{source: math.MaxInt64}
		visited := map[string]bool{source: true}

		stack := []string{source}
		found := false
		for len(stack) > 0 && !found {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, v := range n.adj[u] {
				capUV := n.cap[u][v]
				if capUV <= 0 || visited[v] {
					continue
				}
				visited[v] = true
				parent[v] = u
				minCap[v] = min(minCap[u], capUV)
				if v == sink {
					found = true
					break
				}
				stack = append(stack, v)
			}
		}

		// 3b) No augmenting path: done.
		if !found {
			return total, nil
		}

		// 3c) Push the bottleneck.
		delta := minCap[sink]
		path := n.push(parent, source, sink, delta)
		total += delta
		opts.Logger.Debug("augmenting path",
			zap.String("algorithm", "ford-fulkerson"),
			zap.Strings("path", path),
			zap.Int64("delta", delta),
			zap.Int64("total", total))
	}
}

// push sends delta along the parent chain from source to sink and returns
// the path in source→sink order.
func (n *network) push(parent map[string]string, source, sink string, delta int64) []string {
	path := []string{sink}
	for v := sink; v != source; v = parent[v] {
		u := parent[v]
		n.cap[u][v] -= delta
		n.cap[v][u] += delta
		path = append(path, u)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
