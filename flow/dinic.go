// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/cphb/core"
)

// Dinic computes the maximum flow from `source` to `sink` using Dinic’s
// algorithm (level graph + blocking flows).
//
// Inputs, outputs and errors match FordFulkerson. When
// opts.LevelRebuildInterval > 0 the level graph is rebuilt after that many
// augmentations even if the blocking flow is not finished.
//
// Steps:
//  1. Validate and build the residual network.
//  2. Repeat:
//     a. BFS from source assigns levels over arcs with capacity.
//     b. If sink has no level, stop.
//     c. DFS pushes along arcs going exactly one level deeper,
//     with per-vertex iterators so each arc is tried once per phase.
//  3. Materialize the residual graph.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E·√V) on unit-capacity networks.
//	Memory: O(V + E).
func Dinic(
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow int64, residualGraph *core.Graph, err error) {
	net, err := prepare(g, source, sink, &opts)
	if err != nil {
		return 0, nil, err
	}
	if maxFlow, err = net.dinic(source, sink, opts); err != nil {
		return maxFlow, nil, err
	}
	if residualGraph, err = net.residualGraph(); err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residualGraph, nil
}

// dinic runs phases of level graph + blocking flow until sink is unreachable.
func (n *network) dinic(source, sink string, opts FlowOptions) (int64, error) {
	var (
		total        int64
		augmentCount int
	)
	for {
		// 2a) Cancellation check before BFS
		if err := opts.Ctx.Err(); err != nil {
			return total, err
		}

		level := map[string]int{source: 0}
		queue := []string{source}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, v := range n.adj[u] {
				if _, seen := level[v]; !seen && n.cap[u][v] > 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		// 2b) Sink unreachable.
		if _, ok := level[sink]; !ok {
			return total, nil
		}

		// 2c) Blocking flow.
		iter := make(map[string]int, len(level))
		for {
			if err := opts.Ctx.Err(); err != nil {
				return total, err
			}
			pushed := n.dinicPush(opts.Ctx, level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			total += pushed
			augmentCount++
			opts.Logger.Debug("blocking flow push",
				zap.String("algorithm", "dinic"),
				zap.Int64("delta", pushed),
				zap.Int64("total", total))
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}
}

// dinicPush recursively pushes flow along the level graph.
// It updates capacities in place and returns the amount actually sent.
func (n *network) dinicPush(
	ctx context.Context,
	level map[string]int,
	iter map[string]int,
	u, sink string,
	available int64,
) int64 {
	if u == sink {
		return available
	}
	if ctx.Err() != nil {
		return 0
	}
	for ; iter[u] < len(n.adj[u]); iter[u]++ {
		v := n.adj[u][iter[u]]
		capUV := n.cap[u][v]
		lv, ok := level[v]
		if capUV <= 0 || !ok || lv != level[u]+1 {
			continue
		}
		if pushed := n.dinicPush(ctx, level, iter, v, sink, min(available, capUV)); pushed > 0 {
			n.cap[u][v] -= pushed
			n.cap[v][u] += pushed

			return pushed
		}
	}

	return 0
}
