// SPDX-License-Identifier: MIT

// Package flow implements maximum-flow algorithms and their classic
// applications on graphs represented by *core.Graph.
//
// Edge weights are integral capacities. Directed edges carry flow in their
// own direction; undirected edges carry it either way. Parallel edges are
// aggregated and loops are ignored.
//
// The key algorithms offered are:
//
//   - Ford–Fulkerson: depth-first search for any augmenting path, O(E · F).
//   - Edmonds–Karp: breadth-first search for shortest augmenting paths, O(V · E²).
//   - Dinic: level graph + blocking flows, O(V² · E), O(E · √V) on unit networks.
//
// On top of them:
//
//   - MinCut returns the minimum s-t cut read off the final residual network.
//   - EdgeDisjointPaths and VertexDisjointPaths decompose a unit-capacity
//     flow into explicit routes.
//
// # API
//
// FlowOptions configures every entry point:
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // cancellation / timeouts
//	    Logger               *zap.Logger     // Debug entry per augmentation
//	    LevelRebuildInterval int             // Dinic only: rebuild level graph every N pushes
//	}
//
// DefaultOptions() returns a background context and a no-op logger.
//
// The max-flow entry points share one signature:
//
//	func Dinic(g *core.Graph, source, sink string, opts FlowOptions) (int64, *core.Graph, error)
//
// The returned residual graph is directed and weighted; it holds one edge
// u→v per pair with positive remaining capacity, reverse arcs included.
//
// # Errors
//
//	ErrGraphNil       - nil input graph.
//	ErrSourceNotFound - the source vertex is missing.
//	ErrSinkNotFound   - the sink vertex is missing.
//	ErrSourceIsSink   - source == sink.
//	ErrBadInterval    - negative LevelRebuildInterval.
//	EdgeError         - an edge with negative capacity.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is done.
package flow
