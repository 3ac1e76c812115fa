// SPDX-License-Identifier: MIT

package dfs

import "context"

// Option configures DFS.
type Option func(*Options)

// Options is the resolved DFS configuration.
type Options struct {
	Ctx context.Context

	// OnVisit runs when a vertex is discovered (preorder).
	OnVisit func(id string) error

	// OnExit runs when a vertex finishes (postorder), right before it is
	// appended to DFSResult.Order.
	OnExit func(id string) error

	// MaxDepth >= 0 leaves vertices deeper than MaxDepth undiscovered.
	// Negative means no limit.
	MaxDepth int

	// FilterNeighbor reports whether the search may step into id.
	FilterNeighbor func(id string) bool

	// FullTraversal restarts the search from every undiscovered vertex in
	// ascending ID order, producing a DFS forest.
	FullTraversal bool
}

// DefaultOptions returns a background context, no hooks, no depth limit
// and a single-source search.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext makes the search stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a preorder hook; its error aborts the search.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a postorder hook; its error aborts the search.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits the search depth; 0 visits the start vertex only.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips every neighbor id for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal searches every component; the start ID is ignored.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}
