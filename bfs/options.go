// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
)

// Option customizes a search. Invalid values are recorded and reported as
// ErrOptionViolation when BFS starts.
type Option func(*Options)

// Options is the resolved search configuration.
type Options struct {
	Ctx context.Context

	// MaxDepth > 0 keeps vertices farther than MaxDepth edges unvisited.
	// Zero means no limit.
	MaxDepth int

	// FilterNeighbor reports whether the step from→to may be taken.
	FilterNeighbor func(from, to string) bool

	// OnEnqueue fires when a vertex is first discovered.
	OnEnqueue func(id string, depth int)

	// OnVisit fires when a vertex leaves the queue. A non-nil error stops
	// the search.
	OnVisit func(id string, depth int) error

	err error
}

// DefaultOptions returns a background context, no depth limit, no filter
// and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext makes the search stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the search to vertices at most d edges away.
// d == 0 removes the limit; d < 0 is invalid.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative max depth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips every step from→to for which fn returns false.
func WithFilterNeighbor(fn func(from, to string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithOnEnqueue registers a discovery hook.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) { o.OnEnqueue = fn }
}

// WithOnVisit registers a visit hook; its error aborts the search.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}
