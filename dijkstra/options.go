// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"
)

// Options configures one Dijkstra run.
type Options struct {
	Source string

	// ReturnPath makes Dijkstra return the predecessor map.
	ReturnPath bool

	// MaxDistance bounds the search: vertices farther than it stay at
	// math.MaxInt64.
	MaxDistance int64

	// InfEdgeThreshold turns every edge of weight >= it into a wall.
	InfEdgeThreshold int64

	err error
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// DefaultOptions returns options for source with no distance bound and no
// walls.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Source sets the start vertex. It is required.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath requests the predecessor map.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance stops the search at distance limit (limit >= 0).
func WithMaxDistance(limit int64) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, limit)
			return
		}
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold skips edges whose weight is at least threshold
// (threshold > 0).
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}
