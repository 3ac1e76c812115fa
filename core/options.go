// SPDX-License-Identifier: MIT

package core

// GraphOption sets a Graph flag at construction. Flags never change later.
type GraphOption func(*flags)

type flags struct {
	directed bool
	weighted bool
	multi    bool
	loops    bool
	mixed    bool
}

// WithDirected sets the orientation of new edges.
func WithDirected(directed bool) GraphOption {
	return func(f *flags) { f.directed = directed }
}

// WithWeighted permits non-zero weights.
func WithWeighted() GraphOption {
	return func(f *flags) { f.weighted = true }
}

// WithMultiEdges permits parallel edges.
func WithMultiEdges() GraphOption {
	return func(f *flags) { f.multi = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(f *flags) { f.loops = true }
}

// WithMixedEdges lets AddEdge accept per-edge orientation.
func WithMixedEdges() GraphOption {
	return func(f *flags) { f.mixed = true }
}

// options rebuilds the option list that reproduces f.
func (f flags) options() []GraphOption {
	opts := []GraphOption{WithDirected(f.directed)}
	for _, on := range []struct {
		set bool
		opt GraphOption
	}{
		{f.weighted, WithWeighted()},
		{f.multi, WithMultiEdges()},
		{f.loops, WithLoops()},
		{f.mixed, WithMixedEdges()},
	} {
		if on.set {
			opts = append(opts, on.opt)
		}
	}

	return opts
}

// EdgeOption adjusts a single edge in AddEdge.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the graph's orientation for one edge.
// Only mixed graphs accept it.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}
