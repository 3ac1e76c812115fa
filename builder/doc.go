// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures for tests,
// examples and the cphb gen command.
//
// A Constructor is a graph mutation; BuildGraph creates the graph, resolves
// the builder options and applies constructors in order:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightRange(1, 9)},
//		builder.Grid(3, 4),
//	)
//
// Vertex IDs come from an IDFn (decimal by default); Grid uses fixed "r,c"
// coordinates. Edge weights are observed only on weighted graphs: 1 by
// default, or uniform in [lo, hi] with WithWeightRange. Stochastic
// constructors need WithSeed or WithRand and are reproducible for a fixed
// seed and constructor order.
package builder
