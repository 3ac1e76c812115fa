// SPDX-License-Identifier: MIT

package dijkstra

import "errors"

var (
	// ErrEmptySource is returned when no Source option was given.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph is returned for graphs built without core.WithWeighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound is returned when the source is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight is returned when any edge weight is negative.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance reports a negative WithMaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold reports a non-positive WithInfEdgeThreshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("dijkstra: no path to destination")
)
