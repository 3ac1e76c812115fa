// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrEmptyGrid is returned for a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: empty grid")
	// ErrNonRectangular is returned when rows differ in length.
	ErrNonRectangular = errors.New("gridgraph: rows differ in length")
	// ErrComponentIndex is returned for a room index outside ConnectedComponents.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath is returned when two cells or rooms cannot be joined.
	ErrNoPath = errors.New("gridgraph: no path")
	// ErrBlockedCell is returned for an endpoint that is blocked or off the grid.
	ErrBlockedCell = errors.New("gridgraph: cell is blocked or out of bounds")
	// ErrBoardSize is returned for a knight's tour board side below 1.
	ErrBoardSize = errors.New("gridgraph: board size must be positive")
	// ErrTooLarge is returned for a knight's tour board side above MaxTourSide.
	ErrTooLarge = errors.New("gridgraph: board too large")
	// ErrNoTour is returned when no knight's tour exists from the start square.
	ErrNoTour = errors.New("gridgraph: no knight's tour")
)
