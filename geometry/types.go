// SPDX-License-Identifier: MIT

package geometry

import "errors"

var (
	// ErrTooFewPoints indicates an input with fewer points than the algorithm needs.
	ErrTooFewPoints = errors.New("geometry: too few points")

	// ErrNotAxisAligned indicates a segment that is neither horizontal nor vertical
	// where CountIntersections requires one or the other.
	ErrNotAxisAligned = errors.New("geometry: segment is not axis-aligned")
)

// Point is a lattice point.
type Point struct {
	X, Y int64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Dist2 returns the squared Euclidean distance between p and q.
func (p Point) Dist2(q Point) int64 {
	d := p.Sub(q)

	return d.X*d.X + d.Y*d.Y
}

// Segment is the closed line segment between A and B.
type Segment struct {
	A, B Point
}

// Turn classifies the position of a point relative to a directed line.
type Turn int

const (
	// Right means the point is clockwise of the line.
	Right Turn = -1
	// Collinear means the point lies on the line.
	Collinear Turn = 0
	// Left means the point is counterclockwise of the line.
	Left Turn = 1
)

// String returns the turn's name.
func (t Turn) String() string {
	switch t {
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "collinear"
	}
}

// Location is the result of a point-in-polygon test.
type Location int

const (
	Outside Location = iota
	Boundary
	Inside
)

// String returns the location's name.
func (l Location) String() string {
	switch l {
	case Inside:
		return "inside"
	case Boundary:
		return "boundary"
	default:
		return "outside"
	}
}
