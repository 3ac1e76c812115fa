// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"

	"github.com/katalvlaran/cphb/numtheory"
)

// Cross returns the cross product (b-a) × (c-a): positive when c is to the
// left of the directed line a→b, negative when to the right, zero when
// the three points are collinear.
func Cross(a, b, c Point) int64 {
	u, v := b.Sub(a), c.Sub(a)

	return u.X*v.Y - u.Y*v.X
}

// Orientation returns the turn made by c relative to the line a→b.
func Orientation(a, b, c Point) Turn {
	switch x := Cross(a, b, c); {
	case x > 0:
		return Left
	case x < 0:
		return Right
	default:
		return Collinear
	}
}

// OnSegment reports whether p lies on the closed segment s.
func OnSegment(s Segment, p Point) bool {
	return Cross(s.A, s.B, p) == 0 &&
		min(s.A.X, s.B.X) <= p.X && p.X <= max(s.A.X, s.B.X) &&
		min(s.A.Y, s.B.Y) <= p.Y && p.Y <= max(s.A.Y, s.B.Y)
}

// SegmentsIntersect reports whether the closed segments s and t share at
// least one point. Touching endpoints and collinear overlaps count.
//
// Steps:
//  1. If the endpoints of each segment lie strictly on opposite sides of
//     the other segment's line, they cross.
//  2. Otherwise they meet only if some endpoint lies on the other segment.
func SegmentsIntersect(s, t Segment) bool {
	d1 := Orientation(s.A, s.B, t.A)
	d2 := Orientation(s.A, s.B, t.B)
	d3 := Orientation(t.A, t.B, s.A)
	d4 := Orientation(t.A, t.B, s.B)
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}

	return OnSegment(s, t.A) || OnSegment(s, t.B) || OnSegment(t, s.A) || OnSegment(t, s.B)
}

// PointInPolygon locates p relative to the simple polygon poly, whose
// vertices are listed in order (either orientation).
//
// A ray from p towards +x crosses the boundary an odd number of times iff
// p is inside. Each edge is treated as half-open in y so that a ray
// through a vertex is counted once.
//
// Returns ErrTooFewPoints for fewer than 3 vertices.
// Complexity: O(n).
func PointInPolygon(poly []Point, p Point) (Location, error) {
	n := len(poly)
	if n < 3 {
		return Outside, fmt.Errorf("%w: polygon needs 3 vertices, got %d", ErrTooFewPoints, n)
	}
	inside := false
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		if OnSegment(Segment{a, b}, p) {
			return Boundary, nil
		}
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		// Crossing is right of p iff p is on the left of the upward edge.
		if a.Y > b.Y {
			a, b = b, a
		}
		if Cross(a, b, p) > 0 {
			inside = !inside
		}
	}
	if inside {
		return Inside, nil
	}

	return Outside, nil
}

// PolygonArea2 returns twice the area of the simple polygon poly by the
// shoelace formula. The result is always non-negative and exact.
//
// Returns ErrTooFewPoints for fewer than 3 vertices.
func PolygonArea2(poly []Point) (int64, error) {
	if len(poly) < 3 {
		return 0, fmt.Errorf("%w: polygon needs 3 vertices, got %d", ErrTooFewPoints, len(poly))
	}
	var s int64
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		s += a.X*b.Y - b.X*a.Y
	}
	if s < 0 {
		s = -s
	}

	return s, nil
}

// Pick returns the number of lattice points strictly inside and on the
// boundary of the lattice polygon poly. By Pick's theorem
// A = interior + boundary/2 - 1, and an edge (dx, dy) holds gcd(|dx|, |dy|)
// boundary points besides its start.
func Pick(poly []Point) (interior, boundary int64, err error) {
	area2, err := PolygonArea2(poly)
	if err != nil {
		return 0, 0, err
	}
	for i, a := range poly {
		d := poly[(i+1)%len(poly)].Sub(a)
		boundary += numtheory.GCD(d.X, d.Y)
	}
	interior = (area2 - boundary + 2) / 2

	return interior, boundary, nil
}

// MaxManhattan returns the largest Manhattan distance |x1-x2| + |y1-y2|
// between two of the points and the indices of one such pair.
//
// The distance equals max(|Δ(x+y)|, |Δ(x-y)|), so it suffices to track
// the extremes of x+y and x-y.
// Returns ErrTooFewPoints for fewer than 2 points.
// Complexity: O(n).
func MaxManhattan(points []Point) (dist int64, i, j int, err error) {
	if len(points) < 2 {
		return 0, 0, 0, fmt.Errorf("%w: need 2 points, got %d", ErrTooFewPoints, len(points))
	}
	var lo, hi [2]int
	key := func(p Point, k int) int64 {
		if k == 0 {
			return p.X + p.Y
		}

		return p.X - p.Y
	}
	for idx, p := range points {
		for k := 0; k < 2; k++ {
			if key(p, k) < key(points[lo[k]], k) {
				lo[k] = idx
			}
			if key(p, k) > key(points[hi[k]], k) {
				hi[k] = idx
			}
		}
	}
	dist, i, j = -1, 0, 0
	for k := 0; k < 2; k++ {
		if d := key(points[hi[k]], k) - key(points[lo[k]], k); d > dist {
			dist, i, j = d, lo[k], hi[k]
		}
	}

	return dist, i, j, nil
}
