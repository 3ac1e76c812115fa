// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cphb/rangeq"
)

// ClosestPair returns the indices of two distinct input points with the
// smallest Euclidean distance and that distance squared. Duplicate points
// give distance 0.
//
// Divide and conquer: split by x, solve both halves, then check the strip
// of width d around the split line with points merged by y. Each strip
// point needs only a constant number of comparisons.
//
// Returns ErrTooFewPoints for fewer than 2 points.
// Complexity: O(n log n).
func ClosestPair(points []Point) (i, j int, dist2 int64, err error) {
	n := len(points)
	if n < 2 {
		return 0, 0, 0, fmt.Errorf("%w: need 2 points, got %d", ErrTooFewPoints, n)
	}
	idx := make([]int, n)
	for k := range idx {
		idx[k] = k
	}
	sort.Slice(idx, func(a, b int) bool {
		pa, pb := points[idx[a]], points[idx[b]]
		if pa.X != pb.X {
			return pa.X < pb.X
		}

		return pa.Y < pb.Y
	})

	best := int64(-1)
	update := func(a, b int) {
		if d := points[a].Dist2(points[b]); best < 0 || d < best {
			best, i, j = d, a, b
		}
	}
	buf := make([]int, n)
	strip := make([]int, 0, n)

	// solve handles idx[lo:hi] and leaves it sorted by y.
	var solve func(lo, hi int)
	solve = func(lo, hi int) {
		if hi-lo <= 3 {
			for a := lo; a < hi; a++ {
				for b := a + 1; b < hi; b++ {
					update(idx[a], idx[b])
				}
			}
			sort.Slice(idx[lo:hi], func(a, b int) bool {
				return points[idx[lo+a]].Y < points[idx[lo+b]].Y
			})

			return
		}
		mid := (lo + hi) / 2
		midX := points[idx[mid]].X
		solve(lo, mid)
		solve(mid, hi)

		// Merge the halves by y.
		a, b, k := lo, mid, lo
		for a < mid || b < hi {
			if b >= hi || (a < mid && points[idx[a]].Y <= points[idx[b]].Y) {
				buf[k] = idx[a]
				a++
			} else {
				buf[k] = idx[b]
				b++
			}
			k++
		}
		copy(idx[lo:hi], buf[lo:hi])

		strip = strip[:0]
		for _, p := range idx[lo:hi] {
			dx := points[p].X - midX
			if dx*dx >= best {
				continue
			}
			for s := len(strip) - 1; s >= 0; s-- {
				dy := points[p].Y - points[strip[s]].Y
				if dy*dy >= best {
					break
				}
				update(strip[s], p)
			}
			strip = append(strip, p)
		}
	}
	solve(0, n)

	if i > j {
		i, j = j, i
	}

	return i, j, best, nil
}

// ConvexHull returns the vertices of the convex hull of points in
// counterclockwise order, starting from the lowest point with the
// smallest x. Points on hull edges but not at corners are omitted, as are
// duplicates. Fewer than 3 distinct points are returned as-is, sorted.
//
// Andrew's algorithm: sort by (x, y), then build the lower and upper
// hulls, popping the last point while it does not make a left turn.
// Complexity: O(n log n).
func ConvexHull(points []Point) []Point {
	ps := append([]Point(nil), points...)
	sort.Slice(ps, func(a, b int) bool {
		if ps[a].X != ps[b].X {
			return ps[a].X < ps[b].X
		}

		return ps[a].Y < ps[b].Y
	})
	uniq := ps[:0]
	for k, p := range ps {
		if k == 0 || p != ps[k-1] {
			uniq = append(uniq, p)
		}
	}
	ps = uniq
	if len(ps) < 3 {
		return ps
	}

	hull := make([]Point, 0, 2*len(ps))
	for _, p := range ps {
		for len(hull) >= 2 && Cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for k := len(ps) - 2; k >= 0; k-- {
		p := ps[k]
		for len(hull) >= lower && Cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	hull = hull[:len(hull)-1]

	// Start from the lowest point (smallest x among ties).
	start := 0
	for k, p := range hull {
		if p.Y < hull[start].Y || (p.Y == hull[start].Y && p.X < hull[start].X) {
			start = k
		}
	}

	out := make([]Point, 0, len(hull))
	out = append(out, hull[start:]...)

	return append(out, hull[:start]...)
}

type sweepEvent struct {
	x    int64
	kind int // 0: horizontal starts, 1: vertical query, 2: horizontal ends
	y    int64
	y2   int64
}

// CountIntersections returns the number of intersection points between
// the horizontal and the vertical segments. Segments sharing only an
// endpoint count; segments within one group are assumed not to overlap.
//
// A sweep line moves along x. An active horizontal segment contributes its
// y to a Fenwick tree over compressed y coordinates, and each vertical
// segment counts the active ys within its range. At equal x, starts are
// processed before queries and queries before ends.
//
// Returns ErrNotAxisAligned if a horizontal segment is not horizontal or
// a vertical one is not vertical.
// Complexity: O((h + v) log(h + v)).
func CountIntersections(horizontal, vertical []Segment) (int64, error) {
	events := make([]sweepEvent, 0, 2*len(horizontal)+len(vertical))
	ys := make([]int64, 0, len(horizontal))
	for k, s := range horizontal {
		if s.A.Y != s.B.Y {
			return 0, fmt.Errorf("%w: horizontal[%d]", ErrNotAxisAligned, k)
		}
		x1, x2 := min(s.A.X, s.B.X), max(s.A.X, s.B.X)
		events = append(events,
			sweepEvent{x: x1, kind: 0, y: s.A.Y},
			sweepEvent{x: x2, kind: 2, y: s.A.Y},
		)
		ys = append(ys, s.A.Y)
	}
	for k, s := range vertical {
		if s.A.X != s.B.X {
			return 0, fmt.Errorf("%w: vertical[%d]", ErrNotAxisAligned, k)
		}
		events = append(events, sweepEvent{x: s.A.X, kind: 1, y: min(s.A.Y, s.B.Y), y2: max(s.A.Y, s.B.Y)})
	}
	if len(horizontal) == 0 || len(vertical) == 0 {
		return 0, nil
	}

	sort.Slice(ys, func(a, b int) bool { return ys[a] < ys[b] })
	uniq := ys[:0]
	for k, y := range ys {
		if k == 0 || y != ys[k-1] {
			uniq = append(uniq, y)
		}
	}
	ys = uniq
	rank := func(y int64) int { return sort.Search(len(ys), func(k int) bool { return ys[k] >= y }) }

	sort.Slice(events, func(a, b int) bool {
		if events[a].x != events[b].x {
			return events[a].x < events[b].x
		}

		return events[a].kind < events[b].kind
	})

	active, err := rangeq.NewFenwick(len(ys))
	if err != nil {
		return 0, err
	}
	var total int64
	for _, e := range events {
		switch e.kind {
		case 0, 2:
			delta := int64(1)
			if e.kind == 2 {
				delta = -1
			}
			if err := active.Add(rank(e.y), delta); err != nil {
				return 0, err
			}
		case 1:
			a, b := rank(e.y), rank(e.y2+1)-1
			if a > b {
				continue
			}
			c, err := active.RangeSum(a, b)
			if err != nil {
				return 0, err
			}
			total += c
		}
	}

	return total, nil
}
