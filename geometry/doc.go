// SPDX-License-Identifier: MIT

// Package geometry implements exact integer computational geometry:
// cross products and turns, segment intersection, point location in
// polygons, the shoelace formula, Pick's theorem and sweep-line
// algorithms (closest pair, convex hull, axis-aligned intersections).
//
// Coordinates are int64 and every predicate is exact. Cross products
// multiply coordinate differences, so coordinates must stay within about
// ±1e9 for intermediate values to fit in int64.
package geometry
