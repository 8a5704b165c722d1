// Package chart provides the geometry behind donut charts.
//
// # Overview
//
// Everything in this package is pure computation with no drawing surface:
//
//   - [Proportions] normalizes magnitudes into shares of their total.
//   - [Pie] lays proportions out as contiguous angular [Slice] ranges,
//     largest first, each slice remembering its original index.
//   - [Arc] turns an angular range into an annular-wedge SVG path and
//     computes its centroid.
//   - [Ring] derives inner/outer radii from a container size.
//   - [Label] formats a proportion as a percentage label.
//   - [Ordinal] maps indices onto a cyclic color palette.
//
// # Angles
//
// Angles are in radians, measured clockwise from 12 o'clock, and the slices
// of one ring always partition [0, 2π):
//
//	p, err := chart.Proportions("values", []float64{1, 5, 2})
//	slices := chart.Pie(p)
//	// slices[0] is the 5 (index 1), then 2 (index 2), then 1 (index 0)
//
// # Rings
//
// Radii derive from r = ratio × min(width, height) / 2. A single donut
// spans 0.7r to r; a double donut has an outer ring at 0.8r to r and an
// inner ring at 0.55r to 0.7r:
//
//	r := chart.Radius(200, 100, 1) // 50
//	chart.SingleRing(r)            // {Inner: 35, Outer: 50}
package chart
