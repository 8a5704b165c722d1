package chart

import (
	"math"
	"strconv"
	"strings"
)

const epsilon = 1e-12

// Arc generates annular wedges between two radii.
type Arc struct {
	Inner float64
	Outer float64
}

// Path returns the SVG path data for the wedge between start and end
// (radians, clockwise from 12 o'clock), centered on the origin.
//
// A zero-width wedge keeps the same command structure as a regular one so
// that keyframed path animations interpolate cleanly from it.
func (a Arc) Path(start, end float64) string {
	r0, r1 := max(a.Inner, 0), max(a.Outer, 0)
	if r0 > r1 {
		r0, r1 = r1, r0
	}

	var b strings.Builder
	if r1 <= epsilon {
		b.WriteString("M0,0Z")
		return b.String()
	}

	a0, a1 := start-math.Pi/2, end-math.Pi/2
	da := math.Abs(a1 - a0)
	cw := a1 >= a0
	sweep, rsweep := flag(cw), flag(!cw)

	if da > Tau-1e-6 {
		b.WriteString("M")
		point(&b, r1, a0)
		circle(&b, r1, a0, sweep)
		if r0 > epsilon {
			b.WriteString("M")
			point(&b, r0, a1)
			circle(&b, r0, a1, rsweep)
		}
		b.WriteString("Z")
		return b.String()
	}

	large := flag(da > math.Pi)
	b.WriteString("M")
	point(&b, r1, a0)
	b.WriteString("A")
	b.WriteString(num(r1) + "," + num(r1) + ",0," + large + "," + sweep + ",")
	point(&b, r1, a1)
	if r0 > epsilon {
		b.WriteString("L")
		point(&b, r0, a1)
		b.WriteString("A")
		b.WriteString(num(r0) + "," + num(r0) + ",0," + large + "," + rsweep + ",")
		point(&b, r0, a0)
	} else {
		b.WriteString("L0,0")
	}
	b.WriteString("Z")
	return b.String()
}

// SlicePath returns the path for a pie slice.
func (a Arc) SlicePath(s Slice) string { return a.Path(s.StartAngle, s.EndAngle) }

// Centroid returns the point midway between the radii and the angles of the
// wedge, used for label placement.
func (a Arc) Centroid(start, end float64) (x, y float64) {
	r := (a.Inner + a.Outer) / 2
	t := (start+end)/2 - math.Pi/2
	return math.Cos(t) * r, math.Sin(t) * r
}

// SliceCentroid returns the centroid of a pie slice.
func (a Arc) SliceCentroid(s Slice) (x, y float64) { return a.Centroid(s.StartAngle, s.EndAngle) }

// circle writes a full circle of radius r starting and ending at angle t as
// two half arcs. The caller has already moved to the start point.
func circle(b *strings.Builder, r, t float64, sweep string) {
	head := "A" + num(r) + "," + num(r) + ",0,1," + sweep + ","
	b.WriteString(head)
	point(b, r, t+math.Pi)
	b.WriteString(head)
	point(b, r, t)
}

func point(b *strings.Builder, r, t float64) {
	b.WriteString(num(r * math.Cos(t)))
	b.WriteString(",")
	b.WriteString(num(r * math.Sin(t)))
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// num formats a coordinate with at most six decimals and no negative zero.
func num(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatNumber formats a coordinate the way paths and transforms expect it.
func FormatNumber(v float64) string { return num(v) }
