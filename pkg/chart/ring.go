package chart

// Ring radii as fractions of the chart radius.
const (
	SingleInnerFraction = 0.7
	SingleOuterFraction = 1.0

	OuterRingInnerFraction = 0.8
	OuterRingOuterFraction = 1.0
	InnerRingInnerFraction = 0.55
	InnerRingOuterFraction = 0.7
)

// Ring is an annulus described by its two radii.
type Ring struct {
	Inner float64
	Outer float64
}

// Arc returns the wedge generator for the ring.
func (r Ring) Arc() Arc { return Arc{Inner: r.Inner, Outer: r.Outer} }

// Radius returns the chart radius for a container: ratio × min(w, h) / 2.
func Radius(width, height, ratio float64) float64 {
	return ratio * min(width, height) / 2
}

// SingleRing returns the ring of a single donut of radius r.
func SingleRing(r float64) Ring {
	return Ring{Inner: r * SingleInnerFraction, Outer: r * SingleOuterFraction}
}

// OuterRing returns the outer ring of a double donut of radius r.
func OuterRing(r float64) Ring {
	return Ring{Inner: r * OuterRingInnerFraction, Outer: r * OuterRingOuterFraction}
}

// InnerRing returns the inner ring of a double donut of radius r.
func InnerRing(r float64) Ring {
	return Ring{Inner: r * InnerRingInnerFraction, Outer: r * InnerRingOuterFraction}
}
