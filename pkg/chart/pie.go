package chart

import (
	"cmp"
	"math"
	"slices"
)

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Slice is one angular range of a ring.
type Slice struct {
	Index      int     // Position in the input sequence (drives color lookup)
	Value      float64 // Proportion in [0, 1]
	StartAngle float64 // Radians, clockwise from 12 o'clock
	EndAngle   float64 // Radians, clockwise from 12 o'clock
}

// Angle returns the angular extent of the slice.
func (s Slice) Angle() float64 { return s.EndAngle - s.StartAngle }

// MidAngle returns the angle halfway through the slice.
func (s Slice) MidAngle() float64 { return (s.StartAngle + s.EndAngle) / 2 }

// Pie lays values out around a full turn, largest value first. Ties keep
// their input order. The returned slices are in angular order, and the last
// slice ends at exactly [Tau] so that the slices partition [0, 2π).
//
// Values are typically proportions from [Proportions], but any non-negative
// magnitudes with a positive sum work: angles are scaled by their total.
func Pie(values []float64) []Slice {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(values[b], values[a])
	})

	total := Sum(values)
	k := 0.0
	if total > 0 {
		k = Tau / total
	}

	out := make([]Slice, len(values))
	a0 := 0.0
	for pos, i := range order {
		a1 := a0
		if values[i] > 0 {
			a1 = a0 + values[i]*k
		}
		if pos == len(order)-1 && total > 0 {
			a1 = Tau
		}
		out[pos] = Slice{
			Index:      i,
			Value:      values[i],
			StartAngle: a0,
			EndAngle:   min(a1, Tau),
		}
		a0 = out[pos].EndAngle
	}
	return out
}

// ByIndex returns the slices reordered by their original index.
func ByIndex(s []Slice) []Slice {
	out := slices.Clone(s)
	slices.SortFunc(out, func(a, b Slice) int { return cmp.Compare(a.Index, b.Index) })
	return out
}
