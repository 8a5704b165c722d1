package chart

import (
	"slices"

	"github.com/matzehuels/cronut/pkg/errors"
)

// Proportions returns each value's share of the total. The argument name is
// used in error messages.
//
// Empty input, negative or non-finite values and a zero total are rejected
// with an [errors.ErrCodeInvalidInput] error, so callers never see NaN
// proportions.
func Proportions(name string, values []float64) ([]float64, error) {
	if err := errors.ValidateValues(name, values); err != nil {
		return nil, err
	}

	// Scale by the largest value first so the total stays finite even when
	// the raw sum would overflow.
	peak := slices.Max(values)
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / peak
	}
	total := Sum(out)
	for i := range out {
		out[i] /= total
	}
	return out, nil
}

// Sum returns the sum of values.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
