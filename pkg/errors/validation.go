package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateValues checks a magnitude sequence before it is normalized into
// proportions. name identifies the argument in error messages
// (e.g. "values", "inner values").
//
// Validation rules:
//   - At least one value
//   - Every value finite and non-negative
//   - At least one positive value (a zero sum has no defined proportions)
//
// The sum itself is never formed, so values near the float64 limit whose
// total would overflow are accepted.
func ValidateValues(name string, values []float64) error {
	if len(values) == 0 {
		return New(ErrCodeInvalidInput, "%s cannot be empty", name)
	}

	positive := false
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidInput, "%s[%d] is not a finite number", name, i)
		}
		if v < 0 {
			return New(ErrCodeInvalidInput, "%s[%d] is negative (%g)", name, i, v)
		}
		positive = positive || v > 0
	}

	if !positive {
		return New(ErrCodeInvalidInput, "%s sum to zero", name)
	}
	return nil
}

// ValidateRadiusRatio checks that a radius ratio lies in (0, 1].
func ValidateRadiusRatio(ratio float64) error {
	if math.IsNaN(ratio) || ratio <= 0 || ratio > 1 {
		return New(ErrCodeInvalidInput, "radius ratio must be in (0, 1], got %g", ratio)
	}
	return nil
}

// ValidateDimensions checks that container dimensions are finite and
// non-negative. Zero is allowed and yields a zero-radius chart.
func ValidateDimensions(width, height float64) error {
	for _, d := range []float64{width, height} {
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return New(ErrCodeInvalidInput, "container dimensions must be finite and non-negative, got %gx%g", width, height)
		}
	}
	return nil
}

// ValidateColorToken checks that a color token is safe to embed in an SVG
// style attribute. Hex syntax is checked separately by the chart package.
func ValidateColorToken(token string) error {
	if token == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if len(token) > 64 {
		return New(ErrCodeInvalidColor, "color too long (max 64 characters)")
	}
	for _, r := range token {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidColor, "color contains invalid control characters")
		}
	}
	if strings.ContainsAny(token, `"'<>;&=`) {
		return New(ErrCodeInvalidColor, "color contains invalid characters: %q", token)
	}
	return nil
}
