package chart

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/cronut/pkg/errors"
)

// Set3 is the default 12-color qualitative palette.
var Set3 = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072",
	"#80b1d3", "#fdb462", "#b3de69", "#fccde5",
	"#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
}

// Ordinal maps indices onto a palette, cycling when there are more indices
// than colors. The zero value uses [Set3].
type Ordinal struct {
	colors []string
}

// NewOrdinal validates colors and returns a scale over them. An empty
// palette selects [Set3].
func NewOrdinal(colors []string) (*Ordinal, error) {
	if len(colors) == 0 {
		return &Ordinal{colors: Set3}, nil
	}
	out := make([]string, len(colors))
	for i, c := range colors {
		parsed, err := ParseColor(c)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "colors[%d]", i)
		}
		out[i] = parsed
	}
	return &Ordinal{colors: out}, nil
}

// Color returns the color for index i.
func (o *Ordinal) Color(i int) string {
	colors := o.Range()
	i %= len(colors)
	if i < 0 {
		i += len(colors)
	}
	return colors[i]
}

// Range returns the palette backing the scale.
func (o *Ordinal) Range() []string {
	if o == nil || len(o.colors) == 0 {
		return Set3
	}
	return o.colors
}

// ParseColor validates a color token. Hex colors ("#abc", "#aabbcc") are
// normalized to lowercase six-digit form; other CSS color syntaxes are
// passed through after a safety check.
func ParseColor(token string) (string, error) {
	token = strings.TrimSpace(token)
	if err := errors.ValidateColorToken(token); err != nil {
		return "", err
	}
	if !strings.HasPrefix(token, "#") {
		return token, nil
	}
	c, err := colorful.Hex(token)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color %q", token)
	}
	return c.Hex(), nil
}
