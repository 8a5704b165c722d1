package donut

import (
	"time"

	"github.com/matzehuels/cronut/pkg/errors"
	"github.com/matzehuels/cronut/pkg/render"
)

// DefaultRadiusRatio scales the chart to fill the container.
const DefaultRadiusRatio = 1.0

// Options holds the optional chart parameters. The zero value draws with
// the default palette, a full-size radius and the provider's animation
// defaults.
type Options struct {
	// Colors is the ordinal palette, cycled when shorter than the values.
	// Empty selects chart.Set3.
	Colors []string

	// RadiusRatio scales the radius min(w, h)/2. Zero selects
	// DefaultRadiusRatio; other values must lie in (0, 1].
	RadiusRatio float64

	// Duration overrides the provider's transition duration when positive.
	Duration time.Duration

	// Ease overrides the provider's easing when non-nil.
	Ease render.Ease
}

func (o Options) radiusRatio() (float64, error) {
	if o.RadiusRatio == 0 {
		return DefaultRadiusRatio, nil
	}
	if err := errors.ValidateRadiusRatio(o.RadiusRatio); err != nil {
		return 0, err
	}
	return o.RadiusRatio, nil
}

func (o Options) transition(p render.Provider, attr string, tween render.Tween) *render.Transition {
	t := p.Transition(attr, tween)
	if o.Duration > 0 {
		t.Duration = o.Duration
	}
	if o.Ease != nil {
		t.Ease = o.Ease
	}
	return t
}
