package render

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/cronut/pkg/chart"
)

// DefaultDuration is the length of chart entry animations.
const DefaultDuration = 1000 * time.Millisecond

// Provider supplies the geometry, color and animation primitives that
// charts are built from. Charts receive it explicitly so tests can swap in
// deterministic ids or timings.
type Provider interface {
	// Pie lays out values as descending, contiguous angular slices.
	Pie(values []float64) []chart.Slice
	// Arc returns the wedge generator for a ring.
	Arc(ring chart.Ring) chart.Arc
	// Ordinal returns a cyclic color scale over colors (default palette
	// when empty).
	Ordinal(colors []string) (*chart.Ordinal, error)
	// Transition schedules a tween of attr with the provider's defaults.
	Transition(attr string, tween Tween) *Transition
	// NewID returns a document-unique element id.
	NewID() string
}

// ProviderOption configures the default provider.
type ProviderOption func(*provider)

// WithDuration sets the default transition duration.
func WithDuration(d time.Duration) ProviderOption {
	return func(p *provider) { p.duration = d }
}

// WithEase sets the default transition easing.
func WithEase(e Ease) ProviderOption {
	return func(p *provider) { p.ease = e }
}

// WithIDs sets the element id generator.
func WithIDs(fn func() string) ProviderOption {
	return func(p *provider) { p.ids = fn }
}

type provider struct {
	duration time.Duration
	ease     Ease
	ids      func() string
}

// NewProvider returns the default provider: [chart.Pie] layout, annular
// arcs, [chart.Set3] colors, linear 1s transitions and UUID-based ids.
func NewProvider(opts ...ProviderOption) Provider {
	p := &provider{
		duration: DefaultDuration,
		ease:     Linear,
		ids:      func() string { return "cronut-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *provider) Pie(values []float64) []chart.Slice { return chart.Pie(values) }

func (p *provider) Arc(ring chart.Ring) chart.Arc { return ring.Arc() }

func (p *provider) Ordinal(colors []string) (*chart.Ordinal, error) {
	return chart.NewOrdinal(colors)
}

func (p *provider) Transition(attr string, tween Tween) *Transition {
	return &Transition{
		Attr:     attr,
		Tween:    tween,
		Duration: p.duration,
		Ease:     p.ease,
	}
}

func (p *provider) NewID() string { return p.ids() }

// SequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
// It is not safe for concurrent use.
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
