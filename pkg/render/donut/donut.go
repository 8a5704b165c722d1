package donut

import (
	"fmt"

	"github.com/matzehuels/cronut/pkg/chart"
	"github.com/matzehuels/cronut/pkg/errors"
	"github.com/matzehuels/cronut/pkg/render"
)

// Chart kinds.
const (
	KindSingle = "single"
	KindDouble = "double"
)

// Ring names, used in element ids and bound data.
const (
	RingSingle = "single"
	RingOuter  = "outer"
	RingInner  = "inner"
)

// Group classes per ring.
const (
	classSingle = "arc"
	classOuter  = "arc outerarc"
	classInner  = "arc innerarc"
)

// Chart is the datum bound to the root <svg> element of a chart.
type Chart struct {
	ID     string  `json:"id"`
	Kind   string  `json:"kind"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Radius float64 `json:"radius"`
}

// Datum is the datum bound to each slice group.
type Datum struct {
	Ring       string  `json:"ring"`
	Index      int     `json:"index"`
	Value      float64 `json:"value"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Color      string  `json:"color"`
	Label      string  `json:"label,omitempty"`
	Inner      float64 `json:"inner_radius"`
	Outer      float64 `json:"outer_radius"`
	CX         float64 `json:"cx"`
	CY         float64 `json:"cy"`
}

// Single draws one donut of values into c and returns the appended <svg>
// node. A nil provider selects [render.NewProvider].
func Single(p render.Provider, c render.Container, values []float64, opts Options) (*render.Node, error) {
	b, err := newBuilder(p, c, opts)
	if err != nil {
		return nil, err
	}
	props, err := chart.Proportions("values", values)
	if err != nil {
		return nil, err
	}

	root, g := b.root(KindSingle)
	b.ring(g, RingSingle, classSingle, chart.SingleRing(b.radius), props)

	c.AppendChild(root)
	return root, nil
}

// Double draws two concentric donuts into c, outer values on the outer
// ring and inner values on the inner ring, and returns the appended <svg>
// node. Each ring is normalized independently; both share one color scale.
func Double(p render.Provider, c render.Container, outer, inner []float64, opts Options) (*render.Node, error) {
	b, err := newBuilder(p, c, opts)
	if err != nil {
		return nil, err
	}
	outerProps, err := chart.Proportions("outer values", outer)
	if err != nil {
		return nil, err
	}
	innerProps, err := chart.Proportions("inner values", inner)
	if err != nil {
		return nil, err
	}

	root, g := b.root(KindDouble)
	b.ring(g, RingOuter, classOuter, chart.OuterRing(b.radius), outerProps)
	b.ring(g, RingInner, classInner, chart.InnerRing(b.radius), innerProps)

	c.AppendChild(root)
	return root, nil
}

type builder struct {
	p      render.Provider
	opts   Options
	colors *chart.Ordinal
	id     string
	width  float64
	height float64
	radius float64
}

func newBuilder(p render.Provider, c render.Container, opts Options) (*builder, error) {
	if c == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "container cannot be nil")
	}
	if p == nil {
		p = render.NewProvider()
	}

	w, h := c.Size()
	if err := errors.ValidateDimensions(w, h); err != nil {
		return nil, err
	}
	ratio, err := opts.radiusRatio()
	if err != nil {
		return nil, err
	}
	colors, err := p.Ordinal(opts.Colors)
	if err != nil {
		return nil, err
	}

	return &builder{
		p:      p,
		opts:   opts,
		colors: colors,
		id:     p.NewID(),
		width:  w,
		height: h,
		radius: chart.Radius(w, h, ratio),
	}, nil
}

func (b *builder) root(kind string) (svg, g *render.Node) {
	svg = render.NewNode("svg").
		SetAttr("id", b.id).
		SetAttr("width", chart.FormatNumber(b.width)).
		SetAttr("height", chart.FormatNumber(b.height)).
		Bind(Chart{ID: b.id, Kind: kind, Width: b.width, Height: b.height, Radius: b.radius})
	g = svg.Append("g").SetAttr("transform", render.Translate(b.width/2, b.height/2))
	return svg, g
}

func (b *builder) ring(parent *render.Node, name, class string, ring chart.Ring, props []float64) {
	arc := b.p.Arc(ring)
	for _, s := range b.p.Pie(props) {
		cx, cy := arc.SliceCentroid(s)
		d := Datum{
			Ring:       name,
			Index:      s.Index,
			Value:      s.Value,
			StartAngle: s.StartAngle,
			EndAngle:   s.EndAngle,
			Color:      b.colors.Color(s.Index),
			Label:      chart.Label(s.Value),
			Inner:      ring.Inner,
			Outer:      ring.Outer,
			CX:         cx,
			CY:         cy,
		}
		id := fmt.Sprintf("%s-%s-%d", b.id, name, s.Index)

		g := parent.Append("g").SetAttr("class", class).Bind(d)

		g.Append("path").
			SetAttr("id", id).
			SetAttr("d", arc.Path(0, 0)).
			SetStyle("fill", d.Color).
			AddTransition(b.opts.transition(b.p, "d", arcTween(arc, s)))

		g.Append("text").
			SetAttr("id", id+"-label").
			SetAttr("transform", render.Translate(0, 0)).
			SetAttr("dy", ".35em").
			SetText(d.Label).
			AddTransition(b.opts.transition(b.p, "transform", render.TranslateTween(0, 0, cx, cy)))
	}
}

// arcTween grows both angles of a slice from zero to their targets.
func arcTween(arc chart.Arc, s chart.Slice) render.Tween {
	return render.TweenFunc(func(t float64) string {
		return arc.Path(render.Lerp(0, s.StartAngle, t), render.Lerp(0, s.EndAngle, t))
	})
}
