package sink

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"
	"slices"
	"strings"
	"time"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/cronut/pkg/chart"
	"github.com/matzehuels/cronut/pkg/render"
)

// DefaultFrames is the number of keyframe intervals sampled per transition.
const DefaultFrames = 30

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	frames int
	static bool
	at     time.Duration
	title  string
}

// WithFrames sets the number of keyframe intervals per animation. Values
// below one are ignored.
func WithFrames(n int) SVGOption {
	return func(r *svgRenderer) {
		if n > 0 {
			r.frames = n
		}
	}
}

// WithStatic freezes every chart at elapsed time at and omits animation
// elements.
func WithStatic(at time.Duration) SVGOption {
	return func(r *svgRenderer) { r.static = true; r.at = at }
}

// WithTitle adds a <title> to the document.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// RenderSVG serializes the document. Transitions become SMIL keyframe
// animations that play when the SVG is opened in a viewer.
func RenderSVG(doc *render.Document, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(px(doc.Width), px(doc.Height))
	if r.title != "" {
		canvas.Title(r.title)
	}

	for _, n := range doc.Children() {
		if r.static {
			n = render.Seek(n, r.at)
		}
		r.writeNode(canvas, n)
	}

	canvas.End()
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{frames: DefaultFrames}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *svgRenderer) writeNode(canvas *svg.SVG, n *render.Node) {
	attrs, animated := settle(n)

	switch n.Tag {
	case "g":
		canvas.Group(attrList(attrs, n)...)
		r.writeChildren(canvas, n)
		canvas.Gend()
	case "path":
		d, _ := lookup(attrs, "d")
		canvas.Path(d, attrList(without(attrs, "d"), n)...)
	case "text":
		canvas.Text(0, 0, n.Text, attrList(attrs, n)...)
	default:
		fmt.Fprintf(canvas.Writer, "<%s %s>\n", n.Tag, strings.Join(attrList(attrs, n), " "))
		if n.Text != "" {
			io.WriteString(canvas.Writer, html.EscapeString(n.Text))
		}
		r.writeChildren(canvas, n)
		fmt.Fprintf(canvas.Writer, "</%s>\n", n.Tag)
	}

	if len(animated) > 0 {
		r.writeAnimations(canvas.Writer, n.ID(), animated)
	}
}

func (r *svgRenderer) writeChildren(canvas *svg.SVG, n *render.Node) {
	for _, c := range n.Children {
		r.writeNode(canvas, c)
	}
}

// settle returns the attributes to write for n and the transitions that
// can be animated. Transitions on elements without an id, or with no
// duration, are written at their end value.
func settle(n *render.Node) ([]render.Attr, []*render.Transition) {
	if len(n.Transitions) == 0 {
		return n.Attrs, nil
	}
	frozen := &render.Node{Attrs: slices.Clone(n.Attrs)}
	var animated []*render.Transition
	for _, t := range n.Transitions {
		if n.ID() != "" && t.Duration > 0 {
			animated = append(animated, t)
			continue
		}
		frozen.SetAttr(t.Attr, t.ValueAt(t.End()))
	}
	return frozen.Attrs, animated
}

func (r *svgRenderer) writeAnimations(w io.Writer, id string, ts []*render.Transition) {
	for _, t := range ts {
		values := t.Sample(r.frames)
		timing := fmt.Sprintf(`dur="%s" begin="%s" fill="freeze"`, seconds(t.Duration), seconds(t.Delay))

		if coords, ok := translations(values); t.Attr == "transform" && ok {
			fmt.Fprintf(w, `<animateTransform xlink:href="#%s" attributeName="transform" type="translate" values="%s" %s />`+"\n",
				html.EscapeString(id), strings.Join(coords, ";"), timing)
			continue
		}
		fmt.Fprintf(w, `<animate xlink:href="#%s" attributeName="%s" values="%s" %s />`+"\n",
			html.EscapeString(id), html.EscapeString(t.Attr), html.EscapeString(strings.Join(values, ";")), timing)
	}
}

// translations strips "translate(...)" from each value, as expected by
// animateTransform.
func translations(values []string) ([]string, bool) {
	out := make([]string, len(values))
	for i, v := range values {
		inner, ok := strings.CutPrefix(v, "translate(")
		if !ok || !strings.HasSuffix(inner, ")") {
			return nil, false
		}
		out[i] = strings.TrimSuffix(inner, ")")
	}
	return out, true
}

// attrList formats attributes as name="value" pairs, the form svgo writes
// verbatim. Styles are folded into a style attribute.
func attrList(attrs []render.Attr, n *render.Node) []string {
	out := make([]string, 0, len(attrs)+1)
	for _, a := range attrs {
		out = append(out, fmt.Sprintf(`%s="%s"`, a.Name, html.EscapeString(a.Value)))
	}
	if s := n.StyleString(); s != "" {
		out = append(out, fmt.Sprintf(`style="%s"`, html.EscapeString(s)))
	}
	return out
}

func lookup(attrs []render.Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func without(attrs []render.Attr, name string) []render.Attr {
	return slices.DeleteFunc(slices.Clone(attrs), func(a render.Attr) bool { return a.Name == name })
}

func seconds(d time.Duration) string {
	return chart.FormatNumber(d.Seconds()) + "s"
}

func px(v float64) int {
	return int(math.Round(v))
}
