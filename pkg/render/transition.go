package render

import (
	"math"
	"time"

	"github.com/matzehuels/cronut/pkg/chart"
)

// Ease maps normalized time in [0, 1] to animation progress.
type Ease func(t float64) float64

// Linear progresses at a constant rate.
func Linear(t float64) float64 { return t }

// CubicInOut accelerates through the first half and decelerates through the
// second, the usual default of browser chart transitions.
func CubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// Eases maps ease names accepted in configuration to functions.
var Eases = map[string]Ease{
	"linear": Linear,
	"cubic":  CubicInOut,
}

// Tween produces an attribute value for animation progress t in [0, 1].
type Tween interface {
	At(t float64) string
}

// TweenFunc adapts a function to [Tween].
type TweenFunc func(t float64) string

// At implements [Tween].
func (f TweenFunc) At(t float64) string { return f(t) }

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// TranslateTween moves an element from (x0, y0) to (x1, y1).
func TranslateTween(x0, y0, x1, y1 float64) Tween {
	return TweenFunc(func(t float64) string {
		return Translate(Lerp(x0, x1, t), Lerp(y0, y1, t))
	})
}

// Translate formats an SVG translate transform.
func Translate(x, y float64) string {
	return "translate(" + chart.FormatNumber(x) + "," + chart.FormatNumber(y) + ")"
}

// Transition interpolates one attribute from its start to its end value
// over a fixed duration.
type Transition struct {
	Attr     string
	Tween    Tween
	Duration time.Duration
	Delay    time.Duration
	Ease     Ease
}

// Progress returns the eased progress at elapsed time since the transition
// was scheduled, clamped to [0, 1].
func (t *Transition) Progress(elapsed time.Duration) float64 {
	elapsed -= t.Delay
	var p float64
	switch {
	case elapsed <= 0:
		p = 0
	case t.Duration <= 0 || elapsed >= t.Duration:
		p = 1
	default:
		p = float64(elapsed) / float64(t.Duration)
	}
	ease := t.Ease
	if ease == nil {
		ease = Linear
	}
	return math.Max(0, math.Min(1, ease(p)))
}

// ValueAt returns the attribute value at elapsed time.
func (t *Transition) ValueAt(elapsed time.Duration) string {
	return t.Tween.At(t.Progress(elapsed))
}

// End returns the time at which the transition completes.
func (t *Transition) End() time.Duration { return t.Delay + t.Duration }

// Sample returns frames+1 values evenly spaced in time from start to end,
// suitable as animation keyframes.
func (t *Transition) Sample(frames int) []string {
	frames = max(frames, 1)
	out := make([]string, frames+1)
	for i := 0; i <= frames; i++ {
		elapsed := t.Delay + time.Duration(float64(t.Duration)*float64(i)/float64(frames))
		out[i] = t.ValueAt(elapsed)
	}
	return out
}

// Seek returns a copy of the subtree frozen at elapsed time: every
// transition's attribute is set to its value at that moment and the
// transitions are dropped.
func Seek(n *Node, elapsed time.Duration) *Node {
	c := n.Clone()
	c.Walk(func(x *Node) bool {
		for _, t := range x.Transitions {
			x.SetAttr(t.Attr, t.ValueAt(elapsed))
		}
		x.Transitions = nil
		return true
	})
	return c
}

// End returns the time at which every transition in the subtree has
// completed.
func End(n *Node) time.Duration {
	var end time.Duration
	n.Walk(func(x *Node) bool {
		for _, t := range x.Transitions {
			end = max(end, t.End())
		}
		return true
	})
	return end
}

// DocumentEnd returns the completion time of every chart in the document.
func DocumentEnd(d *Document) time.Duration {
	var end time.Duration
	for _, c := range d.Children() {
		end = max(end, End(c))
	}
	return end
}
