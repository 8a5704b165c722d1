// Package render provides the drawable surface and animation model charts
// are built on.
//
// # Overview
//
// This package contains:
//
//   - [Node] and [Document]: an in-memory SVG element tree and a measurable
//     [Container] that charts append their subtrees to
//   - [Provider]: the injected collaborator supplying pie layout, arc
//     geometry, color scales, transitions and element ids
//   - [Transition], [Tween] and [Ease]: declarative attribute animation
//   - [Seek]: freezing a subtree at a point in its animation
//   - Generic format conversion (SVG to PDF/PNG)
//
// # Animation
//
// A transition says "interpolate attribute A with tween T over duration D".
// Nothing runs in the background: sinks either serialize transitions as
// SVG keyframe animations or freeze them with [Seek]:
//
//	t := p.Transition("transform", render.TranslateTween(0, 0, 42, 0))
//	t.ValueAt(500 * time.Millisecond) // "translate(21,0)"
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(doc)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// # Charts
//
// The [donut] subpackage draws single and double donut charts; the [sink]
// subpackage serializes documents.
//
// [donut]: github.com/matzehuels/cronut/pkg/render/donut
// [sink]: github.com/matzehuels/cronut/pkg/render/sink
package render
