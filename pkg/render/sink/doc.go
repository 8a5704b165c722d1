// Package sink provides output format renderers for chart documents.
//
// # Overview
//
// A "sink" transforms a [render.Document] into a final output format.
// This package provides renderers for:
//
//   - SVG: Vector output with SMIL entry animations
//   - JSON: Chart data export for external tools
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] writes the document with github.com/ajstarks/svgo. Each
// transition becomes an <animate> (or <animateTransform> for translations)
// element referencing its target by id, with keyframes sampled from the
// tween so easing is preserved:
//
//	svg := sink.RenderSVG(doc,
//	    sink.WithFrames(60),
//	    sink.WithTitle("Revenue by region"),
//	)
//
// [WithStatic] freezes the charts at a point in time instead, producing
// a plain SVG without animation elements.
//
// # JSON Output
//
// [RenderJSON] exports every chart's geometry and slices (ring, original
// index, proportion, angles, color, label, centroid).
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] generate a static SVG at the end of the
// animation, then convert it via [render.ToPDF] and [render.ToPNG]:
//
//	pdf, err := sink.RenderPDF(ctx, doc)
//	png, err := sink.RenderPNG(ctx, doc, sink.WithScale(2))
//
// These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [render.ToPDF]: github.com/matzehuels/cronut/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/cronut/pkg/render.ToPNG
package sink
