package pipeline

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/cronut/pkg/observability"
	"github.com/matzehuels/cronut/pkg/render"
	"github.com/matzehuels/cronut/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, doc *render.Document, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := renderFormats(ctx, doc, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

// renderFormats renders every format concurrently. Sinks only read the
// document.
func renderFormats(ctx context.Context, doc *render.Document, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	rasterOpts := buildRasterSVGOptions(opts)
	outputs := make([][]byte, len(opts.Formats))

	g, gctx := errgroup.WithContext(ctx)
	for i, format := range opts.Formats {
		g.Go(func() error {
			var data []byte
			var err error

			switch format {
			case FormatSVG:
				data = sink.RenderSVG(doc, svgOpts...)
			case FormatPNG:
				data, err = sink.RenderPNG(gctx, doc, sink.WithScale(opts.Scale), sink.WithPNGSVGOptions(rasterOpts...))
			case FormatPDF:
				data, err = sink.RenderPDF(gctx, doc, sink.WithPDFSVGOptions(rasterOpts...))
			case FormatJSON:
				data, err = sink.RenderJSON(doc)
			default:
				err = fmt.Errorf("unsupported format: %s", format)
			}

			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			outputs[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for i, format := range opts.Formats {
		artifacts[format] = outputs[i]
	}
	return artifacts, nil
}

// buildSVGOptions builds options for animated or static SVG output.
func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithFrames(opts.Frames)}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	if opts.Static {
		svgOpts = append(svgOpts, sink.WithStatic(staticAt(opts)))
	}
	return svgOpts
}

// buildRasterSVGOptions builds options for the SVG handed to rsvg-convert.
// Raster sinks already freeze at the end of the animation.
func buildRasterSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	if opts.AtMS > 0 {
		svgOpts = append(svgOpts, sink.WithStatic(staticAt(opts)))
	}
	return svgOpts
}

func staticAt(opts Options) time.Duration {
	if opts.AtMS > 0 {
		return time.Duration(opts.AtMS) * time.Millisecond
	}
	return opts.Duration()
}
