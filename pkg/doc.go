// Package pkg provides the core libraries for cronut animated donut charts.
//
// # Overview
//
// Cronut turns lists of non-negative numbers into animated ring charts: a
// single donut showing one proportion set, or a double donut with two
// concentric rings. Each slice's arc grows from zero and its percentage
// label travels from the center to the slice centroid. The pkg directory
// is organized into these areas:
//
//  1. [chart] - Pure geometry (proportions, pie layout, arcs, labels, colors)
//  2. [render] - Drawable tree, transitions, and the chart provider
//  3. [render/donut] - The single and double donut builders
//  4. [render/sink] - SVG, JSON, PNG and PDF output
//  5. [pipeline] - Orchestration (validate → draw → render) with caching
//
// # Architecture
//
//	values
//	   ↓
//	[chart] package (proportions + descending pie layout)
//	   ↓
//	[render/donut] package (nodes, ids, color, tweens)
//	   ↓
//	[render/sink] package (animated SVG / JSON / PNG / PDF)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/cronut/pkg/render"
//	    "github.com/matzehuels/cronut/pkg/render/donut"
//	    "github.com/matzehuels/cronut/pkg/render/sink"
//	)
//
//	doc := render.NewDocument(400, 400)
//	if _, err := donut.Single(nil, doc, []float64{1, 5, 2}, donut.Options{}); err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(doc)
//
// # Supporting Packages
//
// [cache] - Artifact caching with file, Redis and null backends.
//
// [io] - TOML and JSON chart request files.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hooks for pipeline, cache and HTTP metrics.
//
// [buildinfo] - Version information set at build time.
//
// [chart]: github.com/matzehuels/cronut/pkg/chart
// [render]: github.com/matzehuels/cronut/pkg/render
// [render/donut]: github.com/matzehuels/cronut/pkg/render/donut
// [render/sink]: github.com/matzehuels/cronut/pkg/render/sink
// [pipeline]: github.com/matzehuels/cronut/pkg/pipeline
// [cache]: github.com/matzehuels/cronut/pkg/cache
// [io]: github.com/matzehuels/cronut/pkg/io
// [errors]: github.com/matzehuels/cronut/pkg/errors
// [observability]: github.com/matzehuels/cronut/pkg/observability
// [buildinfo]: github.com/matzehuels/cronut/pkg/buildinfo
package pkg
