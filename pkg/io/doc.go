// Package io reads and writes chart request files.
//
// # Overview
//
// A request file holds the same fields as [pipeline.Options] and can be
// written in TOML or JSON; the format is chosen by file extension
// (.toml, .json). Unknown keys are rejected so typos surface as errors
// instead of silently falling back to defaults.
//
// # TOML Format
//
//	kind = "double"
//	values = [3, 1]
//	inner = [1, 1, 1, 1]
//	colors = ["#8dd3c7", "#fb8072"]
//	radius_ratio = 0.9
//	width = 300
//	height = 300
//	duration_ms = 1500
//	ease = "cubic"
//	formats = ["svg", "png"]
//
// # JSON Format
//
//	{
//	  "values": [1, 5, 2],
//	  "colors": ["steelblue", "#ffb"],
//	  "formats": ["svg"]
//	}
//
// The HTTP API accepts the JSON form as its request body.
//
// [pipeline.Options]: github.com/matzehuels/cronut/pkg/pipeline.Options
package io
