// Package pipeline provides the chart pipeline shared by the CLI and the
// HTTP API.
//
// The pipeline has two stages:
//
//  1. Draw: validate the request and build a [render.Document] holding one
//     single or double donut chart
//  2. Render: serialize the document in each requested format (SVG, JSON,
//     PNG, PDF)
//
// A [Runner] wraps both stages with an artifact cache, observability hooks
// and logging.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Values:  []float64{1, 5, 2},
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"encoding/json"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cronut/pkg/cache"
	"github.com/matzehuels/cronut/pkg/errors"
	"github.com/matzehuels/cronut/pkg/render"
	"github.com/matzehuels/cronut/pkg/render/donut"
	"github.com/matzehuels/cronut/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default document width in pixels.
	DefaultWidth = 400.0

	// DefaultHeight is the default document height in pixels.
	DefaultHeight = 400.0

	// DefaultRadiusRatio fills the document.
	DefaultRadiusRatio = donut.DefaultRadiusRatio

	// DefaultDuration is the default entry animation length.
	DefaultDuration = render.DefaultDuration

	// DefaultFrames is the default number of keyframe intervals per animation.
	DefaultFrames = sink.DefaultFrames

	// DefaultEase is the default easing name.
	DefaultEase = "linear"

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidKinds is the set of supported chart kinds.
var ValidKinds = map[string]bool{
	donut.KindSingle: true,
	donut.KindDouble: true,
}

// ContentTypes maps formats to MIME types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one chart request.
// This struct supports JSON and TOML serialization for API requests and
// request files.
type Options struct {
	// Chart options
	Kind        string    `json:"kind,omitempty" toml:"kind,omitempty"` // single or double; inferred from Inner when empty
	Values      []float64 `json:"values" toml:"values"`                 // outer ring for double charts
	Inner       []float64 `json:"inner,omitempty" toml:"inner,omitempty"`
	Colors      []string  `json:"colors,omitempty" toml:"colors,omitempty"`
	RadiusRatio float64   `json:"radius_ratio,omitempty" toml:"radius_ratio,omitempty"`
	Width       float64   `json:"width,omitempty" toml:"width,omitempty"`
	Height      float64   `json:"height,omitempty" toml:"height,omitempty"`

	// Animation options
	DurationMS int64  `json:"duration_ms,omitempty" toml:"duration_ms,omitempty"` // zero means DefaultDuration; use Static for no animation
	Ease       string `json:"ease,omitempty" toml:"ease,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty" toml:"formats,omitempty"`
	Frames  int      `json:"frames,omitempty" toml:"frames,omitempty"`
	Static  bool     `json:"static,omitempty" toml:"static,omitempty"`
	AtMS    int64    `json:"at_ms,omitempty" toml:"at_ms,omitempty"` // static frame time; zero means the end of the animation
	Scale   float64  `json:"scale,omitempty" toml:"scale,omitempty"`
	Title   string   `json:"title,omitempty" toml:"title,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger     `json:"-" toml:"-"`
	Provider render.Provider `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the drawn document. It is nil when every artifact came
	// from the cache.
	Document *render.Document

	// RequestHash is the content hash of the chart request.
	RequestHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Slices     int
	DrawTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateKind checks that a chart kind is valid.
func ValidateKind(kind string) error {
	if !ValidKinds[kind] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid kind: %q (must be one of: single, double)", kind)
	}
	return nil
}

// ValidateEase checks that an easing name is known.
func ValidateEase(name string) error {
	if _, ok := render.Eases[name]; !ok {
		return errors.New(errors.ErrCodeInvalidInput, "invalid ease: %q (must be one of: linear, cubic)", name)
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the request and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
// Value arrays and colors are validated when the chart is drawn.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDrawDefaults()
	o.SetRenderDefaults()

	if err := ValidateKind(o.Kind); err != nil {
		return err
	}
	if o.Kind == donut.KindSingle && len(o.Inner) > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "inner values require kind %q", donut.KindDouble)
	}
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if err := errors.ValidateRadiusRatio(o.RadiusRatio); err != nil {
		return err
	}
	if err := ValidateEase(o.Ease); err != nil {
		return err
	}
	if o.DurationMS < 0 || o.AtMS < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "durations cannot be negative")
	}
	if o.Frames < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "frames cannot be negative")
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale cannot be negative")
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// SetDrawDefaults sets default values for drawing.
func (o *Options) SetDrawDefaults() {
	if o.Kind == "" {
		o.Kind = donut.KindSingle
		if len(o.Inner) > 0 {
			o.Kind = donut.KindDouble
		}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.RadiusRatio == 0 {
		o.RadiusRatio = DefaultRadiusRatio
	}
	// An omitted duration and an explicit zero are indistinguishable in
	// request files, so both mean the default.
	if o.DurationMS == 0 {
		o.DurationMS = DefaultDuration.Milliseconds()
	}
	if o.Ease == "" {
		o.Ease = DefaultEase
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Frames == 0 {
		o.Frames = DefaultFrames
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// IsDouble returns true if this is a double donut.
func (o *Options) IsDouble() bool {
	return o.Kind == donut.KindDouble
}

// Duration returns the animation duration.
func (o *Options) Duration() time.Duration {
	return time.Duration(o.DurationMS) * time.Millisecond
}

// Hash returns the content hash of the chart-affecting fields. Render
// options are excluded; they are part of each artifact's cache key.
func (o *Options) Hash() string {
	data, _ := json.Marshal(struct {
		Kind        string    `json:"kind"`
		Values      []float64 `json:"values"`
		Inner       []float64 `json:"inner"`
		Colors      []string  `json:"colors"`
		RadiusRatio float64   `json:"radius_ratio"`
		Width       float64   `json:"width"`
		Height      float64   `json:"height"`
		DurationMS  int64     `json:"duration_ms"`
		Ease        string    `json:"ease"`
	}{o.Kind, o.Values, o.Inner, o.Colors, o.RadiusRatio, o.Width, o.Height, o.DurationMS, o.Ease})
	return cache.Hash(data)
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format: format,
		Title:  o.Title,
	}
	switch format {
	case FormatSVG:
		k.Frames = o.Frames
		k.Static = o.Static
		k.AtMS = o.AtMS
	case FormatPNG:
		k.AtMS = o.AtMS
		k.Scale = o.Scale
	case FormatPDF:
		k.AtMS = o.AtMS
	case FormatJSON:
		k.Title = ""
	}
	return k
}
