package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cronut/pkg/errors"
	cronutio "github.com/matzehuels/cronut/pkg/io"
	"github.com/matzehuels/cronut/pkg/pipeline"
)

// stdoutPath selects standard output for a single-format render.
const stdoutPath = "-"

// renderFlags holds the raw command-line flags of the render command.
// List flags stay strings until they are parsed, so a request file value
// is only overridden when the flag was actually given.
type renderFlags struct {
	values      string
	inner       string
	colors      string
	kind        string
	radius      float64
	width       float64
	height      float64
	duration    time.Duration
	ease        string
	formats     string
	frames      int
	static      bool
	at          time.Duration
	scale       float64
	title       string
	output      string
	saveRequest string
	noCache     bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render [request.toml|request.json]",
		Short: "Render a donut chart to SVG, JSON, PNG or PDF",
		Long: `Render a donut chart.

The chart is described by flags, by a TOML or JSON request file, or both;
flags given on the command line override values from the file.

Examples:
  cronut render --values 1,5,2
  cronut render --values 3,1 --inner 1,1,1,1 --format svg,png -o split
  cronut render chart.toml --static --at 500ms

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			opts, err := f.options(cmd, input)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), input, opts, f)
		},
	}

	cmd.Flags().StringVar(&f.values, "values", "", "comma-separated values (outer ring of a double chart)")
	cmd.Flags().StringVar(&f.inner, "inner", "", "comma-separated inner ring values (makes a double chart)")
	cmd.Flags().StringVar(&f.colors, "colors", "", "comma-separated colors (hex, names or rgb(...)), cycled by value index")
	cmd.Flags().StringVar(&f.kind, "kind", "", "chart kind: single, double (inferred from --inner)")
	cmd.Flags().Float64Var(&f.radius, "radius", pipeline.DefaultRadiusRatio, "radius ratio in (0, 1]")
	cmd.Flags().Float64Var(&f.width, "width", pipeline.DefaultWidth, "chart width")
	cmd.Flags().Float64Var(&f.height, "height", pipeline.DefaultHeight, "chart height")
	cmd.Flags().DurationVar(&f.duration, "duration", pipeline.DefaultDuration, "entry animation length (0 means the 1s default; use --static for a still frame)")
	cmd.Flags().StringVar(&f.ease, "ease", pipeline.DefaultEase, "easing: linear, cubic")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), json, png, pdf (comma-separated)")
	cmd.Flags().IntVar(&f.frames, "frames", pipeline.DefaultFrames, "keyframe intervals per animation")
	cmd.Flags().BoolVar(&f.static, "static", false, "render a still frame instead of an animation")
	cmd.Flags().DurationVar(&f.at, "at", 0, "time of the still frame (implies --static; default end of animation)")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().StringVar(&f.title, "title", "", "SVG document title")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVar(&f.saveRequest, "save-request", "", "write the effective request to a .toml or .json file")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	registerRenderCompletions(cmd)

	return cmd
}

// options merges the request file at input (if any) with the flags that
// were set on the command line.
func (f *renderFlags) options(cmd *cobra.Command, input string) (pipeline.Options, error) {
	var opts pipeline.Options
	if input != "" {
		var err error
		if opts, err = cronutio.ImportRequest(input); err != nil {
			return opts, err
		}
	}

	changed := cmd.Flags().Changed
	var err error
	if changed("values") {
		if opts.Values, err = parseValues("values", f.values); err != nil {
			return opts, err
		}
	}
	if changed("inner") {
		if opts.Inner, err = parseValues("inner", f.inner); err != nil {
			return opts, err
		}
	}
	if changed("colors") {
		opts.Colors = parseColors(f.colors)
	}
	if changed("kind") {
		opts.Kind = f.kind
	}
	if changed("radius") {
		opts.RadiusRatio = f.radius
	}
	if changed("width") {
		opts.Width = f.width
	}
	if changed("height") {
		opts.Height = f.height
	}
	if changed("duration") {
		opts.DurationMS = f.duration.Milliseconds()
	}
	if changed("ease") {
		opts.Ease = f.ease
	}
	if changed("format") {
		opts.Formats = pipeline.ParseFormats(f.formats)
	}
	if changed("frames") {
		opts.Frames = f.frames
	}
	if changed("static") {
		opts.Static = f.static
	}
	if changed("at") {
		opts.Static = true
		opts.AtMS = f.at.Milliseconds()
	}
	if changed("scale") {
		opts.Scale = f.scale
	}
	if changed("title") {
		opts.Title = f.title
	}

	if len(opts.Values) == 0 && input == "" {
		return opts, errors.New(errors.ErrCodeInvalidInput, "no values: use --values or a request file")
	}
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return opts, err
	}
	return opts, nil
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, f renderFlags) error {
	logger := loggerFromContext(ctx)

	if f.saveRequest != "" {
		if err := cronutio.ExportRequest(opts, f.saveRequest); err != nil {
			return err
		}
		logger.Debugf("Saved request to %s", f.saveRequest)
	}

	formats := opts.Formats
	if len(formats) == 0 {
		formats = []string{pipeline.FormatSVG}
	}
	paths, err := outputPaths(f.output, input, formats)
	if err != nil {
		return err
	}
	toStdout := paths[formats[0]] == stdoutPath

	runner, err := c.newRunner(f.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = logger
	opts.SetDrawDefaults()
	st := startStage(logger, "render")

	var spinner *Spinner
	if !toStdout {
		spinner = newSpinner(ctx, os.Stderr, "Rendering chart...")
		spinner.Start()
	}
	result, err := runner.Execute(ctx, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if toStdout {
		_, err := c.Out.Write(result.Artifacts[formats[0]])
		return err
	}

	out := printer{c.Out}
	for _, format := range formats {
		if err := writeFile(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}
	st.done("kind", opts.Kind, "formats", len(formats), "cached", result.CacheInfo.RenderHit)

	out.success("Rendered %s donut", opts.Kind)
	out.stats(opts.Kind, len(opts.Values)+len(opts.Inner), result.CacheInfo.RenderHit)
	for _, format := range formats {
		out.file(paths[format])
	}
	return nil
}

// outputPaths maps each format to its output file.
//
// A single format with an --output that has an extension is written
// exactly there. Otherwise outputs are named <base>.<format>, where base is
// --output without a known format extension, the request file without its
// extension, or "cronut". An output never replaces the request file.
func outputPaths(output, input string, formats []string) (map[string]string, error) {
	paths := make(map[string]string, len(formats))

	if output == stdoutPath {
		if len(formats) != 1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--output - requires exactly one format")
		}
		paths[formats[0]] = stdoutPath
		return paths, nil
	}
	if output != "" && len(formats) == 1 && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths, nil
	}

	var base string
	switch {
	case output != "":
		base = stripFormatExt(output)
	case input != "":
		base = strings.TrimSuffix(input, filepath.Ext(input))
	default:
		base = defaultOutputBase
	}

	for _, format := range formats {
		path := base + "." + format
		if input != "" && filepath.Clean(path) == filepath.Clean(input) {
			path = base + ".chart." + format
		}
		paths[format] = path
	}
	return paths, nil
}

func stripFormatExt(path string) string {
	ext := filepath.Ext(path)
	if slices.Contains([]string{".svg", ".json", ".png", ".pdf"}, strings.ToLower(ext)) {
		return strings.TrimSuffix(path, ext)
	}
	return path
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
