package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cronut/pkg/cache"
	"github.com/matzehuels/cronut/pkg/errors"
	"github.com/matzehuels/cronut/pkg/observability"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateKind(t *testing.T) {
	tests := []struct {
		kind    string
		wantErr bool
	}{
		{"single", false},
		{"double", false},
		{"triple", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateKind(tt.kind)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateKind(%q) error = %v, wantErr %v", tt.kind, err, tt.wantErr)
		}
	}
}

func TestParseFormats(t *testing.T) {
	got := ParseFormats(" svg, PNG ,,svg,json")
	want := []string{"svg", "png", "json"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("ParseFormats() = %v, want %v", got, want)
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	o := Options{Values: []float64{1, 2}}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if o.Kind != "single" || o.Width != DefaultWidth || o.Height != DefaultHeight {
		t.Errorf("defaults not applied: %+v", o)
	}
	if o.Duration() != DefaultDuration || o.Ease != DefaultEase || o.Frames != DefaultFrames {
		t.Errorf("animation defaults not applied: %+v", o)
	}
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", o.Formats)
	}

	d := Options{Values: []float64{1}, Inner: []float64{1}}
	if err := d.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if !d.IsDouble() {
		t.Error("inner values should select a double chart")
	}
}

func TestZeroDurationMeansDefault(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want time.Duration
	}{
		{"zero", 0, DefaultDuration},
		{"explicit", 250, 250 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Options{Values: []float64{1}, DurationMS: tt.ms}
			if err := o.ValidateAndSetDefaults(); err != nil {
				t.Fatal(err)
			}
			if got := o.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"kind", Options{Kind: "triple"}, errors.ErrCodeInvalidInput},
		{"inner on single", Options{Kind: "single", Inner: []float64{1}}, errors.ErrCodeInvalidInput},
		{"ratio", Options{RadiusRatio: 2}, errors.ErrCodeInvalidInput},
		{"width", Options{Width: -1}, errors.ErrCodeInvalidInput},
		{"ease", Options{Ease: "bounce"}, errors.ErrCodeInvalidInput},
		{"frames", Options{Frames: -1}, errors.ErrCodeInvalidInput},
		{"format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestHashIgnoresRenderOptions(t *testing.T) {
	a := Options{Values: []float64{1, 2}, Formats: []string{"svg"}}
	b := Options{Values: []float64{1, 2}, Formats: []string{"json"}, Frames: 60}
	c := Options{Values: []float64{2, 1}}
	for _, o := range []*Options{&a, &b, &c} {
		if err := o.ValidateAndSetDefaults(); err != nil {
			t.Fatal(err)
		}
	}
	if a.Hash() != b.Hash() {
		t.Error("render options should not change the request hash")
	}
	if a.Hash() == c.Hash() {
		t.Error("different values should change the request hash")
	}
}

func TestDrawInvalidValues(t *testing.T) {
	_, err := Draw(context.Background(), Options{Values: []float64{0, 0, 0}})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Draw() error = %v, want INVALID_INPUT", err)
	}
}

func TestDrawDeterministicIDs(t *testing.T) {
	opts := Options{Values: []float64{1, 5, 2}}
	a, err := Draw(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Draw(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	idA, idB := a.Children()[0].ID(), b.Children()[0].ID()
	if idA != idB || !strings.HasPrefix(idA, "cronut-") {
		t.Errorf("ids = %q, %q, want equal cronut- ids", idA, idB)
	}
}

func TestRunnerExecute(t *testing.T) {
	var logs bytes.Buffer
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, log.New(&logs))
	defer r.Close()

	opts := Options{
		Values:  []float64{3, 1},
		Inner:   []float64{1, 1, 1, 1},
		Formats: []string{FormatSVG, FormatJSON},
	}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run should not hit the cache")
	}
	if first.Document == nil || len(first.Document.Children()) != 1 {
		t.Error("first run should draw one chart")
	}
	if first.Stats.Slices != 6 {
		t.Errorf("Stats.Slices = %d, want 6", first.Stats.Slices)
	}
	if !bytes.Contains(first.Artifacts[FormatSVG], []byte("<animate ")) {
		t.Error("SVG artifact should be animated")
	}

	var out struct {
		Charts []struct {
			Kind   string `json:"kind"`
			Slices []struct {
				Ring  string  `json:"ring"`
				Value float64 `json:"value"`
			} `json:"slices"`
		} `json:"charts"`
	}
	if err := json.Unmarshal(first.Artifacts[FormatJSON], &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Charts) != 1 || out.Charts[0].Kind != "double" || len(out.Charts[0].Slices) != 6 {
		t.Errorf("JSON artifact = %+v", out)
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.RenderHit || second.Document != nil {
		t.Error("second run should be served from the cache")
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached SVG should match the rendered one")
	}
	if !strings.Contains(logs.String(), "drew chart") {
		t.Errorf("expected draw log, got %q", logs.String())
	}
}

func TestRunnerStaticSVG(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), Options{
		Values:     []float64{1, 1},
		Static:     true,
		AtMS:       500,
		DurationMS: 2000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(res.Artifacts[FormatSVG], []byte("<animate")) {
		t.Error("static SVG should not be animated")
	}
}

func TestRunnerInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), Options{Values: []float64{}})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Execute() error = %v, want INVALID_INPUT", err)
	}
	if !strings.Contains(errors.UserMessage(err), "values cannot be empty") {
		t.Errorf("UserMessage = %q", errors.UserMessage(err))
	}
}

type countingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks
	draws, renders, hits, misses, sets int
}

func (h *countingHooks) OnDrawComplete(context.Context, string, time.Duration, error) { h.draws++ }
func (h *countingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.renders++
}
func (h *countingHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *countingHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestRunnerHooks(t *testing.T) {
	h := &countingHooks{}
	defer observability.Install(observability.Hooks{Pipeline: h, Cache: h})()

	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	opts := Options{Values: []float64{1, 2}}

	for i := 0; i < 2; i++ {
		if _, err := r.Execute(context.Background(), opts); err != nil {
			t.Fatal(err)
		}
	}

	if h.draws != 1 || h.renders != 1 {
		t.Errorf("draws = %d, renders = %d, want 1 each", h.draws, h.renders)
	}
	if h.misses != 1 || h.sets != 1 || h.hits != 1 {
		t.Errorf("misses = %d, sets = %d, hits = %d, want 1 each", h.misses, h.sets, h.hits)
	}
}
