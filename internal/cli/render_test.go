package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/cronut/pkg/errors"
	cronutio "github.com/matzehuels/cronut/pkg/io"
)

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	var out bytes.Buffer
	c.Out = &out
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestRenderFromFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "chart.svg")
	stdout, err := runCLI(t, "render", "--values", "1,5,2", "-o", path)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	svg := readFile(t, path)
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "<animate") {
		t.Error("output should be an animated SVG")
	}
	if !strings.Contains(stdout, path) {
		t.Errorf("status output should list %s, got %q", path, stdout)
	}
	if !strings.Contains(stdout, "3 slices") {
		t.Errorf("status output should count slices, got %q", stdout)
	}
}

func TestRenderFromRequestFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "split.toml")
	request := "values = [3, 1]\ninner = [1, 1, 1, 1]\nformats = [\"svg\", \"json\"]\n"
	if err := os.WriteFile(input, []byte(request), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, "render", input, "--no-cache"); err != nil {
		t.Fatalf("render error: %v", err)
	}

	if svg := readFile(t, filepath.Join(dir, "split.svg")); !strings.Contains(svg, "innerarc") {
		t.Error("double chart SVG should contain the inner ring")
	}
	var doc struct {
		Charts []struct {
			Kind   string            `json:"kind"`
			Slices []json.RawMessage `json:"slices"`
		} `json:"charts"`
	}
	if err := json.Unmarshal([]byte(readFile(t, filepath.Join(dir, "split.json"))), &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Charts) != 1 || doc.Charts[0].Kind != "double" || len(doc.Charts[0].Slices) != 6 {
		t.Errorf("json = %+v", doc)
	}
}

func TestRenderFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "chart.json")
	if err := os.WriteFile(input, []byte(`{"values": [1, 1], "colors": ["#ff0000"]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, err := runCLI(t, "render", input, "--values", "1,5,2", "--format", "json", "-o", "-")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if n := strings.Count(stdout, `"label"`); n != 3 {
		t.Errorf("expected 3 slices from --values, got %d in %s", n, stdout)
	}
	if !strings.Contains(stdout, "#ff0000") {
		t.Error("colors from the request file should be kept")
	}
}

func TestRenderSaveRequest(t *testing.T) {
	dir := t.TempDir()
	saved := filepath.Join(dir, "req.toml")
	_, err := runCLI(t, "render", "--values", "2,1", "--radius", "0.5", "--at", "250ms",
		"--save-request", saved, "-o", filepath.Join(dir, "c.svg"))
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	opts, err := cronutio.ImportRequest(saved)
	if err != nil {
		t.Fatalf("ImportRequest() error: %v", err)
	}
	if !reflect.DeepEqual(opts.Values, []float64{2, 1}) || opts.RadiusRatio != 0.5 {
		t.Errorf("saved request = %+v", opts)
	}
	if !opts.Static || opts.AtMS != 250 {
		t.Errorf("--at should imply a static frame at 250ms, got static=%v at=%d", opts.Static, opts.AtMS)
	}
	if svg := readFile(t, filepath.Join(dir, "c.svg")); strings.Contains(svg, "<animate") {
		t.Error("static SVG should not animate")
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"no values", []string{"render"}, errors.ErrCodeInvalidInput},
		{"bad number", []string{"render", "--values", "1,x"}, errors.ErrCodeInvalidInput},
		{"zero sum", []string{"render", "--values", "0,0", "-o", "-"}, errors.ErrCodeInvalidInput},
		{"bad format", []string{"render", "--values", "1", "--format", "gif"}, errors.ErrCodeInvalidFormat},
		{"stdout needs one format", []string{"render", "--values", "1", "--format", "svg,json", "-o", "-"}, errors.ErrCodeInvalidInput},
		{"missing file", []string{"render", "missing.toml"}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		input   string
		formats []string
		want    map[string]string
	}{
		{"default", "", "", []string{"svg"}, map[string]string{"svg": "cronut.svg"}},
		{"exact file", "out/pie.svg", "", []string{"svg"}, map[string]string{"svg": "out/pie.svg"}},
		{"base path", "out/pie", "", []string{"svg", "png"}, map[string]string{"svg": "out/pie.svg", "png": "out/pie.png"}},
		{"strip format ext", "pie.svg", "", []string{"svg", "pdf"}, map[string]string{"svg": "pie.svg", "pdf": "pie.pdf"}},
		{"from input", "", "charts/a.toml", []string{"svg"}, map[string]string{"svg": "charts/a.svg"}},
		{"never replace input", "", "a.json", []string{"json"}, map[string]string{"json": "a.chart.json"}},
		{"stdout", "-", "", []string{"json"}, map[string]string{"json": "-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := outputPaths(tt.output, tt.input, tt.formats)
			if err != nil {
				t.Fatalf("outputPaths() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("outputPaths() = %v, want %v", got, tt.want)
			}
		})
	}
}
