package cli

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/cronut/pkg/errors"
)

func TestParseValues(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"1,5,2", []float64{1, 5, 2}, false},
		{" 0.5 , 1e2 ", []float64{0.5, 100}, false},
		{"1,,2,", []float64{1, 2}, false},
		{"", nil, false},
		{"1,two", nil, true},
	}

	for _, tt := range tests {
		got, err := parseValues("values", tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseValues(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, errors.ErrCodeInvalidInput) || !strings.Contains(err.Error(), "--values") {
				t.Errorf("parseValues(%q) error should name the flag: %v", tt.in, err)
			}
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseValues(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseList(t *testing.T) {
	got := parseList(" steelblue, #ffb ,,")
	want := []string{"steelblue", "#ffb"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseList() = %v, want %v", got, want)
	}
}

func TestParseColors(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"#fff,steelblue", []string{"#fff", "steelblue"}},
		{"rgb(1,2,3)", []string{"rgb(1,2,3)"}},
		{"#8dd3c7, rgb(255, 0, 0) ,hsl(120,50%,50%)", []string{"#8dd3c7", "rgb(255, 0, 0)", "hsl(120,50%,50%)"}},
		{",,red,", []string{"red"}},
		{"", nil},
	}

	for _, tt := range tests {
		if got := parseColors(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseColors(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderFunctionalColor(t *testing.T) {
	out, err := runCLI(t, "render", "--values", "1,1", "--colors", "rgb(1,2,3),#ff0000", "-o", "-")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(out, "rgb(1,2,3)") {
		t.Errorf("SVG should keep the functional color whole:\n%s", out)
	}
	if strings.Contains(out, "fill:rgb(1;") || strings.Contains(out, "fill:3)") {
		t.Errorf("functional color was split:\n%s", out)
	}
}

func TestDurationFlagDocumentsZero(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	cmd, _, err := root.Find([]string{"render"})
	if err != nil {
		t.Fatal(err)
	}
	if usage := cmd.Flags().Lookup("duration").Usage; !strings.Contains(usage, "0 means") {
		t.Errorf("--duration usage %q should state what zero means", usage)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	for _, name := range []string{"render", "serve", "cache", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestCompletion(t *testing.T) {
	out, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, "cronut") {
		t.Error("bash completion should mention the command name")
	}
}

func TestRenderFlagCompletion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
		skip []string
	}{
		{"kind", []string{"__complete", "render", "--kind", ""}, []string{"single", "double"}, nil},
		{"ease", []string{"__complete", "render", "--ease", ""}, []string{"linear", "cubic"}, nil},
		{"format list", []string{"__complete", "render", "--format", "svg,"}, []string{"svg,json", "svg,png", "svg,pdf"}, []string{"svg,svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			if err != nil {
				t.Fatalf("completion error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("completion output %q missing %q", out, w)
				}
			}
			for _, s := range tt.skip {
				if strings.Contains(out, s) {
					t.Errorf("completion output %q should not offer %q", out, s)
				}
			}
		})
	}
}

func TestListCompletion(t *testing.T) {
	complete := listCompletion([]string{"json", "pdf", "png", "svg"})

	got, _ := complete(nil, nil, "png,sv")
	want := []string{"png,json", "png,pdf", "png,svg"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("listCompletion(png,sv) = %v, want %v", got, want)
	}

	got, _ = complete(nil, nil, "")
	if len(got) != 4 {
		t.Errorf("listCompletion(\"\") = %v, want all formats", got)
	}
}

func TestCacheDirXDG(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", custom)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(custom, appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}
