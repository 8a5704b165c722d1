package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cronut/pkg/errors"
	"github.com/matzehuels/cronut/pkg/pipeline"
)

// Request file formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// FormatFromPath returns the request format for a file extension.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported request file extension %q (use .toml or .json)", ext)
	}
}

// ReadRequest decodes a chart request from r. Unknown keys are errors.
// ReadRequest does not close r.
func ReadRequest(r io.Reader, format string) (pipeline.Options, error) {
	var opts pipeline.Options

	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&opts)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidRequest, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return opts, errors.New(errors.ErrCodeInvalidRequest, "unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&opts); err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidRequest, err, "decode json")
		}
	default:
		return opts, errors.New(errors.ErrCodeInvalidFormat, "unsupported request format %q", format)
	}

	return opts, nil
}

// ImportRequest reads the request file at path.
func ImportRequest(path string) (pipeline.Options, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return pipeline.Options{}, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "request file %s not found", path)
	}
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	opts, err := ReadRequest(f, format)
	if err != nil {
		return opts, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// WriteRequest encodes a chart request to w. Runtime-only fields are
// omitted, so the output round-trips through [ReadRequest].
func WriteRequest(w io.Writer, opts pipeline.Options, format string) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(opts); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(opts); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported request format %q", format)
	}
	return nil
}

// ExportRequest writes a chart request to a file at path, in the format
// given by its extension.
func ExportRequest(opts pipeline.Options, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteRequest(f, opts, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
