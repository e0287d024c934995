// Package scenario reads and writes engine requests as files, so runs can be
// replayed from disk. YAML, TOML, JSON and HCL are accepted; the format is
// chosen by file extension. Unknown keys are rejected in every format.
package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepgraph/internal/engine"
)

// Format names a scenario encoding.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
	HCL  Format = "hcl"
)

// ErrUnsupportedFormat is returned for unknown extensions or format names.
var ErrUnsupportedFormat = errors.New("scenario: unsupported format")

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	case ".hcl":
		return HCL, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Load reads one request from path.
func Load(path string) (*engine.Request, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	req, err := decode(src, f, path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}

	return req, nil
}

// Decode reads one request in format f from r.
func Decode(r io.Reader, f Format) (*engine.Request, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	req, err := decode(src, f, "scenario."+string(f))
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	return req, nil
}

func decode(src []byte, f Format, filename string) (*engine.Request, error) {
	var req engine.Request
	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(src))
		dec.KnownFields(true)
		if err := dec.Decode(&req); err != nil {
			return nil, err
		}

	case TOML:
		md, err := toml.Decode(string(src), &req)
		if err != nil {
			return nil, err
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return nil, fmt.Errorf("unknown keys %v", extra)
		}

	case JSON:
		dec := json.NewDecoder(bytes.NewReader(src))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return nil, err
		}

	case HCL:
		file, diags := hclparse.NewParser().ParseHCL(src, filename)
		if diags.HasErrors() {
			return nil, diags
		}
		if diags = gohcl.DecodeBody(file.Body, nil, &req); diags.HasErrors() {
			return nil, diags
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}

	return &req, nil
}

// WriteYAML encodes req as a YAML document.
func WriteYAML(w io.Writer, req *engine.Request) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(req); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	return enc.Close()
}
