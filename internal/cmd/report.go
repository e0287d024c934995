package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepgraph/internal/engine"
	"github.com/katalvlaran/stepgraph/internal/render"
	"github.com/katalvlaran/stepgraph/path"
	"github.com/katalvlaran/stepgraph/trace"
)

// report is the machine-readable form of one run.
type report struct {
	Source        string   `json:"source" yaml:"source"`
	Algorithm     string   `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Error         string   `json:"error,omitempty" yaml:"error,omitempty"`
	Steps         []string `json:"steps,omitempty" yaml:"steps,omitempty"`
	Order         []int    `json:"order,omitempty" yaml:"order,omitempty"`
	Path          []int    `json:"path,omitempty" yaml:"path,omitempty"`
	Dist          []*int64 `json:"dist,omitempty" yaml:"dist,omitempty"`
	Cost          *int64   `json:"cost,omitempty" yaml:"cost,omitempty"`
	NegativeCycle bool     `json:"negative_cycle,omitempty" yaml:"negative_cycle,omitempty"`
	Diagram       string   `json:"diagram,omitempty" yaml:"diagram,omitempty"`
}

func newReport(source string, out *engine.Outcome, err error, diagram bool) report {
	r := report{Source: source}
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Algorithm = out.Algorithm.String()
	r.Steps, r.Order, r.Path = out.Steps, out.Order, out.Path
	r.NegativeCycle = out.NegativeCycle
	for _, d := range out.Dist {
		r.Dist = append(r.Dist, finite(d))
	}
	if !out.Algorithm.Traversal() {
		r.Cost = finite(out.Cost)
	}
	if diagram {
		r.Diagram = render.Outcome(out)
	}

	return r
}

func finite(v int64) *int64 {
	if v == path.Inf {
		return nil
	}

	return &v
}

// writeReports prints reports in format text, json or yaml.
func writeReports(w io.Writer, format string, reports []report) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		for i, r := range reports {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeText(w, r)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func writeText(w io.Writer, r report) {
	if r.Error != "" {
		fmt.Fprintf(w, "== %s ==\nError: %s\n", r.Source, r.Error)
		return
	}
	fmt.Fprintf(w, "== %s (%s) ==\n", r.Source, r.Algorithm)
	for _, line := range r.Steps {
		fmt.Fprintln(w, line)
	}

	switch {
	case r.Order != nil:
		fmt.Fprintf(w, "Visit order: %s\n", trace.Join(r.Order))
	case r.NegativeCycle:
		fmt.Fprintln(w, "Result: negative cycle detected")
	case len(r.Path) == 0:
		fmt.Fprintln(w, "Result: no path exists")
	default:
		fmt.Fprintf(w, "Path: %s (cost %d)\n", trace.Join(r.Path), *r.Cost)
	}
	if r.Diagram != "" {
		fmt.Fprint(w, r.Diagram)
	}
}
