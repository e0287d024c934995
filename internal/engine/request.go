package engine

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/stepgraph/core"
)

// Request describes one run. Field names on the wire follow the HTTP payload:
// algorithm, num_nodes, edges ([[u, v, w], ...]), start, end, heuristic.
type Request struct {
	Algorithm string    `json:"algorithm" yaml:"algorithm" toml:"algorithm" hcl:"algorithm" validate:"required"`
	NodeCount int       `json:"num_nodes" yaml:"num_nodes" toml:"num_nodes" hcl:"num_nodes" validate:"gt=0"`
	Edges     [][]int64 `json:"edges" yaml:"edges" toml:"edges" hcl:"edges,optional" validate:"dive,len=3"`
	Start     int       `json:"start" yaml:"start" toml:"start" hcl:"start,optional" validate:"gte=0"`
	End       *int      `json:"end,omitempty" yaml:"end,omitempty" toml:"end,omitempty" hcl:"end,optional" validate:"omitempty,gte=0"`
	Heuristic []int64   `json:"heuristic,omitempty" yaml:"heuristic,omitempty" toml:"heuristic,omitempty" hcl:"heuristic,optional" validate:"omitempty,dive,gte=0"`
}

// ErrLimitExceeded reports a graph larger than the configured limits.
var ErrLimitExceeded = fmt.Errorf("%w: engine: size limit exceeded", core.ErrInvalidArgument)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	return v
}

// describeValidation flattens validator errors into one message.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", fe.Field(), rule))
	}

	return strings.Join(msgs, "; ")
}

// Limits bounds accepted graphs. Zero disables a bound.
type Limits struct {
	MaxNodes int
	MaxEdges int
}

// EndOrNone returns End, or -1 when unset.
func (r *Request) EndOrNone() int {
	if r.End == nil {
		return -1
	}

	return *r.End
}

// Validate checks r against lim and returns the parsed algorithm.
// Every failure wraps core.ErrInvalidArgument.
func (r *Request) Validate(lim Limits) (Algorithm, error) {
	if r == nil {
		return 0, fmt.Errorf("%w: engine: request is nil", core.ErrInvalidArgument)
	}
	if err := validate.Struct(r); err != nil {
		return 0, fmt.Errorf("%w: %s", core.ErrInvalidArgument, describeValidation(err))
	}
	alg, err := ParseAlgorithm(r.Algorithm)
	if err != nil {
		return 0, err
	}

	if lim.MaxNodes > 0 && r.NodeCount > lim.MaxNodes {
		return alg, fmt.Errorf("%w: num_nodes %d > %d", ErrLimitExceeded, r.NodeCount, lim.MaxNodes)
	}
	if lim.MaxEdges > 0 && len(r.Edges) > lim.MaxEdges {
		return alg, fmt.Errorf("%w: %d edges > %d", ErrLimitExceeded, len(r.Edges), lim.MaxEdges)
	}

	n := int64(r.NodeCount)
	for i, e := range r.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return alg, fmt.Errorf("%w: edge #%d (%d, %d): nodes must be between 0 and %d",
				core.ErrNodeOutOfRange, i+1, e[0], e[1], n-1)
		}
		if e[2] < 0 && !alg.AllowsNegativeWeights() {
			return alg, fmt.Errorf("%w: edge #%d has negative weight %d, not allowed for %s",
				core.ErrInvalidArgument, i+1, e[2], alg)
		}
	}

	if r.Start >= r.NodeCount {
		return alg, fmt.Errorf("%w: start %d must be between 0 and %d", core.ErrNodeOutOfRange, r.Start, r.NodeCount-1)
	}
	if alg.NeedsEnd() {
		if r.End == nil {
			return alg, fmt.Errorf("%w: end node is required for %s", core.ErrInvalidArgument, alg)
		}
		if *r.End >= r.NodeCount {
			return alg, fmt.Errorf("%w: end %d must be between 0 and %d", core.ErrNodeOutOfRange, *r.End, r.NodeCount-1)
		}
	}
	if alg.NeedsHeuristic() && len(r.Heuristic) != r.NodeCount {
		return alg, fmt.Errorf("%w: expected %d heuristic values, got %d",
			core.ErrInvalidArgument, r.NodeCount, len(r.Heuristic))
	}

	return alg, nil
}

// Graph builds the core.Graph described by r. Call Validate first.
func (r *Request) Graph() (*core.Graph, error) {
	edges := make([]core.Edge, len(r.Edges))
	for i, e := range r.Edges {
		edges[i] = core.Edge{U: int(e[0]), V: int(e[1]), Weight: e[2]}
	}

	return core.BuildGraph(r.NodeCount, edges)
}
