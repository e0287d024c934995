package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/path"
)

// Sentinel errors for Dijkstra.
var (
	// ErrNilGraph indicates that the input graph pointer is nil.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartOutOfRange indicates that the start id is not a node.
	ErrStartOutOfRange = fmt.Errorf("%w: dijkstra: start node out of range", core.ErrInvalidArgument)
)

// Options configures a Dijkstra run. All fields are observational.
type Options struct {
	// OnStep receives every Step Trace line as it is recorded.
	OnStep func(line string)

	// OnRelax is called after dist[v] improves to d via u.
	OnRelax func(u, v int, d int64)
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithOnStep installs a trace line observer.
func WithOnStep(fn func(line string)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithOnRelax installs a relaxation observer.
func WithOnRelax(fn func(u, v int, d int64)) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// Result is the outcome of a Dijkstra run.
//
// The embedded Tree holds distances (path.Inf when unreachable) and
// predecessors (path.None for start and unreachable nodes).
type Result struct {
	path.Tree

	// Steps is the Step Trace.
	Steps []string

	// Examined counts nodes popped with a current (non-stale) distance.
	Examined int

	// Updates counts successful relaxations.
	Updates int
}
