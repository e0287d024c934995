// Package dfs defines types and options for depth-first search traversal.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/path"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates that the start id is not a node.
	ErrStartOutOfRange = fmt.Errorf("%w: dfs: start node out of range", core.ErrInvalidArgument)
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*Options)

// Options holds observational hooks for DFS traversal.
type Options struct {
	// OnStep receives every Step Trace line as it is recorded.
	OnStep func(line string)

	// OnVisit, if non-nil, is invoked when a node is first reached (pre-order),
	// with its depth in the DFS tree.
	OnVisit func(id, depth int)
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{}
}

// WithOnStep installs fn as the trace line observer.
func WithOnStep(fn func(line string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is the outcome of a single-source DFS.
type Result struct {
	// Start is the root of the DFS tree.
	Start int

	// Order lists nodes in pre-order (first arrival).
	Order []int

	// Depth is each node's depth in the DFS tree, -1 when unreached.
	Depth []int

	// Parent is each node's DFS-tree parent, path.None for the root and
	// unreached nodes.
	Parent []int

	// Steps is the Step Trace.
	Steps []string
}

// PathTo returns the DFS-tree path from Start to dest (not necessarily the
// shortest), empty when dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	return path.Reconstruct(r.Parent, r.Start, dest)
}
