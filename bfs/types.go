// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/path"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when the start id is not a node.
	ErrStartOutOfRange = fmt.Errorf("%w: bfs: start node out of range", core.ErrInvalidArgument)
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks that observe BFS execution.
// None of them can alter the traversal.
type Options struct {
	// OnStep receives every Step Trace line as it is recorded.
	OnStep func(line string)

	// OnEnqueue is called when a node is marked visited and enqueued.
	OnEnqueue func(id int)

	// OnDequeue is called when a node leaves the queue, before its
	// neighbors are scanned.
	OnDequeue func(id int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnStep:    nil,
		OnEnqueue: func(int) {},
		OnDequeue: func(int) {},
	}
}

// WithOnStep registers a callback for each recorded trace line.
func WithOnStep(fn func(line string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes in visit (dequeue) sequence.
//   - Depth: hop count from start, -1 for unreached nodes.
//   - Parent: BFS-tree predecessor, path.None for start and unreached nodes.
//   - Steps: the Step Trace.
type Result struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
	Steps  []string
}

// PathTo returns the fewest-hop path from the start node to dest,
// empty when dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	return path.Reconstruct(r.Parent, r.Start, dest)
}
