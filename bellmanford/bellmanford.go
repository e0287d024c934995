package bellmanford

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/path"
	"github.com/katalvlaran/stepgraph/trace"
)

var (
	// ErrNilGraph indicates that the input graph pointer is nil.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrStartOutOfRange indicates that the start id is not a node.
	ErrStartOutOfRange = fmt.Errorf("%w: bellmanford: start node out of range", core.ErrInvalidArgument)

	// ErrNegativeCycle is returned when a negative-weight cycle is reachable
	// from the start node. It is not an invalid-argument error.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle detected")
)

// Options configures a Bellman-Ford run.
type Options struct {
	// OnStep receives every Step Trace line as it is recorded.
	OnStep func(line string)

	// OnPass is called at the start of each pass (1-based).
	OnPass func(pass int)
}

// Option is a functional option for BellmanFord.
type Option func(*Options)

// WithOnStep installs a trace line observer.
func WithOnStep(fn func(line string)) Option {
	return func(o *Options) { o.OnStep = fn }
}

// WithOnPass installs a pass observer.
func WithOnPass(fn func(pass int)) Option {
	return func(o *Options) { o.OnPass = fn }
}

// Result is the outcome of a Bellman-Ford run.
type Result struct {
	path.Tree

	// Steps is the Step Trace.
	Steps []string

	// Passes is the number of relaxation passes performed (n-1).
	Passes int

	// Updates counts successful relaxations.
	Updates int
}

// BellmanFord computes shortest distances from start over g.
//
// Errors:
//   - ErrNilGraph, ErrStartOutOfRange for invalid input (Result is nil).
//   - ErrNegativeCycle with a Result carrying only Steps.
func BellmanFord(g *core.Graph, start int, opts ...Option) (*Result, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %d must be between 0 and %d", ErrStartOutOfRange, start, g.NodeCount()-1)
	}

	n := g.NodeCount()
	edges := g.Edges()
	tr := trace.New(cfg.OnStep)
	res := &Result{Tree: path.NewTree(n, start)}
	dist, prev := res.Dist, res.Prev

	// relax tries a→b with weight w and records the update.
	relax := func(a, b int, w int64) {
		nd, ok := extend(dist[a], w)
		if !ok || nd >= dist[b] {
			return
		}
		dist[b] = nd
		prev[b] = a
		res.Updates++
		tr.Addf("  → update distance: %d → %d = %d", a, b, nd)
	}

	tr.Addf("Initialize distances from node %d to every other node as infinity, except node %d which is 0.", start, start)
	for pass := 1; pass <= n-1; pass++ {
		if cfg.OnPass != nil {
			cfg.OnPass(pass)
		}
		tr.Addf("Pass %d:", pass)
		for _, e := range edges {
			relax(e.U, e.V, e.Weight)
			relax(e.V, e.U, e.Weight)
		}
		res.Passes++
	}

	// One more scan: any admissible relaxation means a negative cycle.
	for _, e := range edges {
		if improves(dist, e.U, e.V, e.Weight) || improves(dist, e.V, e.U, e.Weight) {
			tr.Add("Negative cycle detected!")
			return &Result{Steps: tr.Steps(), Passes: res.Passes, Updates: res.Updates},
				fmt.Errorf("%w: edge %s still relaxes after %d passes", ErrNegativeCycle, e, res.Passes)
		}
	}

	tr.Addf("Bellman-Ford finished. Distance updates: %d", res.Updates)
	res.Steps = tr.Steps()

	return res, nil
}

// improves reports whether a→b with weight w would lower dist[b].
func improves(dist []int64, a, b int, w int64) bool {
	nd, ok := extend(dist[a], w)
	return ok && nd < dist[b]
}

// extend returns d+w, or false when d is Inf or the sum leaves the int64
// range. Sums that would reach Inf are treated as unreachable.
func extend(d, w int64) (int64, bool) {
	if d == path.Inf {
		return 0, false
	}
	if w > 0 && d >= path.Inf-w {
		return 0, false
	}
	if w < 0 && d < math.MinInt64-w {
		return 0, false
	}

	return d + w, true
}
