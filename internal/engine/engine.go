package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/stepgraph/astar"
	"github.com/katalvlaran/stepgraph/bellmanford"
	"github.com/katalvlaran/stepgraph/bfs"
	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/dfs"
	"github.com/katalvlaran/stepgraph/dijkstra"
	"github.com/katalvlaran/stepgraph/internal/metrics"
	"github.com/katalvlaran/stepgraph/path"
)

// Outcome is the adapter-facing result of one run.
//
// Traversals fill Order. Dijkstra and Bellman-Ford fill Dist, Path and Cost;
// A* fills Path and Cost. An unreachable end gives an empty Path and
// Cost == path.Inf. A negative cycle gives NegativeCycle, an empty Path and a
// nil Dist.
type Outcome struct {
	Algorithm     Algorithm
	Start         int
	End           int // -1 for traversals without an end node
	Steps         []string
	Order         []int
	Path          []int
	Dist          []int64
	Cost          int64
	NegativeCycle bool
	Graph         *core.Graph
	Elapsed       time.Duration
}

// Reachable reports whether a path to End was found.
func (o *Outcome) Reachable() bool {
	return len(o.Path) > 0
}

// Option configures an Engine.
type Option func(*Engine)

// WithLimits bounds accepted graph sizes.
func WithLimits(l Limits) Option {
	return func(e *Engine) { e.limits = l }
}

// WithLogger sets the logger; nil keeps the silent default.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMetrics sets the metrics sink; nil disables metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// Engine validates requests and dispatches them. It holds no per-run state
// and is safe for concurrent use.
type Engine struct {
	limits  Limits
	log     *log.Logger
	metrics *metrics.Metrics
}

// New returns an Engine. Without WithLogger it logs nowhere.
func New(opts ...Option) *Engine {
	silent := log.New()
	silent.SetOutput(io.Discard)
	e := &Engine{log: silent}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Limits returns the configured size limits.
func (e *Engine) Limits() Limits {
	return e.limits
}

// Run validates req, builds its graph and runs the selected algorithm.
//
// Errors:
//   - anything wrapping core.ErrInvalidArgument: the request was rejected
//     before any algorithmic work.
//   - any other error is internal.
func (e *Engine) Run(req *Request) (*Outcome, error) {
	began := time.Now()
	fields := log.Fields{}
	if req != nil {
		fields["algorithm"] = req.Algorithm
		fields["nodes"] = req.NodeCount
		fields["edges"] = len(req.Edges)
	}

	alg, err := req.Validate(e.limits)
	if err != nil {
		e.finish(alg, fields, began, metrics.OutcomeInvalid, 0).WithError(err).Warn("request rejected")
		return nil, err
	}
	g, err := req.Graph()
	if err != nil {
		e.finish(alg, fields, began, metrics.OutcomeInvalid, 0).WithError(err).Warn("request rejected")
		return nil, err
	}

	out, err := dispatch(alg, g, req)
	if err != nil {
		kind := metrics.OutcomeError
		if errors.Is(err, core.ErrInvalidArgument) {
			kind = metrics.OutcomeInvalid
		}
		e.finish(alg, fields, began, kind, 0).WithError(err).Error("algorithm failed")
		return nil, err
	}
	out.Elapsed = time.Since(began)

	kind := metrics.OutcomeOK
	if out.NegativeCycle {
		kind = metrics.OutcomeNegativeCycle
	}
	e.finish(alg, fields, began, kind, len(out.Steps)).WithField("steps", len(out.Steps)).Info("algorithm run")

	return out, nil
}

// finish records metrics and returns a log entry carrying the run fields.
func (e *Engine) finish(alg Algorithm, fields log.Fields, began time.Time, outcome string, steps int) *log.Entry {
	elapsed := time.Since(began)
	label := "unknown"
	if alg.Valid() {
		label = alg.String()
	}
	e.metrics.ObserveRun(label, outcome, elapsed, steps)

	return e.log.WithFields(fields).WithFields(log.Fields{
		"duration": elapsed,
		"outcome":  outcome,
	})
}

func dispatch(alg Algorithm, g *core.Graph, req *Request) (*Outcome, error) {
	out := &Outcome{
		Algorithm: alg,
		Start:     req.Start,
		End:       req.EndOrNone(),
		Cost:      path.Inf,
		Graph:     g,
	}

	switch alg {
	case BFS:
		res, err := bfs.BFS(g, req.Start)
		if err != nil {
			return nil, err
		}
		out.Steps, out.Order = res.Steps, res.Order

	case DFS:
		res, err := dfs.DFS(g, req.Start)
		if err != nil {
			return nil, err
		}
		out.Steps, out.Order = res.Steps, res.Order

	case Dijkstra:
		res, err := dijkstra.Dijkstra(g, req.Start)
		if err != nil {
			return nil, err
		}
		out.Steps = res.Steps
		if err = out.fromTree(res.Tree); err != nil {
			return nil, err
		}

	case BellmanFord:
		res, err := bellmanford.BellmanFord(g, req.Start)
		switch {
		case errors.Is(err, bellmanford.ErrNegativeCycle):
			out.Steps = res.Steps
			out.NegativeCycle = true
			out.Path = []int{}
		case err != nil:
			return nil, err
		default:
			out.Steps = res.Steps
			if err = out.fromTree(res.Tree); err != nil {
				return nil, err
			}
		}

	case AStar:
		s, err := astar.New(g, req.Heuristic)
		if err != nil {
			return nil, err
		}
		res, err := s.Search(req.Start, out.End)
		if err != nil {
			return nil, err
		}
		out.Steps, out.Path, out.Cost = res.Steps, res.Path, res.Cost

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}

	return out, nil
}

func (o *Outcome) fromTree(t path.Tree) error {
	p, err := t.PathTo(o.End)
	if err != nil {
		return err
	}
	o.Dist, o.Path, o.Cost = t.Dist, p, t.Dist[o.End]

	return nil
}
