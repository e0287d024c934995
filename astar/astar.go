package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/internal/pqueue"
	"github.com/katalvlaran/stepgraph/path"
	"github.com/katalvlaran/stepgraph/trace"
)

// Sentinel errors for A*.
var (
	// ErrNilGraph indicates that the input graph pointer is nil.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrHeuristicLength indicates len(heuristic) != node count.
	ErrHeuristicLength = fmt.Errorf("%w: astar: heuristic length mismatch", core.ErrInvalidArgument)

	// ErrNegativeHeuristic indicates a heuristic value below zero.
	ErrNegativeHeuristic = fmt.Errorf("%w: astar: negative heuristic", core.ErrInvalidArgument)

	// ErrNodeOutOfRange indicates start or goal is not a node.
	ErrNodeOutOfRange = fmt.Errorf("%w: astar: node out of range", core.ErrInvalidArgument)
)

// Options configures a single search.
type Options struct {
	// OnStep receives every Step Trace line as it is recorded.
	OnStep func(line string)

	// OnExpand is called when a node is finalized, with its f and g values.
	OnExpand func(id int, f, g int64)
}

// Option is a functional option for Search.
type Option func(*Options)

// WithOnStep installs a trace line observer.
func WithOnStep(fn func(line string)) Option {
	return func(o *Options) { o.OnStep = fn }
}

// WithOnExpand installs an expansion observer.
func WithOnExpand(fn func(id int, f, g int64)) Option {
	return func(o *Options) { o.OnExpand = fn }
}

// Result is the outcome of one search.
type Result struct {
	// Path runs from start to goal inclusive; empty when the goal is unreachable.
	Path []int

	// Cost is g at the goal, path.Inf when unreachable.
	Cost int64

	// Expanded counts finalized nodes, the goal included.
	Expanded int

	// Steps is the Step Trace.
	Steps []string
}

// Searcher runs A* over a fixed graph and heuristic.
type Searcher struct {
	g         *core.Graph
	heuristic []int64
}

// New validates heuristic against g and returns a Searcher.
// The heuristic slice is copied.
func New(g *core.Graph, heuristic []int64) (*Searcher, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(heuristic) != g.NodeCount() {
		return nil, fmt.Errorf("%w: got %d values for %d nodes", ErrHeuristicLength, len(heuristic), g.NodeCount())
	}
	for i, h := range heuristic {
		if h < 0 {
			return nil, fmt.Errorf("%w: heuristic[%d] = %d", ErrNegativeHeuristic, i, h)
		}
	}

	h := make([]int64, len(heuristic))
	copy(h, heuristic)

	return &Searcher{g: g, heuristic: h}, nil
}

// entry is a frontier element.
type entry struct {
	f, g   int64
	node   int
	parent int
}

func lessEntry(a, b entry) bool {
	switch {
	case a.f != b.f:
		return a.f < b.f
	case a.g != b.g:
		return a.g < b.g
	case a.node != b.node:
		return a.node < b.node
	default:
		return a.parent < b.parent
	}
}

// Search finds a path from start to goal.
func (s *Searcher) Search(start, goal int, opts ...Option) (*Result, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if !s.g.HasNode(start) || !s.g.HasNode(goal) {
		return nil, fmt.Errorf("%w: start %d and goal %d must be between 0 and %d",
			ErrNodeOutOfRange, start, goal, s.g.NodeCount()-1)
	}

	n := s.g.NodeCount()
	tr := trace.New(cfg.OnStep)
	finalized := make([]bool, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = path.None
	}
	res := &Result{Cost: path.Inf}

	pq := pqueue.New(lessEntry)
	pq.Push(entry{f: s.heuristic[start], g: 0, node: start, parent: path.None})
	tr.Addf("Initialize: push start node %d into the priority queue with heuristic = %d.", start, s.heuristic[start])

	for {
		cur, ok := pq.Pop()
		if !ok {
			break
		}
		if finalized[cur.node] {
			continue
		}
		finalized[cur.node] = true
		parent[cur.node] = cur.parent
		res.Expanded++
		tr.Addf("Step %d: pop node %d from the queue (f = %d, g = %d).", res.Expanded, cur.node, cur.f, cur.g)
		if cfg.OnExpand != nil {
			cfg.OnExpand(cur.node, cur.f, cur.g)
		}

		if cur.node == goal {
			res.Cost = cur.g
			tr.Addf("  → reached goal node %d.", goal)
			break
		}

		nbs, err := s.g.Neighbors(cur.node)
		if err != nil {
			return nil, fmt.Errorf("astar: neighbors of %d: %w", cur.node, err)
		}
		for _, nb := range nbs {
			if finalized[nb.ID] {
				continue
			}
			ng := saturatingAdd(cur.g, nb.Weight)
			nf := saturatingAdd(ng, s.heuristic[nb.ID])
			pq.Push(entry{f: nf, g: ng, node: nb.ID, parent: cur.node})
			tr.Addf("  → push node %d with f = %d (g = %d, heuristic = %d).", nb.ID, nf, ng, s.heuristic[nb.ID])
		}
	}

	p, err := path.Reconstruct(parent, start, goal)
	if err != nil {
		return nil, err
	}
	res.Path = p
	tr.Addf("A* finished. Nodes expanded: %d", res.Expanded)
	res.Steps = tr.Steps()

	return res, nil
}

// saturatingAdd returns a+b clamped to path.Inf for non-negative b.
func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > path.Inf-b {
		return path.Inf
	}

	return a + b
}
