package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/internal/pqueue"
	"github.com/katalvlaran/stepgraph/path"
	"github.com/katalvlaran/stepgraph/trace"
)

// Dijkstra computes shortest distances from start to every node of g.
//
// Preconditions:
//   - g is non-nil (ErrNilGraph).
//   - start is a node (ErrStartOutOfRange, wraps core.ErrInvalidArgument).
//   - All weights are non-negative. This is NOT checked here; callers reject
//     negative weights before the call (see core.Graph.HasNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and start
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %d must be between 0 and %d", ErrStartOutOfRange, start, g.NodeCount()-1)
	}

	// 3) Run
	r := &runner{
		g:       g,
		options: cfg,
		tr:      trace.New(cfg.OnStep),
		res:     &Result{Tree: path.NewTree(g.NodeCount(), start)},
		pq:      pqueue.New(lessItem),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	r.tr.Addf("Dijkstra finished. Nodes examined: %d", r.res.Examined)
	r.tr.Addf("Distance updates: %d", r.res.Updates)
	r.res.Steps = r.tr.Steps()

	return r.res, nil
}

// nodeItem is a frontier entry; entries are ordered by (dist, id).
type nodeItem struct {
	dist int64
	id   int
}

func lessItem(a, b nodeItem) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.id < b.id
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	tr      *trace.Trace
	res     *Result
	pq      *pqueue.Queue[nodeItem] // lazy decrease-key: stale entries skipped on pop
}

// init records the initial state and seeds the frontier with (0, start).
func (r *runner) init() {
	s := r.res.Start
	r.tr.Addf("Initialize distances from node %d to every other node as infinity, except node %d which is 0.", s, s)
	r.pq.Push(nodeItem{dist: 0, id: s})
}

// process repeatedly extracts the closest node and relaxes its edges.
func (r *runner) process() error {
	for {
		item, ok := r.pq.Pop()
		if !ok {
			return nil
		}
		// Stale entry: a shorter distance was recorded after this push.
		if item.dist > r.res.Dist[item.id] {
			continue
		}
		r.res.Examined++
		r.tr.Addf("Examine node %d with current distance %d.", item.id, item.dist)
		if err := r.relax(item.id); err != nil {
			return err
		}
	}
}

// relax tries to improve every neighbor of u through u.
// Assumes r.res.Dist[u] is finite.
func (r *runner) relax(u int) error {
	nbs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, nb := range nbs {
		// saturate instead of overflowing on huge weights
		if nb.Weight > 0 && du > path.Inf-nb.Weight {
			continue
		}
		nd := du + nb.Weight
		if nd >= r.res.Dist[nb.ID] {
			continue
		}

		r.res.Dist[nb.ID] = nd
		r.res.Prev[nb.ID] = u
		r.res.Updates++
		r.pq.Push(nodeItem{dist: nd, id: nb.ID})
		r.tr.Addf("  → update distance to node %d: %d (via %d)", nb.ID, nd, u)
		if r.options.OnRelax != nil {
			r.options.OnRelax(u, nb.ID, nd)
		}
	}

	return nil
}
