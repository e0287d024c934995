// Package bfs provides breadth-first search over a core.Graph,
// returning visit order, hop depths, parent links and a Step Trace.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/path"
	"github.com/katalvlaran/stepgraph/trace"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []int
	visited []bool
	step    int
	tr      *trace.Trace
	res     *Result
}

// BFS runs breadth-first search on g starting from start.
//
// The start node is marked visited before it is enqueued, and every other node
// is marked at enqueue time, so each reachable node is enqueued exactly once.
// Neighbors are scanned in adjacency insertion order.
//
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %d must be between 0 and %d", ErrStartOutOfRange, start, g.NodeCount()-1)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		tr:      trace.New(o.OnStep),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = path.None
	}

	// Seed queue with start node (no parent)
	w.step = 1
	w.tr.Addf("Step 1: enqueue start node %d and mark it visited.", start)
	w.enqueue(start, 0, path.None)
	if err := w.loop(); err != nil {
		return nil, err
	}
	w.summary()
	w.res.Steps = w.tr.Steps()

	return w.res, nil
}

// enqueue marks id visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id)
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		u := w.dequeue()
		w.res.Order = append(w.res.Order, u)
		if err := w.enqueueNeighbors(u); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first node, invokes OnDequeue, and records the step.
func (w *walker) dequeue() int {
	u := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(u)
	w.step++
	w.tr.Addf("Step %d: dequeue node %d, scanning neighbors:", w.step, u)

	return u
}

// enqueueNeighbors enqueues each unseen neighbor of u in insertion order.
func (w *walker) enqueueNeighbors(u int) error {
	nbs, err := w.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", u, err)
	}
	for _, nb := range nbs {
		if w.visited[nb.ID] {
			continue
		}
		w.enqueue(nb.ID, w.res.Depth[u]+1, u)
		w.tr.Addf("  → enqueue node %d and mark it visited.", nb.ID)
	}

	return nil
}

func (w *walker) summary() {
	visited := len(w.res.Order)
	w.tr.Addf("BFS finished. Steps taken: %d", visited)
	w.tr.Addf("Nodes visited: %d", visited)
	w.tr.Addf("Visit order: [%s]", trace.List(w.res.Order))
}
