// Package dfs implements single-source depth-first search on core.Graph with
// a Step Trace of every arrival and descent.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/path"
	"github.com/katalvlaran/stepgraph/trace"
)

// frame is one level of the explicit DFS stack: the node being explored,
// its adjacency list, and the index of the next neighbor to consider.
type frame struct {
	id    int
	depth int
	nbs   []core.Neighbor
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    Options
	visited []bool
	stack   []frame
	tr      *trace.Trace
	res     *Result
}

// DFS performs depth-first search on g from start.
//
// The traversal uses an explicit stack but reproduces the recursive
// formulation exactly: a node is marked and appended to Order on arrival,
// then each unvisited neighbor, in insertion order, is explored completely
// before the next sibling is considered. Deep graphs cannot overflow the
// goroutine stack.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify start
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %d must be between 0 and %d", ErrStartOutOfRange, start, g.NodeCount()-1)
	}

	// 4. Initialize result
	n := g.NodeCount()
	w := &dfsWalker{
		graph:   g,
		opts:    dopts,
		visited: make([]bool, n),
		stack:   make([]frame, 0, n),
		tr:      trace.New(dopts.OnStep),
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

	// 5. Traverse
	w.tr.Addf("Start DFS from node %d.", start)
	if err := w.traverse(start); err != nil {
		return nil, err
	}

	// 6. Summary
	visited := len(w.res.Order)
	w.tr.Addf("DFS finished. Steps taken: %d", visited)
	w.tr.Addf("Nodes visited: %d", visited)
	w.tr.Addf("Visit order: [%s]", trace.List(w.res.Order))
	w.res.Steps = w.tr.Steps()

	return w.res, nil
}

// traverse runs the explicit-stack loop from root.
func (w *dfsWalker) traverse(root int) error {
	if err := w.arrive(root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.nbs) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		nb := top.nbs[top.next]
		top.next++
		if w.visited[nb.ID] {
			continue
		}

		u, d := top.id, top.depth
		w.tr.Addf("  → go deeper to node %d from node %d.", nb.ID, u)
		w.res.Parent[nb.ID] = u
		// arrive pushes a frame; top must not be used past this point
		if err := w.arrive(nb.ID, d+1); err != nil {
			return err
		}
	}

	return nil
}

// arrive marks id visited, records it, and pushes its frame.
func (w *dfsWalker) arrive(id, depth int) error {
	w.visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)
	w.tr.Addf("Step %d: arrive at node %d, scanning neighbors:", len(w.res.Order), id)
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(id, depth)
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, nbs: nbs})

	return nil
}
