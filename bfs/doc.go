// Package bfs provides breadth-first search over a core.Graph with a
// human-readable Step Trace of every queue operation.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a Result containing:
//   - Order: visit (dequeue) sequence
//   - Depth: hop count per node, -1 when unreached
//   - Parent: BFS-tree predecessor per node, path.None when absent
//   - Steps: the Step Trace, ending in a summary
//   - Observational hooks: OnStep, OnEnqueue, OnDequeue.
//
// Determinism
//
//	core.Graph.Neighbors returns adjacency entries in insertion order and BFS
//	enqueues unseen neighbors in that order, so Order and Steps are fully
//	reproducible for a given sequence of AddEdge calls.
//
// Step Trace
//
//	Step 1: enqueue start node 0 and mark it visited.
//	Step 2: dequeue node 0, scanning neighbors:
//	  → enqueue node 1 and mark it visited.
//	...
//	BFS finished. Steps taken: 3
//	Nodes visited: 3
//	Visit order: [0, 1, 2]
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartOutOfRange  if start is not in [0, n); wraps core.ErrInvalidArgument.
package bfs
