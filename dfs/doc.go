// Package dfs provides depth-first search over a core.Graph with a
// human-readable Step Trace of every arrival and descent.
//
// What
//
//   - Explore as far as possible along each branch before backtracking.
//   - Returns a Result containing:
//   - Order: pre-order arrival sequence
//   - Depth: depth in the DFS tree per node, -1 when unreached
//   - Parent: DFS-tree predecessor per node, path.None when absent
//   - Steps: the Step Trace, ending in a summary
//   - Observational hooks: OnStep (every trace line), OnVisit (pre-order).
//
// Explicit stack
//
//	Each stack frame holds a node, its adjacency list and a cursor into it.
//	The loop advances the top frame's cursor, skips visited neighbors and
//	pushes a frame on every descent, which yields exactly the order of the
//	recursive formulation without its depth limit.
//
// Determinism
//
//	Neighbors are scanned in insertion order, so Order and Steps are fully
//	reproducible for a given sequence of AddEdge calls.
//
// Step Trace
//
//	Start DFS from node 0.
//	Step 1: arrive at node 0, scanning neighbors:
//	  → go deeper to node 1 from node 0.
//	Step 2: arrive at node 1, scanning neighbors:
//	...
//	DFS finished. Steps taken: 3
//	Nodes visited: 3
//	Visit order: [0, 1, 2]
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the stack and bookkeeping
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartOutOfRange  if start is not in [0, n); wraps core.ErrInvalidArgument.
package dfs
