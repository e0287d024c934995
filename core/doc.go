// Package core provides the Graph Store used by every algorithm in stepgraph:
// an undirected, integer-weighted graph over dense node ids 0..n-1.
//
// The Graph G = (V,E) keeps two views of the same edges:
//
//   - Adjacency lists: node → ordered []Neighbor. AddEdge(u,v,w) appends (v,w)
//     to u and (u,w) to v, so a self-loop appears twice in its own list.
//     Iteration order is insertion order; traversals depend on it.
//   - Edge list: ordered []Edge, one entry per AddEdge call (never mirrored).
//     Bellman-Ford iterates this list instead of the adjacency lists.
//
// Lifecycle:
//
//	g, err := core.NewGraph(4)           // n must be > 0
//	err = g.AddEdge(0, 1, 1)             // endpoints must be in [0,n)
//	nbs, _ := g.Neighbors(0)             // []Neighbor in insertion order
//	edges := g.Edges()                   // []Edge in insertion order
//
// A graph is built once per request or session and never shrinks. Edges are
// only added during setup; algorithms treat the graph as read-only. All
// methods are safe for concurrent use (one sync.RWMutex guards the storage).
//
// Weights:
//
//	The store accepts any int64 weight, negative included, because Bellman-Ford
//	needs negative edges. Rejecting negative weights for Dijkstra and A* is the
//	caller's responsibility; HasNegativeWeight helps with that check.
//
// Errors:
//
//	ErrInvalidArgument  - umbrella sentinel for every invalid input.
//	ErrBadNodeCount     - NewGraph(n) with n <= 0 (wraps ErrInvalidArgument).
//	ErrNodeOutOfRange   - node id outside [0,n) (wraps ErrInvalidArgument).
//
// Complexity:
//
//	NewGraph O(n), AddEdge O(1) amortized, Neighbors O(1), Edges O(E) (copy).
package core
