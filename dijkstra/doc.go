// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// on a core.Graph with non-negative edge weights, narrating each step.
//
// Overview:
//
//   - Computes the minimum-cost distance from a start node to every node in
//     O((V + E) log V), recording predecessors for path reconstruction.
//   - The frontier is a binary min-heap of (distance, node) pairs ordered
//     lexicographically, so equal distances pop in ascending node order.
//   - Lazy decrease-key: every improvement pushes a new entry; a popped entry
//     whose distance exceeds the recorded one is stale and skipped.
//   - Relaxation is strict (dist[u]+w < dist[v]), so ties keep the first
//     predecessor found.
//
// Precondition:
//
//	Weights must be non-negative. The algorithm does not check; the request
//	layer rejects negative-weight graphs before calling Dijkstra.
//
// Result:
//
//	Result embeds path.Tree (Dist, Prev, Start) and adds the Step Trace plus
//	Examined/Updates counters used by the trace summary:
//
//	  Initialize distances from node 0 to every other node as infinity, except node 0 which is 0.
//	  Examine node 0 with current distance 0.
//	    → update distance to node 1: 1 (via 0)
//	  ...
//	  Dijkstra finished. Nodes examined: 4
//	  Distance updates: 4
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrStartOutOfRange: start outside [0, n); wraps core.ErrInvalidArgument.
package dijkstra
