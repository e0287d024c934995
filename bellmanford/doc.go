// Package bellmanford implements the Bellman-Ford single-source shortest-path
// algorithm on an undirected core.Graph whose weights may be negative.
//
// The edge list is scanned in insertion order for exactly n-1 passes; each
// edge u-v is relaxed u→v and then v→u. Relaxation never starts from an
// unreached (infinite) endpoint. A final scan over all edges, in both
// directions, detects negative cycles.
//
// Note that in an undirected graph any negative edge reachable from start is
// itself a negative cycle (walk it back and forth), so a reachable negative
// weight always yields ErrNegativeCycle.
//
// Negative cycles are reported as an error together with a partial Result
// that carries only Steps; the distance and predecessor arrays are nil:
//
//	res, err := bellmanford.BellmanFord(g, 0)
//	if errors.Is(err, bellmanford.ErrNegativeCycle) {
//	    show(res.Steps)
//	}
//
// Complexity: O(V·E) time, O(V) space.
package bellmanford
