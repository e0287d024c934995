// Package path turns predecessor arrays into explicit node paths and defines
// Tree, the distance/predecessor result shared by the shortest-path engines.
//
// A predecessor array prev has one entry per node: prev[v] is the node from
// which v was reached, or None for the start node and for unreached nodes.
//
//	Walk(prev, target)              → target, prev[target], ... reversed
//	Reconstruct(prev, start, target) → start ... target, or empty
//
// Reconstruct fails closed. A chain that cycles, leaves the array, or ends
// anywhere but start yields an empty path rather than an error, so callers
// can treat "no path" uniformly. Walk exposes the underlying
// ErrCorruptPredecessorChain for callers that care.
//
// Complexity: O(n) time and space for both, n = len(prev).
package path
