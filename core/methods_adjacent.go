// File: methods_adjacent.go
// Role: Node and neighborhood queries (NodeCount, HasNode, CheckNode, Neighbors, Degree).
// Determinism:
//   - Neighbors() preserves insertion order; traversal order depends on it.
// Concurrency:
//   - Read operations hold mu read lock.

package core

import "fmt"

// NodeCount reports the fixed number of nodes.
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	return g.nodeCount
}

// HasNode reports whether id lies in [0, NodeCount()).
// Complexity: O(1)
func (g *Graph) HasNode(id int) bool {
	return id >= 0 && id < g.nodeCount
}

// CheckNode returns nil if id is a valid node, otherwise ErrNodeOutOfRange
// annotated with role ("start", "goal", ...) and the valid range.
// Complexity: O(1)
func (g *Graph) CheckNode(id int, role string) error {
	if g.HasNode(id) {
		return nil
	}

	return fmt.Errorf("%w: %s %d must be between 0 and %d", ErrNodeOutOfRange, role, id, g.nodeCount-1)
}

// Neighbors returns the adjacency list of id in insertion order.
//
// The returned slice shares storage with the graph and must be treated as
// read-only; it stays valid while no further edges are added.
//
// Errors:
//   - ErrNodeOutOfRange: if id is not a node.
//
// Complexity: O(1)
func (g *Graph) Neighbors(id int) ([]Neighbor, error) {
	if err := g.CheckNode(id, "node"); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	nbs := g.adjacency[id]

	return nbs[:len(nbs):len(nbs)], nil
}

// Degree reports the length of id's adjacency list (self-loops count twice).
// Returns 0 for an invalid id.
func (g *Graph) Degree(id int) int {
	if !g.HasNode(id) {
		return 0
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// AdjacencyList returns a deep copy of all adjacency lists, indexed by node.
// The interactive session prints it as the graph echo.
// Complexity: O(V + E)
func (g *Graph) AdjacencyList() [][]Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]Neighbor, len(g.adjacency))
	for i, nbs := range g.adjacency {
		out[i] = make([]Neighbor, len(nbs))
		copy(out[i], nbs)
	}

	return out
}
