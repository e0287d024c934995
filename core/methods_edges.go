// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge, Edges, EdgeCount, HasNegativeWeight.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Adjacency lists grow in insertion order; AddEdge(u,v,w) appends to u first.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import "fmt"

// AddEdge inserts the undirected edge u-v with the given weight.
//
// Steps:
//  1. Validate both endpoints lie in [0, NodeCount()).
//  2. Lock mu.
//  3. Append (v,w) to adjacency[u] and (u,w) to adjacency[v].
//  4. Append (u,v,w) to the edge list.
//
// Self-loops are accepted and appear twice in adjacency[u], once per append.
// Negative weights are accepted; see package doc.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	// 1) Input validation, outside the lock (nodeCount is immutable)
	if err := g.CheckNode(u, "edge endpoint"); err != nil {
		return err
	}
	if err := g.CheckNode(v, "edge endpoint"); err != nil {
		return err
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[u] = append(g.adjacency[u], Neighbor{ID: v, Weight: weight})
	g.adjacency[v] = append(g.adjacency[v], Neighbor{ID: u, Weight: weight})
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: weight})

	return nil
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount reports the number of inserted edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasNegativeWeight reports whether any inserted edge has weight < 0.
// Dijkstra and A* assume it is false; they do not check it themselves.
// Complexity: O(E)
func (g *Graph) HasNegativeWeight() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.Weight < 0 {
			return true
		}
	}

	return false
}

// FirstNegativeEdge returns the first edge (in insertion order) with a
// negative weight, and false if there is none.
func (g *Graph) FirstNegativeEdge() (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.Weight < 0 {
			return e, true
		}
	}

	return Edge{}, false
}

// String renders an edge as "u-v(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.U, e.V, e.Weight)
}
