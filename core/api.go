// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only summaries.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of graph size and weight profile.
type GraphStats struct {
	// NodeCount is the fixed number of nodes.
	NodeCount int

	// EdgeCount is the number of inserted edges (self-loops count once).
	EdgeCount int

	// SelfLoopCount is the number of inserted edges with U == V.
	SelfLoopCount int

	// NegativeEdgeCount is the number of edges with Weight < 0.
	NegativeEdgeCount int

	// IsolatedCount is the number of nodes with an empty adjacency list.
	IsolatedCount int

	// MinWeight and MaxWeight bound edge weights; both are 0 when EdgeCount == 0.
	MinWeight int64
	MaxWeight int64
}

// Stats produces a deterministic snapshot of counts and weight bounds.
//
// Implementation:
//   - Stage 1: Acquire mu.RLock.
//   - Stage 2: Scan the edge list once for loop/negative/min/max counters.
//   - Stage 3: Scan adjacency once for isolated nodes.
//
// Determinism:
//   - Deterministic for a fixed graph state.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: g.nodeCount,
		EdgeCount: len(g.edges),
	}

	for i, e := range g.edges {
		if e.U == e.V {
			stats.SelfLoopCount++
		}
		if e.Weight < 0 {
			stats.NegativeEdgeCount++
		}
		if i == 0 || e.Weight < stats.MinWeight {
			stats.MinWeight = e.Weight
		}
		if i == 0 || e.Weight > stats.MaxWeight {
			stats.MaxWeight = e.Weight
		}
	}

	for _, nbs := range g.adjacency {
		if len(nbs) == 0 {
			stats.IsolatedCount++
		}
	}

	return &stats
}
