// Package core defines the central Graph, Neighbor, and Edge types,
// and provides thread-safe primitives for building and querying graphs.
//
// This file declares the types, the sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrInvalidArgument - any invalid input to the store or to an algorithm.
//	ErrBadNodeCount    - node count is not positive.
//	ErrNodeOutOfRange  - node id outside [0, NodeCount()).
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument is the umbrella error for invalid input. Every other
	// validation error in stepgraph wraps it, so callers can branch with a
	// single errors.Is check.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrBadNodeCount indicates NewGraph was called with n <= 0.
	ErrBadNodeCount = fmt.Errorf("%w: node count must be positive", ErrInvalidArgument)

	// ErrNodeOutOfRange indicates a node id outside [0, NodeCount()).
	ErrNodeOutOfRange = fmt.Errorf("%w: node out of range", ErrInvalidArgument)
)

// Neighbor is one entry of an adjacency list: the node on the other side of
// an edge and the edge weight.
type Neighbor struct {
	// ID is the adjacent node.
	ID int

	// Weight is the weight of the connecting edge.
	Weight int64
}

// Edge is one inserted undirected edge U-V.
//
// The edge list stores each inserted edge exactly once, in insertion order,
// regardless of orientation.
type Edge struct {
	// U is the first endpoint as given to AddEdge.
	U int

	// V is the second endpoint as given to AddEdge.
	V int

	// Weight is the cost of traversing the edge in either direction.
	Weight int64
}

// Graph is the in-memory undirected weighted graph.
//
// mu protects adjacency and edges. nodeCount is fixed at construction and
// read without locking.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edges

	nodeCount int

	// adjacency[u] lists (neighbor, weight) pairs in insertion order.
	adjacency [][]Neighbor

	// edges is the ordered edge list, one entry per AddEdge call.
	edges []Edge
}

// NewGraph creates an empty graph over nodes 0..nodeCount-1.
// Returns ErrBadNodeCount if nodeCount <= 0.
// Complexity: O(n)
func NewGraph(nodeCount int) (*Graph, error) {
	if nodeCount <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrBadNodeCount, nodeCount)
	}

	return &Graph{
		nodeCount: nodeCount,
		adjacency: make([][]Neighbor, nodeCount),
		edges:     make([]Edge, 0),
	}, nil
}

// BuildGraph creates a graph with nodeCount nodes and inserts edges in order.
// The first failing edge aborts construction; its index is part of the error.
func BuildGraph(nodeCount int, edges []Edge) (*Graph, error) {
	g, err := NewGraph(nodeCount)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = g.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, fmt.Errorf("edge #%d: %w", i+1, err)
		}
	}

	return g, nil
}
