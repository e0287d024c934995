// SPDX-License-Identifier: MIT
// Package: stepgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order
//     against a fresh Blueprint.
//   - BuildGraph is Build followed by Blueprint.Graph.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     blueprints.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
)

// Blueprint is an edge list over nodes 0..NodeCount-1, ready to become a
// core.Graph or a request payload.
type Blueprint struct {
	NodeCount int
	Edges     []core.Edge
}

// reserve appends n fresh nodes and returns the id of the first one.
func (b *Blueprint) reserve(n int) int {
	base := b.NodeCount
	b.NodeCount += n

	return base
}

// connect appends the edge u-v with the next configured weight.
func (b *Blueprint) connect(u, v int, cfg builderConfig) {
	b.Edges = append(b.Edges, core.Edge{U: u, V: v, Weight: cfg.weight()})
}

// Graph materializes the blueprint as a core.Graph, inserting edges in order.
func (b *Blueprint) Graph() (*core.Graph, error) {
	return core.BuildGraph(b.NodeCount, b.Edges)
}

// Triples returns the edges as [u, v, weight] rows.
func (b *Blueprint) Triples() [][]int64 {
	out := make([][]int64, len(b.Edges))
	for i, e := range b.Edges {
		out[i] = []int64{int64(e.U), int64(e.V), e.Weight}
	}

	return out
}

// Constructor applies a deterministic topology to a Blueprint using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Reserve their nodes before emitting edges.
//   - Emit edges in a stable, documented order.
type Constructor func(bp *Blueprint, cfg builderConfig) error

// Build resolves the builder configuration from bopts and applies all
// constructors in order to a new Blueprint. Any constructor error is wrapped
// with "Build: %w" and returned immediately.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or an empty result.
//   - Constructor sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func Build(bopts []BuilderOption, cons ...Constructor) (*Blueprint, error) {
	cfg := newBuilderConfig(bopts...)
	bp := &Blueprint{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(bp, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	if bp.NodeCount == 0 {
		return nil, fmt.Errorf("Build: no nodes: %w", ErrConstructFailed)
	}

	return bp, nil
}

// BuildGraph is Build followed by Blueprint.Graph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	bp, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return bp.Graph()
}

// Shape parameterizes Lookup.
type Shape struct {
	// N is the node count (Path, Cycle, Star, Wheel, Complete, RandomSparse)
	// or the left side of CompleteBipartite.
	N int
	// M is the right side of CompleteBipartite.
	M int
	// Rows and Cols size a Grid.
	Rows, Cols int
	// P is RandomSparse's edge probability.
	P float64
}

// Topologies lists the names accepted by Lookup.
var Topologies = []string{"path", "cycle", "star", "wheel", "complete", "bipartite", "grid", "random"}

// Lookup returns the constructor registered under name.
func Lookup(name string, s Shape) (Constructor, error) {
	switch name {
	case "path":
		return Path(s.N), nil
	case "cycle":
		return Cycle(s.N), nil
	case "star":
		return Star(s.N), nil
	case "wheel":
		return Wheel(s.N), nil
	case "complete":
		return Complete(s.N), nil
	case "bipartite":
		return CompleteBipartite(s.N, s.M), nil
	case "grid":
		return Grid(s.Rows, s.Cols), nil
	case "random":
		return RandomSparse(s.N, s.P), nil
	default:
		return nil, fmt.Errorf("Lookup: %q (want one of %v): %w", name, Topologies, ErrUnknownTopology)
	}
}
