// Package builder generates deterministic graph topologies over dense node ids
// for fixtures, property tests and the `generate` command.
//
// Constructors append nodes and edges to a Blueprint; composing several
// constructors yields their disjoint union, each one numbering its nodes
// after the previous one's:
//
//	bp, err := builder.Build(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 9)},
//	    builder.Path(4),
//	    builder.Cycle(3),
//	) // nodes 0..3 form the path, 4..6 the cycle
//
//	g, err := bp.Graph()   // *core.Graph
//	edges := bp.Triples()  // [][]int64{{u, v, w}, ...} for a request payload
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the weight function.
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite,
//     Grid, RandomSparse, and Lookup for selecting one by name.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value (negative allowed).
//     – UniformWeightFn:   uniform integer in [min,max].
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     blueprints, edge by edge.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; constructors themselves return sentinel errors.
package builder
