// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodGrid              = "Grid"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest ring without loops or parallel edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest path with at least one edge.
const MinPathNodes = 2

// MinStarNodes is one center plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is a 3-cycle plus a hub.
const MinWheelNodes = 4

// MinCompleteNodes allows K_1 (a single node, no edges).
const MinCompleteNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

// MinPartition is the smallest side of a complete bipartite graph.
const MinPartition = 1

// MinRandomSparseNodes allows a single isolated node.
const MinRandomSparseNodes = 1

//-----------------------------------------------------------------------------
// Default Weights and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// MinProbability and MaxProbability bound RandomSparse's p, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
