package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/stepgraph/core"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm.
var ErrUnknownAlgorithm = fmt.Errorf("%w: engine: unknown algorithm", core.ErrInvalidArgument)

// Algorithm selects one engine. The numeric values are the CLI menu numbers.
type Algorithm int

// Supported algorithms.
const (
	BFS Algorithm = iota + 1
	DFS
	Dijkstra
	BellmanFord
	AStar
)

// Algorithms lists every algorithm in menu order.
var Algorithms = []Algorithm{BFS, DFS, Dijkstra, BellmanFord, AStar}

var algorithmNames = map[Algorithm]string{
	BFS:         "bfs",
	DFS:         "dfs",
	Dijkstra:    "dijkstra",
	BellmanFord: "bellmanford",
	AStar:       "astar",
}

var algorithmTitles = map[Algorithm]string{
	BFS:         "Breadth-First Search",
	DFS:         "Depth-First Search",
	Dijkstra:    "Dijkstra's Algorithm",
	BellmanFord: "Bellman-Ford Algorithm",
	AStar:       "A* Search",
}

var aliases = map[string]Algorithm{
	"1": BFS, "bfs": BFS, "breadth-first": BFS,
	"2": DFS, "dfs": DFS, "depth-first": DFS,
	"3": Dijkstra, "dijkstra": Dijkstra,
	"4": BellmanFord, "bellmanford": BellmanFord, "bellman-ford": BellmanFord, "bellman_ford": BellmanFord,
	"5": AStar, "astar": AStar, "a*": AStar, "a-star": AStar, "a_star": AStar,
}

// ParseAlgorithm accepts a canonical name, a common alias or a menu number.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if a, ok := aliases[key]; ok {
		return a, nil
	}

	return 0, fmt.Errorf("%w %q (want one of bfs, dfs, dijkstra, bellmanford, astar)", ErrUnknownAlgorithm, s)
}

// String returns the canonical wire name.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Title returns the human-readable heading.
func (a Algorithm) Title() string {
	return algorithmTitles[a]
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// NeedsEnd reports whether the algorithm computes a path to an end node.
func (a Algorithm) NeedsEnd() bool {
	return a == Dijkstra || a == BellmanFord || a == AStar
}

// NeedsHeuristic reports whether a per-node heuristic is required.
func (a Algorithm) NeedsHeuristic() bool {
	return a == AStar
}

// AllowsNegativeWeights reports whether negative edge weights are accepted.
func (a Algorithm) AllowsNegativeWeights() bool {
	return a != Dijkstra && a != AStar
}

// ProducesDistances reports whether the Outcome carries a Dist array.
func (a Algorithm) ProducesDistances() bool {
	return a == Dijkstra || a == BellmanFord
}

// Traversal reports whether the primary result is a visit order.
func (a Algorithm) Traversal() bool {
	return a == BFS || a == DFS
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, errors.New("engine: cannot marshal invalid algorithm")
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	parsed, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}
