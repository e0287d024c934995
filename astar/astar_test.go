package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepgraph/astar"
	"github.com/katalvlaran/stepgraph/builder"
	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/dijkstra"
	"github.com/katalvlaran/stepgraph/path"
)

func build(t *testing.T, n int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g, err := core.BuildGraph(n, edges)
	require.NoError(t, err)

	return g
}

func line(t *testing.T) *core.Graph {
	return build(t, 4,
		core.Edge{U: 0, V: 1, Weight: 1},
		core.Edge{U: 1, V: 2, Weight: 1},
		core.Edge{U: 2, V: 3, Weight: 1},
	)
}

func TestNew_Validation(t *testing.T) {
	_, err := astar.New(nil, nil)
	require.ErrorIs(t, err, astar.ErrNilGraph)

	g := line(t)
	_, err = astar.New(g, []int64{0, 0})
	require.ErrorIs(t, err, astar.ErrHeuristicLength)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = astar.New(g, []int64{0, 0, -1, 0})
	require.ErrorIs(t, err, astar.ErrNegativeHeuristic)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
	require.Contains(t, err.Error(), "heuristic[2] = -1")
}

func TestNew_CopiesHeuristic(t *testing.T) {
	g := line(t)
	h := []int64{3, 2, 1, 0}
	s, err := astar.New(g, h)
	require.NoError(t, err)
	h[1] = 1000

	res, err := s.Search(0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Cost)
	assert.Equal(t, 4, res.Expanded)
}

func TestSearch_OutOfRange(t *testing.T) {
	s, err := astar.New(line(t), []int64{0, 0, 0, 0})
	require.NoError(t, err)

	_, err = s.Search(-1, 3)
	require.ErrorIs(t, err, astar.ErrNodeOutOfRange)
	_, err = s.Search(0, 4)
	require.ErrorIs(t, err, astar.ErrNodeOutOfRange)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestSearch_LineTrace(t *testing.T) {
	s, err := astar.New(line(t), []int64{3, 2, 1, 0})
	require.NoError(t, err)

	var streamed []string
	res, err := s.Search(0, 3, astar.WithOnStep(func(l string) { streamed = append(streamed, l) }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Path)
	assert.Equal(t, int64(3), res.Cost)
	assert.Equal(t, []string{
		"Initialize: push start node 0 into the priority queue with heuristic = 3.",
		"Step 1: pop node 0 from the queue (f = 3, g = 0).",
		"  → push node 1 with f = 3 (g = 1, heuristic = 2).",
		"Step 2: pop node 1 from the queue (f = 3, g = 1).",
		"  → push node 2 with f = 3 (g = 2, heuristic = 1).",
		"Step 3: pop node 2 from the queue (f = 3, g = 2).",
		"  → push node 3 with f = 3 (g = 3, heuristic = 0).",
		"Step 4: pop node 3 from the queue (f = 3, g = 3).",
		"  → reached goal node 3.",
		"A* finished. Nodes expanded: 4",
	}, res.Steps)
	assert.Equal(t, res.Steps, streamed)
}

func TestSearch_StartIsGoal(t *testing.T) {
	s, err := astar.New(line(t), []int64{5, 0, 0, 0})
	require.NoError(t, err)

	res, err := s.Search(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Equal(t, 1, res.Expanded)
}

func TestSearch_Unreachable(t *testing.T) {
	g := build(t, 3, core.Edge{U: 0, V: 1, Weight: 2})
	s, err := astar.New(g, []int64{0, 0, 0})
	require.NoError(t, err)

	res, err := s.Search(0, 2)
	require.NoError(t, err)
	assert.NotNil(t, res.Path)
	assert.Empty(t, res.Path)
	assert.Equal(t, path.Inf, res.Cost)
	assert.Equal(t, 2, res.Expanded)
	assert.Equal(t, "A* finished. Nodes expanded: 2", res.Steps[len(res.Steps)-1])
}

// TestSearch_PrefersCheaperDetour: the direct edge is heavier than the detour.
func TestSearch_PrefersCheaperDetour(t *testing.T) {
	g := build(t, 3,
		core.Edge{U: 0, V: 2, Weight: 10},
		core.Edge{U: 0, V: 1, Weight: 2},
		core.Edge{U: 1, V: 2, Weight: 3},
	)
	s, err := astar.New(g, []int64{0, 0, 0})
	require.NoError(t, err)

	var expanded []int
	res, err := s.Search(0, 2, astar.WithOnExpand(func(id int, _, _ int64) { expanded = append(expanded, id) }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Path)
	assert.Equal(t, int64(5), res.Cost)
	assert.Equal(t, []int{0, 1, 2}, expanded)
}

// pathCost sums the cheapest edge between consecutive path nodes.
func pathCost(t *testing.T, g *core.Graph, p []int) int64 {
	t.Helper()
	var sum int64
	for i := 1; i < len(p); i++ {
		nbs, err := g.Neighbors(p[i-1])
		require.NoError(t, err)
		best := path.Inf
		for _, nb := range nbs {
			if nb.ID == p[i] && nb.Weight < best {
				best = nb.Weight
			}
		}
		require.NotEqual(t, path.Inf, best, "no edge %d-%d", p[i-1], p[i])
		sum += best
	}

	return sum
}

// TestSearch_MatchesDijkstra runs every (start, goal) pair on random graphs,
// once with a zero heuristic and once with the exact distance to the goal.
func TestSearch_MatchesDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		n := 3 + int(seed%6)
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 9)},
			builder.RandomSparse(n, 0.5),
		)
		require.NoError(t, err)

		zero, err := astar.New(g, make([]int64, n))
		require.NoError(t, err)

		for goal := 0; goal < n; goal++ {
			toGoal, err := dijkstra.Dijkstra(g, goal)
			require.NoError(t, err)
			exact := make([]int64, n)
			for v, d := range toGoal.Dist {
				if d != path.Inf {
					exact[v] = d
				}
			}
			informed, err := astar.New(g, exact)
			require.NoError(t, err)

			for start := 0; start < n; start++ {
				want := toGoal.Dist[start]
				for _, s := range []*astar.Searcher{zero, informed} {
					res, err := s.Search(start, goal)
					require.NoError(t, err)
					require.Equal(t, want, res.Cost, "seed %d %d→%d", seed, start, goal)
					if want == path.Inf {
						require.Empty(t, res.Path)
						continue
					}
					require.Equal(t, start, res.Path[0])
					require.Equal(t, goal, res.Path[len(res.Path)-1])
					require.Equal(t, want, pathCost(t, g, res.Path))
				}
			}
		}
	}
}
