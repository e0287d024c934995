package astar_test

import (
	"fmt"

	"github.com/katalvlaran/stepgraph/astar"
	"github.com/katalvlaran/stepgraph/core"
)

// ExampleSearcher_Search walks a 2x3 grid from corner to corner using the
// Manhattan distance as heuristic.
func ExampleSearcher_Search() {
	// 0 - 1 - 2
	// |   |   |
	// 3 - 4 - 5
	g, _ := core.BuildGraph(6, []core.Edge{
		{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 1},
		{U: 3, V: 4, Weight: 1}, {U: 4, V: 5, Weight: 1},
		{U: 0, V: 3, Weight: 1}, {U: 1, V: 4, Weight: 1}, {U: 2, V: 5, Weight: 1},
	})
	s, _ := astar.New(g, []int64{3, 2, 1, 2, 1, 0})

	res, _ := s.Search(0, 5)
	fmt.Println(res.Path, res.Cost, res.Expanded)
	// Output:
	// [0 1 2 5] 3 6
}
