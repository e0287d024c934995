package bellmanford_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepgraph/bellmanford"
	"github.com/katalvlaran/stepgraph/core"
)

// ExampleBellmanFord shows a negative cycle being reported with its trace.
func ExampleBellmanFord() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, -3)
	_ = g.AddEdge(2, 0, 1)

	res, err := bellmanford.BellmanFord(g, 0)
	if errors.Is(err, bellmanford.ErrNegativeCycle) {
		fmt.Println(res.Steps[len(res.Steps)-1])
		fmt.Println(res.Dist == nil)
	}
	// Output:
	// Negative cycle detected!
	// true
}
