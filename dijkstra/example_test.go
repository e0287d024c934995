package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/dijkstra"
)

// ExampleDijkstra finds the cheapest route through a small "house" graph.
//
//	   0
//	 2/ \4
//	 1---2
//	1|   |3
//	 3---4
//	   1
func ExampleDijkstra() {
	g, _ := core.NewGraph(5)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 2, 4)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(1, 3, 1)
	_ = g.AddEdge(2, 4, 3)
	_ = g.AddEdge(3, 4, 1)

	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, _ := res.PathTo(4)
	fmt.Println("dist:", res.Dist)
	fmt.Println("path to 4:", p, "cost", res.Dist[4])
	// Output:
	// dist: [0 2 3 3 4]
	// path to 4: [0 1 3 4] cost 4
}
