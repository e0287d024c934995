package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/dfs"
)

// ExampleDFS demonstrates a pre-order traversal on a diamond-shaped graph.
// Graph structure:
//
//	  0
//	 / \
//	1   2
//	 \ /
//	  3
//	 / \
//	4   5
func ExampleDFS() {
	g, _ := core.NewGraph(6)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {3, 5}} {
		_ = g.AddEdge(e[0], e[1], 1)
	}

	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Parent)
	// Output:
	// [0 1 3 2 4 5]
	// [-1 0 3 1 3 3]
}
