package dfs_test

import (
	"testing"

	"github.com/katalvlaran/stepgraph/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a chain of 10,000 nodes.
// The graph is built once; only traversal is timed.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(b, 10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}
