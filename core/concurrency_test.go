// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepgraph/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are safe and every
// edge lands in both the edge list and the hub's adjacency list.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g, err := core.NewGraph(num + 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(0, id, int64(id)))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReaders mixes readers with a writer to surface races under -race.
func TestConcurrentReaders(t *testing.T) {
	g, err := core.NewGraph(50)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 49; i++ {
			_ = g.AddEdge(i, i+1, 1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = g.Edges()
			_, _ = g.Neighbors(i % 50)
			_ = g.Stats()
		}
	}()
	wg.Wait()

	require.Equal(t, 49, g.EdgeCount())
}
