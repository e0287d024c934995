package cmd_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepgraph/internal/engine"
	"github.com/katalvlaran/stepgraph/internal/scenario"
)

// TestShippedExamples replays every scenario under examples/.
func TestShippedExamples(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.*"))
	require.NoError(t, err)
	require.Len(t, files, 5)

	eng := engine.New()
	outcomes := map[string]*engine.Outcome{}
	for _, f := range files {
		req, err := scenario.Load(f)
		require.NoError(t, err, f)
		out, err := eng.Run(req)
		require.NoError(t, err, f)
		outcomes[filepath.Base(f)] = out
	}

	city := outcomes["city_route.yaml"]
	assert.Equal(t, []int{0, 2, 1, 3, 5}, city.Path)
	assert.Equal(t, int64(14), city.Cost)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 6, 5}, outcomes["broadcast.yaml"].Order)

	terrain := outcomes["terrain.toml"]
	assert.Equal(t, int64(4), terrain.Cost)
	assert.NotContains(t, terrain.Path, 4)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, outcomes["maze.json"].Order)

	assert.True(t, outcomes["penalty_road.hcl"].NegativeCycle)

	out, err := execute(t, "", append([]string{"run"}, files...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Result: negative cycle detected")
}
