package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepgraph/internal/cmd"
	"github.com/katalvlaran/stepgraph/internal/scenario"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestGenerateThenRun(t *testing.T) {
	file := filepath.Join(t.TempDir(), "grid.yaml")
	_, err := execute(t, "", "generate", "grid", "--rows", "2", "--cols", "3",
		"--algorithm", "astar", "--seed", "3", "-f", file)
	require.NoError(t, err)

	req, err := scenario.Load(file)
	require.NoError(t, err)
	assert.Equal(t, "astar", req.Algorithm)
	assert.Equal(t, 6, req.NodeCount)
	assert.Len(t, req.Edges, 7)
	require.NotNil(t, req.End)
	assert.Equal(t, 5, *req.End)
	assert.Equal(t, []int64{0, 0, 0, 0, 0, 0}, req.Heuristic)

	out, err := execute(t, "", "run", "--output", "json", file)
	require.NoError(t, err)
	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "astar", reports[0]["algorithm"])
	assert.NotEmpty(t, reports[0]["path"])
}

func TestGenerateToStdout(t *testing.T) {
	out, err := execute(t, "", "generate", "path", "--nodes", "3", "--algorithm", "bfs",
		"--min-weight", "2", "--max-weight", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: bfs\n")
	assert.NotContains(t, out, "end:")
	assert.NotContains(t, out, "heuristic:")

	req, err := scenario.Decode(strings.NewReader(out), scenario.YAML)
	require.NoError(t, err)
	assert.Equal(t, 3, req.NodeCount)
	assert.Equal(t, [][]int64{{0, 1, 2}, {1, 2, 2}}, req.Edges)
}

func TestGenerateErrors(t *testing.T) {
	_, err := execute(t, "", "generate", "torus")
	require.Error(t, err)

	_, err = execute(t, "", "generate", "path", "--min-weight", "5", "--max-weight", "1")
	require.ErrorContains(t, err, "--max-weight 1 is below --min-weight 5")

	_, err = execute(t, "", "generate", "path", "--algorithm", "prim")
	require.ErrorContains(t, err, "unknown algorithm")
}

func TestRun_TextAndFailures(t *testing.T) {
	good := writeFile(t, "ok.toml", `
algorithm = "dijkstra"
num_nodes = 4
edges = [[0, 1, 1], [1, 2, 2], [2, 3, 1], [0, 3, 10]]
end = 3
`)
	bad := writeFile(t, "bad.json", `{"algorithm":"dijkstra","num_nodes":2,"edges":[[0,1,-1]],"end":1}`)
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	out, err := execute(t, "", "run", "--workers", "2", good, bad, missing)
	require.ErrorContains(t, err, "2 of 3 scenarios failed")

	assert.Contains(t, out, "(dijkstra) ==")
	assert.Contains(t, out, "Path: 0 → 1 → 2 → 3 (cost 4)")
	assert.Contains(t, out, "negative weight -1, not allowed for dijkstra")
	assert.Less(t, strings.Index(out, "ok.toml"), strings.Index(out, "bad.json"))
	assert.Less(t, strings.Index(out, "bad.json"), strings.Index(out, "missing.yaml"))
}

func TestRun_YAMLNegativeCycle(t *testing.T) {
	f := writeFile(t, "neg.hcl", `
algorithm = "bellmanford"
num_nodes = 3
edges     = [[0, 1, 1], [1, 2, -3], [2, 0, 1]]
end       = 2
`)
	out, err := execute(t, "", "run", "-o", "yaml", "--diagram", f)
	require.NoError(t, err)
	assert.Contains(t, out, "negative_cycle: true")
	assert.Contains(t, out, "flowchart LR")
	assert.NotContains(t, out, "dist:")
}

func TestInteractive(t *testing.T) {
	out, err := execute(t, "1\n2\n1\n0 1 3\n0\nn\n", "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Visit order: 0 → 1")
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "stepgraph.toml", "[engine]\nmax_nodes = 2\n")
	f := writeFile(t, "big.yaml", "algorithm: bfs\nnum_nodes: 3\n")
	out, err := execute(t, "", "--config", cfg, "run", f)
	require.Error(t, err)
	assert.Contains(t, out, "num_nodes 3 > 2")

	_, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "none.toml"), "run", f)
	require.Error(t, err)
}
