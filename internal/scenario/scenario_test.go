package scenario_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepgraph/internal/engine"
	"github.com/katalvlaran/stepgraph/internal/scenario"
)

func TestLoad_AllFormatsAgree(t *testing.T) {
	end := 3
	want := &engine.Request{
		Algorithm: "dijkstra",
		NodeCount: 4,
		Edges:     [][]int64{{0, 1, 1}, {1, 2, 2}, {2, 3, 1}, {0, 3, 10}},
		Start:     0,
		End:       &end,
	}
	for _, name := range []string{"dijkstra.yaml", "dijkstra.toml", "dijkstra.json", "dijkstra.hcl"} {
		t.Run(name, func(t *testing.T) {
			got, err := scenario.Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, want, got)

			out, err := engine.New().Run(got)
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2, 3}, out.Path)
		})
	}
}

func TestLoad_HCLOptionalFields(t *testing.T) {
	req, err := scenario.Load(filepath.Join("testdata", "astar.hcl"))
	require.NoError(t, err)
	assert.Zero(t, req.Start)
	assert.Equal(t, []int64{3, 2, 1, 0}, req.Heuristic)
	require.NotNil(t, req.End)
	assert.Equal(t, 3, *req.End)
}

func TestLoad_Errors(t *testing.T) {
	_, err := scenario.Load("graph.xml")
	require.ErrorIs(t, err, scenario.ErrUnsupportedFormat)

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(bad, []byte("algorithm = \n"), 0o600))
	_, err = scenario.Load(bad)
	require.Error(t, err)
}

func TestDecode_UnknownKeys(t *testing.T) {
	cases := map[scenario.Format]string{
		scenario.YAML: "algorithm: bfs\nnum_nodes: 1\nnodes: 3\n",
		scenario.TOML: "algorithm = \"bfs\"\nnum_nodes = 1\nnodes = 3\n",
		scenario.JSON: `{"algorithm":"bfs","num_nodes":1,"nodes":3}`,
		scenario.HCL:  "algorithm = \"bfs\"\nnum_nodes = 1\nnodes = 3\n",
	}
	for f, src := range cases {
		t.Run(string(f), func(t *testing.T) {
			_, err := scenario.Decode(strings.NewReader(src), f)
			require.Error(t, err)
		})
	}

	_, err := scenario.Decode(strings.NewReader(""), scenario.Format("ini"))
	require.ErrorIs(t, err, scenario.ErrUnsupportedFormat)
}

func TestWriteYAML_Reloads(t *testing.T) {
	end := 2
	req := &engine.Request{
		Algorithm: "astar",
		NodeCount: 3,
		Edges:     [][]int64{{0, 1, 4}, {1, 2, 1}},
		End:       &end,
		Heuristic: []int64{1, 1, 0},
	}
	var buf bytes.Buffer
	require.NoError(t, scenario.WriteYAML(&buf, req))
	assert.Contains(t, buf.String(), "num_nodes: 3")

	got, err := scenario.Decode(&buf, scenario.YAML)
	require.NoError(t, err)
	assert.Equal(t, req, got)
}
