package engine_test

import (
	"bytes"
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/internal/engine"
	"github.com/katalvlaran/stepgraph/internal/metrics"
	"github.com/katalvlaran/stepgraph/path"
)

func intp(v int) *int { return &v }

type EngineSuite struct {
	suite.Suite
	eng     *engine.Engine
	metrics *metrics.Metrics
	logs    *bytes.Buffer
}

func (s *EngineSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	logger := log.New()
	logger.SetOutput(s.logs)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	s.metrics = metrics.New()
	s.eng = engine.New(
		engine.WithLimits(engine.Limits{MaxNodes: 100, MaxEdges: 10}),
		engine.WithLogger(logger),
		engine.WithMetrics(s.metrics),
	)
}

func (s *EngineSuite) TestDijkstraPrefersDetour() {
	out, err := s.eng.Run(&engine.Request{
		Algorithm: "dijkstra",
		NodeCount: 4,
		Edges:     [][]int64{{0, 1, 1}, {1, 2, 2}, {2, 3, 1}, {0, 3, 10}},
		Start:     0,
		End:       intp(3),
	})
	s.Require().NoError(err)
	s.Equal(engine.Dijkstra, out.Algorithm)
	s.Equal([]int{0, 1, 2, 3}, out.Path)
	s.Equal(int64(4), out.Cost)
	s.Equal([]int64{0, 1, 3, 4}, out.Dist)
	s.NotEmpty(out.Steps)
	s.Equal(4, out.Graph.EdgeCount())

	s.Contains(s.logs.String(), "algorithm run")
	s.Contains(s.logs.String(), "algorithm=dijkstra")
	s.Equal(1.0, s.runs("dijkstra", metrics.OutcomeOK))
}

func (s *EngineSuite) TestBellmanFordNegativeCycleIsAnOutcome() {
	out, err := s.eng.Run(&engine.Request{
		Algorithm: "bellman-ford",
		NodeCount: 3,
		Edges:     [][]int64{{0, 1, 1}, {1, 2, -3}, {2, 0, 1}},
		End:       intp(2),
	})
	s.Require().NoError(err)
	s.True(out.NegativeCycle)
	s.Nil(out.Dist)
	s.NotNil(out.Path)
	s.Empty(out.Path)
	s.False(out.Reachable())
	s.Equal("Negative cycle detected!", out.Steps[len(out.Steps)-1])
	s.Equal(1.0, s.runs("bellmanford", metrics.OutcomeNegativeCycle))
}

func (s *EngineSuite) TestDisconnected() {
	edges := [][]int64{{0, 1, 1}}

	out, err := s.eng.Run(&engine.Request{Algorithm: "bfs", NodeCount: 3, Edges: edges})
	s.Require().NoError(err)
	s.Equal([]int{0, 1}, out.Order)
	s.Equal(-1, out.End)

	out, err = s.eng.Run(&engine.Request{Algorithm: "dijkstra", NodeCount: 3, Edges: edges, End: intp(2)})
	s.Require().NoError(err)
	s.Equal(path.Inf, out.Dist[2])
	s.Equal(path.Inf, out.Cost)
	s.NotNil(out.Path)
	s.Empty(out.Path)
	s.False(out.NegativeCycle)
}

func (s *EngineSuite) TestAStarLine() {
	out, err := s.eng.Run(&engine.Request{
		Algorithm: "a*",
		NodeCount: 4,
		Edges:     [][]int64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}},
		End:       intp(3),
		Heuristic: []int64{3, 2, 1, 0},
	})
	s.Require().NoError(err)
	s.Equal([]int{0, 1, 2, 3}, out.Path)
	s.Equal(int64(3), out.Cost)
	s.Nil(out.Dist)
}

func (s *EngineSuite) TestDFSByMenuNumber() {
	out, err := s.eng.Run(&engine.Request{
		Algorithm: "2",
		NodeCount: 4,
		Edges:     [][]int64{{0, 1, 1}, {0, 2, 1}, {1, 3, 1}},
	})
	s.Require().NoError(err)
	s.Equal(engine.DFS, out.Algorithm)
	s.Equal([]int{0, 1, 3, 2}, out.Order)
}

func (s *EngineSuite) TestRejections() {
	cases := map[string]struct {
		req  *engine.Request
		want string
	}{
		"nil":            {nil, "request is nil"},
		"no algorithm":   {&engine.Request{NodeCount: 1}, "algorithm must satisfy required"},
		"unknown":        {&engine.Request{Algorithm: "prim", NodeCount: 1}, "unknown algorithm"},
		"zero nodes":     {&engine.Request{Algorithm: "bfs"}, "num_nodes must satisfy gt=0"},
		"short edge":     {&engine.Request{Algorithm: "bfs", NodeCount: 2, Edges: [][]int64{{0, 1}}}, "edges[0] must satisfy len=3"},
		"edge range":     {&engine.Request{Algorithm: "bfs", NodeCount: 2, Edges: [][]int64{{0, 2, 1}}}, "edge #1 (0, 2)"},
		"start range":    {&engine.Request{Algorithm: "bfs", NodeCount: 2, Start: 2}, "start 2 must be between 0 and 1"},
		"negative start": {&engine.Request{Algorithm: "bfs", NodeCount: 2, Start: -1}, "start must satisfy gte=0"},
		"missing end":    {&engine.Request{Algorithm: "dijkstra", NodeCount: 2}, "end node is required"},
		"end range":      {&engine.Request{Algorithm: "dijkstra", NodeCount: 2, End: intp(5)}, "end 5 must be between 0 and 1"},
		"negative weight": {
			&engine.Request{Algorithm: "dijkstra", NodeCount: 2, Edges: [][]int64{{0, 1, -1}}, End: intp(1)},
			"negative weight -1, not allowed for dijkstra",
		},
		"negative weight astar": {
			&engine.Request{Algorithm: "astar", NodeCount: 2, Edges: [][]int64{{0, 1, -1}}, End: intp(1), Heuristic: []int64{0, 0}},
			"not allowed for astar",
		},
		"heuristic length": {
			&engine.Request{Algorithm: "astar", NodeCount: 2, End: intp(1), Heuristic: []int64{0}},
			"expected 2 heuristic values, got 1",
		},
		"heuristic sign": {
			&engine.Request{Algorithm: "astar", NodeCount: 2, End: intp(1), Heuristic: []int64{0, -4}},
			"heuristic[1] must satisfy gte=0",
		},
		"too many nodes": {&engine.Request{Algorithm: "bfs", NodeCount: 101}, "num_nodes 101 > 100"},
		"too many edges": {&engine.Request{Algorithm: "bfs", NodeCount: 2, Edges: make11()}, "11 edges > 10"},
	}
	for name, tc := range cases {
		s.Run(name, func() {
			out, err := s.eng.Run(tc.req)
			s.Nil(out)
			s.Require().Error(err)
			s.True(errors.Is(err, core.ErrInvalidArgument), "%v", err)
			s.Contains(err.Error(), tc.want)
		})
	}
	s.Contains(s.logs.String(), "request rejected")
}

func make11() [][]int64 {
	edges := make([][]int64, 11)
	for i := range edges {
		edges[i] = []int64{0, 1, 1}
	}

	return edges
}

func (s *EngineSuite) TestNegativeWeightsAllowedForTraversal() {
	out, err := s.eng.Run(&engine.Request{Algorithm: "bfs", NodeCount: 2, Edges: [][]int64{{0, 1, -5}}})
	s.Require().NoError(err)
	s.Equal([]int{0, 1}, out.Order)
}

// runs reads one stepgraph_runs_total sample from the registry.
func (s *EngineSuite) runs(alg, outcome string) float64 {
	families, err := s.metrics.Registry().Gather()
	s.Require().NoError(err)
	for _, mf := range families {
		if mf.GetName() != "stepgraph_runs_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["algorithm"] == alg && labels["outcome"] == outcome {
				return m.GetCounter().GetValue()
			}
		}
	}

	return 0
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func TestNewWithoutOptionsIsSilentAndUnlimited(t *testing.T) {
	eng := engine.New()
	assert.Zero(t, eng.Limits())
	out, err := eng.Run(&engine.Request{Algorithm: "bfs", NodeCount: 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, out.Order)
}
