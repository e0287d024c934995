package path_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/path"
)

const N = path.None

func TestReconstruct(t *testing.T) {
	cases := []struct {
		name          string
		prev          []int
		start, target int
		want          []int
	}{
		{"line", []int{N, 0, 1, 2}, 0, 3, []int{0, 1, 2, 3}},
		{"target is start", []int{N, 0, 1}, 0, 0, []int{0}},
		{"isolated target", []int{N, 0, N}, 0, 2, []int{}},
		{"chain rooted elsewhere", []int{N, N, 1}, 0, 2, []int{}},
		{"cycle", []int{N, 2, 1}, 0, 2, []int{}},
		{"self predecessor", []int{N, 1}, 0, 1, []int{}},
		{"predecessor out of range", []int{N, 5}, 0, 1, []int{}},
		{"middle start", []int{1, N, 1, 2}, 1, 3, []int{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := path.Reconstruct(tc.prev, tc.start, tc.target)
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestReconstructRejectsOutOfRange(t *testing.T) {
	_, err := path.Reconstruct([]int{N, 0}, 0, 2)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = path.Reconstruct([]int{N, 0}, -1, 1)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestWalkReportsCorruption(t *testing.T) {
	_, err := path.Walk([]int{N, 2, 1}, 2)
	require.ErrorIs(t, err, path.ErrCorruptPredecessorChain)

	_, err = path.Walk([]int{N, 9}, 1)
	require.ErrorIs(t, err, path.ErrCorruptPredecessorChain)

	p, err := path.Walk([]int{N, N, 1}, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, p)
}

func TestTree(t *testing.T) {
	tr := path.NewTree(4, 1)
	require.Equal(t, []int64{path.Inf, 0, path.Inf, path.Inf}, tr.Dist)
	require.Equal(t, []int{N, N, N, N}, tr.Prev)

	tr.Dist[2], tr.Prev[2] = 5, 1
	require.True(t, tr.Reachable(2))
	require.False(t, tr.Reachable(3))
	require.False(t, tr.Reachable(9))

	p, err := tr.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, p)

	p, err = tr.PathTo(3)
	require.NoError(t, err)
	require.Empty(t, p)
}
