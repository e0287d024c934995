// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaults verifies the deterministic defaults.
func TestDefaults(t *testing.T) {
	cfg := newBuilderConfig()
	require.Nil(t, cfg.rng)
	require.Equal(t, DefaultEdgeWeight, cfg.weight())
}

// TestRNGOptions verifies reproducibility with WithSeed and last-wins order.
func TestRNGOptions(t *testing.T) {
	a := newBuilderConfig(WithSeed(5))
	b := newBuilderConfig(WithSeed(5))
	require.NotNil(t, a.rng)
	require.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithSeed(5), WithRand(r))
	require.Same(t, r, c.rng)

	require.Panics(t, func() { WithRand(nil) })
	require.Panics(t, func() { WithWeightFn(nil) })
}

// TestWeightOptions verifies later weight options override earlier ones.
func TestWeightOptions(t *testing.T) {
	cfg := newBuilderConfig(WithConstantWeight(3), WithConstantWeight(-4))
	require.Equal(t, int64(-4), cfg.weight())
}
