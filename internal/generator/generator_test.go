package generator_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carpetsudoku/carpet/internal/carpet"
	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/generator"
	"github.com/carpetsudoku/carpet/internal/pattern"
)

func TestGeneratorProducesUniqueEasySimplePuzzle(t *testing.T) {
	c, err := carpet.New(3, pattern.NewSimple())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	require.NoError(t, c.BacktrackSolve(rng))
	require.True(t, c.Filled())

	g := generator.New(core.DifficultyEasy)
	out, err := g.Run(context.Background(), c, rng)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.True(t, out.IsUnique())
	require.True(t, g.Counters.Explored >= 1)
}

func TestGeneratorRespectsAbsoluteMinimumClueFloor(t *testing.T) {
	c, err := carpet.New(3, pattern.NewSimple())
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(9))
	require.NoError(t, c.BacktrackSolve(rng))

	g := generator.New(core.DifficultyExtreme)
	out, err := g.Run(context.Background(), c, rng)
	require.NoError(t, err)

	// 2*N^2 - 1 = 17 for N=3; the emitted puzzle must never drop below it.
	filled := 0
	grSize := out.Grids[0].Size
	for y := 0; y < grSize; y++ {
		for x := 0; x < grSize; x++ {
			if out.Value(core.Cell{Grid: 0, X: x, Y: y}) != 0 {
				filled++
			}
		}
	}
	require.True(t, filled >= 17)
}
