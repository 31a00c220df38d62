package carpet_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carpetsudoku/carpet/internal/carpet"
	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/pattern"
)

func TestSamuraiBacktrackFillsEveryGridAndOverlapsAgree(t *testing.T) {
	c, err := carpet.New(3, pattern.NewSamurai())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	require.NoError(t, c.BacktrackSolve(rng))

	for _, g := range c.Grids {
		require.True(t, g.Filled())
	}

	// Every twin of every cell must agree after a full solve.
	for g := 0; g < len(c.Grids); g++ {
		size := c.Grids[g].Size
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				v := c.Value(core.Cell{Grid: g, X: x, Y: y})
				for _, twin := range c.TwinCells(g, x, y) {
					require.Equal(t, v, c.Value(twin))
				}
			}
		}
	}
}

func TestDiagonalLinkSetValuePropagatesToTwin(t *testing.T) {
	c, err := carpet.New(3, pattern.NewDiagonal(3))
	require.NoError(t, err)

	// Grid 0's top-right square is linked to grid 1's bottom-left square
	// (spec.md §4.2 Diagonal chain: "top-right of i <-> bottom-left of
	// i+1"). Pick a cell in grid 1's bottom-left square and confirm the
	// twin in grid 0's top-right square reads the same value.
	require.NoError(t, c.SetValue(1, 0, 6, 5))
	twins := c.TwinCells(1, 0, 6)
	require.True(t, len(twins) >= 2, "cell on a diagonal link must have at least one twin besides itself")
	for _, tw := range twins {
		require.Equal(t, 5, c.Value(tw))
	}

	v, err := c.RemoveValue(1, 0, 6)
	require.NoError(t, err)
	require.Equal(t, 5, v)
	for _, tw := range twins {
		require.Equal(t, 0, c.Value(tw))
	}
}

func TestIsUniqueFalseForAmbiguousCarpet(t *testing.T) {
	c, err := carpet.New(3, pattern.NewSimple())
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(7))
	require.NoError(t, c.BacktrackSolve(rng))

	solved := c.Clone()
	// Clear every cell except two that still leave more than one completion.
	g := solved.Grids[0]
	kept := map[core.Cell]bool{{Grid: 0, X: 0, Y: 0}: true, {Grid: 0, X: 1, Y: 0}: true}
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			cell := core.Cell{Grid: 0, X: x, Y: y}
			if !kept[cell] && solved.Value(cell) != 0 {
				_, err := solved.RemoveValue(0, x, y)
				require.NoError(t, err)
			}
		}
	}
	require.False(t, solved.IsUnique())
}

func TestRuleSolveSolvesNakedSingle(t *testing.T) {
	c, err := carpet.New(3, pattern.NewSimple())
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(3))
	require.NoError(t, c.BacktrackSolve(rng))

	solved := c.Clone()
	g := solved.Grids[0]
	lastX, lastY := g.Size-1, g.Size-1
	_, err = solved.RemoveValue(0, lastX, lastY)
	require.NoError(t, err)
	require.False(t, solved.Filled())

	applied, err := solved.RuleSolveUntil(false, false, 0)
	require.NoError(t, err)
	require.True(t, applied >= 1)
	require.True(t, solved.Filled())
}
