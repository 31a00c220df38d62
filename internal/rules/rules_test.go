package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/grid"
	"github.com/carpetsudoku/carpet/internal/rules"
)

// almostSolved9 returns a 9x9 grid one naked single away from completion:
// every cell filled from a known-valid solution except (8,8), which must
// end up holding 9.
func almostSolved9(t *testing.T) *grid.Grid {
	t.Helper()
	solution := [][]int{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 0},
	}
	g := grid.New(3)
	for y, row := range solution {
		for x, v := range row {
			if v == 0 {
				continue
			}
			require.NoError(t, g.SetValue(x, y, v))
		}
	}
	return g
}

func TestDetectNakedSingleSolvesLastCell(t *testing.T) {
	g := almostSolved9(t)
	b := rules.GridBoard{G: g}
	mv := rules.DetectNakedSingle(b)
	require.NotNil(t, mv)
	require.True(t, mv.Changed())
	require.Equal(t, 9, mv.Value)
	require.Equal(t, core.Cell{X: 8, Y: 8}, *mv.Assigned)
}

func TestPropagatorSolvesFinalCell(t *testing.T) {
	g := almostSolved9(t)
	b := rules.GridBoard{G: g}
	p := rules.NewPropagator(b, 0)
	applied, err := p.RunUntilFixpoint()
	require.NoError(t, err)
	require.Equal(t, 1, applied)
	require.Equal(t, 9, g.Value(8, 8))
	require.True(t, g.Filled())
}

func TestDetectPointingPairEliminatesOutsideSquare(t *testing.T) {
	g := grid.New(3)
	b := rules.GridBoard{G: g}
	// Confine digit 5 within square 0 to the two row-0 cells (0,0) and (1,0)
	// by removing it as a candidate from every other cell of that square.
	for _, p := range g.SquareCells(0) {
		if p.Y != 0 || p.X > 1 {
			require.NoError(t, g.RemoveCandidate(p.X, p.Y, 5))
		}
	}
	require.True(t, g.Candidates(1, 0).Has(5))
	mv := rules.DetectPointingPair(b)
	require.NotNil(t, mv)
	require.True(t, mv.Changed())
	for _, e := range mv.Eliminations {
		require.Equal(t, 5, e.Value)
		require.NotEqual(t, 0, e.Cell.X)
	}
	require.True(t, g.Candidates(3, 0).Has(5), "RunOnce/Detect must not mutate until applied")
}

func TestDetectNakedPairEliminatesFromUnit(t *testing.T) {
	g := grid.New(3)
	b := rules.GridBoard{G: g}
	// Force cells (0,0) and (1,0) down to the same bivalue pair {1,2}.
	for v := 3; v <= 9; v++ {
		require.NoError(t, g.RemoveCandidate(0, 0, v))
		require.NoError(t, g.RemoveCandidate(1, 0, v))
	}
	require.Equal(t, 2, g.Candidates(0, 0).Count())
	require.Equal(t, 2, g.Candidates(1, 0).Count())
	mv := rules.DetectNakedPair(b)
	require.NotNil(t, mv)
	require.True(t, mv.Changed())
	for _, e := range mv.Eliminations {
		require.Contains(t, []int{1, 2}, e.Value)
		require.NotEqual(t, core.Cell{X: 0, Y: 0}, e.Cell)
		require.NotEqual(t, core.Cell{X: 1, Y: 0}, e.Cell)
	}
}

func TestPropagatorRespectsMaxTier(t *testing.T) {
	g := grid.New(3)
	b := rules.GridBoard{G: g}
	for v := 3; v <= 9; v++ {
		require.NoError(t, g.RemoveCandidate(0, 0, v))
		require.NoError(t, g.RemoveCandidate(1, 0, v))
	}
	p := rules.NewPropagator(b, rules.TierNakedSingle)
	mv, err := p.RunOnce()
	require.NoError(t, err)
	require.Nil(t, mv, "naked pair tier is above the cap, it must not fire")
}
