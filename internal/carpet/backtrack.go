package carpet

import (
	"math/rand"

	"github.com/carpetsudoku/carpet/internal/core"
)

// allCellsLex lists every cell of every grid in row-major, grid-ascending
// order — the search order the DFS below scans for its next empty cell,
// generalizing the teacher's flat 81-cell scan to a carpet's several grids.
func (c *Carpet) allCellsLex() []core.Cell {
	var out []core.Cell
	for g, gr := range c.Grids {
		for y := 0; y < gr.Size; y++ {
			for x := 0; x < gr.Size; x++ {
				out = append(out, core.Cell{Grid: g, X: x, Y: y})
			}
		}
	}
	return out
}

func firstEmpty(c *Carpet, cells []core.Cell) (core.Cell, bool) {
	for _, cc := range cells {
		if c.Value(cc) == 0 {
			return cc, true
		}
	}
	return core.Cell{}, false
}

// BacktrackSolve fills every empty cell by depth-first trial, used only
// for full-grid generation (spec.md §4.4). Candidates are tried in
// shuffled order via rng so repeated calls produce different completions.
// A NoCandidate error from SetValue is an expected branch failure: the
// caller rolls back and tries the next candidate, never propagating it.
func (c *Carpet) BacktrackSolve(rng *rand.Rand) error {
	cells := c.allCellsLex()
	if backtrackStep(c, cells, rng) {
		return nil
	}
	return core.ErrPatternImpossible
}

func backtrackStep(c *Carpet, cells []core.Cell, rng *rand.Rand) bool {
	cell, ok := firstEmpty(c, cells)
	if !ok {
		return true
	}
	cand := c.Candidates(cell).ToSlice()
	rng.Shuffle(len(cand), func(i, j int) { cand[i], cand[j] = cand[j], cand[i] })
	for _, v := range cand {
		if err := c.SetValue(cell.Grid, cell.X, cell.Y, v); err != nil {
			c.RemoveValue(cell.Grid, cell.X, cell.Y)
			continue
		}
		if backtrackStep(c, cells, rng) {
			return true
		}
		c.RemoveValue(cell.Grid, cell.X, cell.Y)
	}
	return false
}

// CountSolutions counts completions up to limit, via the same DFS
// truncated early (spec.md §4.4 is_unique).
func (c *Carpet) CountSolutions(limit int) int {
	cells := c.allCellsLex()
	count := 0
	countStep(c, cells, limit, &count)
	return count
}

func countStep(c *Carpet, cells []core.Cell, limit int, count *int) {
	if *count >= limit {
		return
	}
	cell, ok := firstEmpty(c, cells)
	if !ok {
		*count++
		return
	}
	for _, v := range c.Candidates(cell).ToSlice() {
		if err := c.SetValue(cell.Grid, cell.X, cell.Y, v); err != nil {
			c.RemoveValue(cell.Grid, cell.X, cell.Y)
			continue
		}
		countStep(c, cells, limit, count)
		c.RemoveValue(cell.Grid, cell.X, cell.Y)
		if *count >= limit {
			return
		}
	}
}

// IsUnique reports whether the carpet has exactly one completion.
func (c *Carpet) IsUnique() bool { return c.CountSolutions(2) == 1 }
