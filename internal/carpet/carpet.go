// Package carpet implements the aggregate of spec.md §3/§4.4: several
// Grids fused by a LinkTable into a single puzzle whose mutators keep every
// twin cell coherent.
package carpet

import (
	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/grid"
	"github.com/carpetsudoku/carpet/internal/link"
	"github.com/carpetsudoku/carpet/internal/pattern"
)

// Carpet is the aggregate described in spec.md §3: N, the pattern, the
// vector of grids, and the LinkTable, plus the difficulty recorded by the
// last propagator run.
type Carpet struct {
	N       int
	Pattern pattern.Pattern
	Grids   []*grid.Grid
	Links   *link.Table

	MaxTier    core.Tier
	Difficulty core.Difficulty
	Score      int
}

// New builds an empty carpet (every grid fresh, all candidates open) for
// the given N and pattern.
func New(n int, p pattern.Pattern) (*Carpet, error) {
	nGrids := p.NGrids()
	raws := pattern.RawLinks(p, n)
	table, err := link.Build(raws, nGrids)
	if err != nil {
		return nil, err
	}
	grids := make([]*grid.Grid, nGrids)
	for i := range grids {
		grids[i] = grid.New(n)
	}
	c := &Carpet{N: n, Pattern: p, Grids: grids, Links: table}
	return c, nil
}

// Clone deep-copies every grid; the LinkTable and Pattern are immutable
// after construction (spec.md §4.4) so they're shared, not copied.
func (c *Carpet) Clone() *Carpet {
	out := &Carpet{N: c.N, Pattern: c.Pattern, Links: c.Links, MaxTier: c.MaxTier, Difficulty: c.Difficulty, Score: c.Score}
	out.Grids = make([]*grid.Grid, len(c.Grids))
	for i, g := range c.Grids {
		out.Grids[i] = g.Clone()
	}
	return out
}

// Filled reports whether every grid is completely filled.
func (c *Carpet) Filled() bool {
	for _, g := range c.Grids {
		if !g.Filled() {
			return false
		}
	}
	return true
}

// FilledCells counts non-zero cells across every grid, without overlap
// compensation: a cell shared by k grids is counted k times here; a
// deduplicated count needs a walk over twin classes, which this does not do.
func (c *Carpet) FilledCells() int {
	n := 0
	for _, g := range c.Grids {
		n += g.FilledCells()
	}
	return n
}

// Value reads the board value at (g, x, y).
func (c *Carpet) Value(cell core.Cell) int { return c.Grids[cell.Grid].Value(cell.X, cell.Y) }

// Candidates reads the candidate set at (g, x, y).
func (c *Carpet) Candidates(cell core.Cell) grid.Candidates {
	return c.Grids[cell.Grid].Candidates(cell.X, cell.Y)
}
