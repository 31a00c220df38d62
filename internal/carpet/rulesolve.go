package carpet

import (
	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/grid"
	"github.com/carpetsudoku/carpet/internal/rules"
)

// gridView adapts one grid of a Carpet to rules.Board: Units stay
// grid-local (spec.md §4.5/SPEC_FULL.md §D), but Peers and the mutators
// go through the Carpet so a rule's conclusion propagates to every twin.
type gridView struct {
	c *Carpet
	g int
}

func (v gridView) Size() int { return v.c.Grids[v.g].Size }

func (v gridView) Value(cell core.Cell) int { return v.c.Grids[v.g].Value(cell.X, cell.Y) }

func (v gridView) Candidates(cell core.Cell) grid.Candidates {
	return v.c.Grids[v.g].Candidates(cell.X, cell.Y)
}

func (v gridView) SetValue(cell core.Cell, val int) error {
	return v.c.SetValue(cell.Grid, cell.X, cell.Y, val)
}

func (v gridView) RemoveCandidate(cell core.Cell, val int) error {
	return v.c.RemoveCandidate(cell, val)
}

func (v gridView) Peers(cell core.Cell, kind grid.GroupKind) []core.Cell {
	return v.c.GlobalPeers(cell, kind)
}

func (v gridView) Units() []rules.Unit {
	g := v.c.Grids[v.g]
	units := make([]rules.Unit, 0, g.Size*3)
	for i := 0; i < g.Size; i++ {
		units = append(units, rules.Unit{Kind: rules.UnitRow, Index: i, Cells: toCells(v.g, g.RowCells(i))})
		units = append(units, rules.Unit{Kind: rules.UnitCol, Index: i, Cells: toCells(v.g, g.ColCells(i))})
		units = append(units, rules.Unit{Kind: rules.UnitSquare, Index: i, Cells: toCells(v.g, g.SquareCells(i))})
	}
	return units
}

func (v gridView) AllCells() []core.Cell {
	g := v.c.Grids[v.g]
	out := make([]core.Cell, 0, g.Size*g.Size)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			out = append(out, core.Cell{Grid: v.g, X: x, Y: y})
		}
	}
	return out
}

func toCells(g int, pts []grid.Point) []core.Cell {
	out := make([]core.Cell, len(pts))
	for i, p := range pts {
		out[i] = core.Cell{Grid: g, X: p.X, Y: p.Y}
	}
	return out
}

// RuleSolve runs the Propagator once over every grid in turn, each grid's
// view propagating mutations back through Carpet.SetValue/RemoveCandidate
// so twins stay coherent; it returns the number of moves applied across
// every grid and tracks the carpet's overall max tier and score (spec.md
// §4.4 Carpet.rule_solve).
func (c *Carpet) RuleSolve(maxTier core.Tier) (int, error) {
	applied := 0
	for g := range c.Grids {
		p := rules.NewPropagator(gridView{c: c, g: g}, maxTier)
		n, err := p.RunUntilFixpoint()
		applied += n
		for _, mv := range p.Moves {
			if mv.Tier > c.MaxTier {
				c.MaxTier = mv.Tier
			}
		}
		c.Difficulty = core.ClassOf(c.MaxTier)
		c.Score += p.Score
		if err != nil {
			return applied, err
		}
	}
	return applied, nil
}

// RuleSolveUntil iterates RuleSolve until no further progress is made on
// the requested axes (stopOnNoPossibilityChange, stopOnNoValueChange),
// per spec.md §4.4 rule_solve_until. Either axis alone is satisfied once a
// full RuleSolve pass applies zero moves, since a Move always represents
// either a value assignment or a possibility (candidate) change.
func (c *Carpet) RuleSolveUntil(stopOnNoPossibilityChange, stopOnNoValueChange bool, maxTier core.Tier) (int, error) {
	total := 0
	for {
		n, err := c.RuleSolve(maxTier)
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, nil
		}
		if c.Filled() {
			return total, nil
		}
	}
}
