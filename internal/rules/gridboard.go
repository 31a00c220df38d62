package rules

import (
	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/grid"
)

// GridBoard adapts a bare grid.Grid to the Board interface; every cell
// carries Grid=0 since there is only one grid.
type GridBoard struct {
	G *grid.Grid
}

func (b GridBoard) Size() int { return b.G.Size }

func (b GridBoard) Value(c core.Cell) int { return b.G.Value(c.X, c.Y) }

func (b GridBoard) Candidates(c core.Cell) grid.Candidates { return b.G.Candidates(c.X, c.Y) }

func (b GridBoard) SetValue(c core.Cell, v int) error { return b.G.SetValue(c.X, c.Y, v) }

func (b GridBoard) RemoveCandidate(c core.Cell, v int) error {
	return b.G.RemoveCandidate(c.X, c.Y, v)
}

func (b GridBoard) Peers(c core.Cell, kind grid.GroupKind) []core.Cell {
	pts := b.G.Peers(c.X, c.Y, kind)
	out := make([]core.Cell, len(pts))
	for i, p := range pts {
		out[i] = core.Cell{Grid: 0, X: p.X, Y: p.Y}
	}
	return out
}

func (b GridBoard) Units() []Unit {
	n := b.G.Size
	units := make([]Unit, 0, n*3)
	for i := 0; i < n; i++ {
		units = append(units, Unit{Kind: UnitRow, Index: i, Cells: toCells(b.G.RowCells(i))})
		units = append(units, Unit{Kind: UnitCol, Index: i, Cells: toCells(b.G.ColCells(i))})
		units = append(units, Unit{Kind: UnitSquare, Index: i, Cells: toCells(b.G.SquareCells(i))})
	}
	return units
}

func (b GridBoard) AllCells() []core.Cell {
	n := b.G.Size
	out := make([]core.Cell, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out = append(out, core.Cell{X: x, Y: y})
		}
	}
	return out
}

func toCells(pts []grid.Point) []core.Cell {
	out := make([]core.Cell, len(pts))
	for i, p := range pts {
		out[i] = core.Cell{X: p.X, Y: p.Y}
	}
	return out
}
