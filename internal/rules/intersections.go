package rules

import (
	"github.com/carpetsudoku/carpet/internal/core"
)

func boxSizeOf(size int) int {
	for n := 1; n*n <= size; n++ {
		if n*n == size {
			return n
		}
	}
	return 1
}

func squareIndexOf(b Board, c core.Cell) int {
	n := boxSizeOf(b.Size())
	return (c.Y/n)*n + (c.X / n)
}

// detectPointing finds a square where digit d's candidates all lie in one
// row or one column, confined to exactly `count` cells, eliminating d from
// the rest of that row/column outside the square.
func detectPointing(b Board, count int) *core.Move {
	for _, u := range b.Units() {
		if u.Kind != UnitSquare {
			continue
		}
		for d := 1; d <= b.Size(); d++ {
			cells := CellsWithCandidateIn(b, u.Cells, d)
			if len(cells) != count {
				continue
			}
			sameRow, sameCol := true, true
			for _, c := range cells[1:] {
				if c.Y != cells[0].Y {
					sameRow = false
				}
				if c.X != cells[0].X {
					sameCol = false
				}
			}
			var line []core.Cell
			if sameRow {
				line = rowOf(b, cells[0])
			} else if sameCol {
				line = colOf(b, cells[0])
			} else {
				continue
			}
			inSquare := map[core.Cell]bool{}
			for _, c := range u.Cells {
				inSquare[c] = true
			}
			var elims []core.Elimination
			for _, c := range line {
				if inSquare[c] || b.Value(c) != 0 {
					continue
				}
				if b.Candidates(c).Has(d) {
					elims = append(elims, core.Elimination{Cell: c, Value: d})
				}
			}
			if len(elims) > 0 {
				return &core.Move{Eliminations: elims}
			}
		}
	}
	return nil
}

// detectBoxLineReduction finds a row or column where digit d's candidates
// all lie in one square, eliminating d from the rest of that square outside
// the row/column.
func detectBoxLineReduction(b Board) *core.Move {
	for _, u := range b.Units() {
		if u.Kind != UnitRow && u.Kind != UnitCol {
			continue
		}
		for d := 1; d <= b.Size(); d++ {
			cells := CellsWithCandidateIn(b, u.Cells, d)
			if len(cells) < 2 {
				continue
			}
			sq := squareIndexOf(b, cells[0])
			same := true
			for _, c := range cells[1:] {
				if squareIndexOf(b, c) != sq {
					same = false
					break
				}
			}
			if !same {
				continue
			}
			squareCells := squareCellsOf(b, sq)
			inLine := map[core.Cell]bool{}
			for _, c := range u.Cells {
				inLine[c] = true
			}
			var elims []core.Elimination
			for _, c := range squareCells {
				if inLine[c] || b.Value(c) != 0 {
					continue
				}
				if b.Candidates(c).Has(d) {
					elims = append(elims, core.Elimination{Cell: c, Value: d})
				}
			}
			if len(elims) > 0 {
				return &core.Move{Eliminations: elims}
			}
		}
	}
	return nil
}

func rowOf(b Board, c core.Cell) []core.Cell {
	for _, u := range b.Units() {
		if u.Kind == UnitRow && u.Index == c.Y {
			return u.Cells
		}
	}
	return nil
}

func colOf(b Board, c core.Cell) []core.Cell {
	for _, u := range b.Units() {
		if u.Kind == UnitCol && u.Index == c.X {
			return u.Cells
		}
	}
	return nil
}

func squareCellsOf(b Board, sq int) []core.Cell {
	for _, u := range b.Units() {
		if u.Kind == UnitSquare && u.Index == sq {
			return u.Cells
		}
	}
	return nil
}

func DetectPointingPair(b Board) *core.Move   { return detectPointing(b, 2) }
func DetectPointingTriple(b Board) *core.Move { return detectPointing(b, 3) }
func DetectBoxLineReduction(b Board) *core.Move { return detectBoxLineReduction(b) }
