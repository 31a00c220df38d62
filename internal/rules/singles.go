package rules

import "github.com/carpetsudoku/carpet/internal/core"

// DetectNakedSingle finds an empty cell with exactly one candidate.
func DetectNakedSingle(b Board) *core.Move {
	for _, c := range EmptyCells(b) {
		if d, ok := b.Candidates(c).Only(); ok {
			cc := c
			return &core.Move{Assigned: &cc, Value: d}
		}
	}
	return nil
}

// DetectHiddenSingle finds a unit where some digit is a candidate of
// exactly one cell.
func DetectHiddenSingle(b Board) *core.Move {
	for _, u := range b.Units() {
		for d := 1; d <= b.Size(); d++ {
			cells := CellsWithCandidateIn(b, u.Cells, d)
			if len(cells) == 1 {
				cc := cells[0]
				return &core.Move{Assigned: &cc, Value: d}
			}
		}
	}
	return nil
}
