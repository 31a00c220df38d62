package rules

import "github.com/carpetsudoku/carpet/internal/core"

// combinations returns every k-element subset of items, in the spirit of
// the teacher's own Combinations helper (ThoDHa-sudoku's grid.go).
func combinations[T any](items []T, k int) [][]T {
	if k <= 0 || k > len(items) {
		return nil
	}
	var out [][]T
	var pick func(start int, chosen []T)
	pick = func(start int, chosen []T) {
		if len(chosen) == k {
			cp := append([]T(nil), chosen...)
			out = append(out, cp)
			return
		}
		for i := start; i <= len(items)-(k-len(chosen)); i++ {
			pick(i+1, append(chosen, items[i]))
		}
	}
	pick(0, nil)
	return out
}

// detectNakedSubset finds k empty cells in a unit whose candidate union
// has exactly k digits, eliminating those digits from the unit's other
// cells. k=2,3,4 cover naked pair/triple/quad.
func detectNakedSubset(b Board, k int) *core.Move {
	for _, u := range b.Units() {
		var cands []core.Cell
		for _, c := range u.Cells {
			n := b.Candidates(c).Count()
			if n >= 2 && n <= k {
				cands = append(cands, c)
			}
		}
		for _, combo := range combinations(cands, k) {
			union := b.Candidates(combo[0])
			for _, c := range combo[1:] {
				union = union.Union(b.Candidates(c))
			}
			if union.Count() != k {
				continue
			}
			inCombo := map[core.Cell]bool{}
			for _, c := range combo {
				inCombo[c] = true
			}
			var elims []core.Elimination
			for _, c := range u.Cells {
				if inCombo[c] || b.Value(c) != 0 {
					continue
				}
				for _, d := range union.ToSlice() {
					if b.Candidates(c).Has(d) {
						elims = append(elims, core.Elimination{Cell: c, Value: d})
					}
				}
			}
			if len(elims) > 0 {
				return &core.Move{Eliminations: elims}
			}
		}
	}
	return nil
}

// detectHiddenSubset finds k digits confined to the same k cells of a unit,
// eliminating every other candidate from those k cells.
func detectHiddenSubset(b Board, k int) *core.Move {
	for _, u := range b.Units() {
		var openDigits []int
		for d := 1; d <= b.Size(); d++ {
			if len(CellsWithCandidateIn(b, u.Cells, d)) >= 1 {
				openDigits = append(openDigits, d)
			}
		}
		for _, digits := range combinations(openDigits, k) {
			cellSet := map[core.Cell]bool{}
			for _, d := range digits {
				for _, c := range CellsWithCandidateIn(b, u.Cells, d) {
					cellSet[c] = true
				}
			}
			if len(cellSet) != k {
				continue
			}
			digitSet := core.NewDigitSet(digits)
			var elims []core.Elimination
			for c := range cellSet {
				for _, d := range b.Candidates(c).ToSlice() {
					if !digitSet[d] {
						elims = append(elims, core.Elimination{Cell: c, Value: d})
					}
				}
			}
			if len(elims) > 0 {
				return &core.Move{Eliminations: elims}
			}
		}
	}
	return nil
}

func DetectNakedPair(b Board) *core.Move   { return detectNakedSubset(b, 2) }
func DetectNakedTriple(b Board) *core.Move { return detectNakedSubset(b, 3) }
func DetectNakedQuad(b Board) *core.Move   { return detectNakedSubset(b, 4) }

func DetectHiddenPair(b Board) *core.Move   { return detectHiddenSubset(b, 2) }
func DetectHiddenTriple(b Board) *core.Move { return detectHiddenSubset(b, 3) }
func DetectHiddenQuad(b Board) *core.Move   { return detectHiddenSubset(b, 4) }
