package rules

import "github.com/carpetsudoku/carpet/internal/core"

// baseFish looks for k rows (or, symmetrically, k columns) such that digit
// d's candidates across them occupy at most k+extraFins distinct
// columns (or rows). extraFins=0 is the plain X-wing/swordfish/jellyfish;
// extraFins=1 is the finned variant. Eliminations remove d from cells
// outside the chosen base units that are peers of every fish cell
// (the fin-aware definition: a candidate can only be eliminated if it
// sees every cell of the pattern, fins included).
func baseFish(b Board, k, extraFins int, byRow bool) *core.Move {
	rowUnits := unitsOfKind(b, UnitRow)
	colUnits := unitsOfKind(b, UnitCol)
	baseUnits := rowUnits
	if !byRow {
		baseUnits = colUnits
	}

	for d := 1; d <= b.Size(); d++ {
		var candidateBases []Unit
		for _, u := range baseUnits {
			n := len(CellsWithCandidateIn(b, u.Cells, d))
			if n >= 2 && n <= k+extraFins {
				candidateBases = append(candidateBases, u)
			}
		}
		for _, combo := range combinations(candidateBases, k) {
			crossIdx := map[int]bool{}
			var fishCells []core.Cell
			for _, u := range combo {
				cells := CellsWithCandidateIn(b, u.Cells, d)
				fishCells = append(fishCells, cells...)
				for _, c := range cells {
					if byRow {
						crossIdx[c.X] = true
					} else {
						crossIdx[c.Y] = true
					}
				}
			}
			if len(crossIdx) < k || len(crossIdx) > k+extraFins {
				continue
			}
			// Eliminate d from any cell that sees every fish cell and is
			// not itself one of them.
			fishSet := map[core.Cell]bool{}
			for _, c := range fishCells {
				fishSet[c] = true
			}
			var elims []core.Elimination
			for _, c := range b.AllCells() {
				if fishSet[c] || b.Value(c) != 0 || !b.Candidates(c).Has(d) {
					continue
				}
				seesAll := true
				for _, fc := range fishCells {
					if !Sees(b, c, fc) {
						seesAll = false
						break
					}
				}
				if seesAll {
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

func unitsOfKind(b Board, kind UnitKind) []Unit {
	var out []Unit
	for _, u := range b.Units() {
		if u.Kind == kind {
			out = append(out, u)
		}
	}
	return out
}

// detectFish tries both row-based and column-based fish of size k.
func detectFish(b Board, k, extraFins int) *core.Move {
	if mv := baseFish(b, k, extraFins, true); mv != nil {
		return mv
	}
	return baseFish(b, k, extraFins, false)
}

func DetectXWing(b Board) *core.Move       { return detectFish(b, 2, 0) }
func DetectFinnedXWing(b Board) *core.Move { return detectFish(b, 2, 1) }

// DetectFrankenXWing approximates the Franken fish by also admitting square
// units as a base alongside rows/columns: since Units() only separates
// rows/cols/squares cleanly, Franken is modelled as a finned fish with one
// extra fin permitted, followed by a search over k squares as base units.
// Neither search checks which box a fin cell lies in; an elimination is
// made only at cells that see every fish cell.
func DetectFrankenXWing(b Board) *core.Move {
	return detectFrankenFish(b, 2)
}

func detectFrankenFish(b Board, k int) *core.Move {
	// A Franken fish base unit may be a row/column OR a square. We reuse
	// baseFish's row/column search, then additionally try square-based
	// bases paired with the opposite line kind.
	if mv := detectFish(b, k, 1); mv != nil {
		return mv
	}
	squares := unitsOfKind(b, UnitSquare)
	for d := 1; d <= b.Size(); d++ {
		var candidateBases []Unit
		for _, u := range squares {
			n := len(CellsWithCandidateIn(b, u.Cells, d))
			if n >= 2 && n <= k+1 {
				candidateBases = append(candidateBases, u)
			}
		}
		for _, combo := range combinations(candidateBases, k) {
			var fishCells []core.Cell
			for _, u := range combo {
				fishCells = append(fishCells, CellsWithCandidateIn(b, u.Cells, d)...)
			}
			fishSet := map[core.Cell]bool{}
			for _, c := range fishCells {
				fishSet[c] = true
			}
			var elims []core.Elimination
			for _, c := range b.AllCells() {
				if fishSet[c] || b.Value(c) != 0 || !b.Candidates(c).Has(d) {
					continue
				}
				seesAll := true
				for _, fc := range fishCells {
					if !Sees(b, c, fc) {
						seesAll = false
						break
					}
				}
				if seesAll {
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

// sashimiFish is the fin-restricted cousin of baseFish: rather than any
// k base units whose candidates spill into one extra column (a fin
// anywhere), exactly one of the k base units is missing its second cover
// cell entirely (down to a single "missing corner" candidate) while the
// rest hold exactly two. Removing the fin from a plain finned fish would
// still leave a valid smaller fish; removing the degenerate unit's lone
// cell here would not, which is what makes sashimi a distinct pattern
// from finned rather than a renamed duplicate of it.
func sashimiFish(b Board, k int) *core.Move {
	rowUnits := unitsOfKind(b, UnitRow)
	colUnits := unitsOfKind(b, UnitCol)

	for _, byRow := range []bool{true, false} {
		baseUnits := rowUnits
		if !byRow {
			baseUnits = colUnits
		}

		for d := 1; d <= b.Size(); d++ {
			var candidateBases []Unit
			for _, u := range baseUnits {
				n := len(CellsWithCandidateIn(b, u.Cells, d))
				if n == 1 || n == 2 {
					candidateBases = append(candidateBases, u)
				}
			}
			for _, combo := range combinations(candidateBases, k) {
				degenerate := 0
				crossIdx := map[int]bool{}
				var fishCells []core.Cell
				for _, u := range combo {
					cells := CellsWithCandidateIn(b, u.Cells, d)
					if len(cells) == 1 {
						degenerate++
					}
					fishCells = append(fishCells, cells...)
					for _, c := range cells {
						if byRow {
							crossIdx[c.X] = true
						} else {
							crossIdx[c.Y] = true
						}
					}
				}
				if degenerate != 1 || len(crossIdx) != k {
					continue
				}

				fishSet := map[core.Cell]bool{}
				for _, c := range fishCells {
					fishSet[c] = true
				}
				var elims []core.Elimination
				for _, c := range b.AllCells() {
					if fishSet[c] || b.Value(c) != 0 || !b.Candidates(c).Has(d) {
						continue
					}
					seesAll := true
					for _, fc := range fishCells {
						if !Sees(b, c, fc) {
							seesAll = false
							break
						}
					}
					if seesAll {
						elims = append(elims, core.Elimination{Cell: c, Value: d})
					}
				}
				if len(elims) > 0 {
					return &core.Move{Eliminations: elims}
				}
			}
		}
	}
	return nil
}

func DetectSashimiXWing(b Board) *core.Move { return sashimiFish(b, 2) }

func DetectSwordfish(b Board) *core.Move        { return detectFish(b, 3, 0) }
func DetectFinnedSwordfish(b Board) *core.Move  { return detectFish(b, 3, 1) }
func DetectSashimiSwordfish(b Board) *core.Move { return sashimiFish(b, 3) }

func DetectJellyfish(b Board) *core.Move        { return detectFish(b, 4, 0) }
func DetectFinnedJellyfish(b Board) *core.Move  { return detectFish(b, 4, 1) }
func DetectSashimiJellyfish(b Board) *core.Move { return sashimiFish(b, 4) }

// DetectSkyscraper: two rows (or columns) where digit d occupies exactly
// two cells, sharing one column, whose two free cells eliminate d from any
// cell that sees both.
func DetectSkyscraper(b Board) *core.Move {
	for _, byRow := range []bool{true, false} {
		units := unitsOfKind(b, UnitRow)
		if !byRow {
			units = unitsOfKind(b, UnitCol)
		}
		for d := 1; d <= b.Size(); d++ {
			var conjugates [][2]core.Cell
			for _, u := range units {
				cells := CellsWithCandidateIn(b, u.Cells, d)
				if len(cells) == 2 {
					conjugates = append(conjugates, [2]core.Cell{cells[0], cells[1]})
				}
			}
			for i := 0; i < len(conjugates); i++ {
				for j := i + 1; j < len(conjugates); j++ {
					a, c := conjugates[i], conjugates[j]
					shared, freeA, freeC, ok := sharedLine(a, c, byRow)
					if !ok || !shared {
						continue
					}
					if Sees(b, freeA, freeC) {
						continue
					}
					var elims []core.Elimination
					for _, p := range CommonPeers(b, []core.Cell{freeA, freeC}) {
						if b.Value(p) == 0 && b.Candidates(p).Has(d) {
							elims = append(elims, core.Elimination{Cell: p, Value: d})
						}
					}
					if len(elims) > 0 {
						return &core.Move{Eliminations: elims}
					}
				}
			}
		}
	}
	return nil
}

// sharedLine determines, for two conjugate pairs from the same line kind,
// whether they share one endpoint on the cross axis; returns the two
// non-shared ("free") endpoints.
func sharedLine(a, c [2]core.Cell, byRow bool) (shared bool, freeA, freeC core.Cell, ok bool) {
	axis := func(p core.Cell) int {
		if byRow {
			return p.X
		}
		return p.Y
	}
	switch {
	case axis(a[0]) == axis(c[0]):
		return true, a[1], c[1], true
	case axis(a[0]) == axis(c[1]):
		return true, a[1], c[0], true
	case axis(a[1]) == axis(c[0]):
		return true, a[0], c[1], true
	case axis(a[1]) == axis(c[1]):
		return true, a[0], c[0], true
	default:
		return false, core.Cell{}, core.Cell{}, false
	}
}
