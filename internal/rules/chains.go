package rules

import (
	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/grid"
)

// DetectBUG implements the Bivalue Universal Grave +1 pattern: when every
// empty cell but one holds exactly two candidates, the board is one move
// from a BUG deadly pattern unless the odd cell's correct digit is the one
// that appears an odd number of times among its row, column, and square.
func DetectBUG(b Board) *core.Move {
	empties := EmptyCells(b)
	var odd *core.Cell
	for i := range empties {
		c := empties[i]
		if b.Candidates(c).Count() != 2 {
			if odd != nil {
				return nil
			}
			cc := c
			odd = &cc
		}
	}
	if odd == nil {
		return nil
	}
	for _, d := range b.Candidates(*odd).ToSlice() {
		oddInAllUnits := true
		for _, kind := range []UnitKind{UnitRow, UnitCol, UnitSquare} {
			var unit Unit
			for _, u := range b.Units() {
				if u.Kind != kind {
					continue
				}
				for _, c := range u.Cells {
					if c == *odd {
						unit = u
					}
				}
			}
			count := len(CellsWithCandidateIn(b, unit.Cells, d))
			if count%2 == 0 {
				oddInAllUnits = false
				break
			}
		}
		if oddInAllUnits {
			return &core.Move{Assigned: odd, Value: d}
		}
	}
	return nil
}

type chainLink struct {
	cell  core.Cell
	digit int
}

// DetectXYChain searches bivalue cells for an alternating inference chain
// whose two ends share a common candidate digit z, eliminating z from any
// cell that sees both ends.
func DetectXYChain(b Board) *core.Move {
	bivalues := BivalueCells(b)
	const maxLen = 7
	for _, start := range bivalues {
		digits := b.Candidates(start).ToSlice()
		for _, startDigit := range digits {
			visited := map[core.Cell]bool{start: true}
			chain := []chainLink{{start, startDigit}}
			if mv := extendXYChain(b, bivalues, chain, visited, maxLen); mv != nil {
				return mv
			}
		}
	}
	return nil
}

func extendXYChain(b Board, bivalues []core.Cell, chain []chainLink, visited map[core.Cell]bool, maxLen int) *core.Move {
	last := chain[len(chain)-1]
	other := otherCandidate(b, last.cell, last.digit)
	if other == 0 {
		return nil
	}
	if len(chain) >= 3 {
		first := chain[0]
		if other == first.digit && !Sees(b, last.cell, first.cell) {
			var elims []core.Elimination
			for _, c := range CommonPeers(b, []core.Cell{first.cell, last.cell}) {
				if b.Value(c) == 0 && b.Candidates(c).Has(other) {
					elims = append(elims, core.Elimination{Cell: c, Value: other})
				}
			}
			if len(elims) > 0 {
				return &core.Move{Eliminations: elims}
			}
		}
	}
	if len(chain) >= maxLen {
		return nil
	}
	for _, next := range bivalues {
		if visited[next] || !Sees(b, last.cell, next) {
			continue
		}
		if !b.Candidates(next).Has(other) {
			continue
		}
		visited[next] = true
		chain = append(chain, chainLink{next, other})
		if mv := extendXYChain(b, bivalues, chain, visited, maxLen); mv != nil {
			return mv
		}
		chain = chain[:len(chain)-1]
		delete(visited, next)
	}
	return nil
}

// DetectEmptyRectangle finds a square where a digit's candidates are
// confined to a single row and a single column within the square (an
// "empty rectangle"); if a conjugate pair for the same digit elsewhere
// lines up with one arm, the intersection of the other arm and the
// conjugate's partner row/column can have the digit eliminated.
func DetectEmptyRectangle(b Board) *core.Move {
	for d := 1; d <= b.Size(); d++ {
		for _, sq := range unitsOfKind(b, UnitSquare) {
			cells := CellsWithCandidateIn(b, sq.Cells, d)
			if len(cells) < 2 {
				continue
			}
			rows := map[int]bool{}
			cols := map[int]bool{}
			for _, c := range cells {
				rows[c.Y] = true
				cols[c.X] = true
			}
			if len(rows) != 1 && len(cols) != 1 {
				// Need candidates confined to exactly one row-arm and one
				// column-arm; collapse to the row/col pair covering all cells.
				var r, col int
				found := false
				for rr := range rows {
					for cc := range cols {
						covers := true
						for _, c := range cells {
							if c.Y != rr && c.X != cc {
								covers = false
								break
							}
						}
						if covers {
							r, col, found = rr, cc, true
						}
					}
				}
				if !found {
					continue
				}
				rows = map[int]bool{r: true}
				cols = map[int]bool{col: true}
			}
			var arow, acol int
			for r := range rows {
				arow = r
			}
			for c := range cols {
				acol = c
			}
			// Look for a conjugate pair for d in another row that crosses acol.
			for _, u := range unitsOfKind(b, UnitRow) {
				if u.Index == arow {
					continue
				}
				conj := CellsWithCandidateIn(b, u.Cells, d)
				if len(conj) != 2 {
					continue
				}
				for _, cell := range conj {
					if cell.X == acol {
						continue
					}
					target := core.Cell{Grid: cell.Grid, X: acol, Y: cell.Y}
					if target.Y == arow {
						continue
					}
					if b.Value(target) == 0 && b.Candidates(target).Has(d) {
						return &core.Move{Eliminations: []core.Elimination{{Cell: target, Value: d}}}
					}
				}
			}
		}
	}
	return nil
}

// DetectAlignedPairExclusion enumerates the jointly valid candidate
// combinations of two unlinked cells that share restricted common peers,
// eliminating any single-cell candidate that never appears in a valid
// combination.
func DetectAlignedPairExclusion(b Board) *core.Move {
	empties := EmptyCells(b)
	for i := 0; i < len(empties); i++ {
		a := empties[i]
		ca := b.Candidates(a)
		if ca.Count() < 2 || ca.Count() > 3 {
			continue
		}
		for j := i + 1; j < len(empties); j++ {
			bb := empties[j]
			if Sees(b, a, bb) {
				continue
			}
			cb := b.Candidates(bb)
			if cb.Count() < 2 || cb.Count() > 3 {
				continue
			}
			common := CommonPeers(b, []core.Cell{a, bb})
			var restricted []core.Cell
			for _, c := range common {
				if b.Value(c) == 0 && b.Candidates(c).Count() <= 3 {
					restricted = append(restricted, c)
				}
			}
			if len(restricted) == 0 {
				continue
			}
			seenA := map[int]bool{}
			seenB := map[int]bool{}
			for _, x := range ca.ToSlice() {
				for _, y := range cb.ToSlice() {
					if valid := alignedPairValid(b, restricted, x, y); valid {
						seenA[x] = true
						seenB[y] = true
					}
				}
			}
			var elims []core.Elimination
			for _, x := range ca.ToSlice() {
				if !seenA[x] {
					elims = append(elims, core.Elimination{Cell: a, Value: x})
				}
			}
			for _, y := range cb.ToSlice() {
				if !seenB[y] {
					elims = append(elims, core.Elimination{Cell: bb, Value: y})
				}
			}
			if len(elims) > 0 {
				return &core.Move{Eliminations: elims}
			}
		}
	}
	return nil
}

func alignedPairValid(b Board, restricted []core.Cell, x, y int) bool {
	for _, c := range restricted {
		cand := b.Candidates(c)
		if !cand.Has(x) && !cand.Has(y) {
			continue
		}
		remaining := cand.Clear(x).Clear(y)
		if remaining.IsEmpty() {
			return false
		}
	}
	return true
}

// DetectALSForcingChain looks for an Almost Locked Set (a unit-confined
// group of n empty cells holding exactly n+1 candidate digits) adjacent to
// a bivalue cell sharing a restricted common digit, eliminating the ALS's
// other shared digit from cells that see the whole set.
func DetectALSForcingChain(b Board) *core.Move {
	for _, u := range b.Units() {
		var cells []core.Cell
		for _, c := range u.Cells {
			if b.Value(c) == 0 {
				cells = append(cells, c)
			}
		}
		for size := 2; size <= 4 && size < len(cells); size++ {
			for _, combo := range combinations(cells, size) {
				union := b.Candidates(combo[0])
				for _, c := range combo[1:] {
					union = union.Union(b.Candidates(c))
				}
				if union.Count() != size+1 {
					continue
				}
				for _, d := range union.ToSlice() {
					var elims []core.Elimination
					for _, c := range CommonPeers(b, combo) {
						if b.Value(c) == 0 && b.Candidates(c).Has(d) {
							allAlsSee := true
							for _, ac := range combo {
								if !b.Candidates(ac).Has(d) {
									continue
								}
								if !Sees(b, c, ac) {
									allAlsSee = false
									break
								}
							}
							if allAlsSee {
								elims = append(elims, core.Elimination{Cell: c, Value: d})
							}
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

// DetectDeathBlossom looks for a stem cell whose candidates each map to a
// distinct Almost Locked Set (found via DetectALSForcingChain's search
// space) such that every petal shares the same extra digit; that digit can
// be eliminated from any cell seeing every petal.
func DetectDeathBlossom(b Board) *core.Move {
	for _, stem := range EmptyCells(b) {
		cand := b.Candidates(stem)
		if cand.Count() < 2 {
			continue
		}
		petals := map[int][]core.Cell{}
		for _, d := range cand.ToSlice() {
			als := findALSContaining(b, stem, d)
			if als == nil {
				petals = nil
				break
			}
			petals[d] = als
		}
		if len(petals) != cand.Count() {
			continue
		}
		for z := 1; z <= b.Size(); z++ {
			if cand.Has(z) {
				continue
			}
			all := true
			var allPetals []core.Cell
			for _, als := range petals {
				has := false
				for _, c := range als {
					if b.Candidates(c).Has(z) {
						has = true
						allPetals = append(allPetals, c)
					}
				}
				if !has {
					all = false
					break
				}
			}
			if !all {
				continue
			}
			var elims []core.Elimination
			for _, c := range CommonPeers(b, allPetals) {
				if b.Value(c) == 0 && b.Candidates(c).Has(z) {
					elims = append(elims, core.Elimination{Cell: c, Value: z})
				}
			}
			if len(elims) > 0 {
				return &core.Move{Eliminations: elims}
			}
		}
	}
	return nil
}

func findALSContaining(b Board, anchor core.Cell, sharedDigit int) []core.Cell {
	for _, u := range b.Units() {
		var cells []core.Cell
		touchesAnchor := false
		for _, c := range u.Cells {
			if b.Value(c) == 0 {
				cells = append(cells, c)
			}
			if c == anchor {
				touchesAnchor = true
			}
		}
		if !touchesAnchor {
			continue
		}
		for size := 1; size <= 3 && size < len(cells); size++ {
			for _, combo := range combinations(cells, size) {
				hasAnchorLink := false
				var union grid.Candidates
				for _, c := range combo {
					union = union.Union(b.Candidates(c))
					if Sees(b, c, anchor) && b.Candidates(c).Has(sharedDigit) {
						hasAnchorLink = true
					}
				}
				if hasAnchorLink && union.Count() == size+1 {
					return combo
				}
			}
		}
	}
	return nil
}

// DetectPatternOverlay brute-forces every way digit d's remaining
// candidates could validly tile the board (one cell per row/col/square),
// then eliminates any candidate placement absent from every valid
// overlay. Bounded to keep the search tractable on large carpets.
func DetectPatternOverlay(b Board) *core.Move {
	const maxCellsForOverlay = 20
	for d := 1; d <= b.Size(); d++ {
		var open []core.Cell
		for _, c := range EmptyCells(b) {
			if b.Candidates(c).Has(d) {
				open = append(open, c)
			}
		}
		if len(open) == 0 || len(open) > maxCellsForOverlay {
			continue
		}
		// An overlay places d once in every row that does not hold it yet.
		need := b.Size()
		for _, c := range b.AllCells() {
			if b.Value(c) == d {
				need--
			}
		}
		survive := map[core.Cell]bool{}
		var place func(idx int, chosen []core.Cell)
		place = func(idx int, chosen []core.Cell) {
			if idx == len(open) {
				if len(chosen) != need {
					return
				}
				for _, c := range chosen {
					survive[c] = true
				}
				return
			}
			c := open[idx]
			conflict := false
			for _, pc := range chosen {
				if Sees(b, pc, c) {
					conflict = true
					break
				}
			}
			if !conflict {
				place(idx+1, append(chosen, c))
			}
			place(idx+1, chosen)
		}
		place(0, nil)
		var elims []core.Elimination
		for _, c := range open {
			if !survive[c] {
				elims = append(elims, core.Elimination{Cell: c, Value: d})
			}
		}
		if len(elims) > 0 {
			return &core.Move{Eliminations: elims}
		}
	}
	return nil
}

// DetectBowmansBingo hypothesizes a single candidate assignment and chains
// forced singles; if the chain reaches a cell with no remaining candidate,
// the original hypothesis is false and that candidate is eliminated.
func DetectBowmansBingo(b Board) *core.Move {
	for _, c := range EmptyCells(b) {
		for _, d := range b.Candidates(c).ToSlice() {
			if bowmanContradicts(b, c, d) {
				return &core.Move{Eliminations: []core.Elimination{{Cell: c, Value: d}}}
			}
		}
	}
	return nil
}

// bowmanSim is a throwaway candidate-state snapshot used to chain forced
// singles after a hypothetical assignment, without touching the real board.
type bowmanSim struct {
	b      Board
	values map[core.Cell]int
	cand   map[core.Cell]grid.Candidates
}

func newBowmanSim(b Board) *bowmanSim {
	s := &bowmanSim{b: b, values: map[core.Cell]int{}, cand: map[core.Cell]grid.Candidates{}}
	for _, c := range b.AllCells() {
		s.values[c] = b.Value(c)
		s.cand[c] = b.Candidates(c)
	}
	return s
}

func (s *bowmanSim) assign(c core.Cell, d int) bool {
	if s.values[c] != 0 {
		return s.values[c] == d
	}
	if !s.cand[c].Has(d) {
		return false
	}
	s.values[c] = d
	s.cand[c] = 0
	for _, p := range s.b.Peers(c, grid.All) {
		if s.values[p] == d {
			return false
		}
		s.cand[p] = s.cand[p].Clear(d)
	}
	return true
}

func bowmanContradicts(b Board, start core.Cell, startDigit int) bool {
	sim := newBowmanSim(b)
	if !sim.assign(start, startDigit) {
		return true
	}
	const maxSteps = 60
	for steps := 0; steps < maxSteps; steps++ {
		progressed := false
		for _, c := range b.AllCells() {
			if sim.values[c] != 0 {
				continue
			}
			cand := sim.cand[c]
			if cand.IsEmpty() {
				return true
			}
			if d, ok := cand.Only(); ok {
				if !sim.assign(c, d) {
					return true
				}
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	return false
}
