package rules

import "github.com/carpetsudoku/carpet/internal/core"

// DetectYWing finds a bivalue pivot {a,b} with two bivalue pawns {a,c} and
// {b,c} that both see the pivot, eliminating c from cells seeing both pawns.
func DetectYWing(b Board) *core.Move {
	bivalues := BivalueCells(b)
	for _, pivot := range bivalues {
		pv := b.Candidates(pivot).ToSlice()
		if len(pv) != 2 {
			continue
		}
		a, bb := pv[0], pv[1]
		var pawnsA, pawnsB []core.Cell
		for _, p := range bivalues {
			if p == pivot || !Sees(b, pivot, p) {
				continue
			}
			cand := b.Candidates(p)
			if cand.Has(a) && !cand.Has(bb) {
				pawnsA = append(pawnsA, p)
			} else if cand.Has(bb) && !cand.Has(a) {
				pawnsB = append(pawnsB, p)
			}
		}
		for _, p1 := range pawnsA {
			c1 := otherCandidate(b, p1, a)
			for _, p2 := range pawnsB {
				c2 := otherCandidate(b, p2, bb)
				if c1 == 0 || c1 != c2 || p1 == p2 {
					continue
				}
				var elims []core.Elimination
				for _, c := range CommonPeers(b, []core.Cell{p1, p2}) {
					if c == pivot {
						continue
					}
					if b.Value(c) == 0 && b.Candidates(c).Has(c1) {
						elims = append(elims, core.Elimination{Cell: c, Value: c1})
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

func otherCandidate(b Board, c core.Cell, known int) int {
	for _, d := range b.Candidates(c).ToSlice() {
		if d != known {
			return d
		}
	}
	return 0
}

// DetectXYZWing finds a tri-value pivot {a,b,c} with two bivalue pawns
// {a,c} and {b,c} that both see the pivot, eliminating c from cells that
// see the pivot and both pawns.
func DetectXYZWing(b Board) *core.Move {
	for _, pivot := range EmptyCells(b) {
		pc := b.Candidates(pivot)
		if pc.Count() != 3 {
			continue
		}
		digits := pc.ToSlice()
		var pawns []core.Cell
		for _, p := range BivalueCells(b) {
			if Sees(b, pivot, p) && pc.Union(b.Candidates(p)).Equals(pc) {
				pawns = append(pawns, p)
			}
		}
		for i := 0; i < len(pawns); i++ {
			for j := i + 1; j < len(pawns); j++ {
				p1, p2 := pawns[i], pawns[j]
				common := b.Candidates(p1).Intersect(b.Candidates(p2))
				for _, d := range digits {
					if !common.Has(d) {
						continue
					}
					var elims []core.Elimination
					for _, c := range CommonPeers(b, []core.Cell{pivot, p1, p2}) {
						if b.Value(c) == 0 && b.Candidates(c).Has(d) {
							elims = append(elims, core.Elimination{Cell: c, Value: d})
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

// DetectWWing finds two bivalue cells sharing the same pair {a,b}, not
// seeing each other, linked by a strong conjugate pair on digit a in some
// unit; eliminates b from cells seeing both bivalue cells.
func DetectWWing(b Board) *core.Move {
	bivalues := BivalueCells(b)
	for i := 0; i < len(bivalues); i++ {
		for j := i + 1; j < len(bivalues); j++ {
			p1, p2 := bivalues[i], bivalues[j]
			c1, c2 := b.Candidates(p1), b.Candidates(p2)
			if !c1.Equals(c2) || c1.Count() != 2 || Sees(b, p1, p2) {
				continue
			}
			digits := c1.ToSlice()
			for _, a := range digits {
				bVal := otherCandidate(b, p1, a)
				if conjugateLink(b, p1, p2, a) {
					var elims []core.Elimination
					for _, c := range CommonPeers(b, []core.Cell{p1, p2}) {
						if b.Value(c) == 0 && b.Candidates(c).Has(bVal) {
							elims = append(elims, core.Elimination{Cell: c, Value: bVal})
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

// conjugateLink reports whether digit d forms a strong link (exactly two
// candidate cells in some unit) connecting a peer of p1 to a peer of p2.
func conjugateLink(b Board, p1, p2 core.Cell, d int) bool {
	for _, u := range b.Units() {
		cells := CellsWithCandidateIn(b, u.Cells, d)
		if len(cells) != 2 {
			continue
		}
		x, y := cells[0], cells[1]
		if (Sees(b, x, p1) && Sees(b, y, p2)) || (Sees(b, y, p1) && Sees(b, x, p2)) {
			return true
		}
	}
	return false
}

// DetectWXYZWing generalizes XYZ-wing to a pivot cell of two to four
// candidates with up to
// three bivalue/trivalue pawns contributing one extra digit each, all
// sharing a common restricted digit that can be eliminated from cells
// seeing every pattern cell.
func DetectWXYZWing(b Board) *core.Move {
	for _, pivot := range EmptyCells(b) {
		pc := b.Candidates(pivot)
		if pc.Count() < 2 || pc.Count() > 4 {
			continue
		}
		var pawns []core.Cell
		for _, p := range EmptyCells(b) {
			if p == pivot || !Sees(b, pivot, p) {
				continue
			}
			cc := b.Candidates(p)
			if cc.Count() >= 2 && cc.Count() <= 3 && cc.Subtract(pc).IsEmpty() {
				pawns = append(pawns, p)
			}
		}
		if len(pawns) < 2 {
			continue
		}
		for _, combo := range combinations(pawns, min(3, len(pawns))) {
			pool := pc
			allCells := append([]core.Cell{pivot}, combo...)
			for _, d := range pool.ToSlice() {
				cellsWithD := 0
				for _, c := range allCells {
					if b.Candidates(c).Has(d) {
						cellsWithD++
					}
				}
				if cellsWithD < 2 {
					continue
				}
				var elims []core.Elimination
				for _, c := range CommonPeers(b, allCells) {
					if b.Value(c) == 0 && b.Candidates(c).Has(d) {
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

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
