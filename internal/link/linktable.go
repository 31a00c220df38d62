// Package link builds the indexed LinkTable view of pattern.RawLinks
// described in spec.md §3/§4.3: for each grid, the list of (local square,
// peer grid, peer square) triples, with both directions of every link
// present.
package link

import (
	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/pattern"
)

// Entry is one (local square, peer grid, peer square) triple.
type Entry struct {
	LocalSquare int
	PeerGrid    int
	PeerSquare  int
}

// Table maps grid id to its link entries.
type Table struct {
	NGrids  int
	byGrid  [][]Entry
}

// Build inserts both directions of every raw link. A raw link whose two
// halves disagree (the same (grid,square) pair appearing with two
// different peers is fine — that's normal fan-out — but a literal
// self-contradictory duplicate, i.e. the identical (g1,s1) claimed to
// equal two different squares of the SAME peer grid at once, is rejected
// as core.ErrPatternImpossible per spec.md §9's dense-overlap dedup note.
func Build(raws []pattern.RawLink, nGrids int) (*Table, error) {
	t := &Table{NGrids: nGrids, byGrid: make([][]Entry, nGrids)}
	seen := map[[3]int]int{} // (grid, square, peerGrid) -> peerSquare, to catch contradictions

	add := func(g, s, pg, ps int) error {
		key := [3]int{g, s, pg}
		if existing, ok := seen[key]; ok {
			if existing != ps {
				return core.ErrPatternImpossible
			}
			return nil
		}
		seen[key] = ps
		t.byGrid[g] = append(t.byGrid[g], Entry{LocalSquare: s, PeerGrid: pg, PeerSquare: ps})
		return nil
	}

	for _, r := range raws {
		if err := add(r.Grid1, r.Square1, r.Grid2, r.Square2); err != nil {
			return nil, err
		}
		if err := add(r.Grid2, r.Square2, r.Grid1, r.Square1); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// ForSquare returns the link entries whose local square equals s within
// grid g.
func (t *Table) ForSquare(g, s int) []Entry {
	var out []Entry
	for _, e := range t.byGrid[g] {
		if e.LocalSquare == s {
			out = append(out, e)
		}
	}
	return out
}

// ForGrid returns every link entry originating at grid g.
func (t *Table) ForGrid(g int) []Entry {
	return t.byGrid[g]
}
