// Package rules implements the ordered technique catalogue of spec.md §4.5
// (naked/hidden singles through death blossom/pattern overlay/Bowman's
// bingo) plus the Propagator that drives it to a fixpoint. Every rule
// consumes a Board — an abstraction a bare Grid and a Carpet's per-grid
// view both satisfy — so the same catalogue runs unmodified whether or not
// links are in play (spec.md §4.5: "a rule may additionally operate on the
// global peer groups").
package rules

import (
	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/grid"
)

// UnitKind distinguishes the three container families a unit belongs to.
type UnitKind int

const (
	UnitRow UnitKind = iota
	UnitCol
	UnitSquare
)

func (k UnitKind) String() string {
	switch k {
	case UnitRow:
		return "row"
	case UnitCol:
		return "column"
	case UnitSquare:
		return "square"
	default:
		return "unit"
	}
}

// Unit is a fixed-size container of cells sharing a row, column, or square.
type Unit struct {
	Kind  UnitKind
	Index int
	Cells []core.Cell
}

// Board is what the rule catalogue needs from whatever it's solving: a
// bare grid.Grid (peer groups are purely local) or a carpet's per-grid
// view (peer groups additionally cross linked squares, and mutation
// propagates to twins).
type Board interface {
	Size() int
	Value(c core.Cell) int
	Candidates(c core.Cell) grid.Candidates
	SetValue(c core.Cell, v int) error
	RemoveCandidate(c core.Cell, v int) error

	// Peers returns the peer cells of c for the given kind, excluding c
	// itself. On a Carpet view this is the *global* peer group of
	// spec.md §3.
	Peers(c core.Cell, kind grid.GroupKind) []core.Cell

	// Units enumerates the fixed-size row/column/square containers this
	// board reasons about as whole sets (used by subset/fish/wing/chain
	// rules). These are always grid-local, per the design decision in
	// SPEC_FULL.md §D.
	Units() []Unit

	// AllCells enumerates every cell this board covers.
	AllCells() []core.Cell
}

// EmptyCells returns every cell on b with value 0.
func EmptyCells(b Board) []core.Cell {
	var out []core.Cell
	for _, c := range b.AllCells() {
		if b.Value(c) == 0 {
			out = append(out, c)
		}
	}
	return out
}

// BivalueCells returns every empty cell with exactly two candidates.
func BivalueCells(b Board) []core.Cell {
	var out []core.Cell
	for _, c := range EmptyCells(b) {
		if b.Candidates(c).Count() == 2 {
			out = append(out, c)
		}
	}
	return out
}

// CellsWithCandidateIn returns the cells of units that carry digit d as a
// candidate.
func CellsWithCandidateIn(b Board, cells []core.Cell, d int) []core.Cell {
	var out []core.Cell
	for _, c := range cells {
		if b.Value(c) == 0 && b.Candidates(c).Has(d) {
			out = append(out, c)
		}
	}
	return out
}

// Sees reports whether two distinct cells share a unit, by consulting the
// board's own (possibly global) peer groups.
func Sees(b Board, a, c core.Cell) bool {
	if a == c {
		return false
	}
	for _, p := range b.Peers(a, grid.All) {
		if p == c {
			return true
		}
	}
	return false
}

// CommonPeers returns cells that are peers of every cell in cells.
func CommonPeers(b Board, cells []core.Cell) []core.Cell {
	if len(cells) == 0 {
		return nil
	}
	set := map[core.Cell]bool{}
	for _, p := range b.Peers(cells[0], grid.All) {
		set[p] = true
	}
	for _, c := range cells[1:] {
		next := map[core.Cell]bool{}
		for _, p := range b.Peers(c, grid.All) {
			if set[p] {
				next[p] = true
			}
		}
		set = next
	}
	out := make([]core.Cell, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}
