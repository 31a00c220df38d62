package core

import "fmt"

// Cell addresses a single cell of a carpet: which grid, and its local (x, y)
// within that grid. A bare Grid (no carpet) always uses Grid=0.
type Cell struct {
	Grid int
	X, Y int
}

func (c Cell) String() string { return fmt.Sprintf("g%d(%d,%d)", c.Grid, c.X, c.Y) }

// Elimination is a single candidate removed from a cell.
type Elimination struct {
	Cell  Cell
	Value int
}

// Move records one step the propagator took, for diagnostics and for the
// difficulty trace. Rules return at most one Move per invocation (spec.md
// §4.5: "Rules stop at the first one that fires per pass").
type Move struct {
	Rule         string
	Tier         Tier
	Assigned     *Cell // non-nil when the rule fixed a value
	Value        int
	Eliminations []Elimination
}

// Changed reports whether the move actually mutated board state.
func (m *Move) Changed() bool {
	return m != nil && (m.Assigned != nil || len(m.Eliminations) > 0)
}
