package carpet

import "github.com/carpetsudoku/carpet/internal/core"

// SetValue writes v at (g, x, y) and at every twin, per spec.md §4.4. Each
// grid.Grid.SetValue call already eliminates v from that grid's local
// peers — which, applied to every twin in turn, is exactly "eliminate v
// from the global peer group that lies in peer grids" from the spec, so
// no separate cross-grid elimination pass is needed.
//
// If some peer's candidate set empties, the first NoCandidateError is
// returned after every twin has still been written (so the carpet stays
// twin-coherent); the caller recovers by calling RemoveValue on the same
// coordinates, exactly as it would for a bare Grid.
func (c *Carpet) SetValue(g, x, y, v int) error {
	twins := c.TwinCells(g, x, y)
	var firstErr error
	for _, t := range twins {
		if err := c.Grids[t.Grid].SetValue(t.X, t.Y, v); err != nil && firstErr == nil {
			firstErr = withGrid(err, t.Grid)
		}
	}
	return firstErr
}

// withGrid fills in the grid index on a NoCandidateError surfaced from a
// bare grid.Grid, which has no notion of which grid it is within a carpet.
func withGrid(err error, g int) error {
	if nc, ok := err.(*core.NoCandidateError); ok {
		nc.Grid = g
	}
	return err
}

// RemoveValue clears (g, x, y) and every twin, returning the old value.
// Each grid.Grid.RemoveValue reintroduces the value to that grid's local
// peers only where no other local peer still blocks it — applied per
// twin, this is exactly the cross-grid reintroduction spec.md §4.4
// describes.
func (c *Carpet) RemoveValue(g, x, y int) (int, error) {
	v := c.Grids[g].Value(x, y)
	twins := c.TwinCells(g, x, y)
	for _, t := range twins {
		if _, err := c.Grids[t.Grid].RemoveValue(t.X, t.Y); err != nil {
			return v, err
		}
	}
	return v, nil
}

// RemoveCandidate eliminates v as a candidate of (cell) and every twin, so
// a Propagator rule's elimination on one grid's view stays twin-coherent.
func (c *Carpet) RemoveCandidate(cell core.Cell, v int) error {
	twins := c.TwinCells(cell.Grid, cell.X, cell.Y)
	var firstErr error
	for _, t := range twins {
		if err := c.Grids[t.Grid].RemoveCandidate(t.X, t.Y, v); err != nil && firstErr == nil {
			firstErr = withGrid(err, t.Grid)
		}
	}
	return firstErr
}
