package grid

import "github.com/carpetsudoku/carpet/internal/core"

// Grid is one N²×N² sudoku: fixed values, per-cell candidates, and the
// cached row/column/square groupings described in spec.md §3/§4.1.
type Grid struct {
	N    int
	Size int // N*N

	board [][]int       // board[y][x], 0 = empty
	cand  [][]Candidates // cand[y][x]

	geo *geometry
}

// New creates an empty Size×Size grid (all cells empty, all candidates
// open) for the given N.
func New(n int) *Grid {
	size := n * n
	g := &Grid{N: n, Size: size, geo: geometryFor(n)}
	g.board = make([][]int, size)
	g.cand = make([][]Candidates, size)
	full := AllCandidates(size)
	for y := 0; y < size; y++ {
		g.board[y] = make([]int, size)
		g.cand[y] = make([]Candidates, size)
		for x := 0; x < size; x++ {
			g.cand[y][x] = full
		}
	}
	return g
}

// Clone deep-copies the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{N: g.N, Size: g.Size, geo: g.geo}
	out.board = make([][]int, g.Size)
	out.cand = make([][]Candidates, g.Size)
	for y := 0; y < g.Size; y++ {
		out.board[y] = append([]int(nil), g.board[y]...)
		out.cand[y] = append([]Candidates(nil), g.cand[y]...)
	}
	return out
}

func (g *Grid) Value(x, y int) int            { return g.board[y][x] }
func (g *Grid) Candidates(x, y int) Candidates { return g.cand[y][x] }
func (g *Grid) IsEmpty(x, y int) bool          { return g.board[y][x] == 0 }

// SquareOf returns the square index containing (x, y): (y/N)*N + x/N.
func (g *Grid) SquareOf(x, y int) int { return g.geo.squareOf[y][x] }

// SquareTopLeft returns the top-left cell of square s.
func (g *Grid) SquareTopLeft(s int) Point { return SquareTopLeft(g.N, s) }

// RowCells, ColCells, SquareCells return all cells of a unit.
func (g *Grid) RowCells(y int) []Point    { return g.geo.rowCells[y] }
func (g *Grid) ColCells(x int) []Point    { return g.geo.colCells[x] }
func (g *Grid) SquareCells(s int) []Point { return g.geo.sqCells[s] }

// Peers returns the peer cells of (x, y) for the given group kind,
// excluding (x, y) itself.
func (g *Grid) Peers(x, y int, kind GroupKind) []Point {
	return g.geo.peers[y][x][kind]
}

// EmptyCells returns every cell with board value 0, in row-major order.
func (g *Grid) EmptyCells() []Point {
	var out []Point
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if g.board[y][x] == 0 {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// Filled reports whether every cell holds a non-zero value.
func (g *Grid) Filled() bool {
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if g.board[y][x] == 0 {
				return false
			}
		}
	}
	return true
}

// FilledCells counts non-zero cells.
func (g *Grid) FilledCells() int {
	n := 0
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if g.board[y][x] != 0 {
				n++
			}
		}
	}
	return n
}

// SetValue writes v at (x, y) and removes it from every peer's candidates,
// per spec.md §4.1. It requires board[y][x] == 0 and v is a candidate
// there; violating either is a programming error (panic), since callers
// (carpet, backtracker) are expected to have checked via Candidates/IsEmpty
// first. A peer whose candidate set becomes empty produces NoCandidateError,
// which the caller recovers from by undoing the write.
func (g *Grid) SetValue(x, y, v int) error {
	if g.board[y][x] != 0 {
		panic("grid: SetValue on a filled cell")
	}
	if !g.cand[y][x].Has(v) {
		panic("grid: SetValue with a non-candidate value")
	}
	g.board[y][x] = v
	g.cand[y][x] = 0

	for _, p := range g.Peers(x, y, All) {
		if g.board[p.Y][p.X] != 0 {
			continue
		}
		if g.cand[p.Y][p.X].Has(v) {
			g.cand[p.Y][p.X] = g.cand[p.Y][p.X].Clear(v)
			if g.cand[p.Y][p.X].IsEmpty() {
				return &core.NoCandidateError{X: p.X, Y: p.Y}
			}
		}
	}
	return nil
}

// RemoveValue clears (x, y), returning its old value, and re-adds that
// value to the candidates of every peer where no other peer still blocks
// it, then recomputes candidates[y][x] from scratch over its three peer
// groups (spec.md §4.1).
func (g *Grid) RemoveValue(x, y int) (int, error) {
	v := g.board[y][x]
	if v == 0 {
		panic("grid: RemoveValue on an empty cell")
	}
	g.board[y][x] = 0

	for _, p := range g.Peers(x, y, All) {
		if g.board[p.Y][p.X] != 0 {
			continue
		}
		if g.blockedByAnyPeer(p.X, p.Y, v) {
			continue
		}
		g.cand[p.Y][p.X] = g.cand[p.Y][p.X].Set(v)
	}

	g.cand[y][x] = g.computeCandidates(x, y)
	return v, nil
}

// blockedByAnyPeer reports whether some peer of (x, y) currently holds v.
func (g *Grid) blockedByAnyPeer(x, y, v int) bool {
	for _, p := range g.Peers(x, y, All) {
		if g.board[p.Y][p.X] == v {
			return true
		}
	}
	return false
}

func (g *Grid) computeCandidates(x, y int) Candidates {
	c := AllCandidates(g.Size)
	for _, p := range g.Peers(x, y, All) {
		if v := g.board[p.Y][p.X]; v != 0 {
			c = c.Clear(v)
		}
	}
	return c
}

// RemoveCandidate eliminates v as a candidate of (x, y). It requires the
// cell to still be empty; it is a no-op if v is already absent. Returns
// NoCandidateError if the set becomes empty.
func (g *Grid) RemoveCandidate(x, y, v int) error {
	if g.board[y][x] != 0 {
		return nil
	}
	if !g.cand[y][x].Has(v) {
		return nil
	}
	g.cand[y][x] = g.cand[y][x].Clear(v)
	if g.cand[y][x].IsEmpty() {
		return &core.NoCandidateError{X: x, Y: y}
	}
	return nil
}

// RestoreCandidate re-adds a candidate without any peer bookkeeping; used
// by mutators (carpet) that need fine control over reconciliation.
func (g *Grid) RestoreCandidate(x, y, v int) {
	if g.board[y][x] == 0 {
		g.cand[y][x] = g.cand[y][x].Set(v)
	}
}

// SetCandidates overwrites the full candidate set of a cell directly; used
// when reconciling twins across a link.
func (g *Grid) SetCandidates(x, y int, c Candidates) {
	g.cand[y][x] = c
}

// ForceValue writes v at (x, y) without touching peers' candidates; used by
// reconstruction from a persisted game row (spec.md §6) ahead of a single
// update_links pass that seeds candidates everywhere.
func (g *Grid) ForceValue(x, y, v int) {
	g.board[y][x] = v
	g.cand[y][x] = 0
}

// RecomputeAllCandidates rebuilds every empty cell's candidate set from the
// current board, used by the reconstruction path of spec.md §6.
func (g *Grid) RecomputeAllCandidates() {
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if g.board[y][x] == 0 {
				g.cand[y][x] = g.computeCandidates(x, y)
			} else {
				g.cand[y][x] = 0
			}
		}
	}
}
