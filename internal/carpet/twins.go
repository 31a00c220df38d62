package carpet

import (
	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/grid"
)

// TwinCells enumerates the equivalence class of (g, x, y) under the link
// relation (spec.md §3): itself plus every cell reachable by one or more
// link hops at the matching (dx, dy) offset within the containing square.
// The relation is transitive, so a visited set suffices even though it's
// built by repeated one-hop expansion.
func (c *Carpet) TwinCells(g, x, y int) []core.Cell {
	start := core.Cell{Grid: g, X: x, Y: y}
	visited := map[core.Cell]bool{start: true}
	queue := []core.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nxt := range c.linkedCells(cur) {
			if !visited[nxt] {
				visited[nxt] = true
				queue = append(queue, nxt)
			}
		}
	}
	out := make([]core.Cell, 0, len(visited))
	for cell := range visited {
		out = append(out, cell)
	}
	return out
}

// linkedCells returns the one-hop images of cell across every link whose
// local square contains it.
func (c *Carpet) linkedCells(cell core.Cell) []core.Cell {
	g := c.Grids[cell.Grid]
	sq := g.SquareOf(cell.X, cell.Y)
	topLeft := g.SquareTopLeft(sq)
	dx, dy := cell.X-topLeft.X, cell.Y-topLeft.Y

	var out []core.Cell
	for _, e := range c.Links.ForSquare(cell.Grid, sq) {
		peerGrid := c.Grids[e.PeerGrid]
		peerTopLeft := peerGrid.SquareTopLeft(e.PeerSquare)
		out = append(out, core.Cell{Grid: e.PeerGrid, X: peerTopLeft.X + dx, Y: peerTopLeft.Y + dy})
	}
	return out
}

// GlobalPeers returns the global peer group of cell for group kind K
// (spec.md §3): the grid-local peer group union, for every link whose
// local square matches the containing square, the peer-grid peer group of
// the image cell.
func (c *Carpet) GlobalPeers(cell core.Cell, kind grid.GroupKind) []core.Cell {
	g := c.Grids[cell.Grid]
	seen := map[core.Cell]bool{cell: true}
	var out []core.Cell

	addLocal := func(gridID int, pts []grid.Point) {
		for _, p := range pts {
			cc := core.Cell{Grid: gridID, X: p.X, Y: p.Y}
			if !seen[cc] {
				seen[cc] = true
				out = append(out, cc)
			}
		}
	}
	addLocal(cell.Grid, g.Peers(cell.X, cell.Y, kind))

	sq := g.SquareOf(cell.X, cell.Y)
	topLeft := g.SquareTopLeft(sq)
	dx, dy := cell.X-topLeft.X, cell.Y-topLeft.Y
	for _, e := range c.Links.ForSquare(cell.Grid, sq) {
		peerGrid := c.Grids[e.PeerGrid]
		peerTopLeft := peerGrid.SquareTopLeft(e.PeerSquare)
		imageX, imageY := peerTopLeft.X+dx, peerTopLeft.Y+dy
		addLocal(e.PeerGrid, peerGrid.Peers(imageX, imageY, kind))
	}
	return out
}
