package carpet

import (
	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/grid"
)

// UpdateLinks is the reconciliation pass of spec.md §4.4, used after edits
// that bypassed SetValue/RemoveValue (chiefly, reconstructing a carpet from
// a persisted game row per spec.md §6): for every link and every (dx, dy)
// offset within the shared square, a value present on one side and absent
// on the other is copied across; a value present and differing on both
// sides is a fatal ContradictionError; otherwise (both sides still empty)
// the two candidate sets are intersected.
func (c *Carpet) UpdateLinks() error {
	for g := 0; g < c.Links.NGrids; g++ {
		gr := c.Grids[g]
		for _, e := range c.Links.ForGrid(g) {
			if e.PeerGrid < g {
				continue // each unordered pair is processed once, from the lower grid id
			}
			topLeft := gr.SquareTopLeft(e.LocalSquare)
			peer := c.Grids[e.PeerGrid]
			peerTopLeft := peer.SquareTopLeft(e.PeerSquare)
			for dy := 0; dy < c.N; dy++ {
				for dx := 0; dx < c.N; dx++ {
					ax, ay := topLeft.X+dx, topLeft.Y+dy
					bx, by := peerTopLeft.X+dx, peerTopLeft.Y+dy
					if err := reconcileCell(gr, g, ax, ay, peer, e.PeerGrid, bx, by); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func reconcileCell(a *grid.Grid, aGrid, ax, ay int, b *grid.Grid, bGrid, bx, by int) error {
	va, vb := a.Value(ax, ay), b.Value(bx, by)
	switch {
	case va != 0 && vb != 0 && va != vb:
		return &core.ContradictionError{GridA: aGrid, XA: ax, YA: ay, ValueA: va, GridB: bGrid, XB: bx, YB: by, ValueB: vb}
	case va != 0 && vb == 0:
		b.ForceValue(bx, by, va)
	case vb != 0 && va == 0:
		a.ForceValue(ax, ay, vb)
	default:
		inter := a.Candidates(ax, ay).Intersect(b.Candidates(bx, by))
		a.SetCandidates(ax, ay, inter)
		b.SetCandidates(bx, by, inter)
	}
	return nil
}
