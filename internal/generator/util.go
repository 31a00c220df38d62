package generator

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/carpetsudoku/carpet/internal/carpet"
	"github.com/carpetsudoku/carpet/internal/grid"
	"github.com/carpetsudoku/carpet/internal/link"
	"github.com/carpetsudoku/carpet/internal/pattern"
)

func atomicLoadBool(p *int32) bool    { return atomic.LoadInt32(p) != 0 }
func atomicStoreBool(p *int32, v bool) {
	if v {
		atomic.StoreInt32(p, 1)
		return
	}
	atomic.StoreInt32(p, 0)
}
func atomicAddInt64(p *int64, delta int64) { atomic.AddInt64(p, delta) }

// maskOf serializes the current filledness of every cell, grid-major
// row-major, as the "exploring_mask" of spec.md §4.6. A string is used
// instead of a bitset because carpet sizes vary by N and pattern, so a
// fixed-width bit vector would need per-pattern layout bookkeeping the
// string form sidesteps.
func maskOf(c *carpet.Carpet) string {
	var b strings.Builder
	for _, gr := range c.Grids {
		for y := 0; y < gr.Size; y++ {
			for x := 0; x < gr.Size; x++ {
				if gr.Value(x, y) != 0 {
					b.WriteByte('1')
				} else {
					b.WriteByte('0')
				}
			}
		}
	}
	return b.String()
}

// carpetRestrictedTo builds the sub-carpet induced by sp: a fresh Links
// table over just sp.Grids (renumbered and reduced to sp.Links), with each
// kept grid's current board copied over. Used to check sub-pattern
// irreducibility (spec.md §4.6 G3: "no sub-pattern of it is independently
// rule-solvable at class <= D"), where sub-patterns are every connected
// carpet obtainable by deleting whole grids (internal/pattern.SubPatterns).
func carpetRestrictedTo(c *carpet.Carpet, sp pattern.SubPattern) (*carpet.Carpet, error) {
	newIndex := make(map[int]int, len(sp.Grids))
	for i, gi := range sp.Grids {
		newIndex[gi] = i
	}

	raws := make([]pattern.RawLink, len(sp.Links))
	for i, l := range sp.Links {
		raws[i] = pattern.RawLink{
			Grid1: newIndex[l.Grid1], Square1: l.Square1,
			Grid2: newIndex[l.Grid2], Square2: l.Square2,
		}
	}

	table, err := link.Build(raws, len(sp.Grids))
	if err != nil {
		return nil, fmt.Errorf("generator: building restriction carpet: %w", err)
	}

	grids := make([]*grid.Grid, len(sp.Grids))
	for i, gi := range sp.Grids {
		src := c.Grids[gi]
		dst := grid.New(c.N)
		for y := 0; y < src.Size; y++ {
			for x := 0; x < src.Size; x++ {
				if v := src.Value(x, y); v != 0 {
					dst.ForceValue(x, y, v)
				}
			}
		}
		dst.RecomputeAllCandidates()
		grids[i] = dst
	}

	return &carpet.Carpet{
		N:       c.N,
		Pattern: pattern.NewCustom(len(sp.Grids)),
		Grids:   grids,
		Links:   table,
	}, nil
}
