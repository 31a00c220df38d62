package generator

import (
	"math/rand"
	"sort"

	"github.com/carpetsudoku/carpet/internal/carpet"
	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/grid"
)

// removable is one still-filled cell the minimizer may try clearing next,
// tagged with the value it currently holds (spec.md §4.6 "cells_to_remove
// is the set of candidate removals ... each tagged with their value").
type removable struct {
	Cell  core.Cell
	Value int
}

// orderByConstraint implements the "most-constrained cell first" policy of
// spec.md §4.6: ascending count of still-free candidate values across the
// cell's global peer group, ties broken by a shuffle. Per the §9 design
// note this ordering is a policy, not an invariant — any order that
// eventually reaches a locally-minimal puzzle is acceptable.
func orderByConstraint(c *carpet.Carpet, cells []removable, rng *rand.Rand) []removable {
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	freeCount := func(r removable) int {
		free := grid.AllCandidates(c.Grids[r.Cell.Grid].Size)
		for _, p := range c.GlobalPeers(r.Cell, grid.All) {
			if v := c.Value(p); v != 0 {
				free = free.Clear(v)
			}
		}
		return free.Count()
	}

	sort.SliceStable(cells, func(i, j int) bool {
		return freeCount(cells[i]) < freeCount(cells[j])
	})
	return cells
}
