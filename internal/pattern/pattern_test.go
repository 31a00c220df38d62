package pattern

import "testing"

func TestNGrids(t *testing.T) {
	tests := []struct {
		p    Pattern
		want int
	}{
		{NewSimple(), 1},
		{NewSamurai(), 5},
		{NewDiagonal(4), 4},
		{NewCarpet(3), 9},
		{NewThorus(2), 4},
	}
	for _, tt := range tests {
		if got := tt.p.NGrids(); got != tt.want {
			t.Errorf("%v.NGrids() = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestWireTag(t *testing.T) {
	tests := []struct {
		p       Pattern
		tag     int16
		hasSize bool
	}{
		{NewSimple(), 0, false},
		{NewSamurai(), 1, false},
		{NewDiagonal(3), 2, true},
		{NewDenseThorus(2), 7, true},
	}
	for _, tt := range tests {
		tag, hasSize := tt.p.WireTag()
		if tag != tt.tag || hasSize != tt.hasSize {
			t.Errorf("%v.WireTag() = (%d,%v), want (%d,%v)", tt.p, tag, hasSize, tt.tag, tt.hasSize)
		}
	}
}

func TestSamuraiLinksAttachFourCorners(t *testing.T) {
	links := RawLinks(NewSamurai(), 3)
	if len(links) != 4 {
		t.Fatalf("samurai should have exactly 4 square links, got %d", len(links))
	}
	seenGrids := map[int]bool{}
	for _, l := range links {
		seenGrids[l.Grid1] = true
		seenGrids[l.Grid2] = true
	}
	for g := 0; g < 5; g++ {
		if !seenGrids[g] {
			t.Errorf("grid %d not connected by any link", g)
		}
	}
}

func TestDiagonalChainLinksConsecutivePairs(t *testing.T) {
	links := RawLinks(NewDiagonal(4), 3)
	if len(links) != 3 {
		t.Fatalf("diagonal(4) should have 3 links, got %d", len(links))
	}
	for i, l := range links {
		want := normalize(RawLink{Grid1: i, Square1: 2, Grid2: i + 1, Square2: 6})
		if l != want {
			t.Errorf("link %d = %+v, want %+v", i, l, want)
		}
	}
}

// countPairLinks counts the links between grids a and b (a < b); RawLinks
// always normalizes so the lower grid index is Grid1.
func countPairLinks(links []RawLink, a, b int) int {
	n := 0
	for _, l := range links {
		if l.Grid1 == a && l.Grid2 == b {
			n++
		}
	}
	return n
}

// TestCarpetSparseLinksCoverSharedEdges pins Carpet(2) at N=3 against
// original_source/src/carpet_sudoku/pattern.rs's CarpetPattern::Carpet: the
// shared east/west and north/south edges are linked one square per row or
// column (not just the corner), while the two diagonal neighbour pairs
// share a single corner square each.
func TestCarpetSparseLinksCoverSharedEdges(t *testing.T) {
	links := RawLinks(NewCarpet(2), 3)
	if len(links) != 14 {
		t.Fatalf("carpet(2) at N=3 should have 14 square links, got %d", len(links))
	}
	// grids: 0=(0,0) 1=(0,1) 2=(1,0) 3=(1,1)
	if got := countPairLinks(links, 0, 1); got != 3 {
		t.Errorf("east edge (0,1) = %d links, want 3 (one per row)", got)
	}
	if got := countPairLinks(links, 0, 2); got != 3 {
		t.Errorf("south edge (0,2) = %d links, want 3 (one per column)", got)
	}
	if got := countPairLinks(links, 0, 3); got != 1 {
		t.Errorf("south-east diagonal (0,3) = %d links, want 1 (corner only)", got)
	}
	if got := countPairLinks(links, 1, 2); got != 1 {
		t.Errorf("south-west diagonal (1,2) = %d links, want 1 (corner only)", got)
	}
}

// TestThorusWrapsEveryBoundary pins Thorus(2) at N=3: with only two grids
// per meta-grid row/column, every boundary wraps in both directions at
// once (pattern.rs:171-197 applies its four link groups unconditionally,
// with no "last grid" guard), so adjacent pairs get edge links from both
// sides and even the lone diagonal pair picks up all four corner links.
func TestThorusWrapsEveryBoundary(t *testing.T) {
	links := RawLinks(NewThorus(2), 3)
	if len(links) != 32 {
		t.Fatalf("thorus(2) at N=3 should have 32 square links, got %d", len(links))
	}
	if got := countPairLinks(links, 0, 3); got != 4 {
		t.Errorf("diagonal pair (0,3) = %d links, want 4 (both corners, both directions)", got)
	}
}

// TestDenseCarpetLinksReachNonAdjacentGrids pins DenseCarpet(3) at N=3:
// grids two meta-columns apart (0 and 2) must still share a link band,
// which the sparse/corner-only reading of tilingLinks cannot produce.
// Grounded on pattern.rs:217-246 (CarpetPattern::DenseCarpet).
func TestDenseCarpetLinksReachNonAdjacentGrids(t *testing.T) {
	links := RawLinks(NewDenseCarpet(3), 3)
	if got := countPairLinks(links, 0, 2); got != 3 {
		t.Errorf("grids 2 meta-columns apart (0,2) = %d links, want 3 (one per row, 1-square-wide overlap)", got)
	}
	if got := countPairLinks(links, 0, 1); got == 0 {
		t.Errorf("adjacent grids (0,1) should also be densely linked")
	}
}

// TestDenseDiagonalLinksReachNonAdjacentGrids pins DenseDiagonal(3) at
// N=3: the chain's offset j loop (pattern.rs:198-216) must link grid 0 to
// grid 2 directly, not just grid 0 to grid 1 and grid 1 to grid 2.
func TestDenseDiagonalLinksReachNonAdjacentGrids(t *testing.T) {
	links := RawLinks(NewDenseDiagonal(3), 3)
	if got := countPairLinks(links, 0, 2); got == 0 {
		t.Errorf("chain grids 2 apart (0,2) should be linked at offset j=2")
	}
}

func TestSubPatternsExcludeFullAndEmpty(t *testing.T) {
	subs := SubPatterns(NewDiagonal(3), 3)
	for _, sp := range subs {
		if len(sp.Grids) == 0 {
			t.Errorf("sub-pattern with zero grids should not be emitted")
		}
		if len(sp.Grids) == 3 {
			t.Errorf("the full pattern should not be its own sub-pattern")
		}
	}
	// Diagonal(3) should yield single-grid restrictions and the {0,1} / {1,2} pairs.
	if len(subs) == 0 {
		t.Fatalf("expected at least one sub-pattern")
	}
}

func TestSubPatternsAreConnected(t *testing.T) {
	subs := SubPatterns(NewCarpet(2), 3)
	for _, sp := range subs {
		if !connected(presentMask(sp.Grids, 4), sp.Links) {
			t.Errorf("sub-pattern %v is not connected", sp.Grids)
		}
	}
}

func presentMask(grids []int, n int) []bool {
	mask := make([]bool, n)
	for _, g := range grids {
		mask[g] = true
	}
	return mask
}
