package grid

import "testing"

func TestSquareOf(t *testing.T) {
	g := New(3)
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{8, 0, 2},
		{0, 8, 6},
		{8, 8, 8},
		{4, 4, 4},
	}
	for _, tt := range tests {
		if got := g.SquareOf(tt.x, tt.y); got != tt.want {
			t.Errorf("SquareOf(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSquareTopLeft(t *testing.T) {
	tests := []struct {
		s    int
		want Point
	}{
		{0, Point{0, 0}},
		{2, Point{6, 0}},
		{4, Point{3, 3}},
		{8, Point{6, 6}},
	}
	for _, tt := range tests {
		if got := SquareTopLeft(3, tt.s); got != tt.want {
			t.Errorf("SquareTopLeft(3,%d) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestSetValueRemovesFromPeers(t *testing.T) {
	g := New(3)
	if err := g.SetValue(0, 0, 5); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if g.Value(0, 0) != 5 {
		t.Fatalf("Value(0,0) = %d, want 5", g.Value(0, 0))
	}
	if g.Candidates(0, 1).Has(5) {
		t.Errorf("column peer still has 5 as candidate")
	}
	if g.Candidates(8, 0).Has(5) {
		t.Errorf("row peer still has 5 as candidate")
	}
	if g.Candidates(2, 2).Has(5) {
		t.Errorf("square peer still has 5 as candidate")
	}
	if g.Candidates(4, 4).Has(5) == false {
		t.Errorf("unrelated cell lost candidate 5 unexpectedly")
	}
}

func TestSetThenRemoveValueIsReversible(t *testing.T) {
	g := New(3)
	before := snapshot(g)

	if err := g.SetValue(3, 3, 7); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if _, err := g.RemoveValue(3, 3); err != nil {
		t.Fatalf("RemoveValue: %v", err)
	}

	after := snapshot(g)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if before[y][x] != after[y][x] {
				t.Errorf("cell (%d,%d): candidates %v before, %v after", x, y, before[y][x], after[y][x])
			}
		}
	}
}

func snapshot(g *Grid) [][]Candidates {
	out := make([][]Candidates, g.Size)
	for y := range out {
		out[y] = append([]Candidates(nil), g.cand[y]...)
	}
	return out
}

func TestRemoveValueRespectsOtherBlockers(t *testing.T) {
	g := New(3)
	// Two 5s that would both block (1,1) if not for one being removed.
	if err := g.SetValue(1, 0, 5); err != nil { // column and box peer of (1,1)
		t.Fatalf("SetValue: %v", err)
	}
	if err := g.SetValue(5, 1, 5); err != nil { // row peer of (1,1), not a peer of (1,0)
		t.Fatalf("SetValue: %v", err)
	}
	if g.Candidates(1, 1).Has(5) {
		t.Fatalf("expected 5 already excluded at (1,1)")
	}
	if _, err := g.RemoveValue(1, 0); err != nil {
		t.Fatalf("RemoveValue: %v", err)
	}
	// (5,1) still blocks (1,1) via row peer, so 5 must stay excluded.
	if g.Candidates(1, 1).Has(5) {
		t.Errorf("5 should still be blocked by remaining peer at (5,1)")
	}
}
