// Package grid implements a single N²×N² sudoku grid: fixed values, a
// per-cell candidate bitmask, and the precomputed row/column/square
// groupings every higher layer (carpet, rules, generator) builds on.
package grid

import "math/bits"

// Candidates is a bitmask of possible digits 1..31 for a cell. Bit d (d>=1)
// represents digit d; bit 0 is unused. A uint32 comfortably covers every
// practical carpet sudoku size (N<=5, N²<=25).
type Candidates uint32

// NewCandidates builds a bitmask from a slice of digits.
func NewCandidates(digits []int) Candidates {
	var c Candidates
	for _, d := range digits {
		c = c.Set(d)
	}
	return c
}

// AllCandidates returns every digit 1..size set.
func AllCandidates(size int) Candidates {
	return Candidates(((uint32(1) << uint(size+1)) - 1) &^ 1)
}

func (c Candidates) Has(d int) bool {
	if d < 1 || d > 31 {
		return false
	}
	return c&(1<<uint(d)) != 0
}

func (c Candidates) Set(d int) Candidates {
	if d < 1 || d > 31 {
		return c
	}
	return c | (1 << uint(d))
}

func (c Candidates) Clear(d int) Candidates {
	if d < 1 || d > 31 {
		return c
	}
	return c &^ (1 << uint(d))
}

func (c Candidates) Count() int { return bits.OnesCount32(uint32(c)) }

func (c Candidates) IsEmpty() bool { return c == 0 }

func (c Candidates) Only() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	return bits.TrailingZeros32(uint32(c)), true
}

func (c Candidates) ToSlice() []int {
	out := make([]int, 0, c.Count())
	for d := 1; d <= 31; d++ {
		if c.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (c Candidates) Intersect(o Candidates) Candidates { return c & o }
func (c Candidates) Union(o Candidates) Candidates     { return c | o }
func (c Candidates) Subtract(o Candidates) Candidates  { return c &^ o }
func (c Candidates) Equals(o Candidates) bool          { return c == o }

func (c Candidates) String() string {
	digits := c.ToSlice()
	s := make([]byte, 0, 2+3*len(digits))
	s = append(s, '{')
	for i, d := range digits {
		if i > 0 {
			s = append(s, ',')
		}
		if d >= 10 {
			s = append(s, byte('0'+d/10))
		}
		s = append(s, byte('0'+d%10))
	}
	s = append(s, '}')
	return string(s)
}
