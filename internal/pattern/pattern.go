// Package pattern is a pure function from (N, pattern tag) to the raw
// cell-equivalence list and the list of sub-patterns, per spec.md §3/§4.2.
// Nothing here touches a Grid or a Carpet; pattern only describes topology.
package pattern

import "fmt"

// Kind is the pattern tag. Values match the wire encoding of spec.md §6
// exactly (Simple=0 .. DenseThorus=7); Custom has no wire tag.
type Kind int

const (
	Simple Kind = iota
	Samurai
	Diagonal
	DenseDiagonal
	Carpet
	DenseCarpet
	Thorus
	DenseThorus
	Custom
)

func (k Kind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Samurai:
		return "samurai"
	case Diagonal:
		return "diagonal"
	case DenseDiagonal:
		return "dense_diagonal"
	case Carpet:
		return "carpet"
	case DenseCarpet:
		return "dense_carpet"
	case Thorus:
		return "thorus"
	case DenseThorus:
		return "dense_thorus"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Pattern is the closed sum described in spec.md §3: a Kind plus the size
// parameter k that Diagonal/Carpet/Thorus/Dense* variants carry, or the
// raw grid count for Custom. Simple and Samurai ignore Size.
type Pattern struct {
	Kind Kind
	Size int // k for (Dense)?(Diagonal|Carpet|Thorus); n_grids for Custom
}

func NewSimple() Pattern           { return Pattern{Kind: Simple} }
func NewSamurai() Pattern          { return Pattern{Kind: Samurai} }
func NewDiagonal(k int) Pattern    { return Pattern{Kind: Diagonal, Size: k} }
func NewDenseDiagonal(k int) Pattern { return Pattern{Kind: DenseDiagonal, Size: k} }
func NewCarpet(k int) Pattern      { return Pattern{Kind: Carpet, Size: k} }
func NewDenseCarpet(k int) Pattern { return Pattern{Kind: DenseCarpet, Size: k} }
func NewThorus(k int) Pattern      { return Pattern{Kind: Thorus, Size: k} }
func NewDenseThorus(k int) Pattern { return Pattern{Kind: DenseThorus, Size: k} }
func NewCustom(nGrids int) Pattern { return Pattern{Kind: Custom, Size: nGrids} }

// NGrids returns the number of grids this pattern's carpet is built from.
func (p Pattern) NGrids() int {
	switch p.Kind {
	case Simple:
		return 1
	case Samurai:
		return 5
	case Diagonal, DenseDiagonal:
		return p.Size
	case Carpet, DenseCarpet, Thorus, DenseThorus:
		return p.Size * p.Size
	case Custom:
		return p.Size
	default:
		return 0
	}
}

// WireTag returns the §6 persisted pattern_tag, and whether pattern_size is
// present (false for Simple and Samurai).
func (p Pattern) WireTag() (tag int16, hasSize bool) {
	switch p.Kind {
	case Simple:
		return 0, false
	case Samurai:
		return 1, false
	case Diagonal:
		return 2, true
	case DenseDiagonal:
		return 3, true
	case Carpet:
		return 4, true
	case DenseCarpet:
		return 5, true
	case Thorus:
		return 6, true
	case DenseThorus:
		return 7, true
	default:
		return -1, false
	}
}

func (p Pattern) String() string {
	if p.Kind == Simple || p.Kind == Samurai {
		return p.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", p.Kind, p.Size)
}
