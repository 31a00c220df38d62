package grid

import "sync"

// GroupKind selects which family of cells a query returns, mirroring
// spec.md §3's peer group kinds.
type GroupKind int

const (
	Row GroupKind = iota
	Col
	Square
	All
)

// Point is a local (x, y) coordinate within one grid.
type Point struct{ X, Y int }

// geometry is the precomputed grouping for one N, cached process-wide the
// same way the teacher's human.Peers/RowIndices/ColIndices/BoxIndices are
// computed once in an init() for the fixed N=9 case (grid.go, peers.go).
// Here N is a runtime parameter, so the cache is keyed and built lazily.
type geometry struct {
	n, size int
	// squareOf[y][x] is the square index of cell (x, y)
	squareOf [][]int
	rowCells [][]Point
	colCells [][]Point
	sqCells  [][]Point
	// peers[y][x] -> peers per kind, excluding self
	peers [][][4][]Point
}

var (
	geomMu    sync.RWMutex
	geomCache = map[int]*geometry{}
)

func geometryFor(n int) *geometry {
	geomMu.RLock()
	g, ok := geomCache[n]
	geomMu.RUnlock()
	if ok {
		return g
	}

	geomMu.Lock()
	defer geomMu.Unlock()
	if g, ok := geomCache[n]; ok {
		return g
	}
	g = buildGeometry(n)
	geomCache[n] = g
	return g
}

func buildGeometry(n int) *geometry {
	size := n * n
	g := &geometry{n: n, size: size}

	g.squareOf = make([][]int, size)
	g.rowCells = make([][]Point, size)
	g.colCells = make([][]Point, size)
	g.sqCells = make([][]Point, size)

	for y := 0; y < size; y++ {
		g.squareOf[y] = make([]int, size)
		for x := 0; x < size; x++ {
			g.squareOf[y][x] = (y/n)*n + (x / n)
		}
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.rowCells[y] = append(g.rowCells[y], Point{x, y})
			g.colCells[x] = append(g.colCells[x], Point{x, y})
			s := g.squareOf[y][x]
			g.sqCells[s] = append(g.sqCells[s], Point{x, y})
		}
	}

	g.peers = make([][][4][]Point, size)
	for y := 0; y < size; y++ {
		g.peers[y] = make([][4][]Point, size)
		for x := 0; x < size; x++ {
			var rowP, colP, sqP []Point
			for _, p := range g.rowCells[y] {
				if p.X != x {
					rowP = append(rowP, p)
				}
			}
			for _, p := range g.colCells[x] {
				if p.Y != y {
					colP = append(colP, p)
				}
			}
			for _, p := range g.sqCells[g.squareOf[y][x]] {
				if p.X != x || p.Y != y {
					sqP = append(sqP, p)
				}
			}
			all := dedupPoints(append(append(append([]Point{}, rowP...), colP...), sqP...))
			g.peers[y][x] = [4][]Point{rowP, colP, sqP, all}
		}
	}
	return g
}

func dedupPoints(pts []Point) []Point {
	seen := make(map[Point]bool, len(pts))
	out := pts[:0]
	for _, p := range pts {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// SquareTopLeft returns the top-left cell of square s, per spec.md §3.
func SquareTopLeft(n, s int) Point {
	return Point{X: (s % n) * n, Y: (s / n) * n}
}
