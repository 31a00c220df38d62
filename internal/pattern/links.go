package pattern

// RawLink is the unordered pair ((g1,s1),(g2,s2)) of spec.md §3: the N×N
// cells of square s1 in grid g1 are identified cell-by-cell with square s2
// in grid g2.
type RawLink struct {
	Grid1, Square1 int
	Grid2, Square2 int
}

func normalize(l RawLink) RawLink {
	if l.Grid1 > l.Grid2 || (l.Grid1 == l.Grid2 && l.Square1 > l.Square2) {
		l.Grid1, l.Grid2 = l.Grid2, l.Grid1
		l.Square1, l.Square2 = l.Square2, l.Square1
	}
	return l
}

// corner identifies one of a grid's four corner squares.
type corner int

const (
	cornerTL corner = iota
	cornerTR
	cornerBL
	cornerBR
)

// cornerSquare returns the square index of the given corner of an
// n-square-per-side grid.
func cornerSquare(n int, c corner) int {
	switch c {
	case cornerTR:
		return n - 1
	case cornerBL:
		return n * (n - 1)
	case cornerBR:
		return n*n - 1
	default:
		return 0
	}
}

func linkCorner(g1 int, c1 corner, g2 int, c2 corner, n int) RawLink {
	return normalize(RawLink{g1, cornerSquare(n, c1), g2, cornerSquare(n, c2)})
}

func dedupLinks(links []RawLink) []RawLink {
	seen := make(map[RawLink]bool, len(links))
	var out []RawLink
	for _, l := range links {
		l = normalize(l)
		if l.Grid1 == l.Grid2 && l.Square1 == l.Square2 {
			continue // a square never links to itself
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

// RawLinks enumerates the complete set of cell-level equivalences for a
// pattern at the given N, per spec.md §4.2. Grounded on
// original_source/src/carpet_sudoku/pattern.rs's CarpetPattern::get_raw_links.
func RawLinks(p Pattern, n int) []RawLink {
	switch p.Kind {
	case Simple, Custom:
		return nil
	case Samurai:
		return dedupLinks(samuraiLinks(n))
	case Diagonal:
		return dedupLinks(diagonalLinks(p.Size, n))
	case DenseDiagonal:
		return dedupLinks(diagonalLinksDense(p.Size, n))
	case Carpet:
		return dedupLinks(tilingLinksSparse(p.Size, n, false))
	case DenseCarpet:
		return dedupLinks(tilingLinksDense(p.Size, n, false))
	case Thorus:
		return dedupLinks(tilingLinksSparse(p.Size, n, true))
	case DenseThorus:
		return dedupLinks(tilingLinksDense(p.Size, n, true))
	default:
		return nil
	}
}

// samuraiLinks attaches the four corner squares of the central grid (0) to
// the opposite corner squares of the four corner grids (1..4), ordered
// NW, NE, SW, SE.
func samuraiLinks(n int) []RawLink {
	return []RawLink{
		linkCorner(0, cornerTL, 1, cornerBR, n),
		linkCorner(0, cornerTR, 2, cornerBL, n),
		linkCorner(0, cornerBL, 3, cornerTR, n),
		linkCorner(0, cornerBR, 4, cornerTL, n),
	}
}

// diagonalLinks chains k grids: grid i's top-right corner square touches
// grid i+1's bottom-left corner square, one square per adjacent pair
// (pattern.rs:136-139).
func diagonalLinks(k, n int) []RawLink {
	var out []RawLink
	for i := 0; i+1 < k; i++ {
		out = append(out, linkCorner(i, cornerTR, i+1, cornerBL, n))
	}
	return out
}

// diagonalLinksDense chains k grids at every offset j in [1, n-1]: for each
// pair (i, i+j), the top n-j square rows and rightmost n-j square columns of
// grid i overlap the bottom-left (n-j)x(n-j) squares of grid i+j, one
// square at a time. Grounded on
// pattern.rs:198-216 (CarpetPattern::DenseDiagonal), whose j loop reaches
// grids more than one step apart in the chain, not just immediate
// neighbours.
func diagonalLinksDense(k, n int) []RawLink {
	sq := func(row, col int) int { return row*n + col }
	var out []RawLink
	for i := 0; i < k; i++ {
		for j := 1; j < n; j++ {
			gj := i + j
			if gj >= k {
				continue
			}
			for y1 := 0; y1 < n-j; y1++ {
				y2 := y1 + j
				for x1 := j; x1 < n; x1++ {
					x2 := x1 - j
					out = append(out, normalize(RawLink{i, sq(y1, x1), gj, sq(y2, x2)}))
				}
			}
		}
	}
	return out
}

// tilingLinksSparse lays out k×k grids in a meta-grid, each grid g(r,c)=
// r*k+c sharing its entire east edge (one link per square row) with its
// east neighbour, its entire south edge (one link per square column) with
// its south neighbour, and a single corner square with each of its two
// diagonal neighbours (south-east, south-west). wrap selects Thorus
// (toroidal) adjacency, where every grid has all four neighbours
// unconditionally. Grounded on pattern.rs:126-170
// (CarpetPattern::Carpet/Thorus).
func tilingLinksSparse(k, n int, wrap bool) []RawLink {
	idx := func(r, c int) int { return r*k + c }
	sq := func(row, col int) int { return row*n + col }
	var out []RawLink

	for r := 0; r < k; r++ {
		for c := 0; c < k; c++ {
			g := idx(r, c)

			if wrap || c+1 < k {
				ec := (c + 1) % k
				eg := idx(r, ec)
				for row := 0; row < n; row++ {
					out = append(out, normalize(RawLink{g, sq(row, n-1), eg, sq(row, 0)}))
				}
			}
			if wrap || r+1 < k {
				sr := (r + 1) % k
				sg := idx(sr, c)
				for col := 0; col < n; col++ {
					out = append(out, normalize(RawLink{g, sq(n-1, col), sg, sq(0, col)}))
				}
			}
			if wrap || (r+1 < k && c+1 < k) {
				sr, ec := (r+1)%k, (c+1)%k
				out = append(out, normalize(RawLink{g, sq(n-1, n-1), idx(sr, ec), sq(0, 0)}))
			}
			if wrap || (r+1 < k && c > 0) {
				sr := (r + 1) % k
				wc := c - 1
				if wrap && c == 0 {
					wc = k - 1
				}
				out = append(out, normalize(RawLink{g, sq(n-1, 0), idx(sr, wc), sq(0, n-1)}))
			}
		}
	}
	return out
}

// tilingLinksDense lays out k×k grids in a meta-grid and, for every pair of
// grids within an independent row offset dy and column offset dx (each in
// [1, n-1]), links the overlapping (n-dy)x(n-dx)-square band one square at
// a time: east/west neighbours (dy=0), north/south neighbours (dx=0), and
// both diagonal families (dy, dx both nonzero, not necessarily equal).
// wrap selects Dense Thorus (toroidal) adjacency. Grounded on
// pattern.rs:198-303 (CarpetPattern::DenseCarpet/DenseThorus).
func tilingLinksDense(k, n int, wrap bool) []RawLink {
	idx := func(r, c int) int { return r*k + c }
	wrapIdx := func(v, m int) int { return ((v % m) + m) % m }
	sq := func(row, col int) int { return row*n + col }
	var out []RawLink

	for r := 0; r < k; r++ {
		for c := 0; c < k; c++ {
			g := idx(r, c)

			for dx := 1; dx < n; dx++ {
				if !wrap && c+dx >= k {
					continue
				}
				eg := idx(r, wrapIdx(c+dx, k))
				for row := 0; row < n; row++ {
					for col := dx; col < n; col++ {
						out = append(out, normalize(RawLink{g, sq(row, col), eg, sq(row, col-dx)}))
					}
				}
			}

			for dy := 1; dy < n; dy++ {
				if !wrap && r+dy >= k {
					continue
				}
				sg := idx(wrapIdx(r+dy, k), c)
				for row := dy; row < n; row++ {
					for col := 0; col < n; col++ {
						out = append(out, normalize(RawLink{g, sq(row, col), sg, sq(row-dy, col)}))
					}
				}
			}

			for dy := 1; dy < n; dy++ {
				if !wrap && r+dy >= k {
					continue
				}
				for dx := 1; dx < n; dx++ {
					if !wrap && c+dx >= k {
						continue
					}
					cg := idx(wrapIdx(r+dy, k), wrapIdx(c+dx, k))
					for row := dy; row < n; row++ {
						for col := dx; col < n; col++ {
							out = append(out, normalize(RawLink{g, sq(row, col), cg, sq(row-dy, col-dx)}))
						}
					}
				}
			}

			for dy := 1; dy < n; dy++ {
				if !wrap && r+dy >= k {
					continue
				}
				for dx := 1; dx < n; dx++ {
					if !wrap && c < dx {
						continue
					}
					cc := c - dx
					if wrap {
						cc = wrapIdx(c-dx, k)
					}
					cg := idx(wrapIdx(r+dy, k), cc)
					for row := dy; row < n; row++ {
						for col := 0; col < n-dx; col++ {
							out = append(out, normalize(RawLink{g, sq(row, col), cg, sq(row-dy, col+dx)}))
						}
					}
				}
			}
		}
	}
	return out
}
