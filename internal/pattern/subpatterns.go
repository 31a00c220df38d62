package pattern

import "sync"

// SubPattern is one connected sub-carpet obtained by deleting whole grids
// from a pattern: which original grid indices remain, and the induced
// subset of RawLinks between them (spec.md §3, §4.2).
type SubPattern struct {
	Grids []int // original grid indices kept, ascending
	Links []RawLink
}

type subKey struct {
	n int
	p Pattern
}

// subCache is the process-wide, read-mostly memoization table described in
// spec.md §4.2/§9: misses populate on first query, guarded by a read/write
// lock, safe to discard on process exit.
var (
	subCacheMu sync.RWMutex
	subCache   = map[subKey][]SubPattern{}
)

// SubPatterns returns every distinct connected sub-pattern of p at the
// given N, memoized per (N, pattern).
func SubPatterns(p Pattern, n int) []SubPattern {
	key := subKey{n, p}

	subCacheMu.RLock()
	if v, ok := subCache[key]; ok {
		subCacheMu.RUnlock()
		return v
	}
	subCacheMu.RUnlock()

	subCacheMu.Lock()
	defer subCacheMu.Unlock()
	if v, ok := subCache[key]; ok {
		return v
	}

	v := computeSubPatterns(p, n)
	subCache[key] = v
	return v
}

func computeSubPatterns(p Pattern, n int) []SubPattern {
	nGrids := p.NGrids()
	links := RawLinks(p, n)

	full := make([]bool, nGrids)
	for i := range full {
		full[i] = true
	}

	seen := map[string]bool{}
	var out []SubPattern

	var recurse func(present []bool)
	recurse = func(present []bool) {
		mask := maskKey(present)
		if seen[mask] {
			return
		}
		seen[mask] = true

		induced := inducedLinks(links, present)
		if !connected(present, induced) {
			return
		}
		out = append(out, SubPattern{Grids: presentIndices(present), Links: induced})

		for g := 0; g < nGrids; g++ {
			if !present[g] {
				continue
			}
			count := 0
			for _, p := range present {
				if p {
					count++
				}
			}
			if count <= 1 {
				continue // removing the last grid yields the empty pattern; not a sub-pattern
			}
			next := append([]bool(nil), present...)
			next[g] = false
			recurse(next)
		}
	}

	recurse(full)

	// The full pattern itself is not a "sub"-pattern (spec.md §4.6 G3
	// quantifies over sub-patterns obtained by removing grids); drop it.
	result := out[:0]
	for _, sp := range out {
		if len(sp.Grids) < nGrids {
			result = append(result, sp)
		}
	}
	return result
}

func maskKey(present []bool) string {
	b := make([]byte, len(present))
	for i, p := range present {
		if p {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

func presentIndices(present []bool) []int {
	var out []int
	for i, p := range present {
		if p {
			out = append(out, i)
		}
	}
	return out
}

func inducedLinks(links []RawLink, present []bool) []RawLink {
	var out []RawLink
	for _, l := range links {
		if present[l.Grid1] && present[l.Grid2] {
			out = append(out, l)
		}
	}
	return out
}

// connected reports whether every present grid is reachable from every
// other present grid via induced. A single present grid is trivially
// connected.
func connected(present []bool, induced []RawLink) bool {
	adj := map[int][]int{}
	count := 0
	start := -1
	for g, p := range present {
		if p {
			count++
			if start == -1 {
				start = g
			}
		}
	}
	if count <= 1 {
		return true
	}
	for _, l := range induced {
		adj[l.Grid1] = append(adj[l.Grid1], l.Grid2)
		adj[l.Grid2] = append(adj[l.Grid2], l.Grid1)
	}

	visited := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		g := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range adj[g] {
			if !visited[nb] {
				visited[nb] = true
				stack = append(stack, nb)
			}
		}
	}
	return len(visited) == count
}
