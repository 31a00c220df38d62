// Package generator implements the work-stealing puzzle minimizer of
// spec.md §4.6: given a filled Carpet and a target difficulty class, it
// clears cells until the result is rule-solvable at exactly that class,
// has a unique completion, and is irreducible. Grounded on
// cmd/generate/main.go's worker-pool-plus-progress-ticker shape, with the
// worker count bounded via golang.org/x/sync/semaphore per spec.md §5
// ("parallel preemptive threads fixed at the host's logical-core count").
package generator

import (
	"context"
	"math/rand"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/carpetsudoku/carpet/internal/carpet"
	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/pattern"
)

// Counters is the progress bundle of spec.md §5 (iv), read by
// internal/observe/httpstatus.go while a run is in flight.
type Counters struct {
	Explored int64
	Skipped  int64
	Accepted int64
}

// seenSet is the insert-only mask set of spec.md §4.6, guarded so that "at
// most one worker observes a given mask as new" (spec.md §5 ordering
// guarantee).
type seenSet struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newSeenSet() *seenSet { return &seenSet{seen: make(map[string]bool)} }

// insertIfNew reports whether mask was not already present, inserting it
// either way.
func (s *seenSet) insertIfNew(mask string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen[mask] {
		return false
	}
	s.seen[mask] = true
	return true
}

// seed is one starting tuple of spec.md §4.6: a carpet with one cell (and
// its twins) already removed, plus the remaining candidate removals.
type seed struct {
	c         *carpet.Carpet
	removable []removable
}

// Result is a candidate minimal puzzle the controller must re-verify for
// (G2) uniqueness before accepting (spec.md §4.6 Termination).
type Result struct {
	Carpet *carpet.Carpet
}

// Generator runs the minimizer described in spec.md §4.6 over a filled
// carpet, fanning seeds out across a bounded worker pool.
type Generator struct {
	Difficulty core.Difficulty
	Counters   Counters

	sem     *semaphore.Weighted
	seen    *seenSet
	results chan Result
	stopped int32
}

// New builds a Generator whose worker pool is capped at runtime.NumCPU(),
// per spec.md §5.
func New(difficulty core.Difficulty) *Generator {
	return &Generator{
		Difficulty: difficulty,
		sem:        semaphore.NewWeighted(int64(runtime.NumCPU())),
		seen:       newSeenSet(),
		results:    make(chan Result, 1),
	}
}

func (g *Generator) stopRequested() bool {
	return atomicLoadBool(&g.stopped)
}

func (g *Generator) raiseStop() {
	atomicStoreBool(&g.stopped, true)
}

// Run drives the full spec.md §4.6 algorithm over filled: it enumerates
// the starting seeds (one per initially filled cell), runs each through
// the recursive minimizer on a pool bounded by the host's logical-core
// count, accepts the first result that re-verifies unique, and re-runs
// rule_solve_until on a copy of the winner to populate the winner's
// difficulty and score. The returned carpet keeps its holes.
func (g *Generator) Run(ctx context.Context, filled *carpet.Carpet, rng *rand.Rand) (*carpet.Carpet, error) {
	seeds := g.buildSeeds(filled, rng)

	var wg sync.WaitGroup
	for _, sd := range seeds {
		if g.stopRequested() {
			break
		}
		if err := g.sem.Acquire(ctx, 1); err != nil {
			break
		}
		// Each worker gets its own *rand.Rand derived from the caller's:
		// math/rand.Rand is not safe for concurrent use, and a Carpet is
		// never shared between threads (spec.md §5), so neither should the
		// source of randomness driving its mutation be.
		workerRNG := rand.New(rand.NewSource(rng.Int63()))
		wg.Add(1)
		go func(sd seed, workerRNG *rand.Rand) {
			defer wg.Done()
			defer g.sem.Release(1)
			g.minimize(sd.c, sd.removable, workerRNG)
		}(sd, workerRNG)
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	var winner *carpet.Carpet
	for winner == nil {
		select {
		case r := <-g.results:
			if g.verifyUnique(r.Carpet) {
				winner = r.Carpet
				g.raiseStop()
			}
		case <-done:
			select {
			case r := <-g.results:
				if g.verifyUnique(r.Carpet) {
					winner = r.Carpet
				}
			default:
			}
			if winner == nil {
				return nil, core.ErrPatternImpossible
			}
		}
	}

	<-done
	solved := winner.Clone()
	if _, err := solved.RuleSolveUntil(false, false, core.MaxTierFor(g.Difficulty)); err != nil {
		return nil, err
	}
	winner.MaxTier, winner.Difficulty, winner.Score = solved.MaxTier, solved.Difficulty, solved.Score
	return winner, nil
}

// buildSeeds enqueues one starting tuple per initially filled cell of
// filled, pre-removing that cell and its twins (spec.md §4.6 "Starting
// points").
func (g *Generator) buildSeeds(filled *carpet.Carpet, rng *rand.Rand) []seed {
	all := allRemovables(filled)
	var seeds []seed
	done := map[core.Cell]bool{}
	for _, r := range all {
		if done[r.Cell] {
			continue
		}
		c := filled.Clone()
		twins := c.TwinCells(r.Cell.Grid, r.Cell.X, r.Cell.Y)
		for _, t := range twins {
			done[t] = true
		}
		if _, err := c.RemoveValue(r.Cell.Grid, r.Cell.X, r.Cell.Y); err != nil {
			continue
		}
		rest := remainingAfter(all, twins)
		seeds = append(seeds, seed{c: c, removable: rest})
	}
	return seeds
}

func allRemovables(c *carpet.Carpet) []removable {
	var out []removable
	for g, gr := range c.Grids {
		for y := 0; y < gr.Size; y++ {
			for x := 0; x < gr.Size; x++ {
				if v := gr.Value(x, y); v != 0 {
					out = append(out, removable{Cell: core.Cell{Grid: g, X: x, Y: y}, Value: v})
				}
			}
		}
	}
	return out
}

func remainingAfter(all []removable, removed []core.Cell) []removable {
	gone := map[core.Cell]bool{}
	for _, c := range removed {
		gone[c] = true
	}
	var out []removable
	for _, r := range all {
		if !gone[r.Cell] {
			out = append(out, r)
		}
	}
	return out
}

// minAbsoluteClues is "2*N^2 - 1" from spec.md §4.6, the hard floor below
// which no pattern can remain rule-solvable regardless of difficulty.
func minAbsoluteClues(c *carpet.Carpet) int {
	n := c.N
	return 2*n*n - 1
}

// minimize is the recursive minimizer of spec.md §4.6.
func (g *Generator) minimize(c *carpet.Carpet, remaining []removable, rng *rand.Rand) {
	if g.stopRequested() {
		return
	}
	mask := maskOf(c)
	if !g.seen.insertIfNew(mask) {
		atomicAddInt64(&g.Counters.Skipped, 1)
		return
	}
	atomicAddInt64(&g.Counters.Explored, 1)

	if len(remaining) < minAbsoluteClues(c) {
		return
	}

	ordered := orderByConstraint(c, append([]removable(nil), remaining...), rng)

	progressed := false
	for _, r := range ordered {
		if g.stopRequested() {
			return
		}
		trial := c.Clone()
		twins := trial.TwinCells(r.Cell.Grid, r.Cell.X, r.Cell.Y)
		if _, err := trial.RemoveValue(r.Cell.Grid, r.Cell.X, r.Cell.Y); err != nil {
			continue
		}

		check := trial.Clone()
		maxTier := core.MaxTierFor(g.Difficulty)
		if _, err := check.RuleSolveUntil(false, false, maxTier); err != nil {
			continue
		}
		if !check.Filled() {
			continue
		}

		rest := remainingAfter(remaining, twins)
		g.minimize(trial, rest, rng)
		progressed = true
	}

	if progressed {
		return
	}

	if g.satisfiesG1AndG3(c) {
		atomicAddInt64(&g.Counters.Accepted, 1)
		select {
		case g.results <- Result{Carpet: c}:
		default:
			// A result is already queued awaiting the controller; per
			// spec.md §5 the controller only needs the first valid
			// candidate, so a worker whose slot is full simply drops this
			// one rather than blocking.
		}
	}
}

// satisfiesG1AndG3 checks (G1) the carpet is rule-solvable at exactly the
// target class and (G3) no sub-pattern of it — every connected carpet
// obtainable by deleting whole grids, per pattern.SubPatterns — is
// independently rule-solvable at class <= D (spec.md §4.6).
func (g *Generator) satisfiesG1AndG3(c *carpet.Carpet) bool {
	check := c.Clone()
	maxTier := core.MaxTierFor(g.Difficulty)
	if _, err := check.RuleSolveUntil(false, false, maxTier); err != nil {
		return false
	}
	if !check.Filled() {
		return false
	}
	if check.Difficulty != g.Difficulty {
		return false
	}

	for _, sp := range pattern.SubPatterns(c.Pattern, c.N) {
		restricted, err := carpetRestrictedTo(c, sp)
		if err != nil {
			continue
		}
		if _, err := restricted.RuleSolveUntil(false, false, maxTier); err != nil {
			continue
		}
		if restricted.Filled() {
			return false
		}
	}
	return true
}

// verifyUnique re-checks (G2) now that the minimizer's inner loop only
// checked rule-solvability (spec.md §4.6 Termination).
func (g *Generator) verifyUnique(c *carpet.Carpet) bool {
	return c.IsUnique()
}
