package rules

import "github.com/carpetsudoku/carpet/internal/core"

// Rule is one entry of the ordered catalogue described in spec.md §4.5.
// Detect consumes a Board and returns nil (no change), a value assignment,
// or a set of candidate eliminations; it never mutates the board itself —
// the Propagator applies whatever it returns.
type Rule struct {
	Name string
	Tier core.Tier
	Weight int
	Detect func(b Board) *core.Move
}

// Canonical tier numbering, spec.md §4.5.
const (
	TierNakedSingle core.Tier = 1 + iota
	TierHiddenSingle
	TierNakedPair
	TierNakedTriple
	TierHiddenPair
	TierHiddenTriple
	TierNakedQuad
	TierHiddenQuad
	TierPointingPair
	TierPointingTriple
	TierBoxLineReduction
	TierXWing
	TierFinnedXWing
	TierFrankenXWing
	TierSashimiXWing
	TierSkyscraper
	TierYWing
	TierWWing
	TierSwordfish
	TierFinnedSwordfish
	TierSashimiSwordfish
	TierXYZWing
	TierBUG
	TierXYChain
	TierJellyfish
	TierFinnedJellyfish
	TierSashimiJellyfish
	TierWXYZWing
	TierSubsetExclusion
	TierEmptyRectangle
	TierALSForcingChain
	TierDeathBlossom
	TierPatternOverlay
	TierBowmansBingo
)
