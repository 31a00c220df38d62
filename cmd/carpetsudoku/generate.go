package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carpetsudoku/carpet/internal/carpet"
	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/generator"
	"github.com/carpetsudoku/carpet/internal/pattern"
	"github.com/carpetsudoku/carpet/pkg/constants"
)

// newGenerateCmd implements `generate --pattern P --difficulty D`: emit a
// puzzle to stdout (spec.md §6).
func newGenerateCmd(log zerolog.Logger) *cobra.Command {
	var (
		patternName string
		size        int
		n           int
		difficulty  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a carpet sudoku puzzle and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePattern(patternName, size)
			if err != nil {
				return err
			}
			d, err := parseDifficulty(difficulty)
			if err != nil {
				return err
			}

			puzzle, given, err := generateOne(cmd.Context(), n, p, d, log)
			if err != nil {
				return err
			}
			printCarpet(puzzle, given)
			fmt.Printf("difficulty: %s, score: %d\n", puzzle.Difficulty, puzzle.Score)
			return nil
		},
	}

	cmd.Flags().StringVar(&patternName, "pattern", "simple", "pattern: simple|samurai|diagonal|dense_diagonal|carpet|dense_carpet|thorus|dense_thorus")
	cmd.Flags().IntVar(&size, "size", 3, "pattern size parameter k, ignored for simple/samurai")
	cmd.Flags().IntVar(&n, "n", constants.DefaultN, "box size N (grid is N^2 x N^2)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "easy", "difficulty: easy|medium|hard|master|extreme")
	return cmd
}

// maxFillAttempts bounds the full-grid backtrack retry loop before giving
// up on a pattern as genuinely impossible at this size.
const maxFillAttempts = 8

// generateOne runs a full-grid backtrack fill followed by the generator's
// minimizer, retrying the fill on a Pattern-impossible contradiction per
// spec.md §7 ("the generator retries with a fresh attempt"). It returns
// the minimized puzzle and the set of cells that remain filled (its
// "givens") for the printer to highlight.
func generateOne(ctx context.Context, n int, p pattern.Pattern, d core.Difficulty, log zerolog.Logger) (*carpet.Carpet, map[core.Cell]bool, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var filled *carpet.Carpet
	var fillErr error
	for attempt := 0; attempt < maxFillAttempts; attempt++ {
		c, err := carpet.New(n, p)
		if err != nil {
			return nil, nil, err
		}
		if err := c.BacktrackSolve(rng); err != nil {
			if errors.Is(err, core.ErrPatternImpossible) {
				fillErr = err
				continue
			}
			return nil, nil, err
		}
		filled = c
		fillErr = nil
		break
	}
	if filled == nil {
		return nil, nil, fillErr
	}

	gen := generator.New(d)
	puzzle, err := gen.Run(ctx, filled, rng)
	if err != nil {
		return nil, nil, err
	}

	given := map[core.Cell]bool{}
	for gi, gr := range puzzle.Grids {
		for y := 0; y < gr.Size; y++ {
			for x := 0; x < gr.Size; x++ {
				if gr.Value(x, y) != 0 {
					given[core.Cell{Grid: gi, X: x, Y: y}] = true
				}
			}
		}
	}

	log.Info().
		Str("pattern", p.String()).
		Str("difficulty", string(puzzle.Difficulty)).
		Int("explored", int(gen.Counters.Explored)).
		Msg("generated carpet")

	return puzzle, given, nil
}
