package main

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carpetsudoku/carpet/internal/carpet"
	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/generator"
	"github.com/carpetsudoku/carpet/internal/pattern"
	"github.com/carpetsudoku/carpet/internal/store"
	"github.com/carpetsudoku/carpet/pkg/config"
	"github.com/carpetsudoku/carpet/pkg/constants"
)

// newFillDatabaseCmd implements `fill-database {grids|carpets} {filled|games} <count>`
// (spec.md §6), reflecting original_source/src/fill_database.rs's three
// independent fill loops as two entity kinds crossed with two row shapes,
// each with its own worker pool, grounded on cmd/generate/main.go's
// worker-pool-plus-progress-ticker shape.
func newFillDatabaseCmd(log zerolog.Logger) *cobra.Command {
	var (
		patternName string
		size        int
		n           int
		difficulty  string
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "fill-database {grids|carpets} {filled|games} <count>",
		Short: "Populate the store with canonical filled boards or playable games",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, shape, countStr := args[0], args[1], args[2]
			count, err := parseCount(countStr)
			if err != nil {
				return err
			}
			if entity != "grids" && entity != "carpets" {
				return &core.ConfigError{Msg: "first argument must be grids or carpets"}
			}
			if shape != "filled" && shape != "games" {
				return &core.ConfigError{Msg: "second argument must be filled or games"}
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := store.Open(ctx, cfg.DatabaseURL, log)
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := parsePattern(patternName, size)
			if err != nil {
				return err
			}
			d, err := parseDifficulty(difficulty)
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = runtime.NumCPU()
			}

			return runFillLoop(ctx, s, log, fillSpec{
				entity: entity, shape: shape, count: count, workers: workers,
				n: n, pattern: p, difficulty: d,
			})
		},
	}

	cmd.Flags().StringVar(&patternName, "pattern", "simple", "pattern for carpets mode")
	cmd.Flags().IntVar(&size, "size", 3, "pattern size parameter k")
	cmd.Flags().IntVar(&n, "n", constants.DefaultN, "box size N")
	cmd.Flags().StringVar(&difficulty, "difficulty", "easy", "difficulty for games mode")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker count, default number of logical CPUs")
	return cmd
}

func parseCount(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n <= 0 {
		return 0, &core.ConfigError{Msg: "count must be a positive integer"}
	}
	return n, nil
}

type fillSpec struct {
	entity     string
	shape      string
	count      int
	workers    int
	n          int
	pattern    pattern.Pattern
	difficulty core.Difficulty
}

// runFillLoop drives `count` independent generations across a bounded
// worker pool, reporting progress on a ticker exactly as
// cmd/generate/main.go's generator does.
func runFillLoop(ctx context.Context, s *store.Store, log zerolog.Logger, spec fillSpec) error {
	var done int64
	start := time.Now()

	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(constants.ProgressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				d := atomic.LoadInt64(&done)
				log.Info().
					Int64("done", d).
					Int("target", spec.count).
					Dur("elapsed", time.Since(start)).
					Msg("fill-database progress")
			case <-stop:
				return
			}
		}
	}()

	work := make(chan int, spec.count)
	for i := 0; i < spec.count; i++ {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	var firstErr error
	var errMu sync.Mutex

	for w := 0; w < spec.workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(workerID)))
			for range work {
				if err := fillOne(ctx, s, spec, rng); err != nil {
					errMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					errMu.Unlock()
					continue
				}
				atomic.AddInt64(&done, 1)
			}
		}(w)
	}

	wg.Wait()
	close(stop)

	log.Info().Int64("done", atomic.LoadInt64(&done)).Dur("elapsed", time.Since(start)).Msg("fill-database complete")
	return firstErr
}

func fillOne(ctx context.Context, s *store.Store, spec fillSpec, rng *rand.Rand) error {
	p := spec.pattern
	if spec.entity == "grids" {
		p = pattern.NewSimple()
	}

	c, err := carpet.New(spec.n, p)
	if err != nil {
		return err
	}
	if err := c.BacktrackSolve(rng); err != nil {
		return err
	}

	carpetHash, err := s.InsertFilledCarpet(ctx, c)
	if err != nil {
		return err
	}
	if spec.shape == "filled" {
		return nil
	}

	gen := generator.New(spec.difficulty)
	game, err := gen.Run(ctx, c, rng)
	if err != nil {
		return err
	}
	_, err = s.InsertCarpetGame(ctx, game, carpetHash)
	return err
}
