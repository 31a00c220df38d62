package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carpetsudoku/carpet/internal/generator"
	"github.com/carpetsudoku/carpet/internal/observe"
	"github.com/carpetsudoku/carpet/pkg/constants"
)

// newBenchmarkCmd implements `benchmark`: times generation per difficulty
// class (spec.md §6), extended per SPEC_FULL.md §C item 3 to iterate every
// pattern variant instead of just the original's Simple, and to expose
// live progress over internal/observe's status server while it runs.
func newBenchmarkCmd(log zerolog.Logger) *cobra.Command {
	var (
		n        int
		size     int
		statusAt string
	)

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Time puzzle generation across every pattern and difficulty class",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range allPatterns(size) {
				for _, d := range allDifficulties() {
					gen := generator.New(d)

					var statusSrv *observe.StatusServer
					if statusAt != "" {
						statusSrv = observe.NewStatusServer(statusAt, gen)
						statusSrv.Start()
					}

					start := time.Now()
					filled, _, err := generateOne(cmd.Context(), n, p, d, log)
					elapsed := time.Since(start)

					if statusSrv != nil {
						statusSrv.Shutdown(cmd.Context())
					}

					if err != nil {
						fmt.Printf("%-14s %-8s FAILED: %v\n", p, d, err)
						continue
					}
					fmt.Printf("%-14s %-8s %v (score %d, explored %d)\n",
						p, d, elapsed, filled.Score, gen.Counters.Explored)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", constants.DefaultN, "box size N")
	cmd.Flags().IntVar(&size, "size", 2, "pattern size parameter k for the sized variants")
	cmd.Flags().StringVar(&statusAt, "status-addr", "", "if set, serve live progress at this address (e.g. :8080) during each run")
	return cmd
}
