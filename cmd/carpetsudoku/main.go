// Command carpetsudoku is the CLI surface of spec.md §6: generate,
// fill-database, and benchmark, wired through cobra the way the rest of
// the pack's CLI tools are (SPEC_FULL.md §B), replacing the teacher's bare
// flag package for these multi-verb tools.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/pkg/constants"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:   "carpetsudoku",
		Short: "Generate, store, and benchmark carpet sudoku puzzles",
	}

	root.AddCommand(newGenerateCmd(log))
	root.AddCommand(newFillDatabaseCmd(log))
	root.AddCommand(newBenchmarkCmd(log))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if ce := asConfigError(err); ce {
			os.Exit(constants.ExitConfigError)
		}
		var se *core.StoreError
		if errors.As(err, &se) {
			os.Exit(constants.ExitStoreError)
		}
		os.Exit(constants.ExitGenerationErr)
	}
}
