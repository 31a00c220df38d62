// Package constants holds shared magic numbers, generalized from the
// fixed 9x9 values the teacher hardcoded: N is a carpet-sudoku parameter,
// not a constant (spec.md §2), so the grid-size constants became
// functions of N instead.
package constants

import "time"

// MinAbsoluteClues returns the hard floor below which no carpet of box
// size n can remain rule-solvable, per spec.md §4.6: 2*N^2 - 1.
func MinAbsoluteClues(n int) int {
	return 2*n*n - 1
}

// DefaultN is the box size used when a CLI verb omits --n.
const DefaultN = 3

// Generator/solver limits.
const (
	MaxGeneratorSteps  = 500
	SolutionCountLimit = 2
)

// ProgressInterval is the cadence of fill-database's progress ticker
// goroutine, grounded on cmd/generate/main.go's 2-second progress ticker.
const ProgressInterval = 2 * time.Second

// APIVersion is this tool's version string. internal/observe's status
// endpoint does not include it.
const APIVersion = "0.1.0"

// DefaultPort is a port for the status HTTP server. benchmark's
// --status-addr has no default; the server runs only when it is set.
const DefaultPort = "8080"

// DateFormat is a stable textual date layout. Store logging and CLI output
// do not use it.
const DateFormat = "2006-01-02"

// Exit codes, per spec.md §6.
const (
	ExitSuccess       = 0
	ExitConfigError   = 1
	ExitStoreError    = 2
	ExitGenerationErr = 3
)

// EnvFilePath is where pkg/config persists a DATABASE_URL entered
// interactively, grounded on original_source/src/database/db.rs writing
// a `.env` file after the first interactive prompt.
const EnvFilePath = ".env"
