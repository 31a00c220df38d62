package core

import "fmt"

// NoCandidateError signals a cell's candidate set became empty. Inside
// backtracking or generation this is an expected branch failure and is
// recovered locally by the caller (spec.md §7); surfacing it anywhere else
// indicates a programming error.
type NoCandidateError struct {
	Grid, X, Y int
}

func (e *NoCandidateError) Error() string {
	return fmt.Sprintf("no candidate left for cell (grid=%d, x=%d, y=%d)", e.Grid, e.X, e.Y)
}

// ContradictionError signals two twin cells hold distinct non-zero values.
// Fatal: the current carpet must be abandoned.
type ContradictionError struct {
	GridA, XA, YA int
	GridB, XB, YB int
	ValueA, ValueB int
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("contradiction across link: (grid=%d,x=%d,y=%d)=%d vs (grid=%d,x=%d,y=%d)=%d",
		e.GridA, e.XA, e.YA, e.ValueA, e.GridB, e.XB, e.YB, e.ValueB)
}

// ErrPatternImpossible reports that a full-grid backtrack exhausted every
// possibility for the chosen pattern, or that a Dense pattern's raw link
// table was self-contradictory. The caller should retry with a fresh seed.
var ErrPatternImpossible = fmt.Errorf("pattern is impossible to fill")

// StoreError wraps an opaque failure from the persistence layer. Generation
// continues in-memory only; the error is surfaced to the caller.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store: %s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

// ConfigError reports invalid CLI arguments or missing environment.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "configuration error: " + e.Msg }
