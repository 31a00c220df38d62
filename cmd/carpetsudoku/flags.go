package main

import (
	"errors"
	"fmt"

	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/pattern"
)

// asConfigError reports whether err (or something it wraps) is a
// core.ConfigError, used by main to pick the right exit code from
// spec.md §6 ("Exit codes: ... 1 configuration error").
func asConfigError(err error) bool {
	var ce *core.ConfigError
	return errors.As(err, &ce)
}

// parsePattern turns a CLI --pattern value into a pattern.Pattern, per the
// tag names of spec.md §6's wire mapping.
func parsePattern(name string, size int) (pattern.Pattern, error) {
	switch name {
	case "simple":
		return pattern.NewSimple(), nil
	case "samurai":
		return pattern.NewSamurai(), nil
	case "diagonal":
		return requireSize(pattern.NewDiagonal, size, name)
	case "dense_diagonal":
		return requireSize(pattern.NewDenseDiagonal, size, name)
	case "carpet":
		return requireSize(pattern.NewCarpet, size, name)
	case "dense_carpet":
		return requireSize(pattern.NewDenseCarpet, size, name)
	case "thorus":
		return requireSize(pattern.NewThorus, size, name)
	case "dense_thorus":
		return requireSize(pattern.NewDenseThorus, size, name)
	default:
		return pattern.Pattern{}, &core.ConfigError{Msg: "unknown --pattern " + name}
	}
}

func requireSize(ctor func(int) pattern.Pattern, size int, name string) (pattern.Pattern, error) {
	if size < 1 {
		return pattern.Pattern{}, &core.ConfigError{Msg: fmt.Sprintf("--pattern %s requires --size >= 1", name)}
	}
	return ctor(size), nil
}

// allPatterns lists one instance of every pattern variant at the given
// size, used by `benchmark` to iterate the whole catalogue (SPEC_FULL.md
// §C item 3 extends the original's single-pattern benchmark to all of
// them).
func allPatterns(size int) []pattern.Pattern {
	return []pattern.Pattern{
		pattern.NewSimple(),
		pattern.NewSamurai(),
		pattern.NewDiagonal(size),
		pattern.NewDenseDiagonal(size),
		pattern.NewCarpet(size),
		pattern.NewDenseCarpet(size),
		pattern.NewThorus(size),
		pattern.NewDenseThorus(size),
	}
}

// allDifficulties lists every difficulty class in ascending order.
func allDifficulties() []core.Difficulty {
	return []core.Difficulty{
		core.DifficultyEasy,
		core.DifficultyMedium,
		core.DifficultyHard,
		core.DifficultyMaster,
		core.DifficultyExtreme,
	}
}

func parseDifficulty(s string) (core.Difficulty, error) {
	for _, d := range allDifficulties() {
		if string(d) == s {
			return d, nil
		}
	}
	return "", &core.ConfigError{Msg: "unknown --difficulty " + s}
}
