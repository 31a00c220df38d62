// Package config loads the single environment variable this repository
// needs, per spec.md §6 ("Environment: a single variable, DATABASE_URL").
// It keeps the teacher's fail-closed posture in spirit (reject an unusable
// configuration instead of silently defaulting it) while following
// original_source/src/database/db.rs::Database::connect for the exact
// interactive-prompt fallback and one-time .env persistence.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/pkg/constants"
)

type Config struct {
	DatabaseURL string
}

// Load resolves DATABASE_URL from the environment, the local .env file
// written by a previous interactive run, or an interactive stdin prompt,
// in that order. A freshly prompted value is persisted to .env so the
// prompt is a one-time cost, exactly as the original Rust implementation
// does.
func Load() (*Config, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return &Config{DatabaseURL: url}, nil
	}

	if url, ok := readEnvFile(constants.EnvFilePath); ok {
		return &Config{DatabaseURL: url}, nil
	}

	fmt.Fprintln(os.Stderr, "Couldn't get DATABASE_URL environment variable")
	fmt.Println("Please enter the mandatory DATABASE_URL (postgresql://<user>:<password>@<host>/<database>):")
	url, err := readLine(os.Stdin)
	if err != nil {
		return nil, &core.ConfigError{Msg: "reading DATABASE_URL from stdin: " + err.Error()}
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, &core.ConfigError{Msg: "DATABASE_URL must not be empty"}
	}

	if err := os.WriteFile(constants.EnvFilePath, []byte("DATABASE_URL="+url+"\n"), 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not persist DATABASE_URL to %s: %v\n", constants.EnvFilePath, err)
	}

	return &Config{DatabaseURL: url}, nil
}

func readLine(f *os.File) (string, error) {
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", scanner.Err()
	}
	return scanner.Text(), nil
}

// readEnvFile reads a single DATABASE_URL=... line out of a dotenv-style
// file, mirroring dotenv::dotenv() from the original implementation
// without pulling in a full dotenv parser for one key.
func readEnvFile(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "DATABASE_URL=") {
			return strings.TrimPrefix(line, "DATABASE_URL="), true
		}
	}
	return "", false
}
