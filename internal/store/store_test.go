package store_test

import (
	"context"
	"math/rand"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/carpetsudoku/carpet/internal/carpet"
	"github.com/carpetsudoku/carpet/internal/pattern"
	"github.com/carpetsudoku/carpet/internal/store"
)

// requireDatabaseURL skips the test unless a real Postgres is available;
// these tests exercise the store against an actual database and are not
// meant to run in an environment without one configured.
func requireDatabaseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set, skipping store integration test")
	}
	return url
}

func TestInsertAndLoadGameRoundTrips(t *testing.T) {
	url := requireDatabaseURL(t)
	ctx := context.Background()

	s, err := store.Open(ctx, url, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	c, err := carpet.New(3, pattern.NewSimple())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	require.NoError(t, c.BacktrackSolve(rng))

	carpetHash, err := s.InsertFilledCarpet(ctx, c)
	require.NoError(t, err)

	id, err := s.InsertCarpetGame(ctx, c, carpetHash)
	require.NoError(t, err)

	loaded, err := s.LoadGame(ctx, id)
	require.NoError(t, err)
	require.True(t, loaded.Filled())
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			require.Equal(t, c.Grids[0].Value(x, y), loaded.Grids[0].Value(x, y))
		}
	}
}

func TestInsertFilledGridDedupesByHash(t *testing.T) {
	url := requireDatabaseURL(t)
	ctx := context.Background()

	s, err := store.Open(ctx, url, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	c, err := carpet.New(3, pattern.NewSimple())
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(2))
	require.NoError(t, c.BacktrackSolve(rng))

	h1, err := s.InsertFilledGrid(ctx, c.Grids[0])
	require.NoError(t, err)
	h2, err := s.InsertFilledGrid(ctx, c.Grids[0])
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}
