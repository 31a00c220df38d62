// Package store persists and reconstructs carpets per spec.md §6's
// four-entity model, backed by pgx (github.com/jackc/pgx/v5) rather than
// the original implementation's diesel/PgConnection, and logged with
// zerolog the way the rest of the pack's services do for their store
// boundary (SPEC_FULL.md §A/§B).
package store

import (
	"context"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/carpetsudoku/carpet/internal/carpet"
	"github.com/carpetsudoku/carpet/internal/core"
	"github.com/carpetsudoku/carpet/internal/grid"
	"github.com/carpetsudoku/carpet/internal/pattern"
)

// Store wraps a pooled Postgres connection. A nil *Store is never valid;
// construct one via Open.
type Store struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// Open connects to databaseURL and ensures the schema exists. Errors are
// wrapped in core.StoreError so callers (cmd/carpetsudoku) can distinguish
// store failures from configuration or generation failures per spec.md §7.
func Open(ctx context.Context, databaseURL string, log zerolog.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, &core.StoreError{Op: "connect", Err: err}
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &core.StoreError{Op: "ping", Err: err}
	}
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		pool.Close()
		return nil, &core.StoreError{Op: "migrate", Err: err}
	}
	return &Store{pool: pool, log: log}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() { s.pool.Close() }

// canonicalHashBoard is the FNV-1a hash over a grid's row-major board
// bytes, per SPEC_FULL.md §C item 1 (dedup of filled grids/carpets).
func canonicalHashBoard(board []byte) int64 {
	h := fnv.New64a()
	h.Write(board)
	return int64(h.Sum64())
}

func boardBytes(g *grid.Grid) []byte {
	out := make([]byte, 0, g.Size*g.Size)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			out = append(out, byte(g.Value(x, y)))
		}
	}
	return out
}

func squareBytes(g *grid.Grid, square int) []byte {
	pts := g.SquareCells(square)
	out := make([]byte, 0, len(pts))
	for _, p := range pts {
		out = append(out, byte(g.Value(p.X, p.Y)))
	}
	return out
}

// InsertFilledGrid canonicalizes and stores g (and its per-square hashes),
// skipping the write if the hash already exists (SPEC_FULL.md §C item 1:
// "skip re-inserting an already-seen filled grid").
func (s *Store) InsertFilledGrid(ctx context.Context, g *grid.Grid) (int64, error) {
	board := boardBytes(g)
	hash := canonicalHashBoard(board)

	tag, err := s.pool.Exec(ctx,
		`INSERT INTO canonical_filled_grids (hash, n, board) VALUES ($1, $2, $3)
		 ON CONFLICT (hash) DO NOTHING`,
		hash, g.N, board)
	if err != nil {
		return 0, &core.StoreError{Op: "insert filled grid", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return hash, nil // already canonical, nothing further to insert
	}

	for sq := 0; sq < g.Size; sq++ {
		sqHash := canonicalHashBoard(squareBytes(g, sq))
		if _, err := s.pool.Exec(ctx,
			`INSERT INTO canonical_filled_grid_squares (grid_hash, square_id, square_hash)
			 VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			hash, sq, sqHash); err != nil {
			return 0, &core.StoreError{Op: "insert grid square hash", Err: err}
		}
	}
	return hash, nil
}

// InsertFilledCarpet canonicalizes c (every grid, via InsertFilledGrid)
// and stores the carpet row referencing them by hash.
func (s *Store) InsertFilledCarpet(ctx context.Context, c *carpet.Carpet) (int64, error) {
	gridHashes := make([]int64, len(c.Grids))
	for i, g := range c.Grids {
		h, err := s.InsertFilledGrid(ctx, g)
		if err != nil {
			return 0, err
		}
		gridHashes[i] = h
	}

	combined := make([]byte, 0, len(gridHashes)*8)
	for _, h := range gridHashes {
		combined = appendInt64(combined, h)
	}
	carpetHash := canonicalHashBoard(combined)

	patternTag, patternHasSize := c.Pattern.WireTag()
	var patternSize *int
	if patternHasSize {
		sz := c.Pattern.Size
		patternSize = &sz
	}

	res, err := s.pool.Exec(ctx,
		`INSERT INTO canonical_filled_carpets (hash, n, grid_count, pattern_tag, pattern_size)
		 VALUES ($1, $2, $3, $4, $5) ON CONFLICT (hash) DO NOTHING`,
		carpetHash, c.N, len(c.Grids), patternTag, patternSize)
	if err != nil {
		return 0, &core.StoreError{Op: "insert filled carpet", Err: err}
	}
	if res.RowsAffected() == 0 {
		return carpetHash, nil
	}

	for i, h := range gridHashes {
		if _, err := s.pool.Exec(ctx,
			`INSERT INTO canonical_filled_carpet_grids (carpet_hash, grid_index, grid_hash)
			 VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			carpetHash, i, h); err != nil {
			return 0, &core.StoreError{Op: "insert filled carpet grid", Err: err}
		}
	}
	return carpetHash, nil
}

func appendInt64(b []byte, v int64) []byte {
	for i := 0; i < 8; i++ {
		b = append(b, byte(v>>(8*i)))
	}
	return b
}

// difficultyWire maps a core.Difficulty to its persisted ordinal. This is
// an implementation decision (spec.md §6 fixes the pattern tag mapping but
// not a difficulty one); easiest-to-hardest ordinal, recorded in DESIGN.md.
func difficultyWire(d core.Difficulty) int16 {
	switch d {
	case core.DifficultyEasy:
		return 0
	case core.DifficultyMedium:
		return 1
	case core.DifficultyHard:
		return 2
	case core.DifficultyMaster:
		return 3
	default:
		return 4
	}
}

func wireDifficulty(w int16) core.Difficulty {
	switch w {
	case 0:
		return core.DifficultyEasy
	case 1:
		return core.DifficultyMedium
	case 2:
		return core.DifficultyHard
	case 3:
		return core.DifficultyMaster
	default:
		return core.DifficultyExtreme
	}
}

// InsertCarpetGame persists a puzzle (a carpet with holes) against its
// already-canonicalized filled carpet, returning the new game's id.
func (s *Store) InsertCarpetGame(ctx context.Context, game *carpet.Carpet, filledCarpetHash int64) (uuid.UUID, error) {
	id := uuid.New()
	cells, count := filledCellsOf(game)

	_, err := s.pool.Exec(ctx,
		`INSERT INTO canonical_carpet_games (id, carpet_hash, difficulty, filled_cells, filled_cells_count)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, filledCarpetHash, difficultyWire(game.Difficulty), cells, count)
	if err != nil {
		return uuid.Nil, &core.StoreError{Op: "insert carpet game", Err: err}
	}
	s.log.Info().Str("game_id", id.String()).Int64("carpet_hash", filledCarpetHash).Msg("stored carpet game")
	return id, nil
}

// filledCellsOf packs every grid's board into one compact row-major byte
// list, per spec.md §6's `filled_cells: byte[]` with zeros for holes.
func filledCellsOf(c *carpet.Carpet) ([]byte, int) {
	var out []byte
	count := 0
	for _, g := range c.Grids {
		for y := 0; y < g.Size; y++ {
			for x := 0; x < g.Size; x++ {
				v := g.Value(x, y)
				out = append(out, byte(v))
				if v != 0 {
					count++
				}
			}
		}
	}
	return out, count
}

// LoadGame reconstructs a Carpet from a persisted game row: N and the
// pattern come from the referenced filled carpet row, every grid's values
// and holes from the game row's filled_cells list, following spec.md §6's
// reconstruction recipe ("set every listed value via the canonical
// constructor, then run update_links once to seed candidates").
func (s *Store) LoadGame(ctx context.Context, id uuid.UUID) (*carpet.Carpet, error) {
	var carpetHash int64
	var difficultyW int16
	var filledCells []byte
	err := s.pool.QueryRow(ctx,
		`SELECT carpet_hash, difficulty, filled_cells FROM canonical_carpet_games WHERE id = $1`,
		id).Scan(&carpetHash, &difficultyW, &filledCells)
	if err != nil {
		return nil, &core.StoreError{Op: "load carpet game", Err: err}
	}

	var n int16
	var gridCount int16
	var patternTag int16
	var patternSize *int
	err = s.pool.QueryRow(ctx,
		`SELECT n, grid_count, pattern_tag, pattern_size FROM canonical_filled_carpets WHERE hash = $1`,
		carpetHash).Scan(&n, &gridCount, &patternTag, &patternSize)
	if err != nil {
		return nil, &core.StoreError{Op: "load filled carpet", Err: err}
	}

	p, err := patternFromWire(patternTag, patternSize, int(gridCount))
	if err != nil {
		return nil, err
	}

	c, err := carpet.New(int(n), p)
	if err != nil {
		return nil, &core.StoreError{Op: "rebuild carpet", Err: err}
	}

	idx := 0
	for _, g := range c.Grids {
		for y := 0; y < g.Size; y++ {
			for x := 0; x < g.Size; x++ {
				if idx >= len(filledCells) {
					break
				}
				if v := int(filledCells[idx]); v != 0 {
					g.ForceValue(x, y, v)
				}
				idx++
			}
		}
	}
	for _, g := range c.Grids {
		g.RecomputeAllCandidates()
	}
	if err := c.UpdateLinks(); err != nil {
		return nil, err
	}
	c.Difficulty = wireDifficulty(difficultyW)
	return c, nil
}

func patternFromWire(tag int16, size *int, nGrids int) (pattern.Pattern, error) {
	switch tag {
	case 0:
		return pattern.NewSimple(), nil
	case 1:
		return pattern.NewSamurai(), nil
	case 2:
		return pattern.NewDiagonal(valueOr(size, nGrids)), nil
	case 3:
		return pattern.NewDenseDiagonal(valueOr(size, nGrids)), nil
	case 4:
		return pattern.NewCarpet(valueOr(size, nGrids)), nil
	case 5:
		return pattern.NewDenseCarpet(valueOr(size, nGrids)), nil
	case 6:
		return pattern.NewThorus(valueOr(size, nGrids)), nil
	case 7:
		return pattern.NewDenseThorus(valueOr(size, nGrids)), nil
	default:
		return pattern.Pattern{}, &core.ConfigError{Msg: "unknown pattern tag in store row"}
	}
}

func valueOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
