package store

// schemaDDL creates the four-entity persisted representation of spec.md §6.
// Kept as a single idempotent statement batch, grounded on
// original_source/src/database/schema.rs's table shapes but written against
// pgx instead of diesel's macro-generated schema module.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS canonical_filled_grids (
	hash  BIGINT PRIMARY KEY,
	n     SMALLINT NOT NULL,
	board BYTEA NOT NULL
);

CREATE TABLE IF NOT EXISTS canonical_filled_grid_squares (
	grid_hash   BIGINT NOT NULL REFERENCES canonical_filled_grids(hash),
	square_id   SMALLINT NOT NULL,
	square_hash BIGINT NOT NULL,
	PRIMARY KEY (grid_hash, square_id)
);

CREATE TABLE IF NOT EXISTS canonical_filled_carpets (
	hash         BIGINT PRIMARY KEY,
	n            SMALLINT NOT NULL,
	grid_count   SMALLINT NOT NULL,
	pattern_tag  SMALLINT NOT NULL,
	pattern_size SMALLINT
);

CREATE TABLE IF NOT EXISTS canonical_filled_carpet_grids (
	carpet_hash BIGINT NOT NULL REFERENCES canonical_filled_carpets(hash),
	grid_index  SMALLINT NOT NULL,
	grid_hash   BIGINT NOT NULL REFERENCES canonical_filled_grids(hash),
	PRIMARY KEY (carpet_hash, grid_index)
);

CREATE TABLE IF NOT EXISTS canonical_carpet_games (
	id                 UUID PRIMARY KEY,
	carpet_hash        BIGINT NOT NULL REFERENCES canonical_filled_carpets(hash),
	difficulty         SMALLINT NOT NULL,
	filled_cells       BYTEA NOT NULL,
	filled_cells_count SMALLINT NOT NULL
);
`
