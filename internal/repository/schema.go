package repository

import (
	"context"
	"fmt"
)

// Schema creates the movies and movie_locations tables with the indexes used
// by the title search and by location lookups.
const Schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS movies (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL UNIQUE,
		release_year INT NOT NULL DEFAULT 0,
		director TEXT NOT NULL DEFAULT '',
		production_company TEXT NOT NULL DEFAULT '',
		distributor TEXT NOT NULL DEFAULT '',
		writer TEXT NOT NULL DEFAULT '',
		fun_facts TEXT NOT NULL DEFAULT '',
		actors TEXT[] NOT NULL DEFAULT '{}',
		title_tsvector TSVECTOR GENERATED ALWAYS AS (to_tsvector('english', title)) STORED
	);
	CREATE INDEX IF NOT EXISTS movies_title_tsvector_idx ON movies USING GIN (title_tsvector);

	CREATE TABLE IF NOT EXISTS movie_locations (
		id BIGSERIAL PRIMARY KEY,
		movie_id BIGINT NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
		position INT NOT NULL,
		address TEXT NOT NULL,
		geom GEOGRAPHY(POINT, 4326) NOT NULL
	);
	CREATE INDEX IF NOT EXISTS movie_locations_movie_id_idx ON movie_locations (movie_id, position);
	CREATE INDEX IF NOT EXISTS movie_locations_geom_idx ON movie_locations USING GIST (geom);
`

// EnsureSchema creates the tables and indexes if they do not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}
