package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"movie-locations/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx shared by *pgx.Conn and *pgxpool.Pool.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repository implements movie storage on PostgreSQL with PostGIS
type Repository struct {
	db DBTX
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db DBTX) *Repository {
	return &Repository{db: db}
}

// SearchMoviesByTitle matches titles against the full-text index or, failing
// that, against any of the words of text as a case-insensitive pattern.
func (r *Repository) SearchMoviesByTitle(ctx context.Context, text string, limit int) ([]models.SearchResultItem, error) {
	sql := `
		SELECT id, title, release_year
		FROM movies
		WHERE title_tsvector @@ plainto_tsquery('english', $1)
		   OR title ~* $2
		ORDER BY ts_rank(title_tsvector, plainto_tsquery('english', $1)) DESC, title
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, sql, text, titlePattern(text), limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute search query: %w", err)
	}
	defer rows.Close()

	movies := []models.SearchResultItem{}
	for rows.Next() {
		var m models.SearchResultItem
		if err := rows.Scan(&m.ID, &m.Title, &m.ReleaseYear); err != nil {
			return nil, fmt.Errorf("repository: failed to scan movie: %w", err)
		}
		movies = append(movies, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return movies, nil
}

// titlePattern builds "(word1|word2|...)" from the words of text.
func titlePattern(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return "(" + strings.Join(words, "|") + ")"
}

// FindMovieByID returns the movie with its locations in insertion order, or nil if there is no such movie
func (r *Repository) FindMovieByID(ctx context.Context, id int64) (*models.MovieDetail, error) {
	sql := `
		SELECT id, title, release_year, director, production_company, distributor, writer, fun_facts, actors
		FROM movies
		WHERE id = $1
	`

	var m models.MovieDetail
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&m.ID,
		&m.Title,
		&m.ReleaseYear,
		&m.Director,
		&m.ProductionCompany,
		&m.Distributor,
		&m.Writer,
		&m.FunFacts,
		&m.Actors,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to query movie: %w", err)
	}
	if m.Actors == nil {
		m.Actors = []string{}
	}

	locations, err := r.findLocations(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Locations = locations

	return &m, nil
}

func (r *Repository) findLocations(ctx context.Context, movieID int64) ([]models.Location, error) {
	sql := `
		SELECT
			address,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude
		FROM movie_locations
		WHERE movie_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, sql, movieID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query locations: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.Address, &loc.Lat, &loc.Lng); err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, nil
}

// InsertMovies stores movies with their locations. Movies whose title is
// already stored are skipped. It returns the number of movies inserted.
func (r *Repository) InsertMovies(ctx context.Context, movies []models.MovieDetail) (int, error) {
	inserted := 0
	for _, m := range movies {
		ok, err := r.insertMovie(ctx, m)
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}

func (r *Repository) insertMovie(ctx context.Context, m models.MovieDetail) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	actors := m.Actors
	if actors == nil {
		actors = []string{}
	}

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO movies (title, release_year, director, production_company, distributor, writer, fun_facts, actors)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (title) DO NOTHING
		RETURNING id
	`, m.Title, m.ReleaseYear, m.Director, m.ProductionCompany, m.Distributor, m.Writer, m.FunFacts, actors).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("repository: failed to insert movie %q: %w", m.Title, err)
	}

	// Use CopyFrom for bulk insert
	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"movie_locations"},
		[]string{"movie_id", "position", "address", "geom"},
		pgx.CopyFromSlice(len(m.Locations), func(i int) ([]any, error) {
			loc := m.Locations[i]
			geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", loc.Lng, loc.Lat) // PostGIS format: lon lat
			return []any{id, i, loc.Address, geom}, nil
		}),
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to insert locations of %q: %w", m.Title, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("repository: failed to commit movie %q: %w", m.Title, err)
	}
	return true, nil
}

// FindNearestLocation finds the filming location closest to the given
// coordinates within radius meters, or nil if there is none.
func (r *Repository) FindNearestLocation(ctx context.Context, lat, lng, radius float64) (*models.NearbyLocation, error) {
	sql := `
		SELECT
			m.id,
			m.title,
			m.release_year,
			l.address,
			ST_Y(l.geom::geometry) as latitude,
			ST_X(l.geom::geometry) as longitude,
			ST_Distance(l.geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography) as distance
		FROM movie_locations l
		JOIN movies m ON m.id = l.movie_id
		WHERE ST_DWithin(l.geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, $3)
		ORDER BY l.geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 1
	`

	var loc models.NearbyLocation
	err := r.db.QueryRow(ctx, sql, lat, lng, radius).Scan(
		&loc.MovieID,
		&loc.Title,
		&loc.ReleaseYear,
		&loc.Address,
		&loc.Lat,
		&loc.Lng,
		&loc.DistanceMeters,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to query nearest location: %w", err)
	}

	return &loc, nil
}
