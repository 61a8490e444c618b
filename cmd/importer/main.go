package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"movie-locations/internal/config"
	"movie-locations/internal/geocode"
	"movie-locations/internal/importer"
	"movie-locations/internal/logging"
	"movie-locations/internal/models"
	"movie-locations/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the SF film locations JSON export")
	concurrency := flag.Int("concurrency", 4, "Number of addresses geocoded in parallel")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Printf("Error setting up logger: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	log.Logger = logger

	if err := run(context.Background(), cfg, *file, *concurrency); err != nil {
		log.Error().Err(err).Msg("import failed")
		closeLog()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, file string, concurrency int) error {
	log.Info().Str("file", file).Msg("starting import")

	rows, err := parseFile(file)
	if err != nil {
		return err
	}
	log.Info().Int("rows", len(rows)).Msg("parsed dataset")

	geocoder := geocode.New(cfg.GeocodeEndpoint, cfg.GeocodeAPIKey, cfg.GeocodeCity)
	movies, err := importer.Build(ctx, rows, geocoder, concurrency, logging.Component("importer"))
	if err != nil {
		return fmt.Errorf("build movies: %w", err)
	}
	log.Info().Int("movies", len(movies)).Int("locations", countLocations(movies)).Msg("geocoded dataset")

	// Connect to DB
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer conn.Close(ctx)

	repo := repository.NewRepository(conn)

	// Ensure tables exist
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	inserted, err := repo.InsertMovies(ctx, movies)
	if err != nil {
		return err
	}
	if skipped := len(movies) - inserted; skipped > 0 {
		log.Info().Int("skipped", skipped).Msg("movies already in the database")
	}

	log.Info().Int("inserted", inserted).Msg("import finished")
	return nil
}

func parseFile(path string) ([]importer.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return importer.ReadDataset(f)
}

func countLocations(movies []models.MovieDetail) int {
	n := 0
	for _, m := range movies {
		n += len(m.Locations)
	}
	return n
}
