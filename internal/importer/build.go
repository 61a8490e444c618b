package importer

import (
	"context"
	"errors"
	"sync"

	"movie-locations/internal/models"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Geocoder resolves an address to coordinates.
type Geocoder interface {
	Locate(ctx context.Context, address string) (*models.Location, error)
}

// Build geocodes every distinct address of rows, at most concurrency at a
// time, and merges the rows into one movie per title. Movies keep the order
// in which their title first appears and locations keep row order. Addresses
// that cannot be geocoded are left out.
func Build(ctx context.Context, rows []Row, geocoder Geocoder, concurrency int, logger zerolog.Logger) ([]models.MovieDetail, error) {
	located, err := locateAll(ctx, rows, geocoder, concurrency, logger)
	if err != nil {
		return nil, err
	}

	var (
		movies []models.MovieDetail
		index  = map[string]int{}
	)
	for _, row := range rows {
		i, ok := index[row.Title]
		if !ok {
			i = len(movies)
			index[row.Title] = i
			actors := row.Actors
			if actors == nil {
				actors = []string{}
			}
			movies = append(movies, models.MovieDetail{
				Title:             row.Title,
				ReleaseYear:       row.ReleaseYear,
				Director:          row.Director,
				ProductionCompany: row.ProductionCompany,
				Distributor:       row.Distributor,
				Writer:            row.Writer,
				FunFacts:          row.FunFacts,
				Actors:            actors,
				Locations:         []models.Location{},
			})
		}

		if loc, ok := located[row.Address]; ok {
			movies[i].Locations = append(movies[i].Locations, loc)
		}
	}

	return movies, nil
}

func locateAll(ctx context.Context, rows []Row, geocoder Geocoder, concurrency int, logger zerolog.Logger) (map[string]models.Location, error) {
	var (
		mu      sync.Mutex
		located = map[string]models.Location{}
		seen    = map[string]bool{}
	)

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for _, row := range rows {
		address := row.Address
		if address == "" || seen[address] {
			continue
		}
		seen[address] = true

		g.Go(func() error {
			loc, err := geocoder.Locate(ctx, address)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				logger.Warn().Err(err).Str("address", address).Msg("could not find coordinates")
				return nil
			}

			mu.Lock()
			located[address] = *loc
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return located, nil
}
