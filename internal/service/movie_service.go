package service

import (
	"context"
	"fmt"
	"strings"

	"movie-locations/internal/cache"
	"movie-locations/internal/models"
)

// MovieService contains the business logic behind movie search and lookup
type MovieService struct {
	repo     MovieRepository
	limit    int
	searches *cache.LRU[string, []models.SearchResultItem]
}

// MovieRepository interface for dependency injection
type MovieRepository interface {
	SearchMoviesByTitle(ctx context.Context, text string, limit int) ([]models.SearchResultItem, error)
	FindMovieByID(ctx context.Context, id int64) (*models.MovieDetail, error)
}

// NewMovieService creates a movie service returning at most limit movies per
// search and caching the cacheSize most recently used searches.
func NewMovieService(repo MovieRepository, limit, cacheSize int) (*MovieService, error) {
	s := &MovieService{repo: repo, limit: limit}

	searches, err := cache.NewLRU(cacheSize, s.search)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create search cache: %w", err)
	}
	s.searches = searches

	return s, nil
}

// Get returns the movie with the given id, or nil if it does not exist
func (s *MovieService) Get(ctx context.Context, id int64) (*models.MovieDetail, error) {
	movie, err := s.repo.FindMovieByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find movie: %w", err)
	}
	return movie, nil
}

// SearchByTitle returns the movies whose title matches text. Only letters,
// digits and spaces of text are kept; nothing left means no results.
func (s *MovieService) SearchByTitle(ctx context.Context, text string) ([]models.SearchResultItem, error) {
	text = sanitize(text)
	if strings.TrimSpace(text) == "" {
		return []models.SearchResultItem{}, nil
	}

	movies, err := s.searches.Get(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search movies: %w", err)
	}
	return movies, nil
}

func (s *MovieService) search(ctx context.Context, text string) ([]models.SearchResultItem, error) {
	return s.repo.SearchMoviesByTitle(ctx, text, s.limit)
}

// sanitize keeps the characters matching [A-Za-z0-9 ].
func sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			return r
		}
		return -1
	}, text)
}
