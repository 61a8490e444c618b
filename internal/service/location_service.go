package service

import (
	"context"
	"errors"
	"fmt"

	"movie-locations/internal/models"
)

// NearestRadiusMeters bounds the nearest location lookup.
const NearestRadiusMeters = 10000

var ErrInvalidCoordinates = errors.New("service: invalid coordinates")

// LocationService answers spatial questions about filming locations
type LocationService struct {
	repo NearestLocationRepository
}

// NearestLocationRepository interface for dependency injection
type NearestLocationRepository interface {
	FindNearestLocation(ctx context.Context, lat, lng, radius float64) (*models.NearbyLocation, error)
}

// NewLocationService creates a new location service
func NewLocationService(repo NearestLocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// Nearest finds the filming location closest to the given coordinates
func (s *LocationService) Nearest(ctx context.Context, lat, lng float64) (*models.NearbyLocation, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("%w: latitude %f", ErrInvalidCoordinates, lat)
	}
	if lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%w: longitude %f", ErrInvalidCoordinates, lng)
	}

	location, err := s.repo.FindNearestLocation(ctx, lat, lng, NearestRadiusMeters)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearest location: %w", err)
	}

	return location, nil
}
