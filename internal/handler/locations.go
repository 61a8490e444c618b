package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"movie-locations/internal/logging"
	"movie-locations/internal/models"
	"movie-locations/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationsHandler handles spatial lookups over filming locations
type LocationsHandler struct {
	service LocationService
}

// LocationService interface for dependency injection
type LocationService interface {
	Nearest(context.Context, float64, float64) (*models.NearbyLocation, error)
}

// NewLocationsHandler creates a new locations handler
func NewLocationsHandler(svc LocationService) *LocationsHandler {
	return &LocationsHandler{service: svc}
}

// Nearest handles GET /api/locations/nearest requests
//
//	@Summary	Find the filming location closest to a point
//	@Produce	json
//	@Param		lat	query		number	true	"latitude"
//	@Param		lng	query		number	true	"longitude"
//	@Success	200	{object}	models.NearbyLocation
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/api/locations/nearest [get]
func (h *LocationsHandler) Nearest(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")

	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lng'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	logger := logging.Component("handler")
	logger.Info().Float64("lat", lat).Float64("lng", lng).Msg("processing request /locations/nearest")

	location, err := h.service.Nearest(c.Request.Context(), lat, lng)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCoordinates) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return
		}
		logger.Error().Err(err).Msg("nearest location lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if location == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no filming location found near the specified coordinates"})
		return
	}

	c.JSON(http.StatusOK, location)
}

// Register mounts the location routes on r
func (h *LocationsHandler) Register(r gin.IRouter) {
	r.GET("/api/locations/nearest", h.Nearest)
}
