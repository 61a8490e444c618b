package handler

import (
	"context"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"movie-locations/internal/logging"
	"movie-locations/internal/models"

	"github.com/gin-gonic/gin"
)

var movieIDPattern = regexp.MustCompile(`^[a-z0-9]+$`)

// MoviesHandler handles movie search and detail requests
type MoviesHandler struct {
	service MovieService
}

// MovieService interface for dependency injection
type MovieService interface {
	SearchByTitle(context.Context, string) ([]models.SearchResultItem, error)
	Get(context.Context, int64) (*models.MovieDetail, error)
}

// NewMoviesHandler creates a new movies handler
func NewMoviesHandler(svc MovieService) *MoviesHandler {
	return &MoviesHandler{service: svc}
}

// Search handles GET /api/search/movies requests
//
//	@Summary	Search movies by title
//	@Produce	json
//	@Param		query	query		string	true	"title text"
//	@Success	200		{array}		models.SearchResultItem
//	@Failure	400		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/search/movies [get]
func (h *MoviesHandler) Search(c *gin.Context) {
	query, ok := c.GetQuery("query")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'query'"})
		return
	}
	query = strings.TrimSpace(query)

	logger := logging.Component("handler")
	logger.Info().Str("query", query).Msg("processing request /search/movies")

	movies, err := h.service.SearchByTitle(c.Request.Context(), query)
	if err != nil {
		logger.Error().Err(err).Str("query", query).Msg("search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, movies)
}

// GetMovie handles GET /api/movies/:id requests
//
//	@Summary	Get a movie with its filming locations
//	@Produce	json
//	@Param		id	path		string	true	"movie id"
//	@Success	200	{object}	models.MovieDetail
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/api/movies/{id} [get]
func (h *MoviesHandler) GetMovie(c *gin.Context) {
	raw := c.Param("id")

	logger := logging.Component("handler")
	logger.Info().Str("id", raw).Msg("processing request /movies")

	if !movieIDPattern.MatchString(raw) {
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		return
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		return
	}

	movie, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("movie lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if movie == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		return
	}

	c.JSON(http.StatusOK, movie)
}

// Register mounts the movie routes on r
func (h *MoviesHandler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/search/movies", h.Search)
	api.GET("/movies/:id", h.GetMovie)
}
