package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-locations/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMovieService is a mock implementation of the MovieService interface
type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) SearchByTitle(ctx context.Context, text string) ([]models.SearchResultItem, error) {
	args := m.Called(ctx, text)
	return args.Get(0).([]models.SearchResultItem), args.Error(1)
}

func (m *MockMovieService) Get(ctx context.Context, id int64) (*models.MovieDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.MovieDetail), args.Error(1)
}

func newRouter(h *MoviesHandler) *gin.Engine {
	r := gin.New()
	h.Register(r)
	return r
}

func TestMoviesHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		target         string
		serviceText    string
		mockMovies     []models.SearchResultItem
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing query parameter",
			target:         "/api/search/movies",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing required query parameter 'query'"}`,
		},
		{
			name:           "successful search with results",
			target:         "/api/search/movies?query=Matrix",
			serviceText:    "Matrix",
			mockMovies:     []models.SearchResultItem{{ID: 1, Title: "The Matrix", ReleaseYear: 1999}},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":1,"title":"The Matrix","release_year":1999}]`,
		},
		{
			name:           "query is trimmed",
			target:         "/api/search/movies?query=%20%20the%20matrix%20",
			serviceText:    "the matrix",
			mockMovies:     []models.SearchResultItem{},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "empty query",
			target:         "/api/search/movies?query=",
			serviceText:    "",
			mockMovies:     []models.SearchResultItem{},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "service error",
			target:         "/api/search/movies?query=Matrix",
			serviceText:    "Matrix",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockMovieService)
			handler := NewMoviesHandler(mockSvc)

			if tt.expectedStatus != http.StatusBadRequest {
				mockSvc.On("SearchByTitle", mock.Anything, tt.serviceText).Return(tt.mockMovies, tt.mockError)
			}

			// Execute
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			newRouter(handler).ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestMoviesHandler_GetMovie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	matrix := &models.MovieDetail{
		ID:                1,
		Title:             "The Matrix",
		ReleaseYear:       1999,
		Director:          "Wachowski",
		ProductionCompany: "Warner",
		Writer:            "Wachowski",
		Actors:            []string{"Keanu Reeves"},
		Locations:         []models.Location{{Address: "123 Main St", Lat: 37.0, Lng: -122.0}},
	}

	tests := []struct {
		name           string
		target         string
		serviceID      int64
		mockMovie      *models.MovieDetail
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "existing movie",
			target:         "/api/movies/1",
			serviceID:      1,
			mockMovie:      matrix,
			expectedStatus: http.StatusOK,
			expectedBody: `{"id":1,"title":"The Matrix","release_year":1999,"director":"Wachowski",` +
				`"production_company":"Warner","writer":"Wachowski","actors":["Keanu Reeves"],` +
				`"locations":[{"address":"123 Main St","lat":37,"lng":-122}]}`,
		},
		{
			name:           "missing movie",
			target:         "/api/movies/42",
			serviceID:      42,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"movie not found"}`,
		},
		{
			name:           "id with invalid characters",
			target:         "/api/movies/ABC",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"movie not found"}`,
		},
		{
			name:           "id that is not a number",
			target:         "/api/movies/5f2b9c",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"movie not found"}`,
		},
		{
			name:           "service error",
			target:         "/api/movies/7",
			serviceID:      7,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockMovieService)
			handler := NewMoviesHandler(mockSvc)

			if tt.serviceID != 0 {
				mockSvc.On("Get", mock.Anything, tt.serviceID).Return(tt.mockMovie, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			newRouter(handler).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
