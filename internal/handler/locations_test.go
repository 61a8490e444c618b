package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-locations/internal/models"
	"movie-locations/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLocationService is a mock implementation of the LocationService interface
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) Nearest(ctx context.Context, lat float64, lng float64) (*models.NearbyLocation, error) {
	args := m.Called(ctx, lat, lng)
	return args.Get(0).(*models.NearbyLocation), args.Error(1)
}

func TestLocationsHandler_Nearest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		target         string
		callsService   bool
		lat            float64
		lng            float64
		mockLocation   *models.NearbyLocation
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing query parameters",
			target:         "/api/locations/nearest?lat=37.8",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing required query parameters 'lat' and 'lng'"}`,
		},
		{
			name:           "invalid latitude",
			target:         "/api/locations/nearest?lat=north&lng=-122.4",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid latitude format"}`,
		},
		{
			name:           "invalid longitude",
			target:         "/api/locations/nearest?lat=37.8&lng=west",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid longitude format"}`,
		},
		{
			name:         "location found",
			target:       "/api/locations/nearest?lat=37.81&lng=-122.477",
			callsService: true,
			lat:          37.81,
			lng:          -122.477,
			mockLocation: &models.NearbyLocation{
				MovieID:        4,
				Title:          "Vertigo",
				ReleaseYear:    1958,
				Location:       models.Location{Address: "Fort Point", Lat: 37.8106, Lng: -122.4771},
				DistanceMeters: 42.5,
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"movie_id":4,"title":"Vertigo","release_year":1958,"address":"Fort Point","lat":37.8106,"lng":-122.4771,"distance_m":42.5}`,
		},
		{
			name:           "nothing nearby",
			target:         "/api/locations/nearest?lat=0&lng=0",
			callsService:   true,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"no filming location found near the specified coordinates"}`,
		},
		{
			name:           "coordinates out of range",
			target:         "/api/locations/nearest?lat=95&lng=0",
			callsService:   true,
			lat:            95,
			mockError:      fmt.Errorf("%w: latitude 95", service.ErrInvalidCoordinates),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"coordinates out of range"}`,
		},
		{
			name:           "service error",
			target:         "/api/locations/nearest?lat=37.81&lng=-122.477",
			callsService:   true,
			lat:            37.81,
			lng:            -122.477,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			h := NewLocationsHandler(mockSvc)

			if tt.callsService {
				mockSvc.On("Nearest", mock.Anything, tt.lat, tt.lng).Return(tt.mockLocation, tt.mockError)
			}

			r := gin.New()
			h.Register(r)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
