package mapview

import (
	"errors"
	"fmt"

	"movie-locations/internal/models"
)

// Default viewport: central San Francisco.
var DefaultCenter = LatLng{Lat: 37.73, Lng: -122.45}

const DefaultZoom = 12

var ErrAlreadyInitialized = errors.New("mapview: viewport already initialized")

// DefaultViewportOptions returns the fixed start-up configuration of the viewport.
func DefaultViewportOptions() ViewportOptions {
	return ViewportOptions{
		Center:              DefaultCenter,
		Zoom:                DefaultZoom,
		PanControl:          true,
		PanControlPosition:  RightTop,
		ZoomControl:         true,
		ZoomControlStyle:    ZoomLarge,
		ZoomControlPosition: RightTop,
	}
}

// Annotator owns the map viewport and the markers currently placed on it.
// It is not safe for concurrent use; it is meant to be driven from the UI loop.
type Annotator struct {
	widget   Widget
	viewport Viewport
	markers  []Marker
}

func NewAnnotator(widget Widget) *Annotator {
	return &Annotator{widget: widget}
}

// Initialize creates the viewport inside element. It may only be called once.
func (a *Annotator) Initialize(element string) error {
	if a.viewport != nil {
		return ErrAlreadyInitialized
	}

	v, err := a.widget.NewViewport(element, DefaultViewportOptions())
	if err != nil {
		return fmt.Errorf("mapview: failed to create viewport: %w", err)
	}
	a.viewport = v
	return nil
}

// Viewport returns the viewport, nil before Initialize.
func (a *Annotator) Viewport() Viewport {
	return a.viewport
}

// ClearMarkers removes every placed marker from the viewport.
func (a *Annotator) ClearMarkers() {
	for _, m := range a.markers {
		m.SetMap(nil)
	}
	a.markers = nil
}

// PlaceMarkers adds one marker per location, titled with its address. Markers
// already placed are kept.
func (a *Annotator) PlaceMarkers(locations []models.Location) {
	for _, loc := range locations {
		m := a.widget.NewMarker(MarkerOptions{
			Position: LatLng{Lat: loc.Lat, Lng: loc.Lng},
			Map:      a.viewport,
			Title:    loc.Address,
		})
		a.markers = append(a.markers, m)
	}
}

// Markers returns the placed markers in placement order.
func (a *Annotator) Markers() []Marker {
	return a.markers
}

// Len returns the number of placed markers.
func (a *Annotator) Len() int {
	return len(a.markers)
}
