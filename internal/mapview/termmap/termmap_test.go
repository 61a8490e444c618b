package termmap

import (
	"strings"
	"testing"

	"movie-locations/internal/mapview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMap(t *testing.T) (*Widget, *Map) {
	t.Helper()
	w := New(40, 12)
	v, err := w.NewViewport("map-canvas", mapview.DefaultViewportOptions())
	require.NoError(t, err)
	return w, v.(*Map)
}

func TestWidget_NewViewport(t *testing.T) {
	_, m := newMap(t)

	assert.Equal(t, "map-canvas", m.Element())
	assert.Equal(t, mapview.DefaultCenter, m.Center())
	assert.Equal(t, mapview.DefaultZoom, m.Zoom())

	_, err := New(0, 10).NewViewport("map-canvas", mapview.DefaultViewportOptions())
	assert.Error(t, err)
}

func TestMap_CellOfCenter(t *testing.T) {
	_, m := newMap(t)

	col, row, ok := m.Cell(mapview.DefaultCenter)
	assert.True(t, ok)
	assert.Equal(t, 20, col)
	assert.Equal(t, 6, row)

	_, _, ok = m.Cell(mapview.LatLng{Lat: 40.71, Lng: -74.0})
	assert.False(t, ok)
}

func TestMap_CellDirections(t *testing.T) {
	_, m := newMap(t)

	cCol, cRow, _ := m.Cell(mapview.DefaultCenter)
	col, row, _ := m.Cell(mapview.LatLng{Lat: 37.75, Lng: -122.42})

	assert.Greater(t, col, cCol, "east is right")
	assert.Less(t, row, cRow, "north is up")
}

func TestWidget_NewMarkerAttaches(t *testing.T) {
	w, m := newMap(t)

	p := w.NewMarker(mapview.MarkerOptions{Position: mapview.DefaultCenter, Map: m, Title: "Twin Peaks"}).(*Pin)

	assert.Same(t, m, p.Map())
	assert.Equal(t, "Twin Peaks", p.Title())
	assert.Equal(t, []*Pin{p}, m.Pins())
	assert.Contains(t, m.Render(), pinGlyph)
}

func TestPin_SetMapNilRemoves(t *testing.T) {
	w, m := newMap(t)
	p := w.NewMarker(mapview.MarkerOptions{Position: mapview.DefaultCenter, Map: m}).(*Pin)

	p.SetMap(nil)
	p.SetMap(nil)

	assert.Nil(t, p.Map())
	assert.Empty(t, m.Pins())
	assert.NotContains(t, m.Render(), pinGlyph)
}

func TestWidget_NewMarkerWithoutMap(t *testing.T) {
	w, m := newMap(t)

	p := w.NewMarker(mapview.MarkerOptions{Position: mapview.DefaultCenter}).(*Pin)

	assert.Nil(t, p.Map())
	assert.Empty(t, m.Pins())
}

func TestMap_RenderStacksPinsInOneCell(t *testing.T) {
	w, m := newMap(t)
	w.NewMarker(mapview.MarkerOptions{Position: mapview.DefaultCenter, Map: m})
	w.NewMarker(mapview.MarkerOptions{Position: mapview.DefaultCenter, Map: m})

	out := m.Render()
	assert.Contains(t, out, stackGlyph)
	assert.NotContains(t, out, pinGlyph)
}

func TestMap_RenderLegend(t *testing.T) {
	_, m := newMap(t)

	out := m.Render()
	assert.Contains(t, out, "pan ←↑↓→")
	assert.Contains(t, out, "zoom [+] [-] 12")
	assert.Equal(t, 12+1+2, len(strings.Split(out, "\n")), "grid, legend and frame")
}

func TestMap_Pan(t *testing.T) {
	_, m := newMap(t)

	m.Pan(4, 0)
	assert.Greater(t, m.Center().Lng, mapview.DefaultCenter.Lng)
	assert.InDelta(t, mapview.DefaultCenter.Lat, m.Center().Lat, 1e-9)

	m.Pan(-4, 0)
	assert.InDelta(t, mapview.DefaultCenter.Lng, m.Center().Lng, 1e-9)

	m.Pan(0, -2)
	assert.Greater(t, m.Center().Lat, mapview.DefaultCenter.Lat)
}

func TestMap_PanDisabled(t *testing.T) {
	opts := mapview.DefaultViewportOptions()
	opts.PanControl = false
	v, err := New(10, 10).NewViewport("map-canvas", opts)
	require.NoError(t, err)
	m := v.(*Map)

	m.Pan(3, 3)
	assert.Equal(t, mapview.DefaultCenter, m.Center())
}

func TestMap_ZoomBy(t *testing.T) {
	_, m := newMap(t)

	m.ZoomBy(2)
	assert.Equal(t, 14, m.Zoom())

	m.ZoomBy(100)
	assert.Equal(t, maxZoom, m.Zoom())

	m.ZoomBy(-100)
	assert.Equal(t, minZoom, m.Zoom())
}

func TestProjectRoundTrip(t *testing.T) {
	p := mapview.LatLng{Lat: 37.8199, Lng: -122.4783}
	x, y := project(p, 12)
	back := unproject(x, y, 12)

	assert.InDelta(t, p.Lat, back.Lat, 1e-9)
	assert.InDelta(t, p.Lng, back.Lng, 1e-9)
}
