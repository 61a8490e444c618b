// Package termmap is a map widget that draws viewports as character grids.
// Coordinates are projected with Web Mercator; one cell covers cellWidth by
// cellHeight pixels of the projected world at the current zoom.
package termmap

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"movie-locations/internal/mapview"

	"github.com/charmbracelet/lipgloss"
)

const (
	tileSize   = 256
	cellWidth  = 8
	cellHeight = 16

	minZoom = 0
	maxZoom = 21

	pinGlyph   = "●"
	stackGlyph = "◆"
	emptyGlyph = "·"
)

var (
	pinStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	gridStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
)

// Widget creates terminal viewports of a fixed size in cells.
type Widget struct {
	width  int
	height int
}

func New(width, height int) *Widget {
	return &Widget{width: width, height: height}
}

func (w *Widget) NewViewport(element string, opts mapview.ViewportOptions) (mapview.Viewport, error) {
	if w.width <= 0 || w.height <= 0 {
		return nil, errors.New("termmap: viewport size must be positive")
	}
	return &Map{
		element: element,
		opts:    opts,
		center:  opts.Center,
		zoom:    clampZoom(opts.Zoom),
		width:   w.width,
		height:  w.height,
	}, nil
}

func (w *Widget) NewMarker(opts mapview.MarkerOptions) mapview.Marker {
	p := &Pin{position: opts.Position, title: opts.Title}
	p.SetMap(opts.Map)
	return p
}

// Map is a viewport drawn as a grid of width by height cells.
type Map struct {
	element string
	opts    mapview.ViewportOptions
	center  mapview.LatLng
	zoom    int
	width   int
	height  int
	pins    []*Pin
}

func (m *Map) Element() string                  { return m.element }
func (m *Map) Center() mapview.LatLng           { return m.center }
func (m *Map) Zoom() int                        { return m.zoom }
func (m *Map) Options() mapview.ViewportOptions { return m.opts }

// Pins returns the pins attached to the map.
func (m *Map) Pins() []*Pin {
	return m.pins
}

// SetSize changes the grid size. Non positive values are ignored.
func (m *Map) SetSize(width, height int) {
	if width > 0 {
		m.width = width
	}
	if height > 0 {
		m.height = height
	}
}

// Pan moves the center by dx columns and dy rows. It does nothing when the
// viewport has no pan control.
func (m *Map) Pan(dx, dy int) {
	if !m.opts.PanControl {
		return
	}
	x, y := project(m.center, m.zoom)
	m.center = unproject(x+float64(dx*cellWidth), y+float64(dy*cellHeight), m.zoom)
}

// ZoomBy changes the zoom level by delta, clamped to the supported range. It
// does nothing when the viewport has no zoom control.
func (m *Map) ZoomBy(delta int) {
	if !m.opts.ZoomControl {
		return
	}
	m.zoom = clampZoom(m.zoom + delta)
}

// Cell returns the grid cell of p and whether it is inside the viewport.
func (m *Map) Cell(p mapview.LatLng) (col, row int, ok bool) {
	cx, cy := project(m.center, m.zoom)
	px, py := project(p, m.zoom)

	col = int(math.Floor((px-cx)/cellWidth)) + m.width/2
	row = int(math.Floor((py-cy)/cellHeight)) + m.height/2
	ok = col >= 0 && col < m.width && row >= 0 && row < m.height
	return col, row, ok
}

// Render draws the grid with its pins inside a frame, with the control legend
// in the configured corner.
func (m *Map) Render() string {
	counts := make([][]int, m.height)
	for i := range counts {
		counts[i] = make([]int, m.width)
	}
	for _, p := range m.pins {
		if col, row, ok := m.Cell(p.position); ok {
			counts[row][col]++
		}
	}

	lines := make([]string, m.height)
	for row := range counts {
		var b strings.Builder
		for _, n := range counts[row] {
			switch {
			case n == 1:
				b.WriteString(pinStyle.Render(pinGlyph))
			case n > 1:
				b.WriteString(pinStyle.Render(stackGlyph))
			default:
				b.WriteString(gridStyle.Render(emptyGlyph))
			}
		}
		lines[row] = b.String()
	}

	legend := m.legend()
	body := strings.Join(lines, "\n")
	switch m.legendPosition() {
	case mapview.BottomLeft:
		body = lipgloss.JoinVertical(lipgloss.Left, body, legend)
	case mapview.BottomRight:
		body = lipgloss.JoinVertical(lipgloss.Right, body, legend)
	case mapview.TopLeft:
		body = lipgloss.JoinVertical(lipgloss.Left, legend, body)
	default:
		body = lipgloss.JoinVertical(lipgloss.Right, legend, body)
	}

	return frameStyle.Render(body)
}

func (m *Map) legendPosition() mapview.ControlPosition {
	if m.opts.ZoomControl {
		return m.opts.ZoomControlPosition
	}
	return m.opts.PanControlPosition
}

func (m *Map) legend() string {
	var parts []string
	if m.opts.PanControl {
		parts = append(parts, "pan ←↑↓→")
	}
	if m.opts.ZoomControl {
		if m.opts.ZoomControlStyle == mapview.ZoomLarge {
			parts = append(parts, "zoom [+] [-] "+strconv.Itoa(m.zoom))
		} else {
			parts = append(parts, "[+][-]")
		}
	}
	return legendStyle.Render(strings.Join(parts, "  "))
}

func (m *Map) attach(p *Pin) {
	m.pins = append(m.pins, p)
}

func (m *Map) detach(p *Pin) {
	for i, q := range m.pins {
		if q == p {
			m.pins = append(m.pins[:i], m.pins[i+1:]...)
			return
		}
	}
}

// Pin is a marker drawn on a Map.
type Pin struct {
	position mapview.LatLng
	title    string
	m        *Map
}

func (p *Pin) Position() mapview.LatLng { return p.position }
func (p *Pin) Title() string            { return p.title }

// Map returns the map the pin is attached to, or nil.
func (p *Pin) Map() *Map { return p.m }

// SetMap moves the pin to v. A nil v, or a viewport of another widget, removes it.
func (p *Pin) SetMap(v mapview.Viewport) {
	if p.m != nil {
		p.m.detach(p)
		p.m = nil
	}
	if m, ok := v.(*Map); ok && m != nil {
		p.m = m
		m.attach(p)
	}
}

func project(p mapview.LatLng, zoom int) (x, y float64) {
	size := tileSize * math.Exp2(float64(zoom))
	lat := math.Max(math.Min(p.Lat, 85.05112878), -85.05112878) * math.Pi / 180

	x = (p.Lng + 180) / 360 * size
	y = (1 - math.Log(math.Tan(lat)+1/math.Cos(lat))/math.Pi) / 2 * size
	return x, y
}

func unproject(x, y float64, zoom int) mapview.LatLng {
	size := tileSize * math.Exp2(float64(zoom))
	lng := x/size*360 - 180
	n := math.Pi - 2*math.Pi*y/size
	lat := 180 / math.Pi * math.Atan(math.Sinh(n))
	return mapview.LatLng{Lat: lat, Lng: lng}
}

func clampZoom(z int) int {
	return max(minZoom, min(maxZoom, z))
}
