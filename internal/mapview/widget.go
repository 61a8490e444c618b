package mapview

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// ControlPosition is the corner of the viewport a control is drawn in.
type ControlPosition int

const (
	TopLeft ControlPosition = iota
	TopRight
	BottomLeft
	BottomRight
)

// RightTop is the name map widgets usually give to TopRight.
const RightTop = TopRight

func (p ControlPosition) String() string {
	switch p {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "right-top"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// ZoomControlStyle selects how large the zoom control is drawn.
type ZoomControlStyle int

const (
	ZoomDefault ZoomControlStyle = iota
	ZoomSmall
	ZoomLarge
)

// ViewportOptions configures a new viewport.
type ViewportOptions struct {
	Center              LatLng
	Zoom                int
	PanControl          bool
	PanControlPosition  ControlPosition
	ZoomControl         bool
	ZoomControlStyle    ZoomControlStyle
	ZoomControlPosition ControlPosition
}

// MarkerOptions configures a new marker. A marker created with a nil Map is
// not shown until it is attached with SetMap.
type MarkerOptions struct {
	Position LatLng
	Map      Viewport
	Title    string
}

// Viewport is a rendered map surface.
type Viewport interface {
	Center() LatLng
	Zoom() int
}

// Marker is a pin placed on a viewport. SetMap(nil) removes it from its viewport.
type Marker interface {
	SetMap(v Viewport)
}

// Widget is the map library: it builds viewports and markers.
type Widget interface {
	NewViewport(element string, opts ViewportOptions) (Viewport, error)
	NewMarker(opts MarkerOptions) Marker
}
