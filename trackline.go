package trackline

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default stroke color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent draws nothing. Used for hit areas.
var ColorTransparent = Color{}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toRGBA().RGBA()
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Hex builds an opaque Color from a 0xRRGGBB value.
func Hex(rgb uint32) Color {
	return Color{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeLine                      // stroked polyline
	NodeTypeRect                      // filled rectangle
	NodeTypeShape                     // custom drawing through a Canvas
)

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventDragStart    EventType = iota // fires when movement exceeds the drag dead zone
	EventDrag                          // fires each frame while dragging
	EventDragEnd                       // fires when the pointer is released after dragging
)

// CursorShape is the mouse cursor a container should display.
type CursorShape uint8

const (
	CursorDefault  CursorShape = iota // platform default arrow
	CursorMove                        // four-way move, shown over the pan surface and items
	CursorEWResize                    // horizontal resize, shown over the playhead
)

// String returns the CSS-style cursor name.
func (c CursorShape) String() string {
	switch c {
	case CursorMove:
		return "move"
	case CursorEWResize:
		return "ew-resize"
	default:
		return "default"
	}
}

// EbitenCursor returns the ebiten cursor shape corresponding to this CursorShape.
func (c CursorShape) EbitenCursor() ebiten.CursorShapeType {
	switch c {
	case CursorMove:
		return ebiten.CursorShapeMove
	case CursorEWResize:
		return ebiten.CursorShapeEWResize
	default:
		return ebiten.CursorShapeDefault
	}
}
