package trackline

import "github.com/hajimehoshi/ebiten/v2"

// Container is the mount point an Editor draws into. Bounds are in window
// coordinates.
type Container interface {
	Bounds() Rect
	SetCursor(CursorShape)
}

// Host resolves container ids.
type Host interface {
	Container(id string) (Container, bool)
}

// Mounts is a map-backed Host.
type Mounts map[string]Container

// Container implements Host.
func (m Mounts) Container(id string) (Container, bool) {
	c, ok := m[id]
	return c, ok
}

// WindowContainer is a rectangle of the ebiten window. Setting its cursor
// changes the window's cursor shape.
type WindowContainer struct {
	Rect Rect
}

// Bounds implements Container.
func (w *WindowContainer) Bounds() Rect {
	return w.Rect
}

// SetCursor implements Container.
func (w *WindowContainer) SetCursor(c CursorShape) {
	ebiten.SetCursorShape(c.EbitenCursor())
}
