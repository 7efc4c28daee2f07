package trackline

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the drawing context handed to shape nodes. Coordinates are local
// to the shape node; the canvas applies the node's absolute position and the
// viewport origin.
type Canvas struct {
	dst              *ebiten.Image
	originX, originY float64 // viewport origin in window space
	tx, ty           float64 // current node translation in window space

	path  []Vec2
	paths [][]Vec2
	draws int
}

// Target returns the image being drawn into.
func (c *Canvas) Target() *ebiten.Image {
	return c.dst
}

// BeginPath discards any pending subpaths.
func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
	c.paths = c.paths[:0]
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	if len(c.path) > 1 {
		c.paths = append(c.paths, c.path)
	}
	c.path = []Vec2{{x, y}}
}

// LineTo extends the current subpath to (x, y).
func (c *Canvas) LineTo(x, y float64) {
	c.path = append(c.path, Vec2{x, y})
}

// Stroke draws every pending subpath with the given color and width and
// clears the path.
func (c *Canvas) Stroke(clr Color, width float64) {
	if len(c.path) > 1 {
		c.paths = append(c.paths, c.path)
	}
	for _, p := range c.paths {
		c.strokePolyline(p, false, clr, width)
	}
	c.path = nil
	c.paths = c.paths[:0]
}

// Print draws debug text at (x, y) in local coordinates.
func (c *Canvas) Print(text string, x, y float64) {
	ebitenutil.DebugPrintAt(c.dst, text, int(c.tx+x), int(c.ty+y))
	c.draws++
}

func (c *Canvas) strokePolyline(pts []Vec2, closed bool, clr Color, width float64) {
	if len(pts) < 2 || clr.A <= 0 || width <= 0 {
		return
	}
	last := len(pts) - 1
	if closed {
		last = len(pts)
	}
	for i := 0; i < last; i++ {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		vector.StrokeLine(c.dst,
			float32(c.tx+a.X), float32(c.ty+a.Y),
			float32(c.tx+b.X), float32(c.ty+b.Y),
			float32(width), clr, true)
		c.draws++
	}
}

func (c *Canvas) fillRect(w, h float64, clr Color) {
	if clr.A <= 0 || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(c.tx), float32(c.ty), float32(w), float32(h), clr, false)
	c.draws++
}

// paint walks the tree depth-first in ZIndex order and draws every visible
// node.
func (s *Scene) paint(n *Node, c *Canvas, stats *debugStats) {
	if !n.Visible {
		return
	}
	stats.nodeCount++

	p := n.AbsolutePosition()
	c.tx = c.originX + p.X
	c.ty = c.originY + p.Y

	switch n.Type {
	case NodeTypeLine:
		c.strokePolyline(n.Points, n.Closed, n.Stroke, n.StrokeWidth)
	case NodeTypeRect:
		c.fillRect(n.Width, n.Height, n.Fill)
	case NodeTypeShape:
		if n.Draw != nil {
			c.BeginPath()
			n.Draw(c)
		}
	}
	stats.drawCount = c.draws

	for _, child := range n.sorted() {
		s.paint(child, c, stats)
	}
}
