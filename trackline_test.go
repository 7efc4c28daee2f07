package trackline

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestHex(t *testing.T) {
	c := Hex(0x177ddc)
	r, g, b, a := c.RGBA()
	if r>>8 != 0x17 || g>>8 != 0x7d || b>>8 != 0xdc || a>>8 != 0xff {
		t.Errorf("Hex(0x177ddc).RGBA() = %x %x %x %x", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestColorPremultiplied(t *testing.T) {
	c := Color{R: 1, G: 1, B: 1, A: 0.5}
	rgba := c.toRGBA()
	if rgba.R != rgba.A {
		t.Errorf("R = %d, want premultiplied %d", rgba.R, rgba.A)
	}
	if got := ColorTransparent.toRGBA(); got.A != 0 {
		t.Errorf("transparent alpha = %d", got.A)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	if !r.Contains(10, 30) {
		t.Error("edge should be inside")
	}
	if r.Contains(31, 15) {
		t.Error("point right of the rect reported inside")
	}
}

func TestCursorShape(t *testing.T) {
	tests := []struct {
		c      CursorShape
		name   string
		ebiten ebiten.CursorShapeType
	}{
		{CursorDefault, "default", ebiten.CursorShapeDefault},
		{CursorMove, "move", ebiten.CursorShapeMove},
		{CursorEWResize, "ew-resize", ebiten.CursorShapeEWResize},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.c.EbitenCursor(); got != tt.ebiten {
			t.Errorf("%s: EbitenCursor() = %v, want %v", tt.name, got, tt.ebiten)
		}
	}
}
