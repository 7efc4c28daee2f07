package trackline

import "testing"

func TestBoundToOffset(t *testing.T) {
	tests := []struct {
		name     string
		proposed Vec2
		currentY float64
		offset   float64
		want     Vec2
	}{
		{"free to the right", Vec2{50, 99}, 60, -20, Vec2{50, 60}},
		{"clamped at offset", Vec2{-30, 0}, 60, -20, Vec2{-20, 60}},
		{"equal to offset", Vec2{-20, 0}, 60, -20, Vec2{-20, 60}},
		{"no pan", Vec2{-5, 0}, 0, 0, Vec2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoundToOffset(tt.proposed, tt.currentY, tt.offset); got != tt.want {
				t.Errorf("BoundToOffset = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundToOffsetProperty(t *testing.T) {
	for _, offset := range []float64{0, -1, -250.5} {
		for x := -500.0; x <= 500; x += 12.5 {
			got := BoundToOffset(Vec2{X: x, Y: 7}, 3, offset)
			if got.X != max(x, offset) {
				t.Fatalf("BoundToOffset(%v, offset %v).X = %v, want %v", x, offset, got.X, max(x, offset))
			}
			if got.Y != 3 {
				t.Fatalf("Y = %v, want the current y", got.Y)
			}
		}
	}
}

func TestBoundSurfaceProperty(t *testing.T) {
	for x := -500.0; x <= 500; x += 12.5 {
		got := BoundSurface(Vec2{X: x, Y: 40}, 0)
		if got.X != min(x, 0) {
			t.Fatalf("BoundSurface(%v).X = %v, want %v", x, got.X, min(x, 0))
		}
		if got.Y != 0 {
			t.Fatalf("Y = %v, want 0", got.Y)
		}
	}
}

func TestItemBoundReadsOffsetLive(t *testing.T) {
	var pan PanState
	bound := pan.ItemBound()

	if got := bound(Vec2{X: -10}, Vec2{}); got.X != 0 {
		t.Errorf("X = %v, want 0 before panning", got.X)
	}
	pan.Offset = -40
	if got := bound(Vec2{X: -10}, Vec2{}); got.X != -10 {
		t.Errorf("X = %v, want -10 after panning", got.X)
	}
	if got := bound(Vec2{X: -60}, Vec2{}); got.X != -40 {
		t.Errorf("X = %v, want -40 after panning", got.X)
	}
}

func TestSurfaceBoundKeepsY(t *testing.T) {
	var pan PanState
	got := pan.SurfaceBound()(Vec2{X: -5, Y: 30}, Vec2{X: 0, Y: 12})
	if got != (Vec2{X: -5, Y: 12}) {
		t.Errorf("SurfaceBound = %v, want (-5, 12)", got)
	}
}
