package trackline

// PanState is the horizontal translation currently applied to the track
// surface. It is never positive: the surface rests at 0 or sits to the left.
//
// Drag bounds built from a PanState read Offset on every call, so a pan that
// finishes mid-session is seen by the next item or pointer drag.
type PanState struct {
	Offset float64
}

// BoundToOffset is the rule for items and the pointer: they move freely to
// the right but never left of the pan offset. The vertical position stays at
// currentY.
func BoundToOffset(proposed Vec2, currentY, offset float64) Vec2 {
	x := offset
	if proposed.X > offset {
		x = proposed.X
	}
	return Vec2{X: x, Y: currentY}
}

// BoundSurface is the rule for the pan surface: it moves freely to the left
// but never right of its origin. Panning is horizontal only.
func BoundSurface(proposed Vec2, currentY float64) Vec2 {
	x := 0.0
	if proposed.X < 0 {
		x = proposed.X
	}
	return Vec2{X: x, Y: currentY}
}

// ItemBound returns a DragBoundFunc applying BoundToOffset against p.
func (p *PanState) ItemBound() DragBoundFunc {
	return func(proposed, current Vec2) Vec2 {
		return BoundToOffset(proposed, current.Y, p.Offset)
	}
}

// SurfaceBound returns a DragBoundFunc applying BoundSurface.
func (p *PanState) SurfaceBound() DragBoundFunc {
	return func(proposed, current Vec2) Vec2 {
		return BoundSurface(proposed, current.Y)
	}
}
