package trackline

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates a float64 field on a Node. Create one via TweenX and
// either call Update(dt) each frame or hand it to Scene.Animate. If the
// target node is disposed, the group stops immediately.
type TweenGroup struct {
	tween  *gween.Tween
	field  *float64
	target *Node
	Done   bool

	// OnDone, if set, runs once when the group finishes. It does not run when
	// the group stops because its node was disposed.
	OnDone func()
}

// Update advances the tween by dt seconds and writes the value to the target
// field. If the target node has been disposed, Done is set to true and no
// write occurs.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	val, finished := g.tween.Update(dt)
	*g.field = float64(val)
	g.Done = finished

	if g.Done && g.OnDone != nil {
		g.OnDone()
	}
}

// TweenX creates a TweenGroup that animates node.X to toX over the specified
// duration in seconds using the easing function.
func TweenX(node *Node, toX float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return &TweenGroup{
		tween:  gween.New(float32(node.X), float32(toX), duration, fn),
		field:  &node.X,
		target: node,
	}
}
