// Package trackline is an interactive timeline/track editor control for
// [Ebitengine].
//
// An [Editor] draws a time-scaled ruler, stacks items (bars of a given
// duration) into lanes, and exposes a draggable playhead. The whole track
// surface pans horizontally; items and the playhead can never be dragged left
// of the current pan offset. Hosts are notified through [EventChange] each
// time an item drag ends.
//
// # Quick start
//
// Mount the editor in a rectangle of the window and call its Update and Draw
// from your game:
//
//	host := trackline.Mounts{"track": &trackline.WindowContainer{
//		Rect: trackline.Rect{Width: 960, Height: 320},
//	}}
//	ed, err := trackline.New[string](host, trackline.Options{Container: "track", Gap: 20})
//	if err != nil {
//		log.Fatal(err)
//	}
//	ed.AddItem(trackline.ItemOptions[string]{Duration: 120, Meta: "intro"})
//	ed.OnChange(func(it *trackline.Item[string]) {
//		log.Printf("%s now starts at %v", it.Options.Meta, it.Start())
//	})
//
//	type Game struct{ ed *trackline.Editor[string] }
//
//	func (g *Game) Update() error        { return g.ed.Update() }
//	func (g *Game) Draw(s *ebiten.Image) { g.ed.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Geometry
//
// [Scale] maps time to pixels (ticks every UnitSize, Gap pixels apart).
// [Lanes] places the n-th item at Top + [LaneOrigin] + n*(ItemHeight + [LaneGap]).
// [BoundToOffset] and [BoundSurface] are the drag rules for items/playhead and
// for the surface.
//
// # Scene graph
//
// The editor is built on a small retained scene graph: [Node] trees with
// z-ordered children, hit testing, drag with per-node [DragBoundFunc], drag
// end bubbling with [DragContext.StopPropagation], and hover enter/leave.
// Input can be injected ([Scene.InjectDrag]) or replayed from a [Script],
// which is how the package is tested without a window.
//
// [Ebitengine]: https://ebitengine.org
package trackline
