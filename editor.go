package trackline

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/tanema/gween/ease"
)

// EventChange is published with the moved item whenever an item drag ends.
const EventChange = "change"

// Track colors.
var (
	ColorSlide = Hex(0x353535)
	ColorItem  = Hex(0x177ddc)
)

// Pointer geometry, in pixels.
const (
	pointerHitWidth   = 10
	pointerHandleHalf = 6
	pointerHandleBody = 8
	pointerHandleTip  = 16
)

// Editor is the timeline control: a ruler, lanes of draggable items, and a
// draggable playhead on a pannable surface. T is the type of the host's
// per-item metadata.
//
// An Editor is not safe for concurrent use; drive it from the ebiten game
// loop.
type Editor[T any] struct {
	cfg       Config
	scale     Scale
	lanes     Lanes
	container Container
	ids       IDGenerator
	log       zerolog.Logger

	scene   *Scene
	surface *Node
	ruler   *Node
	readout *Node
	pointer *Pointer

	pan   PanState
	items []*Item[T]
	hub   Hub[*Item[T]]
}

// New resolves opts.Container through host, builds the ruler and the
// playhead, and returns a ready editor.
//
// It returns ErrContainerNotFound if the container cannot be resolved and
// ErrInvalidConfiguration if opts fail validation.
func New[T any](host Host, opts Options) (*Editor[T], error) {
	if host == nil || opts.Container == "" {
		return nil, fmt.Errorf("new editor: %w: %q", ErrContainerNotFound, opts.Container)
	}
	container, ok := host.Container(opts.Container)
	if !ok || container == nil {
		return nil, fmt.Errorf("new editor: %w: %q", ErrContainerNotFound, opts.Container)
	}
	cfg, err := opts.resolve(container)
	if err != nil {
		return nil, fmt.Errorf("new editor: %w", err)
	}

	e := &Editor[T]{
		cfg:       cfg,
		scale:     cfg.Scale(),
		lanes:     cfg.Lanes(),
		container: container,
		ids:       opts.IDs,
		log:       zerolog.Nop(),
	}
	if e.ids == nil {
		e.ids = UUIDs{}
	}
	if opts.Logger != nil {
		e.log = *opts.Logger
	}

	b := container.Bounds()
	e.scene = NewScene(Rect{X: b.X, Y: b.Y, Width: cfg.Width, Height: cfg.Height})
	e.scene.SetHeadless(opts.Headless)
	e.scene.SetLogger(e.log)

	e.draw()

	e.log.Debug().
		Str("container", cfg.Container).
		Float64("width", cfg.Width).
		Float64("height", cfg.Height).
		Float64("ticks", e.scale.TotalTicks()).
		Msg("editor initialized")
	return e, nil
}

// draw builds the pan surface with the ruler and playhead.
func (e *Editor[T]) draw() {
	e.surface = NewContainer("surface")
	e.surface.Draggable = true
	e.surface.DragBound = e.pan.SurfaceBound()
	e.hoverCursor(e.surface, CursorMove)
	e.surface.OnDragEnd = func(ctx *DragContext) {
		e.pan.Offset = ctx.Node.X
		e.log.Debug().Float64("offset", e.pan.Offset).Msg("surface panned")
	}

	e.drawScale()
	e.drawPointer()

	e.surface.SetZIndex(0)
	e.scene.Root().AddChild(e.surface)

	e.readout = NewReadout("readout", func() string {
		return FormatClock(e.pointer.Time())
	})
	e.readout.X = e.cfg.Width - 110
	e.readout.Y = e.cfg.Top
	e.readout.SetZIndex(20)
	e.scene.Root().AddChild(e.readout)
}

// drawScale adds the ruler. Its hit band covers the tick area so grabbing the
// ruler pans the surface.
func (e *Editor[T]) drawScale() {
	baseline := e.cfg.Top + RulerBaseline
	ticks := e.scale.Ticks()
	e.ruler = NewShape("ruler", func(c *Canvas) {
		c.BeginPath()
		for _, t := range ticks {
			if t.Major {
				c.MoveTo(t.X, baseline-MajorTickRise)
			} else {
				c.MoveTo(t.X, baseline)
			}
			c.LineTo(t.X, baseline+TickLength)
		}
		c.Stroke(ColorWhite, 1)
	})
	e.ruler.HitShape = HitRect{
		X:      e.cfg.ScaleLeft,
		Y:      baseline - MajorTickRise,
		Width:  e.scale.Length(),
		Height: MajorTickRise + TickLength,
	}
	e.surface.AddChild(e.ruler)
}

// drawSlide adds the lane background for the lane at y.
func (e *Editor[T]) drawSlide(y float64) *Node {
	left := e.cfg.Left
	slide := NewLine("slide", []Vec2{
		{left, y},
		{left + e.scale.Length(), y},
	}, ColorSlide, e.cfg.ItemHeight)
	slide.SetZIndex(0)
	e.surface.AddChild(slide)
	return slide
}

// drawPointer adds the playhead: a hit area, a vertical line, and a handle.
func (e *Editor[T]) drawPointer() {
	sl := e.cfg.ScaleLeft
	top := e.cfg.Top
	bottom := e.cfg.Height - top

	group := NewContainer("pointer")
	group.Draggable = true
	group.DragBound = e.pan.ItemBound()

	area := NewRect("pointer-area", sl-pointerHitWidth/2, top, pointerHitWidth, e.cfg.Height-top, ColorTransparent)
	line := NewLine("pointer-line", []Vec2{
		{sl, top + pointerHandleTip},
		{sl, bottom},
	}, ColorWhite, 1)
	handle := NewLine("pointer-handle", []Vec2{
		{sl - pointerHandleHalf, top},
		{sl + pointerHandleHalf, top},
		{sl + pointerHandleHalf, top + pointerHandleBody},
		{sl, top + pointerHandleTip},
		{sl - pointerHandleHalf, top + pointerHandleBody},
	}, ColorWhite, 1)
	handle.Closed = true

	group.AddChild(area)
	group.AddChild(line)
	group.AddChild(handle)
	e.surface.AddChild(group)
	group.SetZIndex(10)

	e.pointer = &Pointer{scale: e.scale, node: group}
	e.pointer.CurrentX = group.AbsolutePosition().X

	e.hoverCursor(group, CursorEWResize)
	group.OnDragEnd = func(ctx *DragContext) {
		e.pointer.CurrentX = ctx.Node.AbsolutePosition().X
		ctx.StopPropagation()
		e.log.Debug().Float64("x", e.pointer.CurrentX).Msg("pointer moved")
	}
}

// hoverCursor shows shape while the pointer is over n.
func (e *Editor[T]) hoverCursor(n *Node, shape CursorShape) {
	n.OnPointerEnter = func(PointerContext) { e.container.SetCursor(shape) }
	n.OnPointerLeave = func(PointerContext) { e.container.SetCursor(CursorDefault) }
}

// AddItem adds a bar of opt.Duration to a new lane below the existing ones and
// returns it. A zero or negative duration yields a degenerate bar.
func (e *Editor[T]) AddItem(opt ItemOptions[T]) *Item[T] {
	y := e.lanes.Allocate(len(e.items))
	slide := e.drawSlide(y)

	sl := e.cfg.ScaleLeft
	width := e.scale.WidthInPixels(opt.Duration)
	bar := NewLine("item", []Vec2{
		{sl, y},
		{sl + width, y},
	}, ColorItem, e.cfg.ItemHeight)
	bar.Draggable = true
	bar.DragBound = e.pan.ItemBound()

	item := &Item[T]{
		ID:      e.ids.NewID(),
		Options: opt,
		Lane:    len(e.items),
		y:       y,
		scale:   e.scale,
		bar:     bar,
		slide:   slide,
	}
	bar.UserData = item.ID
	e.items = append(e.items, item)

	e.hoverCursor(bar, CursorMove)
	bar.OnDragEnd = func(ctx *DragContext) {
		item.CurrentX = ctx.Node.AbsolutePosition().X
		ctx.StopPropagation()
		e.log.Debug().Str("item", item.ID).Float64("x", item.CurrentX).Msg("item moved")
		e.hub.Publish(EventChange, item)
	}

	e.surface.AddChild(bar)
	bar.SetZIndex(1)
	item.CurrentX = bar.AbsolutePosition().X

	e.log.Debug().
		Str("item", item.ID).
		Int("lane", item.Lane).
		Float64("width", width).
		Msg("item added")
	return item
}

// Items returns the items in insertion order. The returned slice MUST NOT be
// mutated by the caller.
func (e *Editor[T]) Items() []*Item[T] {
	return e.items
}

// Item returns the item with the given id, or nil.
func (e *Editor[T]) Item(id string) *Item[T] {
	for _, it := range e.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// Pointer returns the playhead.
func (e *Editor[T]) Pointer() *Pointer {
	return e.pointer
}

// Offset returns the current pan offset (always <= 0).
func (e *Editor[T]) Offset() float64 {
	return e.pan.Offset
}

// Config returns the resolved configuration.
func (e *Editor[T]) Config() Config {
	return e.cfg
}

// Scale returns the scale model.
func (e *Editor[T]) Scale() Scale {
	return e.scale
}

// Scene returns the underlying scene, e.g. to inject input or attach a script.
func (e *Editor[T]) Scene() *Scene {
	return e.scene
}

// On subscribes l to event.
func (e *Editor[T]) On(event string, l *Listener[*Item[T]]) *Editor[T] {
	e.hub.Subscribe(event, l)
	return e
}

// Off unsubscribes l from event, or every listener if l is nil.
func (e *Editor[T]) Off(event string, l *Listener[*Item[T]]) *Editor[T] {
	e.hub.Unsubscribe(event, l)
	return e
}

// Emit publishes item to the listeners of event.
func (e *Editor[T]) Emit(event string, item *Item[T]) *Editor[T] {
	e.hub.Publish(event, item)
	return e
}

// OnChange subscribes fn to EventChange and returns the listener so it can be
// passed to Off later.
func (e *Editor[T]) OnChange(fn func(*Item[T])) *Listener[*Item[T]] {
	l := NewListener(fn)
	e.hub.Subscribe(EventChange, l)
	return l
}

// SeekTo moves the playhead to time t, animating over seconds with fn. The
// playhead is held to the same bound as a drag. A non-positive duration moves
// it immediately.
func (e *Editor[T]) SeekTo(t float64, seconds float32, fn ease.TweenFunc) {
	n := e.pointer.node
	origin := e.surface.AbsolutePosition()
	proposed := Vec2{X: origin.X + e.scale.WidthInPixels(t), Y: n.AbsolutePosition().Y}
	target := BoundToOffset(proposed, proposed.Y, e.pan.Offset)
	local := target.X - origin.X

	finish := func() {
		n.X = local
		e.pointer.CurrentX = n.AbsolutePosition().X
		e.log.Debug().Float64("time", e.pointer.Time()).Msg("pointer seek")
	}
	if seconds <= 0 || fn == nil {
		finish()
		return
	}
	g := TweenX(n, local, seconds, fn)
	g.OnDone = finish
	e.scene.Animate(g)
}

// PanTo moves the surface to offset, animating over seconds with fn. The
// offset is held to the surface bound; the pan state changes when the move
// completes. A non-positive duration pans immediately.
func (e *Editor[T]) PanTo(offset float64, seconds float32, fn ease.TweenFunc) {
	target := BoundSurface(Vec2{X: offset}, e.surface.Y).X

	finish := func() {
		e.surface.X = target
		e.pan.Offset = target
		e.log.Debug().Float64("offset", target).Msg("surface panned")
	}
	if seconds <= 0 || fn == nil {
		finish()
		return
	}
	g := TweenX(e.surface, target, seconds, fn)
	g.OnDone = finish
	e.scene.Animate(g)
}

// Update advances the editor by one tick. It satisfies the Update half of
// ebiten.Game.
func (e *Editor[T]) Update() error {
	e.scene.Update()
	return nil
}

// Draw paints the editor into its container's rectangle on screen.
func (e *Editor[T]) Draw(screen *ebiten.Image) {
	e.scene.Draw(screen)
}
