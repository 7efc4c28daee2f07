package trackline

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultDragDeadZone = 4.0 // pixels

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// --- Pointer state ---

type pointerState struct {
	down      bool
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	hitNode   *Node
	dragNode  *Node // nearest draggable ancestor-or-self of hitNode
	nodeStart Vec2  // dragNode's absolute position when the drag started
	hoverNode *Node
	dragging  bool
}

// --- Handler registry ---

type dragHandler struct {
	id uint32
	fn func(*DragContext)
}

type handlerRegistry struct {
	dragStart []dragHandler
	drag      []dragHandler
	dragEnd   []dragHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventDragStart:
		h.reg.dragStart = removeDragHandler(h.reg.dragStart, h.id)
	case EventDrag:
		h.reg.drag = removeDragHandler(h.reg.drag, h.id)
	case EventDragEnd:
		h.reg.dragEnd = removeDragHandler(h.reg.dragEnd, h.id)
	}
}

func removeDragHandler(s []dragHandler, id uint32) []dragHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dragHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (s *Scene) addDragHandler(event EventType, fn func(*DragContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	h := dragHandler{id: id, fn: fn}
	switch event {
	case EventDragStart:
		s.handlers.dragStart = append(s.handlers.dragStart, h)
	case EventDrag:
		s.handlers.drag = append(s.handlers.drag, h)
	case EventDragEnd:
		s.handlers.dragEnd = append(s.handlers.dragEnd, h)
	}
	return CallbackHandle{id: id, reg: &s.handlers, event: event}
}

// OnDragStart registers a scene-level callback for drag start events.
// Scene-level callbacks run before per-node callbacks.
func (s *Scene) OnDragStart(fn func(*DragContext)) CallbackHandle {
	return s.addDragHandler(EventDragStart, fn)
}

// OnDrag registers a scene-level callback for drag events.
func (s *Scene) OnDrag(fn func(*DragContext)) CallbackHandle {
	return s.addDragHandler(EventDrag, fn)
}

// OnDragEnd registers a scene-level callback for drag end events.
func (s *Scene) OnDragEnd(fn func(*DragContext)) CallbackHandle {
	return s.addDragHandler(EventDragEnd, fn)
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise lines hit within half their stroke width
// and rects hit inside their bounds. Containers and shapes with no HitShape
// are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	switch n.Type {
	case NodeTypeLine:
		return lineContains(n.Points, n.Closed, n.StrokeWidth/2, lx, ly)
	case NodeTypeRect:
		return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
	default:
		return false
	}
}

// lineContains reports whether (x, y) is within tolerance of any segment.
func lineContains(pts []Vec2, closed bool, tolerance, x, y float64) bool {
	if len(pts) < 2 {
		return false
	}
	last := len(pts) - 1
	if closed {
		last = len(pts)
	}
	for i := 0; i < last; i++ {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		if segmentDistance(a, b, x, y) <= tolerance {
			return true
		}
	}
	return false
}

// segmentDistance returns the distance from (x, y) to segment ab. The
// projection is clamped to the segment so line ends are square, not round.
func segmentDistance(a, b Vec2, x, y float64) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(x-a.X, y-a.Y)
	}
	t := ((x-a.X)*dx + (y-a.Y)*dy) / lenSq
	if t < 0 || t > 1 {
		return math.Inf(1)
	}
	px := a.X + t*dx
	py := a.Y + t*dy
	return math.Hypot(x-px, y-py)
}

// collectInteractable walks the tree in paint order (DFS, ZIndex-sorted),
// appending potentially hit-testable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func (s *Scene) collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type == NodeTypeLine || n.Type == NodeTypeRect {
		buf = append(buf, n)
	}
	for _, child := range n.sorted() {
		buf = s.collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (wx, wy).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(wx, wy float64) *Node {
	s.hitBuf = s.collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse paint order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(wx, wy)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// draggableAncestor returns the nearest draggable node among n and its
// ancestors, or nil.
func draggableAncestor(n *Node) *Node {
	for p := n; p != nil; p = p.Parent {
		if p.Draggable {
			return p
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Update to handle pointer input.
// Injected events take precedence over the real mouse.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.headless {
		return
	}
	mx, my := ebiten.CursorPosition()
	wx, wy := s.screenToStage(float64(mx), float64(my))
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(wx, wy, pressed)
}

// screenToStage converts window coordinates to stage coordinates.
func (s *Scene) screenToStage(sx, sy float64) (float64, float64) {
	return sx - s.viewport.X, sy - s.viewport.Y
}

// processPointer runs the pointer state machine.
func (s *Scene) processPointer(wx, wy float64, pressed bool) {
	ps := &s.pointer

	if !ps.down {
		target := s.hitTest(wx, wy)
		if target != ps.hoverNode {
			s.updateHover(ps.hoverNode, target, wx, wy)
			ps.hoverNode = target
		}
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = wx, wy
		ps.lastX, ps.lastY = wx, wy
		ps.hitNode = ps.hoverNode
		ps.dragNode = draggableAncestor(ps.hitNode)
		ps.dragging = false

	case pressed && ps.down:
		if wx != ps.lastX || wy != ps.lastY {
			if !ps.dragging && ps.dragNode != nil {
				dx := wx - ps.startX
				dy := wy - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone {
					ps.dragging = true
					ps.nodeStart = ps.dragNode.AbsolutePosition()
					s.fireDrag(EventDragStart, ps, wx, wy, wx-ps.startX, wy-ps.startY)
				}
			}
			if ps.dragging {
				s.moveDragged(ps, wx, wy)
				s.fireDrag(EventDrag, ps, wx, wy, wx-ps.lastX, wy-ps.lastY)
			}
		}
		ps.lastX, ps.lastY = wx, wy

	case !pressed && ps.down:
		if ps.dragging {
			if wx != ps.lastX || wy != ps.lastY {
				s.moveDragged(ps, wx, wy)
			}
			s.fireDrag(EventDragEnd, ps, wx, wy, wx-ps.lastX, wy-ps.lastY)
		}
		ps.down = false
		ps.hitNode = nil
		ps.dragNode = nil
		ps.dragging = false
		ps.lastX, ps.lastY = wx, wy
	}
}

// moveDragged applies the pointer movement since the drag started to the
// dragged node, passing the proposed position through its DragBound.
func (s *Scene) moveDragged(ps *pointerState, wx, wy float64) {
	n := ps.dragNode
	proposed := Vec2{
		X: ps.nodeStart.X + (wx - ps.startX),
		Y: ps.nodeStart.Y + (wy - ps.startY),
	}
	if n.DragBound != nil {
		proposed = n.DragBound(proposed, n.AbsolutePosition())
	}
	n.SetAbsolutePosition(proposed)
}

// --- Event dispatch ---

// fireDrag dispatches a drag event: scene-level handlers first, then the
// dragged node's callback, then each ancestor's callback until one stops
// propagation.
func (s *Scene) fireDrag(event EventType, ps *pointerState, wx, wy, deltaX, deltaY float64) {
	node := ps.dragNode
	ctx := &DragContext{
		Node: node, UserData: node.UserData,
		GlobalX: wx, GlobalY: wy,
		StartX: ps.startX, StartY: ps.startY,
		DeltaX: deltaX, DeltaY: deltaY,
	}

	var handlers []dragHandler
	switch event {
	case EventDragStart:
		handlers = s.handlers.dragStart
	case EventDrag:
		handlers = s.handlers.drag
	case EventDragEnd:
		handlers = s.handlers.dragEnd
	}
	for _, h := range handlers {
		h.fn(ctx)
	}

	for n := node; n != nil && !ctx.stopped; n = n.Parent {
		var fn func(*DragContext)
		switch event {
		case EventDragStart:
			fn = n.OnDragStart
		case EventDrag:
			fn = n.OnDrag
		case EventDragEnd:
			fn = n.OnDragEnd
		}
		if fn != nil {
			ctx.Current = n
			fn(ctx)
		}
	}
}

// updateHover fires leave callbacks for nodes in the old hover chain that are
// not in the new one (innermost first), then enter callbacks for nodes new to
// the chain (outermost first).
func (s *Scene) updateHover(from, to *Node, wx, wy float64) {
	for n := from; n != nil; n = n.Parent {
		if isAncestor(n, to) {
			break
		}
		if n.OnPointerLeave != nil {
			n.OnPointerLeave(pointerContext(n, wx, wy))
		}
	}

	s.enterBuf = s.enterBuf[:0]
	for n := to; n != nil; n = n.Parent {
		if isAncestor(n, from) {
			break
		}
		s.enterBuf = append(s.enterBuf, n)
	}
	for i := len(s.enterBuf) - 1; i >= 0; i-- {
		n := s.enterBuf[i]
		if n.OnPointerEnter != nil {
			n.OnPointerEnter(pointerContext(n, wx, wy))
		}
	}
}

func pointerContext(n *Node, wx, wy float64) PointerContext {
	lx, ly := n.WorldToLocal(wx, wy)
	return PointerContext{
		Node: n, UserData: n.UserData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
	}
}
