package trackline

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// DragBoundFunc corrects a proposed absolute position for a dragged node.
// current is the node's absolute position before the move is applied.
// It is called on every move tick of an active drag.
type DragBoundFunc func(proposed, current Vec2) Vec2

// PointerContext carries hover event data.
type PointerContext struct {
	Node     *Node
	UserData any
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
}

// DragContext carries drag event data. Node is the node being dragged;
// Current is the node whose handler is running while the event bubbles.
type DragContext struct {
	Node     *Node
	Current  *Node
	UserData any
	GlobalX  float64
	GlobalY  float64
	StartX   float64
	StartY   float64
	DeltaX   float64
	DeltaY   float64

	stopped bool
}

// StopPropagation prevents a drag event from reaching the ancestors of the
// node currently handling it.
func (c *DragContext) StopPropagation() {
	c.stopped = true
}

// Stopped reports whether StopPropagation was called.
func (c *DragContext) Stopped() bool {
	return c.stopped
}

// nodeIDCounter is a plain counter; the scene is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene graph element. A single flat struct is used for
// all node types.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Position relative to the parent
	X, Y float64

	// Visibility & interaction
	Visible      bool
	Interactable bool
	Draggable    bool
	DragBound    DragBoundFunc

	// Ordering
	ZIndex int

	// Metadata
	UserData any

	// Line fields (NodeTypeLine)
	Points      []Vec2
	Closed      bool
	Stroke      Color
	StrokeWidth float64

	// Rect fields (NodeTypeRect)
	Width, Height float64
	Fill          Color

	// Shape fields (NodeTypeShape)
	Draw func(c *Canvas)

	// Hit testing
	HitShape HitShape

	// Per-node callbacks (nil by default)
	OnDragStart    func(*DragContext)
	OnDrag         func(*DragContext)
	OnDragEnd      func(*DragContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Visible = true
	n.Interactable = true
	n.Stroke = ColorWhite
	n.StrokeWidth = 1
	n.childrenSorted = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewLine creates a stroked polyline through points.
func NewLine(name string, points []Vec2, stroke Color, width float64) *Node {
	n := &Node{Name: name, Type: NodeTypeLine, Points: points}
	nodeDefaults(n)
	n.Stroke = stroke
	n.StrokeWidth = width
	return n
}

// NewRect creates a filled rectangle with its top-left corner at (x, y).
func NewRect(name string, x, y, w, h float64, fill Color) *Node {
	n := &Node{Name: name, Type: NodeTypeRect, X: x, Y: y, Width: w, Height: h, Fill: fill}
	nodeDefaults(n)
	return n
}

// NewShape creates a node that draws itself through fn.
// Shapes are only hit-testable when HitShape is set.
func NewShape(name string, fn func(c *Canvas)) *Node {
	n := &Node{Name: name, Type: NodeTypeShape, Draw: fn}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("trackline: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("trackline: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("trackline: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.HitShape = nil
	n.DragBound = nil
	n.Draw = nil
	n.UserData = nil
	n.OnDragStart = nil
	n.OnDrag = nil
	n.OnDragEnd = nil
	n.OnPointerEnter = nil
	n.OnPointerLeave = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			n.childrenSorted = false
			return
		}
	}
}

// sorted returns n's children in paint order: ascending ZIndex, ties broken
// by insertion order.
func (n *Node) sorted() []*Node {
	if n.childrenSorted && n.sortedChildren != nil && len(n.sortedChildren) == len(n.children) {
		return n.sortedChildren
	}
	buf := append(n.sortedChildren[:0], n.children...)
	// Insertion sort keeps it stable; child lists are short.
	for i := 1; i < len(buf); i++ {
		for j := i; j > 0 && buf[j-1].ZIndex > buf[j].ZIndex; j-- {
			buf[j-1], buf[j] = buf[j], buf[j-1]
		}
	}
	n.sortedChildren = buf
	n.childrenSorted = true
	return buf
}
