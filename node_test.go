package trackline

import "testing"

// --- Constructors ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("c")
	if n.Type != NodeTypeContainer {
		t.Errorf("Type = %v, want NodeTypeContainer", n.Type)
	}
	if !n.Visible || !n.Interactable {
		t.Error("new nodes should be visible and interactable")
	}
	if n.Draggable {
		t.Error("new nodes should not be draggable")
	}
	if n.ID == 0 {
		t.Error("ID should be assigned")
	}
}

func TestNodeIDsUnique(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	if a.ID == b.ID {
		t.Errorf("IDs collide: %d", a.ID)
	}
}

func TestNewLine(t *testing.T) {
	n := NewLine("l", []Vec2{{0, 0}, {10, 0}}, ColorItem, 20)
	if n.Type != NodeTypeLine || n.StrokeWidth != 20 || n.Stroke != ColorItem {
		t.Errorf("unexpected line node: %+v", n)
	}
}

// --- Tree manipulation ---

func TestAddChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent not set")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Error("child not in parent's children")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewContainer("child")
	a.AddChild(child)
	b.AddChild(child)

	if a.NumChildren() != 0 {
		t.Errorf("old parent still has %d children", a.NumChildren())
	}
	if child.Parent != b {
		t.Error("child.Parent should be the new parent")
	}
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewContainer("p").AddChild(nil)
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	a.AddChild(b)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.AddChild(a)
}

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	parent.RemoveChild(child)

	if child.Parent != nil || parent.NumChildren() != 0 {
		t.Error("child not removed")
	}
}

func TestRemoveFromParent(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	child.RemoveFromParent()

	if child.Parent != nil || parent.NumChildren() != 0 {
		t.Error("child not removed")
	}
	// No parent: no-op.
	child.RemoveFromParent()
}

// --- Ordering ---

func TestSortedByZIndex(t *testing.T) {
	parent := NewContainer("parent")
	top := NewContainer("top")
	mid := NewContainer("mid")
	low := NewContainer("low")
	parent.AddChild(top)
	parent.AddChild(mid)
	parent.AddChild(low)
	top.SetZIndex(10)
	mid.SetZIndex(1)

	got := parent.sorted()
	want := []*Node{low, mid, top}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted[%d] = %s, want %s", i, got[i].Name, want[i].Name)
		}
	}
}

func TestSortedIsStable(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	got := parent.sorted()
	if got[0] != a || got[1] != b || got[2] != c {
		t.Error("equal ZIndex should keep insertion order")
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	child.Dispose()

	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("disposed node should be removed from its parent")
	}
	// Disposing twice is a no-op.
	child.Dispose()
}

func TestIsAncestor(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	a.AddChild(b)
	b.AddChild(c)

	if !isAncestor(a, c) || !isAncestor(b, c) {
		t.Error("expected ancestors")
	}
	if !isAncestor(c, c) {
		t.Error("a node is its own ancestor-or-self")
	}
	if isAncestor(c, a) {
		t.Error("descendant reported as ancestor")
	}
	if isAncestor(a, nil) {
		t.Error("nothing is an ancestor of nil")
	}
}

func TestDragContextStopPropagation(t *testing.T) {
	ctx := &DragContext{}
	if ctx.Stopped() {
		t.Error("new context should not be stopped")
	}
	ctx.StopPropagation()
	if !ctx.Stopped() {
		t.Error("StopPropagation had no effect")
	}
}
