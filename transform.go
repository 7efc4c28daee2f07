package trackline

// Nodes only translate: a node's absolute position is the sum of its own and
// its ancestors' X/Y. Positions are resolved on demand so a node moved during
// a drag is immediately visible to hit tests and bounds in the same frame.

// SetPosition sets the node's local X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// AbsolutePosition returns the node's origin in stage coordinates.
func (n *Node) AbsolutePosition() Vec2 {
	var p Vec2
	for c := n; c != nil; c = c.Parent {
		p.X += c.X
		p.Y += c.Y
	}
	return p
}

// SetAbsolutePosition moves the node so that its origin lands on p in stage
// coordinates.
func (n *Node) SetAbsolutePosition(p Vec2) {
	var parent Vec2
	if n.Parent != nil {
		parent = n.Parent.AbsolutePosition()
	}
	n.X = p.X - parent.X
	n.Y = p.Y - parent.Y
}

// WorldToLocal converts a stage-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	p := n.AbsolutePosition()
	return wx - p.X, wy - p.Y
}

// LocalToWorld converts a local-space point to stage space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	p := n.AbsolutePosition()
	return lx + p.X, ly + p.Y
}
