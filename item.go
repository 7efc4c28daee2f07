package trackline

// ItemOptions describes an item to add. Duration is the only field the
// editor reads; Meta is carried through untouched for the host.
type ItemOptions[T any] struct {
	Duration float64
	Meta     T
}

// Item is a bar on the track. Items are owned by their Editor; hosts receive
// them in change notifications and must not mutate them.
type Item[T any] struct {
	ID      string
	Options ItemOptions[T]
	// Lane is the item's insertion index; it never changes.
	Lane int
	// CurrentX is the bar's absolute x, in stage coordinates, at the end of
	// its last drag.
	CurrentX float64

	y     float64
	scale Scale
	bar   *Node
	slide *Node
}

// Y returns the y coordinate of the item's lane.
func (it *Item[T]) Y() float64 {
	return it.y
}

// Span returns the item's duration in ticks.
func (it *Item[T]) Span() float64 {
	return it.Options.Duration / it.scale.UnitSize
}

// Width returns the bar's length in pixels.
func (it *Item[T]) Width() float64 {
	return it.scale.WidthInPixels(it.Options.Duration)
}

// Start returns the time at which the item begins, measured from the ruler
// origin.
func (it *Item[T]) Start() float64 {
	return it.scale.TimeFor(it.bar.X)
}

// Node returns the bar node.
func (it *Item[T]) Node() *Node {
	return it.bar
}

// Pointer is the draggable playhead.
type Pointer struct {
	// CurrentX is the playhead's absolute x, in stage coordinates, at the end
	// of its last drag or seek.
	CurrentX float64

	scale Scale
	node  *Node
}

// Time returns the playhead position measured from the ruler origin.
func (p *Pointer) Time() float64 {
	return p.scale.TimeFor(p.node.X)
}

// Node returns the playhead's group node.
func (p *Pointer) Node() *Node {
	return p.node
}
