package trackline

// Lane layout constants, in pixels.
const (
	// LaneOrigin is the distance from the top margin to the first lane.
	LaneOrigin = 60
	// LaneGap is the vertical space between consecutive lanes.
	LaneGap = 5
)

// Lanes assigns each item a vertical slot by insertion order. Lanes are never
// reused.
type Lanes struct {
	Top        float64
	ItemHeight float64
}

// Allocate returns the y coordinate of the lane for the item that will be the
// count-th item (zero based).
func (l Lanes) Allocate(count int) float64 {
	return l.Top + LaneOrigin + float64(count)*(l.ItemHeight+LaneGap)
}
