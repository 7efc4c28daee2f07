package trackline

// Ruler layout constants, in pixels.
const (
	// RulerInset is the distance from the left margin to the first tick.
	RulerInset = 20
	// RulerBaseline is the distance from the top margin to the tick baseline.
	RulerBaseline = 30
	// TickLength is how far every tick extends below the baseline.
	TickLength = 10
	// MajorTickRise is how far major ticks extend above the baseline.
	MajorTickRise = 10
	// MajorTickEvery marks every Nth tick as major.
	MajorTickEvery = 5
)

// Scale converts between time values and pixel offsets along the ruler.
// It holds no state beyond the configuration it was built from.
type Scale struct {
	UnitSize  float64 // time per tick
	Gap       float64 // pixels between ticks
	Duration  float64 // total time covered by the ruler
	ScaleLeft float64 // x of tick 0
}

// Tick is one ruler subdivision.
type Tick struct {
	Index int
	X     float64
	Major bool
}

// TotalTicks returns the number of subdivisions across the ruler. It is not
// necessarily an integer.
func (s Scale) TotalTicks() float64 {
	return s.Duration / s.UnitSize
}

// PixelOffset returns the x coordinate of the i-th tick.
func (s Scale) PixelOffset(i float64) float64 {
	return s.ScaleLeft + s.Gap*i
}

// WidthInPixels returns how many pixels a span of d time covers.
func (s Scale) WidthInPixels(d float64) float64 {
	return d / s.UnitSize * s.Gap
}

// TimeFor is the inverse of WidthInPixels: the time covered by px pixels.
func (s Scale) TimeFor(px float64) float64 {
	return px / s.Gap * s.UnitSize
}

// Length returns the ruler's length in pixels.
func (s Scale) Length() float64 {
	return s.TotalTicks() * s.Gap
}

// IsMajor reports whether tick i is drawn taller.
func IsMajor(i int) bool {
	return i%MajorTickEvery == 0
}

// Ticks returns every tick from index 0 while index < TotalTicks. A
// fractional remainder gets no partial tick.
func (s Scale) Ticks() []Tick {
	total := s.TotalTicks()
	if total <= 0 {
		return nil
	}
	ticks := make([]Tick, 0, int(total)+1)
	for i := 0; float64(i) < total; i++ {
		ticks = append(ticks, Tick{
			Index: i,
			X:     s.PixelOffset(float64(i)),
			Major: IsMajor(i),
		})
	}
	return ticks
}
