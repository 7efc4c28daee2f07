package trackline

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

var (
	// ErrContainerNotFound is returned by New when the host cannot resolve
	// the container id.
	ErrContainerNotFound = errors.New("container not found")
	// ErrInvalidConfiguration is returned by New for a unit size, gap or
	// item height that is not positive, a negative duration, or any
	// non-finite value.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// Defaults applied by New to omitted (zero) options.
const (
	DefaultUnitSize   = 1
	DefaultDuration   = 3600
	DefaultLeft       = 10
	DefaultGap        = 40
	DefaultItemHeight = 20
)

// Options configures an Editor. Zero values mean "omitted" and take the
// default; Container is required.
type Options struct {
	Container string // id resolved through the Host

	Width  float64 // 0 = container width
	Height float64 // 0 = container height

	UnitSize   float64 // time per tick (default 1)
	Duration   float64 // total time on the ruler (default 3600)
	Top        float64 // space above the ruler (default 0)
	Left       float64 // space left of the lane backgrounds (default 10)
	Gap        float64 // pixels between ticks (default 40)
	ItemHeight float64 // item bar thickness (default 20)

	// IDs generates item ids. Defaults to UUIDs.
	IDs IDGenerator
	// Logger receives debug output. Defaults to a no-op logger.
	Logger *zerolog.Logger
	// Headless stops the scene from reading the real mouse; only injected
	// input and scripts drive it.
	Headless bool
}

// Config is the resolved, immutable configuration of an Editor.
type Config struct {
	Container  string
	Width      float64
	Height     float64
	UnitSize   float64
	Duration   float64
	Top        float64
	Left       float64
	ScaleLeft  float64
	Gap        float64
	ItemHeight float64
}

// Scale returns the scale model for this configuration.
func (c Config) Scale() Scale {
	return Scale{
		UnitSize:  c.UnitSize,
		Gap:       c.Gap,
		Duration:  c.Duration,
		ScaleLeft: c.ScaleLeft,
	}
}

// Lanes returns the lane allocator for this configuration.
func (c Config) Lanes() Lanes {
	return Lanes{Top: c.Top, ItemHeight: c.ItemHeight}
}

// resolve applies defaults, falls back to the container's size, and
// validates the result.
func (o Options) resolve(container Container) (Config, error) {
	cfg := Config{
		Container:  o.Container,
		Width:      o.Width,
		Height:     o.Height,
		UnitSize:   orDefault(o.UnitSize, DefaultUnitSize),
		Duration:   orDefault(o.Duration, DefaultDuration),
		Top:        o.Top,
		Left:       orDefault(o.Left, DefaultLeft),
		Gap:        orDefault(o.Gap, DefaultGap),
		ItemHeight: orDefault(o.ItemHeight, DefaultItemHeight),
	}
	bounds := container.Bounds()
	if cfg.Width == 0 {
		cfg.Width = bounds.Width
	}
	if cfg.Height == 0 {
		cfg.Height = bounds.Height
	}
	cfg.ScaleLeft = cfg.Left + RulerInset

	switch {
	case !(cfg.UnitSize > 0) || math.IsInf(cfg.UnitSize, 0):
		return Config{}, fmt.Errorf("%w: unit size %v must be positive and finite", ErrInvalidConfiguration, cfg.UnitSize)
	case !(cfg.Gap > 0) || math.IsInf(cfg.Gap, 0):
		return Config{}, fmt.Errorf("%w: gap %v must be positive and finite", ErrInvalidConfiguration, cfg.Gap)
	case !(cfg.ItemHeight > 0) || math.IsInf(cfg.ItemHeight, 0):
		return Config{}, fmt.Errorf("%w: item height %v must be positive and finite", ErrInvalidConfiguration, cfg.ItemHeight)
	case !(cfg.Duration >= 0) || math.IsInf(cfg.Duration, 0):
		return Config{}, fmt.Errorf("%w: duration %v must be finite and not negative", ErrInvalidConfiguration, cfg.Duration)
	case !finite(cfg.Width, cfg.Height, cfg.Top, cfg.Left):
		return Config{}, fmt.Errorf("%w: size and margins must be finite", ErrInvalidConfiguration)
	}
	return cfg, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
