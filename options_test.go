package trackline

import (
	"errors"
	"math"
	"testing"
)

func TestOptionsDefaults(t *testing.T) {
	c := &fakeContainer{bounds: Rect{Width: 800, Height: 400}}
	cfg, err := Options{Container: "c"}.resolve(c)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	want := Config{
		Container:  "c",
		Width:      800,
		Height:     400,
		UnitSize:   DefaultUnitSize,
		Duration:   DefaultDuration,
		Top:        0,
		Left:       DefaultLeft,
		ScaleLeft:  DefaultLeft + RulerInset,
		Gap:        DefaultGap,
		ItemHeight: DefaultItemHeight,
	}
	if cfg != want {
		t.Errorf("cfg = %+v\nwant  %+v", cfg, want)
	}
}

func TestOptionsExplicitValues(t *testing.T) {
	c := &fakeContainer{bounds: Rect{Width: 800, Height: 400}}
	cfg, err := Options{
		Container: "c", Width: 300, Height: 120,
		UnitSize: 5, Duration: 60, Top: 8, Left: 4, Gap: 12, ItemHeight: 6,
	}.resolve(c)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Width != 300 || cfg.Height != 120 {
		t.Errorf("size = %vx%v, want 300x120", cfg.Width, cfg.Height)
	}
	if cfg.ScaleLeft != 24 {
		t.Errorf("ScaleLeft = %v, want 24", cfg.ScaleLeft)
	}
	s := cfg.Scale()
	if s.UnitSize != 5 || s.Gap != 12 || s.Duration != 60 || s.ScaleLeft != 24 {
		t.Errorf("Scale = %+v", s)
	}
	l := cfg.Lanes()
	if l.Top != 8 || l.ItemHeight != 6 {
		t.Errorf("Lanes = %+v", l)
	}
}

func TestOptionsInvalid(t *testing.T) {
	c := &fakeContainer{bounds: Rect{Width: 800, Height: 400}}
	tests := []struct {
		name string
		opts Options
	}{
		{"negative unit", Options{UnitSize: -1}},
		{"negative gap", Options{Gap: -10}},
		{"negative item height", Options{ItemHeight: -2}},
		{"negative duration", Options{Duration: -60}},
		{"NaN unit", Options{UnitSize: math.NaN()}},
		{"infinite unit", Options{UnitSize: math.Inf(1)}},
		{"NaN gap", Options{Gap: math.NaN()}},
		{"NaN item height", Options{ItemHeight: math.NaN()}},
		{"NaN duration", Options{Duration: math.NaN()}},
		{"infinite duration", Options{Duration: math.Inf(1)}},
		{"NaN width", Options{Width: math.NaN()}},
		{"infinite top", Options{Top: math.Inf(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Container = "c"
			_, err := tt.opts.resolve(c)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("err = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}
