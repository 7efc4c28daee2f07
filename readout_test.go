package trackline

import "testing"

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00.000"},
		{2.5, "00:00:02.500"},
		{61.25, "00:01:01.250"},
		{3600, "01:00:00.000"},
		{3723.0004, "01:02:03.000"},
		{59.9996, "00:01:00.000"},
		{-1.5, "-00:00:01.500"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestReadoutNotInteractable(t *testing.T) {
	n := NewReadout("r", func() string { return "x" })
	if n.Interactable {
		t.Error("readout should not be interactable")
	}
	if n.Type != NodeTypeShape || n.Draw == nil {
		t.Error("readout should be a shape with a draw func")
	}
}
