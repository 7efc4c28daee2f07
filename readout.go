package trackline

import (
	"fmt"
	"math"
)

// NewReadout creates a non-interactive node that prints label() at its
// origin every frame.
func NewReadout(name string, label func() string) *Node {
	n := NewShape(name, func(c *Canvas) {
		c.Print(label(), 0, 0)
	})
	n.Interactable = false
	return n
}

// FormatClock formats a time in seconds as HH:MM:SS.mmm. Negative times are
// prefixed with a minus sign.
func FormatClock(seconds float64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	ms := int64(math.Round(seconds * 1000))
	h := ms / 3600000
	ms %= 3600000
	m := ms / 60000
	ms %= 60000
	s := ms / 1000
	ms %= 1000
	return fmt.Sprintf("%s%02d:%02d:%02d.%03d", sign, h, m, s, ms)
}
