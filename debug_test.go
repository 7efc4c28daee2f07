package trackline

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDebugCheckDisposedPanics(t *testing.T) {
	n := NewContainer("gone")
	n.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, `"gone"`) {
			t.Errorf("panic message %q should name the node", msg)
		}
	}()
	debugCheckDisposed(n, "AddChild")
}

func TestDebugModeAddChildOnDisposed(t *testing.T) {
	s := NewScene(Rect{})
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	child := NewContainer("child")
	child.Dispose()

	defer func() {
		if recover() == nil {
			t.Error("expected panic adding a disposed node in debug mode")
		}
	}()
	s.Root().AddChild(child)
}

func TestDebugCheckTreeDepthWarns(t *testing.T) {
	var sb strings.Builder
	s := NewScene(Rect{})
	s.SetLogger(zerolog.New(&sb))
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	n := s.Root()
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		c := NewContainer("deep")
		n.AddChild(c)
		n = c
	}

	if !strings.Contains(sb.String(), "tree depth exceeds threshold") {
		t.Errorf("expected depth warning, got %q", sb.String())
	}
}

func TestDebugLogSkippedWhenOff(t *testing.T) {
	var sb strings.Builder
	s := NewScene(Rect{})
	s.SetLogger(zerolog.New(&sb).Level(zerolog.DebugLevel))
	s.debugLog(debugStats{nodeCount: 3})
	if sb.Len() != 0 {
		t.Errorf("debugLog wrote %q with debug mode off", sb.String())
	}
}
