package trackline

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenXReachesTarget(t *testing.T) {
	n := NewContainer("n")
	g := TweenX(n, 100, 1, ease.Linear)

	g.Update(0.5)
	if g.Done {
		t.Fatal("tween done after half its duration")
	}
	if n.X <= 0 || n.X >= 100 {
		t.Errorf("X at half time = %v, want between 0 and 100", n.X)
	}

	g.Update(0.5)
	g.Update(0.1)
	if !g.Done {
		t.Fatal("tween not done after its full duration")
	}
	if n.X != 100 {
		t.Errorf("X = %v, want 100", n.X)
	}
}

func TestTweenOnDoneRunsOnce(t *testing.T) {
	n := NewContainer("n")
	g := TweenX(n, 10, 0.2, ease.Linear)
	calls := 0
	g.OnDone = func() { calls++ }

	for i := 0; i < 5; i++ {
		g.Update(0.1)
	}
	if calls != 1 {
		t.Errorf("OnDone called %d times, want 1", calls)
	}
}

func TestTweenStopsOnDisposedNode(t *testing.T) {
	n := NewContainer("n")
	g := TweenX(n, 100, 1, ease.Linear)
	called := false
	g.OnDone = func() { called = true }

	g.Update(0.1)
	before := n.X
	n.Dispose()
	g.Update(0.1)

	if !g.Done {
		t.Error("tween should stop once its node is disposed")
	}
	if n.X != before {
		t.Error("tween wrote to a disposed node")
	}
	if called {
		t.Error("OnDone should not run for a disposed node")
	}
}

func TestSceneAdvanceDropsFinishedTweens(t *testing.T) {
	s := NewScene(Rect{Width: 100, Height: 100})
	n := NewContainer("n")
	s.Root().AddChild(n)
	s.Animate(TweenX(n, 50, 0.2, ease.Linear))

	s.advance(0.1)
	if len(s.tweens) != 1 {
		t.Fatalf("tweens = %d, want 1 while running", len(s.tweens))
	}
	s.advance(0.1)
	s.advance(0.1)
	if len(s.tweens) != 0 {
		t.Errorf("tweens = %d, want 0 after finishing", len(s.tweens))
	}
	if n.X != 50 {
		t.Errorf("X = %v, want 50", n.X)
	}
}
