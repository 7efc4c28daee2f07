package trackline

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Scene is the top-level object that owns the node tree, input state, running
// tweens, and the viewport it is mounted in.
type Scene struct {
	root     *Node
	viewport Rect
	debug    bool
	headless bool
	log      zerolog.Logger

	// ClearColor fills the viewport before the tree is drawn. The zero value
	// leaves the target untouched.
	ClearColor Color

	// Animation
	tweens []*TweenGroup

	// Input state
	handlers     handlerRegistry
	pointer      pointerState
	hitBuf       []*Node
	enterBuf     []*Node
	dragDeadZone float64
	injectQueue  []syntheticPointerEvent
	script       *Script
}

// NewScene creates a new scene with a pre-created root container mounted at
// viewport.
func NewScene(viewport Rect) *Scene {
	return &Scene{
		root:         NewContainer("root"),
		viewport:     viewport,
		log:          zerolog.Nop(),
		dragDeadZone: defaultDragDeadZone,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Viewport returns the window-space rectangle the scene draws into.
func (s *Scene) Viewport() Rect {
	return s.viewport
}

// SetViewport moves or resizes the window-space rectangle the scene draws into.
func (s *Scene) SetViewport(r Rect) {
	s.viewport = r
}

// SetLogger sets the logger used for debug output.
func (s *Scene) SetLogger(l zerolog.Logger) {
	s.log = l
}

// SetHeadless disables reading the real mouse. Only injected input and
// scripts drive the scene. Used by tests and scripted replays.
func (s *Scene) SetHeadless(headless bool) {
	s.headless = headless
}

// Animate registers a tween group to be advanced every Update until it
// reports Done.
func (s *Scene) Animate(g *TweenGroup) {
	s.tweens = append(s.tweens, g)
}

// Update runs the attached script, processes input, and advances tweens by
// one tick.
func (s *Scene) Update() {
	if s.script != nil {
		s.script.step(s)
	}
	s.processInput()
	s.advance(float32(1.0 / float64(ebiten.TPS())))
}

// advance moves every running tween forward by dt seconds and drops the
// finished ones.
func (s *Scene) advance(dt float32) {
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

// Draw paints the node tree into the scene's viewport on screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	vp := s.viewport
	target := screen.SubImage(image.Rect(
		int(vp.X), int(vp.Y),
		int(vp.X+vp.Width), int(vp.Y+vp.Height),
	)).(*ebiten.Image)

	if s.ClearColor.A > 0 {
		target.Fill(s.ClearColor)
	}

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	c := &Canvas{dst: target, originX: vp.X, originY: vp.Y}
	s.paint(s.root, c, &stats)

	if s.debug {
		stats.paintTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are logged, and per-frame paint stats
// are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	debugLogger = s.log
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
