package trackline

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// debugStats holds per-frame paint metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	paintTime time.Duration
	nodeCount int
	drawCount int
}

// debugLogger receives tree warnings from node operations, which have no
// Scene pointer. Set by Scene.SetDebugMode.
var debugLogger = zerolog.Nop()

// debugLog logs paint stats for one frame.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.log.Debug().
		Dur("paint", stats.paintTime).
		Int("nodes", stats.nodeCount).
		Int("draws", stats.drawCount).
		Msg("frame")
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("trackline debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxTreeDepth is the depth past which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 16

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn().
			Int("depth", depth).
			Int("threshold", debugMaxTreeDepth).
			Str("node", n.Name).
			Msg("tree depth exceeds threshold")
	}
}
