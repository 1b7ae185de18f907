package armature

import (
	"fmt"
	"os"
	"time"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugStats holds per-tick player metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	stepTime      time.Duration
	transformTime time.Duration
	playerCount   int
	finished      int
}

// debugLog prints tick stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[armature] step: %v | transforms: %v | players: %d | finished: %d\n",
		stats.stepTime, stats.transformTime, stats.playerCount, stats.finished)
}

// debugf prints to stderr when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[armature] "+format+"\n", args...)
}

// warnf reports a consistency problem on stderr. Always on.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[armature] warning: "+format+"\n", args...)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		warnf("tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if c := n.NumChildren(); c > debugMaxChildCount {
		warnf("node %q has %d children (threshold %d)", n.Name, c, debugMaxChildCount)
	}
}
