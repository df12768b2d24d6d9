package voxfolio

import (
	"fmt"
	"log/slog"
	"time"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	traverseTime  time.Duration
	sortTime      time.Duration
	submitTime    time.Duration
	faceCount     int
	culledCount   int
	drawCallCount int
}

// debugLog emits timing and draw stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.traverseTime + stats.sortTime + stats.submitTime
	slog.Debug("frame",
		"component", "voxfolio",
		"traverse", stats.traverseTime,
		"sort", stats.sortTime,
		"submit", stats.submitTime,
		"total", total,
		"faces", stats.faceCount,
		"culled", stats.culledCount,
		"drawCalls", stats.drawCallCount,
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("voxfolio debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		slog.Warn("tree depth exceeds threshold",
			"component", "voxfolio", "node", n.Name, "depth", depth, "max", debugMaxTreeDepth)
	}
}

// debugCheckChildCount warns if a node has more children than the terrain
// layer ever needs.
const debugMaxChildCount = 20000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		slog.Warn("child count exceeds threshold",
			"component", "voxfolio", "node", n.Name, "children", len(n.children), "max", debugMaxChildCount)
	}
}

// countDrawCalls counts the DrawTriangles32 submissions a face list needs
// given the per-call vertex budget.
func countDrawCalls(faces int) int {
	if faces == 0 {
		return 0
	}
	return (faces + maxBatchFaces - 1) / maxBatchFaces
}
