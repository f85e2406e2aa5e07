package engine

import (
	"fmt"
	"time"
)

// IsMateScore reports whether score announces a forced mate for either side.
func IsMateScore(score int32) bool {
	return Abs(score) >= MateValue
}

// Centiseconds converts d for protocol output, rounding down.
func Centiseconds(d time.Duration) int64 {
	return int64(d / (10 * time.Millisecond))
}

// ThinkingLine formats an iteration the way xboard expects "post" output:
// depth, score, elapsed centiseconds, nodes and the principal move.
func ThinkingLine(info Info, best string) string {
	return fmt.Sprintf("%d %d %d %d %s", info.Depth, info.Score, Centiseconds(info.Elapsed), info.Nodes, best)
}
