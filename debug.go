package shumway

import (
	"fmt"
	"os"
)

// globalDebug enables extra checks and warnings on stderr. The display list
// is single-threaded, so a plain bool is enough.
var globalDebug bool

// SetDebugMode enables or disables debug warnings for all display lists.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug warnings are enabled.
func DebugMode() bool {
	return globalDebug
}

func debugWarnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[shumway] warning: "+format+"\n", args...)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugWarnf("tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugWarnf("node %q has %d children (threshold %d)", n.name, len(n.children), debugMaxChildCount)
	}
}

// debugCheckSingular warns when a node's matrix cannot be inverted, since
// every point mapped into its space will then fail.
func debugCheckSingular(n *Node) {
	if n.matrix.Determinant() == 0 {
		debugWarnf("node %q has a singular matrix %v", n.name, n.matrix)
	}
}
