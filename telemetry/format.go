package telemetry

import (
	"fmt"
	"io"
	"time"
)

// formatTimingTree writes one timing tree, e.g.
//
//	read main.journal: 12.0ms
//	├─ parse includes: 8.0ms
//	└─ sort transactions: 1.0ms
func formatTimingTree(w io.Writer, root *timerNode) {
	_, _ = fmt.Fprintf(w, "%s: %s\n", root.name, formatDuration(root.duration()))
	for i, child := range root.children {
		formatNode(w, child, "", i == len(root.children)-1)
	}
}

func formatNode(w io.Writer, node *timerNode, prefix string, isLast bool) {
	branch, extension := "├─ ", "│  "
	if isLast {
		branch, extension = "└─ ", "   "
	}

	_, _ = fmt.Fprintf(w, "%s%s%s: %s\n", prefix, branch, node.name, formatDuration(node.duration()))

	for i, child := range node.children {
		formatNode(w, child, prefix+extension, i == len(node.children)-1)
	}
}

func (n *timerNode) duration() time.Duration {
	if n.end.IsZero() {
		return 0
	}
	return n.end.Sub(n.start)
}

// formatDuration rounds a duration to a readable precision: microseconds
// under a millisecond, otherwise fractions of a millisecond or second.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
