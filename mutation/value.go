// File: value.go
// Role: node value scoring for mutation prioritization (spec §4.3 "assign a
// value score to every candidate target node: Keystone > Notable > small >
// pure travel").

package mutation

import "github.com/ashgrove-forge/passiveopt/tree"

// nodeValue scores n for prioritization. Higher sorts first. A node with no
// stat text is treated as a pure travel node, the lowest tier; an ordinary
// small node with stats ranks above it; Notable and Keystone outrank both.
func nodeValue(n *tree.PassiveNode) int {
	switch n.NodeKind() {
	case tree.KindKeystone:
		return 3
	case tree.KindNotable:
		return 2
	default:
		if len(n.Stats) == 0 {
			return 0
		}
		return 1
	}
}
