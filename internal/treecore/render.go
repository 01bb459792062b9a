package treecore

import (
	"fmt"
	"strings"
)

// Render produces a compact, human-readable rendering of the subtree rooted
// at root: a right-child-on-top rotated ASCII tree, one key per line,
// indented by depth. It is intended as a fuzz-failure snapshot, not a
// stable or parseable format.
func Render[H comparable, K any](acc Accessor[H, K], root H) string {
	if acc.IsNil(root) {
		return "(empty tree)"
	}
	var b strings.Builder
	renderNode(acc, root, 0, &b)
	return b.String()
}

func renderNode[H comparable, K any](acc Accessor[H, K], n H, depth int, b *strings.Builder) {
	if acc.IsNil(n) {
		return
	}
	renderNode(acc, acc.Right(n), depth+1, b)
	fmt.Fprintf(b, "%s%v\n", strings.Repeat("    ", depth), acc.Key(n))
	renderNode(acc, acc.Left(n), depth+1, b)
}

// Keys collects every key reachable from root, in ascending order.
func Keys[H comparable, K any](acc Accessor[H, K], root H) []K {
	var out []K
	TraverseInOrder(acc, root, func(n H) bool {
		out = append(out, acc.Key(n))
		return true
	})
	return out
}
