package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders the tree as indented text, one node per line:
//
//	STATEMENT [1:1-1:15]
//	  IDENTIFIER [1:1-1:5] "ROOT"
func Dump(n *Node) string {
	var sb strings.Builder
	dumpNode(&sb, n, 0)
	return sb.String()
}

func dumpNode(sb *strings.Builder, n *Node, level int) {
	if n == nil {
		return
	}

	sb.WriteString(strings.Repeat("  ", level))
	fmt.Fprintf(sb, "%s [%s-%s]", n.typeName, n.span.Start, n.span.End)
	if n.isRaw {
		sb.WriteString(" " + strconv.Quote(n.raw))
	}
	sb.WriteString("\n")

	for _, c := range n.children {
		dumpNode(sb, c, level+1)
	}
}
