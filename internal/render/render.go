// Package render formats directory contents for the dir and tree commands.
package render

import (
	"fmt"
	"strings"

	"github.com/vvka-141/vdir/internal/tree"
	"github.com/vvka-141/vdir/pkg/vdir"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	guideMid   = "│   "
	guideLast  = "    "
)

// Listing returns the rows of a dir listing: child names in sorted order,
// each in a fixed-width cell, wrapped every vdir.ListingColumns names.
// An empty directory has no rows.
func Listing(n *tree.Node) []string {
	names := n.Names()
	if len(names) == 0 {
		return nil
	}

	var rows []string
	var b strings.Builder
	for i, name := range names {
		if i > 0 && i%vdir.ListingColumns == 0 {
			rows = append(rows, b.String())
			b.Reset()
		}
		if len(name) > vdir.ListingColumnWidth {
			name = name[:vdir.ListingColumnWidth]
		}
		fmt.Fprintf(&b, "%-*s", vdir.ListingColumnWidth, name)
	}
	return append(rows, b.String())
}

// Tree returns the depth-first drawing of n's descendants, one line per
// directory. Siblings are sorted and the last of each group uses the closing
// branch. An empty directory has no lines.
func Tree(n *tree.Node) []string {
	return appendTree(nil, n, "")
}

func appendTree(lines []string, n *tree.Node, indent string) []string {
	names := n.Names()
	for i, name := range names {
		last := i == len(names)-1

		branch, guide := branchMid, guideMid
		if last {
			branch, guide = branchLast, guideLast
		}
		lines = append(lines, indent+branch+name)

		if child, ok := n.Child(name); ok && child.Len() > 0 {
			lines = appendTree(lines, child, indent+guide)
		}
	}
	return lines
}
