package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes an ASCII picture of the tree to w, right subtrees above
// their parent, and returns the height of the tree.
func (t *tree[K, V]) Print(w io.Writer, withValues bool) int {
	if t == nil {
		return 0
	}
	return printTree(w, t.root, "", rootBranch, withValues)
}

// internal print - returns the maximum depth below n
func printTree[K, V any](w io.Writer, n *node[K, V], prefix string, br branch, withValues bool) int {
	if n == nil {
		return 0
	}
	rd := 0
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		rd = printTree(w, n.right, prefix+pad, rightBranch, withValues)
	}

	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if withValues {
		fmt.Fprintf(w, "%v → %v %+d h:%d n:%d\n", n.key, n.value, n.balanceFactor(), n.height, n.size)
	} else {
		fmt.Fprintf(w, "%v\n", n.key)
	}

	ld := 0
	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		ld = printTree(w, n.left, prefix+pad, leftBranch, withValues)
	}
	return 1 + max(ld, rd)
}
