package avl

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print draws the tree sideways: the right subtree above a node, the left
// subtree below it.
func (t *tree[T]) Print(w io.Writer) error {
	return printNode(w, t.root, "", rootBranch)
}

func printNode[T constraints.Ordered](w io.Writer, curr *node[T], prefix string, br branch) error {
	if curr == nil {
		return nil
	}

	if curr.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		if err := printNode(w, curr.right, prefix+pad, rightBranch); err != nil {
			return err
		}
	}

	connector := "|------+"
	switch br {
	case leftBranch:
		connector = "\\------+"
	case rightBranch:
		connector = "/------+"
	}
	if _, err := fmt.Fprintf(w, "%s%s %v\n", prefix, connector, curr.value); err != nil {
		return err
	}

	if curr.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		return printNode(w, curr.left, prefix+pad, leftBranch)
	}
	return nil
}
