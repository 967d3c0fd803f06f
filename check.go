package avl

import (
	"fmt"
)

// Check walks the whole tree and reports the first broken invariant: search
// order, cached heights, the size counter and, for Balanced trees, the AVL
// balance of every node.
func (t *tree[T]) Check() error {
	count, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d nodes, recorded %d", ErrSizeMismatch, count, t.size)
	}
	return nil
}

// lo and hi are exclusive bounds inherited from the ancestors, nil when open
func (t *tree[T]) checkNode(curr *node[T], lo, hi *T) (int, error) {
	if curr == nil {
		return 0, nil
	}

	if lo != nil && curr.value <= *lo {
		return 0, fmt.Errorf("%w: %v is not above %v", ErrOrderViolation, curr.value, *lo)
	}
	if hi != nil && curr.value >= *hi {
		return 0, fmt.Errorf("%w: %v is not below %v", ErrOrderViolation, curr.value, *hi)
	}

	nl, err := t.checkNode(curr.left, lo, &curr.value)
	if err != nil {
		return 0, err
	}
	nr, err := t.checkNode(curr.right, &curr.value, hi)
	if err != nil {
		return 0, err
	}

	lh, rh := curr.left.Height(), curr.right.Height()
	if want := 1 + maxInt(lh, rh); curr.height != want {
		return 0, fmt.Errorf("%w: node %v has height %d, want %d", ErrHeightMismatch, curr.value, curr.height, want)
	}
	if t.kind == Balanced && absInt(lh-rh) > maxSkew {
		return 0, fmt.Errorf("%w: node %v has subtree heights %d and %d", ErrImbalance, curr.value, lh, rh)
	}

	return 1 + nl + nr, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

var (
	_ Tree[int]    = (*tree[int])(nil)
	_ Node[string] = (*node[string])(nil)
)
