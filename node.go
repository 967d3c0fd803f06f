package avl

func (n *node[T]) IsEmpty() bool {
	return n == nil
}

func (n *node[T]) Value() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.value
}

func (n *node[T]) Left() Node[T] {
	if n == nil {
		return n
	}
	return n.left
}

func (n *node[T]) Right() Node[T] {
	if n == nil {
		return n
	}
	return n.right
}

func (n *node[T]) Height() int {
	if n == nil {
		return emptyHeight
	}
	return n.height
}

// recompute the cached height from the children, which must be up to date
func (n *node[T]) fixHeight() {
	lh, rh := n.left.Height(), n.right.Height()
	if lh > rh {
		n.height = lh + 1
	} else {
		n.height = rh + 1
	}
}

func (n *node[T]) skew() int {
	return n.left.Height() - n.right.Height()
}

// leftmost node of a non-empty subtree
func (n *node[T]) minimum() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost node of a non-empty subtree
func (n *node[T]) maximum() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// balance restores |skew| <= 1 at n, assuming both children are balanced and
// differ in height by at most 2. It returns the new subtree root.
func (n *node[T]) balance() *node[T] {
	if n == nil {
		return n
	}

	skew := n.skew()
	if skew <= maxSkew && skew >= -maxSkew {
		return n
	}

	if skew > 0 {
		// left heavy, ties take the single rotation
		if n.left.left.Height() >= n.left.right.Height() {
			return n.srr()
		}
		return n.drr()
	}

	// right heavy, only a strictly taller inner grandchild needs the double rotation
	if n.right.left.Height() > n.right.right.Height() {
		return n.dlr()
	}
	return n.slr()
}

// single left rotate
func (n *node[T]) slr() *node[T] {
	r := n.right
	n.right = r.left
	n.fixHeight()
	r.left = n
	r.fixHeight()
	return r
}

// single right rotate
func (n *node[T]) srr() *node[T] {
	l := n.left
	n.left = l.right
	n.fixHeight()
	l.right = n
	l.fixHeight()
	return l
}

// double left rotate
func (n *node[T]) dlr() *node[T] {
	n.right = n.right.srr()
	return n.slr()
}

// double right rotate
func (n *node[T]) drr() *node[T] {
	n.left = n.left.slr()
	return n.srr()
}
