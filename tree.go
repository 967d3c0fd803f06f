package avl

import "golang.org/x/exp/constraints"

func (t *tree[T]) Kind() Kind {
	return t.kind
}

func (t *tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *tree[T]) Height() int {
	return t.root.Height()
}

func (t *tree[T]) IsEmpty() bool {
	return t.root == nil
}

func (t *tree[T]) Root() Node[T] {
	return t.root
}

func (t *tree[T]) Contains(v T) bool {
	return search(t.root, v) != nil
}

func search[T constraints.Ordered](curr *node[T], v T) *node[T] {
	if curr == nil {
		return nil
	}
	switch {
	case v < curr.value:
		return search(curr.left, v)
	case v > curr.value:
		return search(curr.right, v)
	}
	return curr
}

func (t *tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return t.root.minimum().value, nil
}

func (t *tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return t.root.maximum().value, nil
}

// rebalance is applied at every level on the way back up from a mutation
func (t *tree[T]) rebalance(n *node[T]) *node[T] {
	n.fixHeight()
	if t.kind == Balanced {
		return n.balance()
	}
	return n
}

func (t *tree[T]) Add(v T) bool {
	var added bool
	t.root, added = t.recursiveAdd(t.root, v)
	if added {
		t.size++
	}
	return added
}

func (t *tree[T]) recursiveAdd(curr *node[T], v T) (*node[T], bool) {
	if curr == nil {
		return newLeaf(v), true
	}

	added := false
	switch {
	case v < curr.value:
		curr.left, added = t.recursiveAdd(curr.left, v)
	case v > curr.value:
		curr.right, added = t.recursiveAdd(curr.right, v)
	default:
		// duplicates are ignored
		return curr, false
	}

	if !added {
		return curr, false
	}
	return t.rebalance(curr), true
}

func (t *tree[T]) Delete(v T) bool {
	var deleted bool
	t.root, deleted = t.recursiveDelete(t.root, v)
	if deleted {
		t.size--
	}
	return deleted
}

func (t *tree[T]) recursiveDelete(curr *node[T], v T) (*node[T], bool) {
	if curr == nil {
		return nil, false
	}

	deleted := false
	switch {
	case v < curr.value:
		curr.left, deleted = t.recursiveDelete(curr.left, v)
	case v > curr.value:
		curr.right, deleted = t.recursiveDelete(curr.right, v)
	default:
		// zero or one child: promote whatever is there
		if curr.left == nil {
			return curr.right, true
		}
		if curr.right == nil {
			return curr.left, true
		}

		// two children: take the replacement from the taller side,
		// equal heights take the in-order predecessor
		if curr.left.Height() < curr.right.Height() {
			curr.right, curr.value = t.deleteMin(curr.right)
		} else {
			curr.left, curr.value = t.deleteMax(curr.left)
		}
		deleted = true
	}

	if !deleted {
		return curr, false
	}
	return t.rebalance(curr), true
}

// unlink the leftmost node of a non-empty subtree, splicing its right child
// into its slot; returns the new subtree root and the removed value
func (t *tree[T]) deleteMin(curr *node[T]) (*node[T], T) {
	if curr.left == nil {
		return curr.right, curr.value
	}
	var v T
	curr.left, v = t.deleteMin(curr.left)
	return t.rebalance(curr), v
}

func (t *tree[T]) deleteMax(curr *node[T]) (*node[T], T) {
	if curr.right == nil {
		return curr.left, curr.value
	}
	var v T
	curr.right, v = t.deleteMax(curr.right)
	return t.rebalance(curr), v
}

// ForEach calls callback for every value in the given order until it
// returns false.
func (t *tree[T]) ForEach(order Order, callback Callback[T]) {
	t.recursiveForEach(t.root, order, callback)
}

func (t *tree[T]) recursiveForEach(curr *node[T], order Order, callback Callback[T]) traverseAction {
	if curr == nil {
		return traverseContinue
	}

	if order == PreOrder && !callback(curr.value) {
		return traverseStop
	}
	if t.recursiveForEach(curr.left, order, callback) == traverseStop {
		return traverseStop
	}
	if order == InOrder && !callback(curr.value) {
		return traverseStop
	}
	if t.recursiveForEach(curr.right, order, callback) == traverseStop {
		return traverseStop
	}
	if order == PostOrder && !callback(curr.value) {
		return traverseStop
	}
	return traverseContinue
}

func (t *tree[T]) Preorder() []T {
	return t.collect(PreOrder)
}

func (t *tree[T]) Inorder() []T {
	return t.collect(InOrder)
}

func (t *tree[T]) Postorder() []T {
	return t.collect(PostOrder)
}

func (t *tree[T]) collect(order Order) []T {
	values := make([]T, 0, t.Size())
	t.ForEach(order, func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// BFSWithPlaceholders lists the tree level by level as if it were the
// complete binary tree of the same height: nil marks a position with no
// node, and the result always holds 2^Height()-1 entries.
func (t *tree[T]) BFSWithPlaceholders() []*T {
	height := t.Height()
	values := make([]*T, 0, (1<<height)-1)

	level := []*node[T]{t.root}
	for depth := 0; depth < height; depth++ {
		next := make([]*node[T], 0, 2*len(level))
		for _, curr := range level {
			if curr == nil {
				// an absent node still owns two absent children
				values = append(values, nil)
				next = append(next, nil, nil)
				continue
			}
			v := curr.value
			values = append(values, &v)
			next = append(next, curr.left, curr.right)
		}
		level = next
	}
	return values
}
