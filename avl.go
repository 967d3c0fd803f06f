package avl

import (
	"errors"

	"golang.org/x/exp/constraints"
)

const (
	Unbalanced Kind = iota
	Balanced
)

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

const (
	// an empty subtree has height 0, a leaf height 1
	emptyHeight = 0

	// largest allowed |height(left) - height(right)| of a balanced node
	maxSkew = 1
)

var (
	ErrEmptyTree      = errors.New("the tree is empty")
	ErrOrderViolation = errors.New("search order violated")
	ErrImbalance      = errors.New("node out of balance")
	ErrHeightMismatch = errors.New("cached height is stale")
	ErrSizeMismatch   = errors.New("size counter is stale")
)

type (
	Kind  int
	Order int

	tree[T constraints.Ordered] struct {
		kind Kind
		size int
		root *node[T]
	}

	// a nil *node is the empty subtree
	node[T constraints.Ordered] struct {
		value  T
		height int
		left   *node[T]
		right  *node[T]
	}

	Callback[T constraints.Ordered] func(v T) bool

	traverseAction int
)

func newLeaf[T constraints.Ordered](v T) *node[T] {
	return &node[T]{
		value:  v,
		height: emptyHeight + 1,
	}
}

func (k Kind) String() string {
	return []string{"Unbalanced", "Balanced"}[k]
}

func (o Order) String() string {
	return []string{"PreOrder", "InOrder", "PostOrder"}[o]
}
