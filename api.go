package avl

import (
	"io"

	"golang.org/x/exp/constraints"
)

type Tree[T constraints.Ordered] interface {
	Add(v T) bool
	Delete(v T) bool
	Contains(v T) bool
	Size() int
	Height() int
	IsEmpty() bool
	Min() (T, error)
	Max() (T, error)
	Root() Node[T]
	Kind() Kind

	ForEach(order Order, callback Callback[T])
	Preorder() []T
	Inorder() []T
	Postorder() []T
	BFSWithPlaceholders() []*T

	Check() error
	Print(w io.Writer) error
}

// Node is a read-only view of a subtree. An empty subtree is still a Node,
// one whose IsEmpty reports true; it is never a nil interface.
type Node[T constraints.Ordered] interface {
	IsEmpty() bool
	Value() T
	Left() Node[T]
	Right() Node[T]
	Height() int
}

func New[T constraints.Ordered](kind Kind) Tree[T] {
	return &tree[T]{kind: kind}
}

// NewBST returns an empty binary search tree that never rebalances.
func NewBST[T constraints.Ordered]() Tree[T] {
	return New[T](Unbalanced)
}

// NewAVL returns an empty AVL tree.
func NewAVL[T constraints.Ordered]() Tree[T] {
	return New[T](Balanced)
}
