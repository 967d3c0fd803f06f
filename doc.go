// Package avl implements an ordered set as a binary search tree, either
// plain (Unbalanced) or self-balancing (Balanced, the AVL scheme).
//
// A tree is not safe for concurrent use; guard it with a mutex if it is
// shared between goroutines.
//
// Both kinds share one recursive add/delete. Every level that replaced a
// child on the way down refreshes its cached height on the way back up and,
// for Balanced trees, applies one of four rotations when its subtrees differ
// in height by two, so the balance holds along the whole path to the root.
package avl
