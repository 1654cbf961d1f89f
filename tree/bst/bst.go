package bst

import (
	"cmp"
	"iter"
)

type treeNode[T any] struct {
	value T
	left  *treeNode[T]
	right *treeNode[T]
}

// Tree is an unbalanced binary search tree. Each value is stored at most once.
type Tree[T any] struct {
	comparator func(a, b T) int
	root       *treeNode[T]
	size       int
}

func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

func NewFunc[T any](comparator func(a, b T) int) *Tree[T] {
	return &Tree[T]{comparator: comparator}
}

func (me *Tree[T]) Len() int {
	return me.size
}

// Insert adds value to the tree. It returns false, leaving the tree
// untouched, if an equal value is already present.
func (me *Tree[T]) Insert(value T) bool {
	if me.root == nil {
		me.root = &treeNode[T]{value: value}
		me.size++
		return true
	}

	if !me.root.insert(value, me.comparator) {
		return false
	}
	me.size++
	return true
}

func (me *treeNode[T]) insert(value T, comparator func(a, b T) int) bool {
	switch c := comparator(value, me.value); {
	case c < 0:
		if me.left == nil {
			me.left = &treeNode[T]{value: value}
			return true
		}
		return me.left.insert(value, comparator)
	case c > 0:
		if me.right == nil {
			me.right = &treeNode[T]{value: value}
			return true
		}
		return me.right.insert(value, comparator)
	default:
		return false
	}
}

func (me *Tree[T]) Search(value T) bool {
	return me.root.search(value, me.comparator)
}

func (me *treeNode[T]) search(value T, comparator func(a, b T) int) bool {
	if me == nil {
		return false
	}

	switch c := comparator(value, me.value); {
	case c < 0:
		return me.left.search(value, comparator)
	case c > 0:
		return me.right.search(value, comparator)
	default:
		return true
	}
}

// Height is the number of nodes on the longest root-to-leaf path.
func (me *Tree[T]) Height() int {
	return me.root.height()
}

func (me *treeNode[T]) height() int {
	if me == nil {
		return 0
	}
	return 1 + max(me.left.height(), me.right.height())
}

// All yields the stored values in ascending order.
func (me *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		me.root.walk(yield)
	}
}

func (me *treeNode[T]) walk(yield func(T) bool) bool {
	if me == nil {
		return true
	}
	return me.left.walk(yield) && yield(me.value) && me.right.walk(yield)
}
