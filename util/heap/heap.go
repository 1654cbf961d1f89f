package heap

import (
	"cmp"
	"iter"

	"github.com/navijation/njexercises/util"
)

// Heap is a binary heap ordered by a strict predicate. order(a, b) reports
// whether a must come out of the heap before b.
//
// Items are stored 1-indexed: items[0] is never used, so the parent of i is
// i/2 and its children are 2i and 2i+1.
type Heap[T any] struct {
	items []T
	order func(a, b T) bool
}

func New[T any](order func(a, b T) bool, items ...T) *Heap[T] {
	out := &Heap[T]{
		items: make([]T, 1, len(items)+1),
		order: order,
	}
	for _, item := range items {
		out.Add(item)
	}
	return out
}

func NewMin[T cmp.Ordered](items ...T) *Heap[T] {
	return New(func(a, b T) bool { return a < b }, items...)
}

func NewMax[T cmp.Ordered](items ...T) *Heap[T] {
	return New(func(a, b T) bool { return a > b }, items...)
}

// NewFromCompare builds a heap that yields the items for which comparator
// returns a negative value first.
func NewFromCompare[T any](comparator func(a, b T) int, items ...T) *Heap[T] {
	return New(Less(comparator), items...)
}

func (me *Heap[T]) Len() int {
	return len(me.items) - 1
}

func (me *Heap[T]) IsEmpty() bool {
	return me.Len() == 0
}

func (me *Heap[T]) Peek() util.Optional[T] {
	if me.IsEmpty() {
		return util.None[T]()
	}
	return util.Some(me.items[1])
}

func (me *Heap[T]) Add(value T) {
	me.items = append(me.items, value)
	me.siftUp(me.Len())
}

// Next removes and returns the root. It returns false once the heap is empty,
// and keeps doing so until something else is added.
func (me *Heap[T]) Next() (out T, exists bool) {
	if me.IsEmpty() {
		return out, false
	}

	count := me.Len()
	out = me.items[1]
	last := me.items[count]

	var zero T
	me.items[count] = zero
	me.items = me.items[:count]

	if count > 1 {
		me.items[1] = last
		me.siftDown(1)
	}

	return out, true
}

// Drain returns a single-pass sequence that extracts items in heap order.
// Items are only removed as the sequence is consumed; breaking out early
// leaves the remainder in the heap.
func (me *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, exists := me.Next()
			if !exists || !yield(item) {
				return
			}
		}
	}
}

func parent(idx int) int     { return idx / 2 }
func leftChild(idx int) int  { return idx * 2 }
func rightChild(idx int) int { return leftChild(idx) + 1 }

func (me *Heap[T]) swap(i, j int) {
	me.items[i], me.items[j] = me.items[j], me.items[i]
}

func (me *Heap[T]) siftUp(idx int) {
	for idx > 1 {
		p := parent(idx)
		if !me.order(me.items[idx], me.items[p]) {
			return
		}
		me.swap(idx, p)
		idx = p
	}
}

// preferredChild returns whichever child of idx should sit closer to the
// root. idx must have at least a left child.
func (me *Heap[T]) preferredChild(idx int) int {
	left, right := leftChild(idx), rightChild(idx)
	if right > me.Len() || me.order(me.items[left], me.items[right]) {
		return left
	}
	return right
}

func (me *Heap[T]) siftDown(idx int) {
	for leftChild(idx) <= me.Len() {
		child := me.preferredChild(idx)
		if !me.order(me.items[child], me.items[idx]) {
			return
		}
		me.swap(idx, child)
		idx = child
	}
}
