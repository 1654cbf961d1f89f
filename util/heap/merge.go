package heap

import "iter"

type mergeCursor[T any] struct {
	current   T
	seqNumber int
	next      func() (T, bool)
}

// MergeSorted merges sequences that are each already sorted by order into a
// single sorted sequence. Equal items are yielded in the order of the
// sequences that produced them.
func MergeSorted[T any](order func(a, b T) bool, seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		cursors := New(func(a, b mergeCursor[T]) bool {
			// on ties, earlier sequences go first so the merge is stable
			if order(a.current, b.current) {
				return true
			}
			if order(b.current, a.current) {
				return false
			}
			return a.seqNumber < b.seqNumber
		})

		for seqNumber, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()

			current, exists := next()
			if !exists {
				continue
			}
			cursors.Add(mergeCursor[T]{
				current:   current,
				seqNumber: seqNumber,
				next:      next,
			})
		}

		for cursor := range cursors.Drain() {
			if upcoming, exists := cursor.next(); exists {
				cursors.Add(mergeCursor[T]{
					current:   upcoming,
					seqNumber: cursor.seqNumber,
					next:      cursor.next,
				})
			}

			if !yield(cursor.current) {
				return
			}
		}
	}
}
