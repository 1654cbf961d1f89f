package util

import "iter"

// Take yields at most the first n items of seq. seq is not advanced past the
// last item taken, which matters for sequences that consume their source.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}

		var taken int
		for item := range seq {
			if !yield(item) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}
