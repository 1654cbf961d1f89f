package heap

// Less turns a three-way comparator into a strict order that puts smaller
// items first.
func Less[T any](comparator func(a, b T) int) func(a, b T) bool {
	return func(a, b T) bool {
		return comparator(a, b) < 0
	}
}

// Greater is the reverse of Less.
func Greater[T any](comparator func(a, b T) int) func(a, b T) bool {
	return func(a, b T) bool {
		return comparator(a, b) > 0
	}
}

// Sort returns a copy of items ordered by order. items is not modified.
func Sort[T any](order func(a, b T) bool, items []T) []T {
	h := New(order, items...)
	out := make([]T, 0, len(items))
	for item := range h.Drain() {
		out = append(out, item)
	}
	return out
}
