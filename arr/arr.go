package arr

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// IndexFunc returns the index of the first element satisfying fn, or -1.
func IndexFunc[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
// The result is a new slice even when every element is kept.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns elements for which fn returns false.
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// TakeWhile returns the longest prefix of items whose elements all satisfy fn.
// Elements after the first failure are never included, even if they match.
func TakeWhile[T any](items []T, fn func(T) bool) []T {
	n := IndexFunc(items, func(item T) bool { return !fn(item) })
	if n < 0 {
		n = len(items)
	}
	return Clone(items[:n])
}

// Collapse flattens a slice of slices into a single slice (one level).
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// Clone returns a shallow copy of items that is never nil.
func Clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
