package sorting

import (
	"cmp"
	"sort"

	"golang.org/x/exp/constraints"
)

// Key derives the value an element is ordered by.
type Key[T any] func(T) (any, error)

// Comparator orders two elements. It returns an error when they cannot be
// ordered; the integer result is then meaningless.
type Comparator[T any] func(a, b T) (int, error)

// Ascending orders elements by key using [Compare].
func Ascending[T any](key Key[T]) Comparator[T] {
	return func(a, b T) (int, error) {
		ka, err := key(a)
		if err != nil {
			return 0, err
		}
		kb, err := key(b)
		if err != nil {
			return 0, err
		}
		return Compare(ka, kb)
	}
}

// Descending orders elements by key, largest first.
func Descending[T any](key Key[T]) Comparator[T] {
	return Reverse(Ascending(key))
}

// Reverse inverts c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) (int, error) {
		n, err := c(a, b)
		return -n, err
	}
}

// Ranked orders elements by the position of their key in order. Keys match
// order entries by deep equality; keys that do not occur rank after every
// entry and tie with each other.
func Ranked[T any](key Key[T], order []any) Comparator[T] {
	r := NewRanking(order)
	return func(a, b T) (int, error) {
		ka, err := key(a)
		if err != nil {
			return 0, err
		}
		kb, err := key(b)
		if err != nil {
			return 0, err
		}
		return cmp.Compare(r.Rank(ka), r.Rank(kb)), nil
	}
}

// Chain compares with each comparator in turn and returns the first non-zero
// result. An empty chain considers every pair equal.
func Chain[T any](cs ...Comparator[T]) Comparator[T] {
	return func(a, b T) (int, error) {
		for _, c := range cs {
			n, err := c(a, b)
			if err != nil || n != 0 {
				return n, err
			}
		}
		return 0, nil
	}
}

// By orders elements by a statically typed key. It never fails.
//
//	sorting.Stable(users, sorting.By(func(u User) string { return u.Name }))
func By[T any, K constraints.Ordered](fn func(T) K) Comparator[T] {
	return func(a, b T) (int, error) {
		return cmp.Compare(fn(a), fn(b)), nil
	}
}

// Stable returns a sorted copy of items. Equal elements keep their relative
// order. If any comparison fails the first error is returned with a nil slice.
func Stable[T any](items []T, c Comparator[T]) ([]T, error) {
	out := make([]T, len(items))
	copy(out, items)

	var firstErr error
	sort.SliceStable(out, func(i, j int) bool {
		if firstErr != nil {
			return false
		}
		n, err := c(out[i], out[j])
		if err != nil {
			firstErr = err
			return false
		}
		return n < 0
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
