package collections

import (
	"github.com/hasbyte1/go-declarative-utils/arr"
	"github.com/hasbyte1/go-declarative-utils/equality"
)

// ─────────────────────────────────────────────────────────────────────────────
// Predicates
// ─────────────────────────────────────────────────────────────────────────────

// Present drops absent items: untyped nil, nil pointers and nil interfaces.
// Zero values such as 0, "" and false are kept.
func (s *Sequence[T]) Present() *Sequence[T] {
	return s.Filter(func(v T, _ int) bool { return equality.IsPresent(v) })
}

// Equal keeps the items deeply equal to x.
func (s *Sequence[T]) Equal(x any) *Sequence[T] {
	return s.Filter(func(v T, _ int) bool { return equality.Deep(v, x) })
}

// NotEqual keeps the items not deeply equal to x.
func (s *Sequence[T]) NotEqual(x any) *Sequence[T] {
	return s.Reject(func(v T, _ int) bool { return equality.Deep(v, x) })
}

// NotEmpty drops absent items and empty strings, slices, arrays, maps and
// sized containers. 0 and false are kept.
func (s *Sequence[T]) NotEmpty() *Sequence[T] {
	return s.Reject(func(v T, _ int) bool { return equality.IsEmpty(v) })
}

// TakeWhile returns the longest prefix whose items all satisfy fn.
//
//	collections.New(1, 2, 3, 4, 1).TakeWhile(func(n int) bool { return n < 3 }) // → [1 2]
func (s *Sequence[T]) TakeWhile(fn func(T) bool) *Sequence[T] {
	return wrap(arr.TakeWhile(s.items, fn))
}

// ─────────────────────────────────────────────────────────────────────────────
// Uniqueness
// ─────────────────────────────────────────────────────────────────────────────

// Unique keeps the first occurrence of each deeply-equal group of items,
// preserving order.
//
//	collections.New[any](1, 1.0, "1", []int{2}, []int{2}).Unique() // → [1 "1" [2]]
func (s *Sequence[T]) Unique() *Sequence[T] {
	seen := make(map[[32]byte][]T, len(s.items))
	out := make([]T, 0, len(s.items))
outer:
	for _, item := range s.items {
		fp := equality.Fingerprint(item)
		for _, prev := range seen[fp] {
			if equality.Deep(prev, item) {
				continue outer
			}
		}
		seen[fp] = append(seen[fp], item)
		out = append(out, item)
	}
	return wrap(out)
}

// UniqueBy keeps the first item for each distinct derived key. Keys are
// compared by identity: scalars by value, slices, maps and funcs by
// reference. A key with no identity, such as a struct holding a slice,
// returns an [*InvalidKeyTypeError].
//
//	users.UniqueBy(collections.Field[User]("Email"))
func (s *Sequence[T]) UniqueBy(key Key[T]) (*Sequence[T], error) {
	extract := key.extractor()
	seen := make(map[any]struct{}, len(s.items))
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		k, err := extract(item)
		if err != nil {
			return nil, err
		}
		id, ok := equality.IdentityKey(k)
		if !ok {
			return nil, &InvalidKeyTypeError{Key: k}
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, item)
	}
	return wrap(out), nil
}
