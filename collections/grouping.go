package collections

import (
	"fmt"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & indexing
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy partitions the items by a string key. Each group keeps the
// original relative order; groups appear in order of first occurrence.
//
//	byCity, err := users.GroupBy(collections.Field[User]("Address.City"))
func (s *Sequence[T]) GroupBy(key Key[T]) (*Object[[]T], error) {
	extract := key.extractor()
	order := make([]string, 0)
	groups := make(map[string][]T)
	for _, item := range s.items {
		raw, err := extract(item)
		if err != nil {
			return nil, err
		}
		k, err := stringKey(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], item)
	}

	out := emptyObject[[]T]()
	for _, k := range order {
		out.put(k, groups[k])
	}
	return out, nil
}

// ToObject indexes the items by a string key that must be unique. A repeated
// key returns a [*DuplicateKeyError] naming it.
//
//	byID, err := users.ToObject(collections.Field[User]("ID"))
func (s *Sequence[T]) ToObject(key Key[T]) (*Object[T], error) {
	return ToObjectWith(s, key, func(v T) T { return v })
}

// ToObjectWith indexes the items like [Sequence.ToObject] but stores
// value(item) instead of the item.
//
//	names, err := collections.ToObjectWith(users, collections.Field[User]("ID"),
//	    func(u User) string { return u.Name })
func ToObjectWith[T, V any](s *Sequence[T], key Key[T], value func(T) V) (*Object[V], error) {
	extract := key.extractor()
	out := emptyObject[V]()
	for _, item := range s.items {
		raw, err := extract(item)
		if err != nil {
			return nil, err
		}
		k, err := stringKey(raw)
		if err != nil {
			return nil, err
		}
		if out.ContainsKey(k) {
			return nil, &DuplicateKeyError{Key: k}
		}
		out.put(k, value(item))
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Merging
// ─────────────────────────────────────────────────────────────────────────────

// MergeStrategy decides what [Merge] does with a key present in more than one
// object.
type MergeStrategy int

const (
	// MergeOverride keeps the last value. The key stays at the position where
	// it first appeared.
	MergeOverride MergeStrategy = iota
	// MergeKeepFirst keeps the first value.
	MergeKeepFirst
	// MergeThrow fails with a [*DuplicateKeyError] on the first collision.
	MergeThrow
)

// String returns the strategy name accepted by [ParseMergeStrategy].
func (m MergeStrategy) String() string {
	switch m {
	case MergeOverride:
		return "override"
	case MergeKeepFirst:
		return "keep-first"
	case MergeThrow:
		return "throw"
	}
	return fmt.Sprintf("MergeStrategy(%d)", int(m))
}

// ParseMergeStrategy converts a strategy name, case-insensitively. Both
// "keep-first" and "keep_first" are accepted.
func ParseMergeStrategy(name string) (MergeStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "override":
		return MergeOverride, nil
	case "keep-first", "keep_first":
		return MergeKeepFirst, nil
	case "throw":
		return MergeThrow, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Merge folds the objects left to right into one. The strategy defaults to
// [MergeOverride]; nil objects are skipped.
//
//	collections.Merge(collections.New(a, b), collections.MergeThrow)
func Merge[V any](s *Sequence[*Object[V]], strategy ...MergeStrategy) (*Object[V], error) {
	st := MergeOverride
	if len(strategy) > 0 {
		st = strategy[0]
	}
	if st < MergeOverride || st > MergeThrow {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, st)
	}

	out := emptyObject[V]()
	var err error
	for _, o := range s.items {
		o.each(func(k string, v V) {
			if err != nil {
				return
			}
			if out.ContainsKey(k) {
				switch st {
				case MergeKeepFirst:
					return
				case MergeThrow:
					err = &DuplicateKeyError{Key: k}
					return
				}
			}
			out.put(k, v)
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
