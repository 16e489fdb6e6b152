package collections

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/mohae/deepcopy"

	"github.com/hasbyte1/go-declarative-utils/arr"
)

// Sequence is an immutable, ordered wrapper around a slice of T.
//
// Every method that transforms the sequence returns a *new* Sequence, leaving
// the receiver unchanged, so a Sequence can be shared across goroutines
// without locking.
//
// # Creating a sequence
//
//	s := collections.Of([]string{"a", "b", "c"})
//	s := collections.New(1, 2, 3)
//	s := collections.Empty[int]()
//
// # Method chaining
//
//	result, err := collections.New(3, 1, 2, 1).
//	    Unique().
//	    AscendingBy()
type Sequence[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of wraps a copy of items.
func Of[T any](items []T) *Sequence[T] {
	return &Sequence[T]{items: arr.Clone(items)}
}

// New creates a Sequence from a variadic list of items (copied).
func New[T any](items ...T) *Sequence[T] {
	return Of(items)
}

// Empty creates an empty Sequence of type T.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{items: []T{}}
}

func wrap[T any](items []T) *Sequence[T] {
	if items == nil {
		items = []T{}
	}
	return &Sequence[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (s *Sequence[T]) All() []T { return arr.Clone(s.items) }

// Len returns the number of items.
func (s *Sequence[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no items.
func (s *Sequence[T]) IsEmpty() bool { return len(s.items) == 0 }

// Get returns the item at index together with a presence flag.
func (s *Sequence[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.items) {
		return zero, false
	}
	return s.items[index], true
}

// Normalize returns the underlying items for structural comparison.
// It implements [equality.Normalizer].
func (s *Sequence[T]) Normalize() any { return s.items }

// ToJSON serialises the items to a JSON array.
func (s *Sequence[T]) ToJSON() ([]byte, error) {
	return json.Marshal(s.items)
}

// MarshalJSON implements [json.Marshaler].
func (s *Sequence[T]) MarshalJSON() ([]byte, error) { return s.ToJSON() }

// String returns a JSON representation of the sequence.
func (s *Sequence[T]) String() string {
	b, err := s.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.items)
	}
	return string(b)
}

// Dump writes a type-annotated representation of the items to w and returns
// s for chaining.
//
//	s.Dump(os.Stderr).Unique()
func (s *Sequence[T]) Dump(w io.Writer) *Sequence[T] {
	spew.Fdump(w, s.items)
	return s
}

// DeepClone returns a sequence whose items are deep copies of the receiver's.
func (s *Sequence[T]) DeepClone() *Sequence[T] {
	out := make([]T, len(s.items))
	for i, item := range s.items {
		out[i] = deepCopy(item)
	}
	return wrap(out)
}

// DeepCopy implements deepcopy.Interface so nested sequences clone fully.
func (s *Sequence[T]) DeepCopy() interface{} { return s.DeepClone() }

func deepCopy[T any](v T) T {
	c := deepcopy.Copy(v)
	if c == nil {
		return v
	}
	return c.(T)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & filtering
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item.
func (s *Sequence[T]) Each(fn func(T, int)) {
	for i, item := range s.items {
		fn(item, i)
	}
}

// Tap calls fn(s) for side-effects and returns s unchanged.
func (s *Sequence[T]) Tap(fn func(*Sequence[T])) *Sequence[T] {
	fn(s)
	return s
}

// Filter returns the items for which fn(item, index) returns true.
func (s *Sequence[T]) Filter(fn func(T, int) bool) *Sequence[T] {
	return wrap(arr.Filter(s.items, fn))
}

// Reject returns the items for which fn returns false.
func (s *Sequence[T]) Reject(fn func(T, int) bool) *Sequence[T] {
	return wrap(arr.Reject(s.items, fn))
}

// ─────────────────────────────────────────────────────────────────────────────
// Type-transforming functions
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every item and returns a new Sequence[U].
//
//	names := collections.Map(users, func(u User, _ int) string { return u.Name })
func Map[T, U any](s *Sequence[T], fn func(T, int) U) *Sequence[U] {
	return wrap(arr.Map(s.items, fn))
}

// Flat concatenates a sequence of slices into one sequence, outer order first.
// Only one level of nesting is removed.
//
//	collections.Flat(collections.New([]int{1}, []int{2, 3})) // → [1 2 3]
func Flat[T any](s *Sequence[[]T]) *Sequence[T] {
	return wrap(arr.Collapse(s.items))
}
