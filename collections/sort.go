package collections

import (
	"cmp"

	"github.com/hasbyte1/go-declarative-utils/sorting"
)

// Condition is one level of a [Sequence.SortBy] ordering: the key to derive
// and, optionally, an explicit enumeration of its values.
type Condition[T any] struct {
	Key   Key[T]
	Order []any
}

// OrderBy builds a Condition. With no order values the key is compared
// naturally in ascending order; otherwise keys rank by their position in
// order and unlisted keys go last.
//
//	collections.OrderBy(collections.Field[Task]("Severity"), "high", "medium", "low")
func OrderBy[T any](key Key[T], order ...any) Condition[T] {
	return Condition[T]{Key: key, Order: order}
}

func (c Condition[T]) comparator() sorting.Comparator[T] {
	if len(c.Order) == 0 {
		return sorting.Ascending(c.Key.extractor())
	}
	return sorting.Ranked(c.Key.extractor(), c.Order)
}

// AscendingBy sorts stably by each key in turn, smallest first. Later keys
// break ties of earlier ones; with no keys the items themselves are compared.
// Keys of mixed or unordered kinds return an [*IncomparableValueError].
//
//	people.AscendingBy(collections.Field[Person]("Last"), collections.Field[Person]("First"))
func (s *Sequence[T]) AscendingBy(keys ...Key[T]) (*Sequence[T], error) {
	return s.Sort(chainKeys(keys, sorting.Ascending[T]))
}

// DescendingBy is AscendingBy with every key reversed. Ties keep their input
// order.
func (s *Sequence[T]) DescendingBy(keys ...Key[T]) (*Sequence[T], error) {
	return s.Sort(chainKeys(keys, sorting.Descending[T]))
}

func chainKeys[T any](keys []Key[T], dir func(sorting.Key[T]) sorting.Comparator[T]) sorting.Comparator[T] {
	if len(keys) == 0 {
		keys = []Key[T]{Field[T]("")}
	}
	cs := make([]sorting.Comparator[T], len(keys))
	for i, k := range extractors(keys) {
		cs[i] = dir(k)
	}
	return sorting.Chain(cs...)
}

// OrderedBy sorts the items by their position in order, matched by deep
// equality. Items not in order follow in their original relative order.
//
//	collections.New("bar", "medium", "foo", "low").OrderedBy([]string{"low", "medium", "high"})
//	// → [low medium bar foo]
func (s *Sequence[T]) OrderedBy(order []T) *Sequence[T] {
	enum := make([]any, len(order))
	for i, v := range order {
		enum[i] = v
	}
	r := sorting.NewRanking(enum)
	ranks := make([]int, len(s.items))
	idx := make([]int, len(s.items))
	for i, item := range s.items {
		idx[i] = i
		ranks[i] = r.Rank(item)
	}

	sorted, _ := sorting.Stable(idx, func(a, b int) (int, error) {
		return cmp.Compare(ranks[a], ranks[b]), nil
	})
	out := make([]T, len(sorted))
	for i, j := range sorted {
		out[i] = s.items[j]
	}
	return wrap(out)
}

// SortBy sorts stably by each condition in turn.
//
//	tasks.SortBy(
//	    collections.OrderBy(collections.Field[Task]("Severity"), "high", "low", "medium"),
//	    collections.OrderBy(collections.Field[Task]("Name")),
//	)
func (s *Sequence[T]) SortBy(conds ...Condition[T]) (*Sequence[T], error) {
	cs := make([]sorting.Comparator[T], len(conds))
	for i, c := range conds {
		cs[i] = c.comparator()
	}
	return s.Sort(sorting.Chain(cs...))
}

// Sort sorts stably with an arbitrary comparator. The first comparison
// error is returned and no sequence is produced.
func (s *Sequence[T]) Sort(c sorting.Comparator[T]) (*Sequence[T], error) {
	out, err := sorting.Stable(s.items, c)
	if err != nil {
		return nil, err
	}
	return wrap(out), nil
}
