// Package sorting builds comparators from key extractors and explicit
// orderings, and applies them with a stable sort that reports failures.
//
// # Comparators
//
// A [Comparator] returns a negative, zero or positive result like cmp.Compare,
// plus an error when the operands cannot be ordered:
//
//	byAge  := sorting.Ascending(func(u User) (any, error) { return u.Age, nil })
//	byName := sorting.Descending(func(u User) (any, error) { return u.Name, nil })
//	sorted, err := sorting.Stable(users, sorting.Chain(byAge, byName))
//
// [Chain] composes comparators lexicographically: the first non-zero result
// wins. [Ranked] orders values by their position in an explicit enumeration,
// placing values that do not occur in it after every ranked value.
//
// # Dynamic comparison
//
// [Compare] orders two dynamically typed values. Numbers compare numerically
// across Go numeric kinds, strings lexicographically, and types with a
// Compare(T) int method (such as time.Time) through that method. Anything else
// yields an [*IncomparableValueError].
//
// # Stability
//
// [Stable] never reorders elements that compare equal and never mutates its
// input. When any comparison fails it returns the first error and no result.
package sorting
