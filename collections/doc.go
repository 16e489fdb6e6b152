// Package collections provides a chainable transformation API over ordered
// sequences and insertion-ordered string-keyed objects: uniqueness filtering,
// grouping, indexing, flattening, merging and multi-key sorting with custom
// orderings.
//
// # Overview
//
// The two receiver types are [Sequence][T], an immutable wrapper around a
// slice, and [Object][V], an insertion-ordered string map. Every operation
// returns a new value and never mutates its receiver:
//
//	tasks := collections.Of(loadTasks())
//	sorted, err := tasks.SortBy(
//	    collections.OrderBy(collections.Field[Task]("Severity"), "high", "medium", "low"),
//	)
//	byOwner, err := sorted.GroupBy(collections.Field[Task]("Owner"))
//	for _, e := range byOwner.Entries() {
//	    fmt.Println(e.Key, len(e.Value))
//	}
//
// # Key extractors
//
// Wherever an operation needs a derived value it takes a [Key][T], built
// either from a dot-notation path ([Field]) or from a callback ([Func],
// [FuncErr]). Both forms are interchangeable.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
// [Map], [Flat], [Merge], [ToObjectWith].
//
// # Dynamic extensions
//
// For values whose static type is not known (decoded JSON, reflection-driven
// pipelines), [Install] registers every operation in a process-wide table and
// [Extend] returns an [Extension] bound to any slice or string-keyed map:
//
//	collections.Install()
//
//	ext, _ := collections.Extend([]any{1, 1, 2})
//	res, _ := ext.Call("unique")      // *Sequence[any]{1, 2}
//	ext, _ = collections.Extend(res)  // chain on the result
//
// Additional operations are registered with [Register], mirroring the
// built-in ones.
//
// # Errors
//
// Failures are reported, never silently resolved: duplicate keys in
// [Sequence.ToObject] and in [Merge] under [MergeThrow] return a
// [*DuplicateKeyError], non-string keys a [*InvalidKeyTypeError], and
// incomparable sort keys a [*IncomparableValueError]. All of them match their
// sentinel with [errors.Is].
package collections
