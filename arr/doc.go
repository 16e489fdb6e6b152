// Package arr provides standalone helpers for plain Go slices and dot-notation
// access into nested values.
//
// # Slice helpers
//
// The slice helpers are generic and operate on []T without a wrapper type:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	flat  := arr.Collapse([][]int{{1, 2}, {3}}) // → [1 2 3]
//
// # Dot-notation paths
//
// [Lookup], [Get] and [Has] resolve a dot-separated path through any mix of
// string-keyed maps, structs, slices and values implementing [Getter]:
//
//	type Address struct{ City string `json:"city"` }
//	type User struct{ Address *Address }
//
//	arr.Get(User{Address: &Address{City: "London"}}, "Address.city") // → "London"
//	arr.Get(map[string]any{"tags": []string{"a", "b"}}, "tags.1")     // → "b"
//
// Struct fields match by Go name first and by json tag name second. Raw JSON
// documents (json.RawMessage) are queried with gjson path syntax, so a path
// can continue from a struct into an embedded JSON payload.
//
// [Set], [Forget], [Dot] and [Undot] write through paths and are limited to
// map[string]any trees.
package arr
