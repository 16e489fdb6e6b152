// Package equality provides the comparison predicates shared by every
// uniqueness and filter operation in this module.
//
// # Deep equality
//
// [Deep] compares values structurally rather than by identity:
//
//	equality.Deep([]any{1, "a"}, []int{1})              // false: length differs
//	equality.Deep(map[string]int{"a": 1}, map[string]any{"a": 1.0}) // true
//	equality.Deep(int64(2), float32(2))                 // true: numbers compare by value
//
// Sequences compare element-wise and order-sensitively, maps compare by key set
// regardless of order. A sequence never equals a map. Structs must share a type.
// Types with an Equal(T) bool method (such as time.Time) are compared through
// that method and never equal a value of another type. Types implementing
// [Normalizer] are compared through their normal form.
//
// Cyclic structures are not supported: comparing or fingerprinting a value that
// refers to itself does not terminate.
//
// # Presence and emptiness
//
//	equality.IsPresent(nil)         // false
//	equality.IsPresent((*User)(nil)) // false
//	equality.IsEmpty("")            // true
//	equality.IsEmpty(0)             // false
//
// # Identity
//
// [Identical] is the analogue of a strict === check: comparable values use ==,
// while maps, slices and funcs compare by reference. [IdentityKey] exposes the
// same notion as a hashable map key.
//
// # Fingerprints
//
// [Fingerprint] hashes a canonical serialisation of a value with BLAKE2b-256.
// Values that are [Deep]-equal always share a fingerprint, so fingerprints can
// bucket candidates before a final [Deep] comparison.
package equality
