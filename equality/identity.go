package equality

import "reflect"

// refKey identifies a map, slice or func by reference.
type refKey struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// IdentityKey returns a hashable key such that two values have the same key
// exactly when they are [Identical]. It reports false for values that have no
// identity, such as a struct holding a slice.
func IdentityKey(v any) (any, bool) {
	if v == nil {
		return nil, true
	}
	rv := reflect.ValueOf(v)
	if rv.Comparable() {
		return v, true
	}
	switch rv.Kind() {
	case reflect.Slice:
		return refKey{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}, true
	case reflect.Map, reflect.Func:
		return refKey{typ: rv.Type(), ptr: rv.Pointer()}, true
	}
	return nil, false
}

// Identical reports whether a and b are the same value: == for comparable
// values, reference equality for maps, slices and funcs. Values without an
// identity are never identical.
func Identical(a, b any) bool {
	ka, ok := IdentityKey(a)
	if !ok {
		return false
	}
	kb, ok := IdentityKey(b)
	if !ok {
		return false
	}
	return ka == kb
}
