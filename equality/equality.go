package equality

import (
	"reflect"
)

// Normalizer is implemented by container types that should compare, hash and
// test for emptiness through a plain Go representation (a slice or a map)
// rather than through their internal fields.
type Normalizer interface {
	Normalize() any
}

type lengther interface {
	Len() int
}

var normalizerType = reflect.TypeOf((*Normalizer)(nil)).Elem()

// IsPresent reports whether v is neither untyped nil nor a nil pointer or
// interface.
func IsPresent(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return true
}

// IsEmpty reports whether v is absent, a zero-length string, or a container
// without elements. Zero numbers and false are not empty.
func IsEmpty(v any) bool {
	if l, ok := v.(lengther); ok && IsPresent(v) {
		return l.Len() == 0
	}
	rv := resolve(reflect.ValueOf(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

// Deep reports whether a and b are structurally equal.
func Deep(a, b any) bool {
	return deepValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func deepValue(a, b reflect.Value) bool {
	a, b = resolve(a), resolve(b)
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if eq, ok := equalMethod(a, b); ok {
		return eq
	}
	// A type with an Equal method only equals values of its own type.
	if hasEqualMethod(a) || hasEqualMethod(b) {
		return false
	}

	ca, cb := classOf(a), classOf(b)
	if ca != cb {
		return false
	}
	switch ca {
	case classNumber:
		return numbersEqual(a, b)
	case classString:
		return a.String() == b.String()
	case classBool:
		return a.Bool() == b.Bool()
	case classComplex:
		return a.Complex() == b.Complex()
	case classList:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !deepValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case classMap:
		return mapsEqual(a, b)
	case classStruct:
		if a.Type() != b.Type() {
			return false
		}
		for i := 0; i < a.NumField(); i++ {
			if !deepValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case classFunc:
		return a.IsNil() && b.IsNil()
	case classRef:
		return a.Type() == b.Type() && a.Pointer() == b.Pointer()
	}
	return false
}

func mapsEqual(a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Type().Key() == b.Type().Key() {
		iter := a.MapRange()
		for iter.Next() {
			bv := b.MapIndex(iter.Key())
			if !bv.IsValid() || !deepValue(iter.Value(), bv) {
				return false
			}
		}
		return true
	}

	// Key types differ (map[string]int vs map[any]int): match keys structurally.
	used := make([]bool, b.Len())
	bKeys := b.MapKeys()
	iter := a.MapRange()
	for iter.Next() {
		found := false
		for i, bk := range bKeys {
			if used[i] || !deepValue(iter.Key(), bk) {
				continue
			}
			if !deepValue(iter.Value(), b.MapIndex(bk)) {
				return false
			}
			used[i] = true
			found = true
			break
		}
		if !found {
			return false
		}
	}
	return true
}

// resolve dereferences pointers and interfaces and replaces Normalizer values
// with their normal form. It returns the invalid Value for nil pointers and
// interfaces.
func resolve(v reflect.Value) reflect.Value {
	for v.IsValid() {
		switch v.Kind() {
		case reflect.Pointer, reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}
			}
		}
		if v.CanInterface() && v.Type().Implements(normalizerType) {
			v = reflect.ValueOf(v.Interface().(Normalizer).Normalize())
			continue
		}
		if v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			v = v.Elem()
			continue
		}
		return v
	}
	return v
}

// equalMethod calls a.Equal(b) when both values share a type exposing
// Equal(T) bool.
func equalMethod(a, b reflect.Value) (bool, bool) {
	if !hasEqualMethod(a) || a.Type() != b.Type() || !b.CanInterface() {
		return false, false
	}
	out := a.MethodByName("Equal").Call([]reflect.Value{b})
	return out[0].Bool(), true
}

func hasEqualMethod(v reflect.Value) bool {
	if !v.CanInterface() {
		return false
	}
	m, ok := v.Type().MethodByName("Equal")
	if !ok {
		return false
	}
	// Method type includes the receiver as its first input.
	mt := m.Type
	return mt.NumIn() == 2 && mt.In(1) == v.Type() &&
		mt.NumOut() == 1 && mt.Out(0).Kind() == reflect.Bool
}
