package sorting

import (
	"cmp"
	"math"
	"reflect"
	"strings"
)

// Compare orders two dynamically typed values.
//
// Nil equals nil and is incomparable with anything else. Numbers compare by
// value regardless of their Go kind; NaN is incomparable. Strings compare
// byte-wise, bools order false before true. Values of the same type with a
// Compare(T) int method use it.
func Compare(a, b any) (int, error) {
	va, vb := deref(reflect.ValueOf(a)), deref(reflect.ValueOf(b))
	switch {
	case !va.IsValid() && !vb.IsValid():
		return 0, nil
	case !va.IsValid() || !vb.IsValid():
		return 0, &IncomparableValueError{Left: a, Right: b}
	}

	if n, ok := compareMethod(va, vb); ok {
		return n, nil
	}

	switch {
	case isNumber(va) && isNumber(vb):
		if n, ok := compareNumbers(va, vb); ok {
			return n, nil
		}
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return strings.Compare(va.String(), vb.String()), nil
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		return compareBools(va.Bool(), vb.Bool()), nil
	}
	return 0, &IncomparableValueError{Left: a, Right: b}
}

func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func compareMethod(a, b reflect.Value) (int, bool) {
	if a.Type() != b.Type() || !a.CanInterface() || !b.CanInterface() {
		return 0, false
	}
	m, ok := a.Type().MethodByName("Compare")
	if !ok {
		return 0, false
	}
	mt := m.Type
	if mt.NumIn() != 2 || mt.In(1) != a.Type() || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Int {
		return 0, false
	}
	out := a.Method(m.Index).Call([]reflect.Value{b})
	return cmp.Compare(int(out[0].Int()), 0), true
}

func isNumber(v reflect.Value) bool {
	return isSigned(v) || isUnsigned(v) || v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func compareNumbers(a, b reflect.Value) (int, bool) {
	switch {
	case isSigned(a) && isSigned(b):
		return cmp.Compare(a.Int(), b.Int()), true
	case isUnsigned(a) && isUnsigned(b):
		return cmp.Compare(a.Uint(), b.Uint()), true
	case isSigned(a) && isUnsigned(b):
		if a.Int() < 0 {
			return -1, true
		}
		return cmp.Compare(uint64(a.Int()), b.Uint()), true
	case isUnsigned(a) && isSigned(b):
		if b.Int() < 0 {
			return 1, true
		}
		return cmp.Compare(a.Uint(), uint64(b.Int())), true
	}
	fa, fb := toFloat(a), toFloat(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return 0, false
	}
	return cmp.Compare(fa, fb), true
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isSigned(v):
		return float64(v.Int())
	case isUnsigned(v):
		return float64(v.Uint())
	}
	return v.Float()
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
