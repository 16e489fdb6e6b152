package equality

import (
	"math"
	"reflect"
)

// class groups reflect kinds by the shape they have for comparison purposes.
type class int

const (
	classOther class = iota
	classNumber
	classString
	classBool
	classComplex
	classList
	classMap
	classStruct
	classFunc
	classRef
)

func classOf(v reflect.Value) class {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return classNumber
	case reflect.String:
		return classString
	case reflect.Bool:
		return classBool
	case reflect.Complex64, reflect.Complex128:
		return classComplex
	case reflect.Slice, reflect.Array:
		return classList
	case reflect.Map:
		return classMap
	case reflect.Struct:
		return classStruct
	case reflect.Func:
		return classFunc
	case reflect.Chan, reflect.UnsafePointer:
		return classRef
	}
	return classOther
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

func toFloat(v reflect.Value) float64 {
	switch {
	case isSigned(v):
		return float64(v.Int())
	case isUnsigned(v):
		return float64(v.Uint())
	}
	return v.Float()
}

func numbersEqual(a, b reflect.Value) bool {
	switch {
	case isSigned(a) && isSigned(b):
		return a.Int() == b.Int()
	case isUnsigned(a) && isUnsigned(b):
		return a.Uint() == b.Uint()
	case isSigned(a) && isUnsigned(b):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	case isUnsigned(a) && isSigned(b):
		return b.Int() >= 0 && a.Uint() == uint64(b.Int())
	}
	fa, fb := toFloat(a), toFloat(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return false
	}
	return fa == fb
}
