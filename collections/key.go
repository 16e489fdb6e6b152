package collections

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/hasbyte1/go-declarative-utils/arr"
	"github.com/hasbyte1/go-declarative-utils/equality"
	"github.com/hasbyte1/go-declarative-utils/sorting"
)

// Key derives a value from an element of type T. It is either a field path or
// a callback; the zero Key is the empty path and yields the element itself.
//
//	collections.Field[User]("Address.City")
//	collections.Func(func(u User) int { return u.Age })
type Key[T any] struct {
	path string
	fn   func(T) (any, error)
}

// Field selects a value by dot-notation path, resolved with [arr.Lookup].
// A path that does not resolve yields nil.
func Field[T any](path string) Key[T] {
	return Key[T]{path: path}
}

// Func derives the key with fn.
func Func[T, K any](fn func(T) K) Key[T] {
	return Key[T]{fn: func(v T) (any, error) { return fn(v), nil }}
}

// FuncErr derives the key with a fallible fn. Its errors abort the operation
// using the key.
func FuncErr[T, K any](fn func(T) (K, error)) Key[T] {
	return Key[T]{fn: func(v T) (any, error) { return fn(v) }}
}

// String describes the key for logs and error messages.
func (k Key[T]) String() string {
	if k.fn != nil {
		return "func"
	}
	return strconv.Quote(k.path)
}

// extractor resolves k into a single function, once per operation.
func (k Key[T]) extractor() sorting.Key[T] {
	if k.fn != nil {
		return k.fn
	}
	path := k.path
	return func(v T) (any, error) {
		out, _ := arr.Lookup(v, path)
		return out, nil
	}
}

func extractors[T any](keys []Key[T]) []sorting.Key[T] {
	out := make([]sorting.Key[T], len(keys))
	for i, k := range keys {
		out[i] = k.extractor()
	}
	return out
}

// stringKey coerces a derived key to an object key. Strings, Stringers,
// finite numbers and bools are accepted; 2.0 becomes "2".
func stringKey(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	if s, ok := v.(fmt.Stringer); ok && equality.IsPresent(v) {
		return s.String(), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			break
		}
		return strconv.FormatFloat(f, 'f', -1, rv.Type().Bits()), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	}
	return "", &InvalidKeyTypeError{Key: v}
}
