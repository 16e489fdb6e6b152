package arr

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Getter is implemented by keyed containers that resolve one path segment
// themselves, such as insertion-ordered objects.
type Getter interface {
	Lookup(key string) (any, bool)
}

var (
	getterType     = reflect.TypeOf((*Getter)(nil)).Elem()
	rawMessageType = reflect.TypeOf(json.RawMessage(nil))
)

// Segments splits a dot-notation path. The empty path has no segments and
// refers to the value itself.
func Segments(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// Lookup resolves path inside v and reports whether every segment matched.
//
//	Lookup(map[string]any{"a": map[string]any{"b": 1}}, "a.b") // → 1, true
//	Lookup(map[string]any{"a": 1}, "a.b")                     // → nil, false
func Lookup(v any, path string) (any, bool) {
	segments := Segments(path)
	cur := reflect.ValueOf(v)
	for i := 0; i < len(segments); i++ {
		cur = settle(cur)
		if !cur.IsValid() {
			return nil, false
		}
		if cur.Type() == rawMessageType {
			return lookupJSON(cur.Bytes(), strings.Join(segments[i:], "."))
		}
		next, ok := step(cur, segments[i])
		if !ok {
			return nil, false
		}
		cur = next
	}
	if !cur.IsValid() {
		return nil, true
	}
	if !cur.CanInterface() {
		return nil, false
	}
	return cur.Interface(), true
}

// Get resolves path inside v. It returns def[0] (or nil) when the path does
// not exist.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(v any, path string, def ...any) any {
	if out, ok := Lookup(v, path); ok {
		return out
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether path exists inside v.
func Has(v any, path string) bool {
	_, ok := Lookup(v, path)
	return ok
}

// settle dereferences pointers and interfaces, stopping early at values that
// resolve segments themselves. Nil pointers yield the invalid Value.
func settle(v reflect.Value) reflect.Value {
	for v.IsValid() {
		if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
			return reflect.Value{}
		}
		if v.CanInterface() && v.Type().Implements(getterType) {
			return v
		}
		if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface {
			return v
		}
		v = v.Elem()
	}
	return v
}

func step(v reflect.Value, seg string) (reflect.Value, bool) {
	if v.CanInterface() && v.Type().Implements(getterType) {
		out, ok := v.Interface().(Getter).Lookup(seg)
		if !ok {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(out), true
	}

	switch v.Kind() {
	case reflect.Map:
		kt := v.Type().Key()
		if kt.Kind() != reflect.String {
			return reflect.Value{}, false
		}
		out := v.MapIndex(reflect.ValueOf(seg).Convert(kt))
		return out, out.IsValid()
	case reflect.Struct:
		return field(v, seg)
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= v.Len() {
			return reflect.Value{}, false
		}
		return v.Index(i), true
	}
	return reflect.Value{}, false
}

func field(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	if sf, ok := t.FieldByName(name); ok && sf.IsExported() {
		out, err := v.FieldByIndexErr(sf.Index)
		return out, err == nil
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if tag == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func lookupJSON(raw []byte, path string) (any, bool) {
	if path == "" {
		var out any
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, false
		}
		return out, true
	}
	res := gjson.GetBytes(raw, path)
	if !res.Exists() {
		return nil, false
	}
	return res.Value(), true
}
