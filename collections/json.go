package collections

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// MarshalJSON encodes the object as a JSON object whose members appear in
// insertion order.
func (o *Object[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	var err error
	o.each(func(k string, v V) {
		if err != nil {
			return
		}
		var raw, member []byte
		if raw, err = json.Marshal(v); err != nil {
			return
		}
		if member, err = encodeMember(k, raw); err != nil {
			return
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		buf.Write(member)
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping document order. When V is any,
// nested objects decode to *Object[any] as with [ParseJSON].
func (o *Object[V]) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrInvalidJSON
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return fmt.Errorf("%w: expected object, got %s", ErrInvalidJSON, res.Type)
	}

	out := emptyObject[V]()
	var err error
	res.ForEach(func(key, value gjson.Result) bool {
		var v V
		if dyn, ok := any(&v).(*any); ok {
			*dyn = fromResult(value)
		} else if err = json.Unmarshal([]byte(value.Raw), &v); err != nil {
			err = fmt.Errorf("collections: member %q: %w", key.Str, err)
			return false
		}
		out.put(key.Str, v)
		return true
	})
	if err != nil {
		return err
	}
	o.m = out.m
	return nil
}

// ParseJSON decodes a JSON document. Objects become *Object[any] with members
// in document order, arrays []any, numbers float64.
//
//	v, _ := collections.ParseJSON([]byte(`{"b":1,"a":[true,null]}`))
//	v.(*collections.Object[any]).Keys() // → [b a]
func ParseJSON(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

// ParseObject decodes a JSON document that must be an object.
func ParseObject(data []byte) (*Object[any], error) {
	o := emptyObject[any]()
	if err := o.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return o, nil
}

func fromResult(r gjson.Result) any {
	switch {
	case r.IsObject():
		o := emptyObject[any]()
		r.ForEach(func(key, value gjson.Result) bool {
			o.put(key.Str, fromResult(value))
			return true
		})
		return o
	case r.IsArray():
		out := []any{}
		r.ForEach(func(_, value gjson.Result) bool {
			out = append(out, fromResult(value))
			return true
		})
		return out
	}
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return r.Num
	case gjson.True:
		return true
	case gjson.False:
		return false
	}
	return nil
}

// escapeKey turns an object key into a single-segment sjson path. The colon
// prefix keeps all-digit keys from being read as array indexes.
func escapeKey(k string) string {
	buf := make([]rune, 0, len(k)+1)
	buf = append(buf, ':')
	for _, r := range k {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			buf = append(buf, '\\')
		}
		buf = append(buf, r)
	}
	return string(buf)
}

// encodeMember renders one `"key":value` pair. Each member is set on its own
// empty object so encoding stays linear in the number of members.
func encodeMember(k string, raw []byte) ([]byte, error) {
	if k == "" {
		// "" has no sjson path.
		return append([]byte(`"":`), raw...), nil
	}
	obj, err := sjson.SetRawBytes([]byte("{}"), escapeKey(k), raw)
	if err != nil {
		return nil, err
	}
	return obj[1 : len(obj)-1], nil
}
