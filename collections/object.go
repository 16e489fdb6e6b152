package collections

import (
	"fmt"
	"io"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/hasbyte1/go-declarative-utils/equality"
)

// Entry is a single key/value member of an [Object].
type Entry[V any] struct {
	Key   string `json:"key"`
	Value V      `json:"value"`
}

// KV creates an Entry.
func KV[V any](key string, value V) Entry[V] {
	return Entry[V]{Key: key, Value: value}
}

// Object is an immutable string-keyed map that remembers insertion order.
// The zero value and a nil *Object are empty and safe to read.
//
//	o := collections.NewObject(collections.KV("a", 1), collections.KV("b", 2))
//	o.Keys() // → [a b]
type Object[V any] struct {
	m *linkedhashmap.Map
}

// NewObject creates an Object from entries in order. A repeated key keeps its
// first position and takes the last value.
func NewObject[V any](entries ...Entry[V]) *Object[V] {
	o := emptyObject[V]()
	for _, e := range entries {
		o.put(e.Key, e.Value)
	}
	return o
}

// FromEntries is NewObject for an existing slice.
func FromEntries[V any](entries []Entry[V]) *Object[V] {
	return NewObject(entries...)
}

// FromMap creates an Object from m. Go maps are unordered, so the keys are
// inserted in lexical order.
func FromMap[V any](m map[string]V) *Object[V] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	o := emptyObject[V]()
	for _, k := range keys {
		o.put(k, m[k])
	}
	return o
}

func emptyObject[V any]() *Object[V] {
	return &Object[V]{m: linkedhashmap.New()}
}

// put stores the pair in place. Only constructors call it.
func (o *Object[V]) put(key string, value V) {
	o.m.Put(key, value)
}

func (o *Object[V]) each(fn func(key string, value V)) {
	if o == nil || o.m == nil {
		return
	}
	it := o.m.Iterator()
	for it.Next() {
		fn(it.Key().(string), as[V](it.Value()))
	}
}

// as converts a stored value back to V. A nil stored under an interface type
// comes back as the zero V.
func as[V any](v any) V {
	out, _ := v.(V)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of members.
func (o *Object[V]) Len() int {
	if o == nil || o.m == nil {
		return 0
	}
	return o.m.Size()
}

// IsEmpty reports whether the object has no members.
func (o *Object[V]) IsEmpty() bool { return o.Len() == 0 }

// Get returns the value stored under key.
func (o *Object[V]) Get(key string) (V, bool) {
	var zero V
	if o == nil || o.m == nil {
		return zero, false
	}
	v, ok := o.m.Get(key)
	if !ok {
		return zero, false
	}
	return as[V](v), true
}

// Lookup implements [arr.Getter] so paths can descend into objects.
func (o *Object[V]) Lookup(key string) (any, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	return v, true
}

// Keys returns the member names in insertion order.
func (o *Object[V]) Keys() []string {
	out := make([]string, 0, o.Len())
	o.each(func(k string, _ V) { out = append(out, k) })
	return out
}

// Values returns the member values in insertion order.
func (o *Object[V]) Values() []V {
	out := make([]V, 0, o.Len())
	o.each(func(_ string, v V) { out = append(out, v) })
	return out
}

// Entries returns the members as key/value pairs in insertion order.
func (o *Object[V]) Entries() []Entry[V] {
	out := make([]Entry[V], 0, o.Len())
	o.each(func(k string, v V) { out = append(out, Entry[V]{Key: k, Value: v}) })
	return out
}

// ContainsKey reports whether key is a member.
func (o *Object[V]) ContainsKey(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// ContainsValue reports whether some member value is identical to x: equal
// for scalars, the same reference for slices, maps and funcs. Structurally
// equal but distinct containers do not match.
func (o *Object[V]) ContainsValue(x any) bool {
	found := false
	o.each(func(_ string, v V) {
		if !found && equality.Identical(v, x) {
			found = true
		}
	})
	return found
}

// Each calls fn(key, value) for every member in insertion order.
func (o *Object[V]) Each(fn func(key string, value V)) { o.each(fn) }

// ─────────────────────────────────────────────────────────────────────────────
// Derived objects
// ─────────────────────────────────────────────────────────────────────────────

// With returns a copy with key set to value. An existing key keeps its
// position.
func (o *Object[V]) With(key string, value V) *Object[V] {
	out := o.shallow()
	out.put(key, value)
	return out
}

// Without returns a copy without the given keys.
func (o *Object[V]) Without(keys ...string) *Object[V] {
	out := o.shallow()
	for _, k := range keys {
		out.m.Remove(k)
	}
	return out
}

// Clone returns a copy whose values are deep copies of the receiver's.
func (o *Object[V]) Clone() *Object[V] {
	out := emptyObject[V]()
	o.each(func(k string, v V) { out.put(k, deepCopy(v)) })
	return out
}

// DeepCopy implements deepcopy.Interface.
func (o *Object[V]) DeepCopy() interface{} { return o.Clone() }

func (o *Object[V]) shallow() *Object[V] {
	out := emptyObject[V]()
	o.each(out.put)
	return out
}

// ToMap returns the members as a plain Go map.
func (o *Object[V]) ToMap() map[string]V {
	out := make(map[string]V, o.Len())
	o.each(func(k string, v V) { out[k] = v })
	return out
}

// Normalize returns ToMap. It implements [equality.Normalizer], so two
// objects are deeply equal regardless of insertion order.
func (o *Object[V]) Normalize() any { return o.ToMap() }

// String returns the JSON encoding of the object.
func (o *Object[V]) String() string {
	b, err := o.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", o.Entries())
	}
	return string(b)
}

// Dump writes a type-annotated representation of the entries to w and
// returns o for chaining.
func (o *Object[V]) Dump(w io.Writer) *Object[V] {
	spew.Fdump(w, o.Entries())
	return o
}
