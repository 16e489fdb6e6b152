package collections

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/go-logr/logr"
)

// Kind identifies the receiver type an [Operation] is registered for.
type Kind int

const (
	// KindSequence operations receive a *Sequence[any].
	KindSequence Kind = iota
	// KindObject operations receive an *Object[any].
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Operation is a named operation callable through [Extension.Call].
//
// The receiver is a *Sequence[any] for [KindSequence] and an *Object[any]
// for [KindObject]. Operations should return a *Sequence[any] or
// *Object[any] when their result is a collection so that it can be
// extended again.
type Operation func(receiver any, args ...any) (any, error)

// registry is the process-wide, goroutine-safe operation table.
var registry struct {
	mu        sync.RWMutex
	ops       map[Kind]map[string]Operation
	cfg       Config
	once      sync.Once
	installed atomic.Bool
}

func init() {
	resetRegistry()
}

func resetRegistry() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.ops = map[Kind]map[string]Operation{
		KindSequence: {},
		KindObject:   {},
	}
	registry.cfg = DefaultConfig()
	registry.once = sync.Once{}
	registry.installed.Store(false)
}

func logger() logr.Logger {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.cfg.Logger.WithName("collections")
}

// Install registers the built-in operations and enables [Extend]. Only the
// first call has any effect, including its options; later calls are no-ops.
// Operations registered before Install keep precedence over built-ins of the
// same name.
//
//	func main() {
//	    collections.Install(collections.WithLogger(log))
//	    ...
//	}
func Install(opts ...Option) {
	first := false
	registry.once.Do(func() {
		first = true
		cfg := DefaultConfig()
		for _, opt := range opts {
			opt(&cfg)
		}

		registry.mu.Lock()
		registry.cfg = cfg
		for kind, ops := range builtins() {
			for name, op := range ops {
				if _, taken := registry.ops[kind][name]; !taken {
					registry.ops[kind][name] = op
				}
			}
		}
		nseq, nobj := len(registry.ops[KindSequence]), len(registry.ops[KindObject])
		registry.mu.Unlock()

		registry.installed.Store(true)
		logger().V(1).Info("installed extensions", "sequence-ops", nseq, "object-ops", nobj,
			"merge-strategy", cfg.MergeStrategy.String())
	})
	if !first {
		logger().V(2).Info("extensions already installed")
	}
}

// Installed reports whether [Install] has run.
func Installed() bool { return registry.installed.Load() }

// SetLogger replaces the logger used by the operation table.
func SetLogger(l logr.Logger) {
	if l.GetSink() == nil {
		l = logr.Discard()
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.cfg.Logger = l
}

// Register adds a named operation for kind, replacing any operation already
// registered under that name. Safe to call from multiple goroutines.
//
//	collections.Register(collections.KindSequence, "evens", func(r any, _ ...any) (any, error) {
//	    return r.(*collections.Sequence[any]).Filter(func(v any, _ int) bool {
//	        n, ok := v.(float64)
//	        return ok && int(n)%2 == 0
//	    }), nil
//	})
func Register(kind Kind, name string, op Operation) {
	registry.mu.Lock()
	ops, ok := registry.ops[kind]
	if !ok {
		ops = map[string]Operation{}
		registry.ops[kind] = ops
	}
	ops[name] = op
	registry.mu.Unlock()

	logger().V(4).Info("registered operation", "kind", kind.String(), "name", name)
}

// HasOperation reports whether name is registered for kind.
func HasOperation(kind Kind, name string) bool {
	_, ok := lookupOperation(kind, name)
	return ok
}

// Operations returns the names registered for kind, sorted.
func Operations(kind Kind) []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	out := make([]string, 0, len(registry.ops[kind]))
	for name := range registry.ops[kind] {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func lookupOperation(kind Kind, name string) (Operation, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	op, ok := registry.ops[kind][name]
	return op, ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Extension
// ─────────────────────────────────────────────────────────────────────────────

// Extension binds the installed operation table to one value.
type Extension struct {
	kind Kind
	seq  *Sequence[any]
	obj  *Object[any]
}

type anySequencer interface{ anySequence() *Sequence[any] }

type anyObjecter interface{ anyObject() *Object[any] }

func (s *Sequence[T]) anySequence() *Sequence[any] {
	out := make([]any, len(s.items))
	for i, v := range s.items {
		out[i] = v
	}
	return wrap(out)
}

func (o *Object[V]) anyObject() *Object[any] {
	out := emptyObject[any]()
	o.each(func(k string, v V) { out.put(k, v) })
	return out
}

// Extend returns the operations accessor for value, which may be any slice
// or array, any map with string keys, a *Sequence or an *Object. Plain Go
// maps are enumerated in lexical key order. It fails with [ErrNotInstalled]
// before [Install] and [ErrUnsupportedValue] for anything else.
//
//	ext, err := collections.Extend([]string{"b", "a", "b"})
//	res, err := ext.Call("unique") // *Sequence[any]{"b", "a"}
func Extend(value any) (*Extension, error) {
	if !Installed() {
		return nil, ErrNotInstalled
	}
	if seq, ok := asSequence(value); ok {
		return &Extension{kind: KindSequence, seq: seq}, nil
	}
	if obj, ok := asObject(value); ok {
		return &Extension{kind: KindObject, obj: obj}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
}

func asSequence(value any) (*Sequence[any], bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case *Sequence[any]:
		return v, v != nil
	case anySequencer:
		if reflect.ValueOf(v).IsNil() {
			return nil, false
		}
		return v.anySequence(), true
	case []any:
		return Of(v), true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return wrap(out), true
}

func asObject(value any) (*Object[any], bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case *Object[any]:
		return v, v != nil
	case anyObjecter:
		if reflect.ValueOf(v).IsNil() {
			return nil, false
		}
		return v.anyObject(), true
	case map[string]any:
		return FromMap(v), true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return FromMap(m), true
}

// Kind returns the receiver kind.
func (e *Extension) Kind() Kind { return e.kind }

// Value returns the bound *Sequence[any] or *Object[any].
func (e *Extension) Value() any {
	if e.kind == KindObject {
		return e.obj
	}
	return e.seq
}

// Call runs the named operation on the bound value.
func (e *Extension) Call(name string, args ...any) (any, error) {
	op, ok := lookupOperation(e.kind, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q on %s", ErrOperationNotFound, name, e.kind)
	}
	logger().V(4).Info("dispatch", "kind", e.kind.String(), "name", name, "args", len(args))
	return op(e.Value(), args...)
}
