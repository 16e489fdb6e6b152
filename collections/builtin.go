package collections

import (
	"fmt"
	"reflect"
)

// builtins returns the operations installed by [Install].
func builtins() map[Kind]map[string]Operation {
	return map[Kind]map[string]Operation{
		KindSequence: {
			"present":      seqOp(0, func(s *Sequence[any], _ []any) (any, error) { return s.Present(), nil }),
			"notEmpty":     seqOp(0, func(s *Sequence[any], _ []any) (any, error) { return s.NotEmpty(), nil }),
			"unique":       seqOp(0, func(s *Sequence[any], _ []any) (any, error) { return s.Unique(), nil }),
			"equal":        seqOp(1, func(s *Sequence[any], a []any) (any, error) { return s.Equal(a[0]), nil }),
			"notEqual":     seqOp(1, func(s *Sequence[any], a []any) (any, error) { return s.NotEqual(a[0]), nil }),
			"uniqueBy":     seqOp(1, opUniqueBy),
			"takeWhile":    seqOp(1, opTakeWhile),
			"groupBy":      seqOp(1, opGroupBy),
			"toObject":     seqOp(-1, opToObject),
			"flat":         seqOp(0, opFlat),
			"merge":        seqOp(-1, opMerge),
			"ascendingBy":  seqOp(-1, opAscendingBy),
			"descendingBy": seqOp(-1, opDescendingBy),
			"orderedBy":    seqOp(1, opOrderedBy),
			"sortBy":       seqOp(-1, opSortBy),
		},
		KindObject: {
			"keys":          objOp(0, opKeys),
			"values":        objOp(0, opValues),
			"entries":       objOp(0, opEntries),
			"containsKey":   objOp(1, opContainsKey),
			"containsValue": objOp(1, func(o *Object[any], a []any) (any, error) { return o.ContainsValue(a[0]), nil }),
		},
	}
}

// seqOp adapts a typed sequence operation. arity < 0 accepts any number of
// arguments.
func seqOp(arity int, fn func(*Sequence[any], []any) (any, error)) Operation {
	return func(receiver any, args ...any) (any, error) {
		s, ok := receiver.(*Sequence[any])
		if !ok {
			return nil, fmt.Errorf("%w: receiver %T is not a sequence", ErrInvalidArgument, receiver)
		}
		if arity >= 0 && len(args) != arity {
			return nil, fmt.Errorf("%w: want %d arguments, got %d", ErrInvalidArgument, arity, len(args))
		}
		return fn(s, args)
	}
}

func objOp(arity int, fn func(*Object[any], []any) (any, error)) Operation {
	return func(receiver any, args ...any) (any, error) {
		o, ok := receiver.(*Object[any])
		if !ok {
			return nil, fmt.Errorf("%w: receiver %T is not an object", ErrInvalidArgument, receiver)
		}
		if arity >= 0 && len(args) != arity {
			return nil, fmt.Errorf("%w: want %d arguments, got %d", ErrInvalidArgument, arity, len(args))
		}
		return fn(o, args)
	}
}

// done drops a typed nil result when err is set.
func done(v any, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// keyArg converts a dynamic argument to a key: a path string, a Key[any] or
// a callback.
func keyArg(arg any) (Key[any], error) {
	switch k := arg.(type) {
	case string:
		return Field[any](k), nil
	case Key[any]:
		return k, nil
	case func(any) any:
		return Func(k), nil
	case func(any) string:
		return Func(k), nil
	case func(any) (any, error):
		return FuncErr(k), nil
	}
	return Key[any]{}, fmt.Errorf("%w: %T is not a key", ErrInvalidArgument, arg)
}

func keyArgs(args []any) ([]Key[any], error) {
	out := make([]Key[any], len(args))
	for i, a := range args {
		k, err := keyArg(a)
		if err != nil {
			return nil, err
		}
		out[i] = k
	}
	return out, nil
}

// listArg converts a slice or array argument to []any.
func listArg(arg any) ([]any, bool) {
	if l, ok := arg.([]any); ok {
		return l, true
	}
	rv := reflect.ValueOf(arg)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func opUniqueBy(s *Sequence[any], args []any) (any, error) {
	k, err := keyArg(args[0])
	if err != nil {
		return nil, err
	}
	return done(s.UniqueBy(k))
}

func opTakeWhile(s *Sequence[any], args []any) (any, error) {
	pred, ok := args[0].(func(any) bool)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a predicate", ErrInvalidArgument, args[0])
	}
	return s.TakeWhile(pred), nil
}

func opGroupBy(s *Sequence[any], args []any) (any, error) {
	k, err := keyArg(args[0])
	if err != nil {
		return nil, err
	}
	groups, err := s.GroupBy(k)
	if err != nil {
		return nil, err
	}
	out := emptyObject[any]()
	groups.each(func(k string, v []any) { out.put(k, wrap(v)) })
	return out, nil
}

type derived struct {
	item  any
	value any
}

func opToObject(s *Sequence[any], args []any) (any, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, fmt.Errorf("%w: toObject takes a key and an optional value", ErrInvalidArgument)
	}
	key, err := keyArg(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return done(s.ToObject(key))
	}

	value, err := keyArg(args[1])
	if err != nil {
		return nil, err
	}
	extractValue := value.extractor()
	pairs := make([]derived, len(s.items))
	for i, item := range s.items {
		v, err := extractValue(item)
		if err != nil {
			return nil, err
		}
		pairs[i] = derived{item: item, value: v}
	}
	extractKey := key.extractor()
	return done(ToObjectWith(wrap(pairs),
		FuncErr(func(d derived) (any, error) { return extractKey(d.item) }),
		func(d derived) any { return d.value },
	))
}

// opFlat concatenates nested sequences one level deep. Items that are not
// sequences are kept as they are.
func opFlat(s *Sequence[any], _ []any) (any, error) {
	out := make([]any, 0, len(s.items))
	for _, item := range s.items {
		if inner, ok := asSequence(item); ok {
			out = append(out, inner.items...)
			continue
		}
		out = append(out, item)
	}
	return wrap(out), nil
}

func opMerge(s *Sequence[any], args []any) (any, error) {
	registry.mu.RLock()
	strategy := registry.cfg.MergeStrategy
	registry.mu.RUnlock()

	switch len(args) {
	case 0:
	case 1:
		switch st := args[0].(type) {
		case MergeStrategy:
			strategy = st
		case string:
			parsed, err := ParseMergeStrategy(st)
			if err != nil {
				return nil, err
			}
			strategy = parsed
		default:
			return nil, fmt.Errorf("%w: %T is not a merge strategy", ErrInvalidArgument, args[0])
		}
	default:
		return nil, fmt.Errorf("%w: merge takes at most one strategy", ErrInvalidArgument)
	}

	objects := make([]*Object[any], 0, len(s.items))
	for i, item := range s.items {
		if item == nil {
			continue
		}
		o, ok := asObject(item)
		if !ok {
			return nil, fmt.Errorf("%w: item %d (%T) is not an object", ErrInvalidArgument, i, item)
		}
		objects = append(objects, o)
	}
	return done(Merge(wrap(objects), strategy))
}

func opAscendingBy(s *Sequence[any], args []any) (any, error) {
	keys, err := keyArgs(args)
	if err != nil {
		return nil, err
	}
	return done(s.AscendingBy(keys...))
}

func opDescendingBy(s *Sequence[any], args []any) (any, error) {
	keys, err := keyArgs(args)
	if err != nil {
		return nil, err
	}
	return done(s.DescendingBy(keys...))
}

func opOrderedBy(s *Sequence[any], args []any) (any, error) {
	order, ok := listArg(args[0])
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a list", ErrInvalidArgument, args[0])
	}
	return s.OrderedBy(order), nil
}

// opSortBy accepts Condition[any] values, or keys each optionally followed
// by a list giving the order of its values.
func opSortBy(s *Sequence[any], args []any) (any, error) {
	conds := make([]Condition[any], 0, len(args))
	for i := 0; i < len(args); i++ {
		if c, ok := args[i].(Condition[any]); ok {
			conds = append(conds, c)
			continue
		}
		key, err := keyArg(args[i])
		if err != nil {
			return nil, err
		}
		c := Condition[any]{Key: key}
		if i+1 < len(args) {
			if order, ok := listArg(args[i+1]); ok {
				c.Order = order
				i++
			}
		}
		conds = append(conds, c)
	}
	return done(s.SortBy(conds...))
}

func opKeys(o *Object[any], _ []any) (any, error) {
	return Map(Of(o.Keys()), func(k string, _ int) any { return k }), nil
}

func opValues(o *Object[any], _ []any) (any, error) {
	return wrap(o.Values()), nil
}

func opEntries(o *Object[any], _ []any) (any, error) {
	return Map(Of(o.Entries()), func(e Entry[any], _ int) any { return e }), nil
}

func opContainsKey(o *Object[any], args []any) (any, error) {
	k, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a key", ErrInvalidArgument, args[0])
	}
	return o.ContainsKey(k), nil
}
