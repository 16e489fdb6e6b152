package collections_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-declarative-utils/collections"
)

func install(t *testing.T, opts ...collections.Option) {
	t.Helper()
	collections.ResetRegistry()
	t.Cleanup(collections.ResetRegistry)
	collections.Install(opts...)
}

func call(t *testing.T, value any, name string, args ...any) any {
	t.Helper()
	ext, err := collections.Extend(value)
	require.NoError(t, err)
	out, err := ext.Call(name, args...)
	require.NoError(t, err)
	return out
}

func seqItems(t *testing.T, v any) []any {
	t.Helper()
	s, ok := v.(*collections.Sequence[any])
	require.True(t, ok, "want *Sequence[any], got %T", v)
	return s.All()
}

func TestExtendBeforeInstall(t *testing.T) {
	collections.ResetRegistry()
	t.Cleanup(collections.ResetRegistry)

	_, err := collections.Extend([]int{1})
	assert.ErrorIs(t, err, collections.ErrNotInstalled)
	assert.False(t, collections.Installed())
}

func TestInstallIsIdempotent(t *testing.T) {
	install(t)
	before := collections.Operations(collections.KindSequence)

	collections.Install()
	collections.Install(collections.WithMergeStrategy(collections.MergeThrow))

	assert.True(t, collections.Installed())
	assert.Equal(t, before, collections.Operations(collections.KindSequence))

	// Options of later calls are ignored: merge still overrides.
	out := call(t, []any{map[string]any{"a": 1}, map[string]any{"a": 2}}, "merge")
	got, _ := out.(*collections.Object[any]).Get("a")
	assert.Equal(t, 2, got)
}

func TestInstallConcurrently(t *testing.T) {
	collections.ResetRegistry()
	t.Cleanup(collections.ResetRegistry)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			collections.Install()
		}()
	}
	wg.Wait()

	assert.True(t, collections.Installed())
	assert.True(t, collections.HasOperation(collections.KindObject, "keys"))
}

func TestExtendUnsupported(t *testing.T) {
	install(t)
	for _, v := range []any{nil, 1, "abc", map[int]string{1: "a"}, (*collections.Sequence[int])(nil)} {
		_, err := collections.Extend(v)
		assert.ErrorIs(t, err, collections.ErrUnsupportedValue, "%#v", v)
	}
}

func TestExtendKinds(t *testing.T) {
	install(t)

	ext, err := collections.Extend([3]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, collections.KindSequence, ext.Kind())

	ext, err = collections.Extend(collections.New("a"))
	require.NoError(t, err)
	assert.Equal(t, collections.KindSequence, ext.Kind())

	ext, err = collections.Extend(map[string]int{"b": 1, "a": 2})
	require.NoError(t, err)
	assert.Equal(t, collections.KindObject, ext.Kind())
	assert.Equal(t, []string{"a", "b"}, ext.Value().(*collections.Object[any]).Keys())

	ext, err = collections.Extend(collections.NewObject(collections.KV("z", 1)))
	require.NoError(t, err)
	assert.Equal(t, "object", ext.Kind().String())
}

func TestCallUnknownOperation(t *testing.T) {
	install(t)
	ext, err := collections.Extend([]int{1})
	require.NoError(t, err)

	_, err = ext.Call("keys")
	assert.ErrorIs(t, err, collections.ErrOperationNotFound)
}

func TestCallArgumentErrors(t *testing.T) {
	install(t)
	ext, err := collections.Extend([]int{1})
	require.NoError(t, err)

	_, err = ext.Call("unique", 1)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	_, err = ext.Call("groupBy", 42)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	_, err = ext.Call("merge")
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	_, err = ext.Call("merge", "sideways")
	assert.ErrorIs(t, err, collections.ErrUnknownStrategy)
}

func TestSequenceOperations(t *testing.T) {
	install(t)

	assert.Equal(t, []any{1, "1", []int{2}},
		seqItems(t, call(t, []any{1, 1.0, "1", []int{2}, []int{2}}, "unique")))
	assert.Equal(t, []any{0, ""}, seqItems(t, call(t, []any{0, nil, ""}, "present")))
	assert.Equal(t, []any{0}, seqItems(t, call(t, []any{0, nil, ""}, "notEmpty")))
	assert.Equal(t, []any{2, 2.0}, seqItems(t, call(t, []any{1, 2, 2.0}, "equal", 2)))
	assert.Equal(t, []any{1}, seqItems(t, call(t, []any{1, 2, 2.0}, "notEqual", 2)))
	assert.Equal(t, []any{1, 2, 3}, seqItems(t, call(t, []any{[]int{1}, []any{2, 3}}, "flat")))
	assert.Equal(t, []any{1},
		seqItems(t, call(t, []int{1, 5, 2}, "takeWhile", func(v any) bool { return v.(int) < 3 })))
	assert.Equal(t, []any{"low", "medium", "bar", "foo"},
		seqItems(t, call(t, []string{"bar", "medium", "foo", "low"}, "orderedBy", []string{"low", "medium", "high"})))

	people := []any{
		map[string]any{"name": "b", "age": 2},
		map[string]any{"name": "a", "age": 2},
		map[string]any{"name": "c", "age": 1},
	}
	asc := seqItems(t, call(t, people, "ascendingBy", "age", "name"))
	assert.Equal(t, "c", asc[0].(map[string]any)["name"])
	assert.Equal(t, "a", asc[1].(map[string]any)["name"])

	desc := seqItems(t, call(t, people, "descendingBy", func(v any) any { return v.(map[string]any)["name"] }))
	assert.Equal(t, "c", desc[0].(map[string]any)["name"])

	uniq := seqItems(t, call(t, people, "uniqueBy", "age"))
	assert.Len(t, uniq, 2)
}

func TestSortByOperation(t *testing.T) {
	install(t)
	tasks := []any{
		map[string]any{"name": "Sleep", "severity": "low"},
		map[string]any{"name": "Eat", "severity": "medium"},
		map[string]any{"name": "Drink", "severity": "low"},
		map[string]any{"name": "Code", "severity": "high"},
	}

	out := seqItems(t, call(t, tasks, "sortBy", "severity", []string{"high", "low", "medium"}, "name"))
	names := make([]string, len(out))
	for i, v := range out {
		names[i] = v.(map[string]any)["name"].(string)
	}
	assert.Equal(t, []string{"Code", "Drink", "Sleep", "Eat"}, names)

	cond := collections.OrderBy(collections.Field[any]("severity"), "high", "low", "medium")
	out = seqItems(t, call(t, tasks, "sortBy", cond))
	assert.Equal(t, "Sleep", out[1].(map[string]any)["name"])
}

func TestIndexingOperations(t *testing.T) {
	install(t)
	people := []any{
		map[string]any{"id": "1", "team": "x"},
		map[string]any{"id": "2", "team": "y"},
		map[string]any{"id": "3", "team": "x"},
	}

	byID := call(t, people, "toObject", "id").(*collections.Object[any])
	assert.Equal(t, []string{"1", "2", "3"}, byID.Keys())

	teams := call(t, people, "toObject", "id", "team").(*collections.Object[any])
	assert.Equal(t, []any{"x", "y", "x"}, teams.Values())

	ext, err := collections.Extend(people)
	require.NoError(t, err)
	_, err = ext.Call("toObject", "team")
	var dup *collections.DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "x", dup.Key)

	groups := call(t, people, "groupBy", "team").(*collections.Object[any])
	assert.Equal(t, []string{"x", "y"}, groups.Keys())
	x, _ := groups.Get("x")
	assert.Len(t, seqItems(t, x), 2)
}

func TestMergeOperation(t *testing.T) {
	install(t, collections.WithMergeStrategy(collections.MergeKeepFirst))
	objs := []any{map[string]any{"a": 1}, nil, collections.NewObject(collections.KV("a", 2), collections.KV("b", 3))}

	kept := call(t, objs, "merge").(*collections.Object[any])
	assert.Equal(t, []any{1, 3}, kept.Values())

	over := call(t, objs, "merge", collections.MergeOverride).(*collections.Object[any])
	assert.Equal(t, []any{2, 3}, over.Values())

	ext, err := collections.Extend(objs)
	require.NoError(t, err)
	_, err = ext.Call("merge", "throw")
	assert.ErrorIs(t, err, collections.ErrDuplicateKey)
}

func TestObjectOperations(t *testing.T) {
	install(t)
	shared := []int{1}
	o := collections.NewObject[any](collections.KV[any]("a", 1), collections.KV[any]("b", shared))

	assert.Equal(t, []any{"a", "b"}, seqItems(t, call(t, o, "keys")))
	assert.Equal(t, []any{1, shared}, seqItems(t, call(t, o, "values")))
	assert.Equal(t, []any{collections.KV[any]("a", 1), collections.KV[any]("b", shared)},
		seqItems(t, call(t, o, "entries")))

	assert.Equal(t, true, call(t, o, "containsKey", "a"))
	assert.Equal(t, false, call(t, o, "containsKey", "z"))
	assert.Equal(t, true, call(t, o, "containsValue", shared))
	assert.Equal(t, false, call(t, o, "containsValue", []int{1}))
}

func TestRegister(t *testing.T) {
	collections.ResetRegistry()
	t.Cleanup(collections.ResetRegistry)

	collections.Register(collections.KindSequence, "unique", func(any, ...any) (any, error) { return "custom", nil })
	collections.Register(collections.KindSequence, "count", func(r any, _ ...any) (any, error) {
		return r.(*collections.Sequence[any]).Len(), nil
	})
	collections.Install()

	assert.Equal(t, "custom", call(t, []int{1, 1}, "unique"), "registered before Install wins")
	assert.Equal(t, 2, call(t, []int{1, 1}, "count"))

	collections.Register(collections.KindSequence, "count", func(any, ...any) (any, error) { return -1, nil })
	assert.Equal(t, -1, call(t, []int{1}, "count"), "later registration replaces")
	assert.Contains(t, collections.Operations(collections.KindSequence), "count")
}

func TestChainingResults(t *testing.T) {
	install(t)
	out := call(t, []any{3, 1, 3, 2}, "unique")
	out = call(t, out, "ascendingBy")
	assert.Equal(t, []any{1, 2, 3}, seqItems(t, out))
}

func TestInstallLogs(t *testing.T) {
	var mu sync.Mutex
	var lines []string
	log := funcr.New(func(prefix, args string) {
		mu.Lock()
		defer mu.Unlock()
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{Verbosity: 4})

	install(t, collections.WithLogger(log))
	collections.Install()
	call(t, []int{1}, "unique")

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "installed extensions")
	assert.Contains(t, joined, "extensions already installed")
	assert.Contains(t, joined, "dispatch")
	assert.Contains(t, joined, "collections")
}

// Finds dependencies declared with different versions across two manifests.
func TestDependencyVersionPipeline(t *testing.T) {
	install(t)
	manifests := `[
		{"name":"package1","devDependencies":{"jest":"23.6.0","prettier":"1.15.3"}},
		{"name":"package2","devDependencies":{"jest":"22.0.0","prettier":"1.15.3"}}
	]`
	doc, err := collections.ParseJSON([]byte(manifests))
	require.NoError(t, err)

	var perPackage []any
	for _, m := range doc.([]any) {
		deps, _ := m.(*collections.Object[any]).Get("devDependencies")
		perPackage = append(perPackage, call(t, deps, "entries"))
	}

	flat := call(t, perPackage, "flat")
	groups := call(t, flat, "groupBy", "key")
	entries := seqItems(t, call(t, groups, "entries"))

	type invalid struct {
		name     string
		versions []any
	}
	var found []invalid
	for _, e := range entries {
		entry := e.(collections.Entry[any])
		if len(seqItems(t, call(t, entry.Value, "unique"))) <= 1 {
			continue
		}
		var versions []any
		for _, v := range seqItems(t, entry.Value) {
			versions = append(versions, v.(collections.Entry[any]).Value)
		}
		found = append(found, invalid{name: entry.Key, versions: versions})
	}

	require.Len(t, found, 1)
	assert.Equal(t, "jest", found[0].name)
	assert.Equal(t, []any{"23.6.0", "22.0.0"}, found[0].versions)
}
