package sorting_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-declarative-utils/sorting"
)

type task struct {
	Name     string
	Severity string
	Weight   int
}

func field[T any, K any](fn func(T) K) sorting.Key[T] {
	return func(v T) (any, error) { return fn(v), nil }
}

func names(ts []task) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Name
	}
	return out
}

func TestCompare(t *testing.T) {
	earlier := time.Unix(1, 0)
	later := time.Unix(2, 0)
	var nilPtr *int

	cases := []struct {
		name string
		a, b any
		want int
	}{
		{"ints", 1, 2, -1},
		{"equal ints", 3, 3, 0},
		{"int vs float", 2, 1.5, 1},
		{"uint vs negative int", uint(1), -5, 1},
		{"negative int vs uint", -5, uint(1), -1},
		{"large uints", uint64(math.MaxUint64), uint64(1), 1},
		{"strings", "apple", "banana", -1},
		{"bools", true, false, 1},
		{"nils", nil, nilPtr, 0},
		{"pointers deref", ptr(5), 4, 1},
		{"compare method", earlier, later, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sorting.Compare(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompareIncomparable(t *testing.T) {
	cases := [][2]any{
		{1, "1"},
		{nil, 0},
		{"a", nil},
		{[]int{1}, []int{1}},
		{1.0, math.NaN()},
		{struct{}{}, struct{}{}},
	}
	for _, tc := range cases {
		_, err := sorting.Compare(tc[0], tc[1])
		require.Error(t, err, "%#v vs %#v", tc[0], tc[1])
		assert.ErrorIs(t, err, sorting.ErrIncomparable)

		var ie *sorting.IncomparableValueError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, tc[0], ie.Left)
	}
}

func TestAscendingDescendingAreReverses(t *testing.T) {
	in := []task{{Name: "b", Weight: 2}, {Name: "c", Weight: 3}, {Name: "a", Weight: 1}}
	byWeight := field(func(t task) int { return t.Weight })

	asc, err := sorting.Stable(in, sorting.Ascending(byWeight))
	require.NoError(t, err)
	desc, err := sorting.Stable(in, sorting.Descending(byWeight))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, names(asc))
	assert.Equal(t, []string{"c", "b", "a"}, names(desc))
	assert.Equal(t, []string{"b", "c", "a"}, names(in), "input must not be mutated")
}

func TestStableOnTies(t *testing.T) {
	in := []task{{Name: "x", Weight: 1}, {Name: "y", Weight: 0}, {Name: "z", Weight: 1}, {Name: "w", Weight: 0}}
	byWeight := field(func(t task) int { return t.Weight })

	asc, err := sorting.Stable(in, sorting.Ascending(byWeight))
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "w", "x", "z"}, names(asc))

	desc, err := sorting.Stable(in, sorting.Descending(byWeight))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "z", "y", "w"}, names(desc))
}

func TestChain(t *testing.T) {
	in := []task{
		{Name: "b", Severity: "low", Weight: 1},
		{Name: "a", Severity: "high", Weight: 1},
		{Name: "c", Severity: "low", Weight: 0},
	}
	c := sorting.Chain(
		sorting.Ascending(field(func(t task) int { return t.Weight })),
		sorting.Ascending(field(func(t task) string { return t.Name })),
	)
	out, err := sorting.Stable(in, c)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, names(out))
}

func TestRanked(t *testing.T) {
	tasks := []task{
		{Name: "Sleep", Severity: "low"},
		{Name: "Eat", Severity: "medium"},
		{Name: "Drink", Severity: "low"},
		{Name: "Code", Severity: "high"},
	}
	bySeverity := sorting.Ranked(field(func(t task) string { return t.Severity }), []any{"high", "low", "medium"})

	out, err := sorting.Stable(tasks, bySeverity)
	require.NoError(t, err)
	assert.Equal(t, []string{"Code", "Sleep", "Drink", "Eat"}, names(out))
}

func TestRankedUnrankedGoLast(t *testing.T) {
	identity := func(s string) (any, error) { return s, nil }
	out, err := sorting.Stable(
		[]string{"bar", "medium", "foo", "low"},
		sorting.Ranked[string](identity, []any{"low", "medium", "high"}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"low", "medium", "bar", "foo"}, out)
}

func TestRanking(t *testing.T) {
	r := sorting.NewRanking([]any{1, "a", []int{1, 2}, 1})
	assert.Equal(t, 0, r.Rank(1.0), "ranks match by deep equality")
	assert.Equal(t, 1, r.Rank("a"))
	assert.Equal(t, 2, r.Rank([]any{1, 2}))
	assert.Equal(t, r.Len(), r.Rank("missing"))
}

func TestStableReportsErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := func(t task) (any, error) {
		if t.Name == "bad" {
			return nil, boom
		}
		return t.Weight, nil
	}
	out, err := sorting.Stable([]task{{Name: "ok"}, {Name: "bad"}}, sorting.Ascending(failing))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)

	mixed := func(t task) (any, error) {
		if t.Name == "s" {
			return "text", nil
		}
		return 1, nil
	}
	_, err = sorting.Stable([]task{{Name: "n"}, {Name: "s"}}, sorting.Ascending(mixed))
	assert.ErrorIs(t, err, sorting.ErrIncomparable)
}

func TestBy(t *testing.T) {
	out, err := sorting.Stable([]string{"ccc", "a", "bb"}, sorting.By(func(s string) int { return len(s) }))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "bb", "ccc"}, out)
}

func TestEmptyChainKeepsOrder(t *testing.T) {
	out, err := sorting.Stable([]int{3, 1, 2}, sorting.Chain[int]())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, out)
}

func ptr[T any](v T) *T { return &v }
