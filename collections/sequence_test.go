package collections_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-declarative-utils/collections"
)

func TestOfCopiesInput(t *testing.T) {
	in := []int{1, 2, 3}
	s := collections.Of(in)
	in[0] = 99

	assert.Equal(t, []int{1, 2, 3}, s.All())

	out := s.All()
	out[1] = 42
	assert.Equal(t, []int{1, 2, 3}, s.All(), "All must return a copy")
}

func TestEmptyAndNew(t *testing.T) {
	assert.True(t, collections.Empty[string]().IsEmpty())
	assert.Equal(t, 0, collections.New[int]().Len())
	assert.Equal(t, []int{}, collections.New[int]().All())
	assert.Equal(t, 3, collections.New("a", "b", "c").Len())
}

func TestGet(t *testing.T) {
	s := collections.New("a", "b")

	v, ok := s.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = s.Get(2)
	assert.False(t, ok)
	_, ok = s.Get(-1)
	assert.False(t, ok)
}

func TestFilterRejectMap(t *testing.T) {
	s := collections.New(1, 2, 3, 4)
	even := func(n int, _ int) bool { return n%2 == 0 }

	assert.Equal(t, []int{2, 4}, s.Filter(even).All())
	assert.Equal(t, []int{1, 3}, s.Reject(even).All())
	assert.Equal(t, []int{1, 2, 3, 4}, s.All(), "receiver must not change")

	doubled := collections.Map(s, func(n int, _ int) int { return n * 2 })
	assert.Equal(t, []int{2, 4, 6, 8}, doubled.All())
}

func TestEachAndTap(t *testing.T) {
	var seen []int
	collections.New(5, 6).Each(func(_ int, i int) { seen = append(seen, i) })
	assert.Equal(t, []int{0, 1}, seen)

	tapped := 0
	s := collections.New(1, 2)
	assert.Same(t, s, s.Tap(func(c *collections.Sequence[int]) { tapped = c.Len() }))
	assert.Equal(t, 2, tapped)
}

func TestDeepClone(t *testing.T) {
	type box struct{ Items []int }
	s := collections.New(box{Items: []int{1}}, box{Items: []int{2}})

	clone := s.DeepClone()
	orig, _ := s.Get(0)
	orig.Items[0] = 100

	got, _ := clone.Get(0)
	assert.Equal(t, []int{1}, got.Items)
}

func TestDeepCloneKeepsNil(t *testing.T) {
	clone := collections.New[any](nil, 1).DeepClone()
	assert.Equal(t, []any{nil, 1}, clone.All())
}

func TestSequenceJSON(t *testing.T) {
	b, err := collections.New(1, 2).ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2]`, string(b))
	assert.Equal(t, `["a"]`, collections.New("a").String())
}

func TestSequenceDump(t *testing.T) {
	var buf bytes.Buffer
	s := collections.New(1, 2)
	assert.Same(t, s, s.Dump(&buf))
	assert.Contains(t, buf.String(), "([]int) (len=2")
	assert.Contains(t, buf.String(), "(int) 2")
}
