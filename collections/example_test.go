package collections_test

import (
	"fmt"

	"github.com/hasbyte1/go-declarative-utils/collections"
)

func ExampleSequence_Unique() {
	result := collections.New[any](1, 1.0, "a", []int{1}, []int{1}).Unique()
	fmt.Println(result)
	// Output: [1,"a",[1]]
}

func ExampleSequence_UniqueBy() {
	type user struct{ Name, Email string }
	users := collections.New(
		user{"Ann", "ann@example.com"},
		user{"Ann B.", "ann@example.com"},
		user{"Bob", "bob@example.com"},
	)
	unique, _ := users.UniqueBy(collections.Field[user]("Email"))
	fmt.Println(unique.Len())
	// Output: 2
}

func ExampleSequence_GroupBy() {
	words := collections.New("apple", "avocado", "banana", "blueberry", "cherry")
	groups, _ := words.GroupBy(collections.Func(func(w string) string { return w[:1] }))
	for _, e := range groups.Entries() {
		fmt.Println(e.Key, e.Value)
	}
	// Output:
	// a [apple avocado]
	// b [banana blueberry]
	// c [cherry]
}

func ExampleSequence_ToObject() {
	_, err := collections.New("x", "y", "x").ToObject(collections.Field[string](""))
	fmt.Println(err)
	// Output: collections: duplicate key: "x"
}

func ExampleSequence_OrderedBy() {
	result := collections.New("bar", "medium", "foo", "low").
		OrderedBy([]string{"low", "medium", "high"})
	fmt.Println(result.All())
	// Output: [low medium bar foo]
}

func ExampleSequence_SortBy() {
	type task struct{ Name, Severity string }
	tasks := collections.New(
		task{"Sleep", "low"},
		task{"Eat", "medium"},
		task{"Drink", "low"},
		task{"Code", "high"},
	)
	sorted, _ := tasks.SortBy(collections.OrderBy(collections.Field[task]("Severity"), "high", "low", "medium"))
	sorted.Each(func(t task, _ int) { fmt.Print(t.Name, " ") })
	fmt.Println()
	// Output: Code Sleep Drink Eat
}

func ExampleMerge() {
	a := collections.NewObject(collections.KV("a", 1))
	b := collections.NewObject(collections.KV("b", 2), collections.KV("a", 3))

	merged, _ := collections.Merge(collections.New(a, b))
	fmt.Println(merged)

	_, err := collections.Merge(collections.New(a, b), collections.MergeThrow)
	fmt.Println(err)
	// Output:
	// {"a":3,"b":2}
	// collections: duplicate key: "a"
}

func ExampleFlat() {
	fmt.Println(collections.Flat(collections.New([]int{1}, []int{2, 3})).All())
	// Output: [1 2 3]
}

func ExampleParseJSON() {
	v, _ := collections.ParseJSON([]byte(`{"zeta":1,"alpha":2}`))
	fmt.Println(v.(*collections.Object[any]).Keys())
	// Output: [zeta alpha]
}

func ExampleExtend() {
	collections.Install()

	ext, _ := collections.Extend([]string{"b", "a", "b"})
	unique, _ := ext.Call("unique")

	ext, _ = collections.Extend(unique)
	sorted, _ := ext.Call("ascendingBy")
	fmt.Println(sorted)
	// Output: ["a","b"]
}
