package guard_test

import (
	"fmt"

	guard "github.com/guardhouse/guard"
)

func ExampleNotEmpty() {
	var ids []int
	err := guard.NotEmpty(ids, "ids")
	fmt.Println(err)
	// Output: empty at /ids
}

func ExampleColl() {
	items := []string{"a", "b", "c"}
	err := guard.Coll(items, "items").
		NotEmpty().
		MaxCount(2).
		Err()
	fmt.Println(err)
	// Output: too_many_items at /items
}

func ExampleContains() {
	type account struct {
		ID    int
		Owner string
	}
	accounts := []account{{ID: 1, Owner: "ada"}, {ID: 2, Owner: "brin"}}

	byID := func(a, b account) bool { return a.ID == b.ID }
	err := guard.Contains(accounts, "accounts", account{ID: 2}, byID)
	fmt.Println(err)
	// Output: <nil>
}
