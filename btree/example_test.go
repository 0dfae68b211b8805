package btree_test

import (
	"fmt"

	"github.com/treelab/forest/btree"
)

func ExampleSet() {
	set, err := btree.NewOrdered[int](4)
	if err != nil {
		panic(err)
	}
	for _, k := range []int{10, 5, 20, 5} {
		fmt.Println(set.Insert(k))
	}
	fmt.Println(set.Contains(10))
	fmt.Println(set.Erase(5))
	for key := range set.All() {
		fmt.Println(key)
	}
	// Output:
	// true
	// true
	// true
	// false
	// true
	// true
	// 10
	// 20
}
