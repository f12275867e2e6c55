package frontier_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/frontier"
)

// ExampleMinSet shows the unvisited-set contract: smallest key first,
// equal keys in insertion order, keys re-read after Update.
func ExampleMinSet() {
	dist := map[string]int{"A": 0, "B": frontier.Infinity, "C": frontier.Infinity}
	set := frontier.NewMinSet[string](func(id string) int { return dist[id] })
	set.InsertAll([]string{"A", "B", "C"})

	id, d, _ := set.ExtractMin()
	fmt.Println(id, d)

	dist["C"], dist["B"] = 4, 4
	set.Update("C")
	set.Update("B")
	for !set.IsEmpty() {
		id, d, _ = set.ExtractMin()
		fmt.Println(id, d)
	}
	// Output:
	// A 0
	// B 4
	// C 4
}
