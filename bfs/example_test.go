package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on an open 3×3 board.
// Neighbors are expanded up, down, left, right, so the visit order follows
// non-decreasing Manhattan distance from the corner.
func ExampleBFS_gridTraversal() {
	g, _ := gridgraph.FromRows([]string{
		"S..",
		"...",
		"..E",
	})
	res, err := bfs.BFS(g, g.Start(), g.End())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Visited)
	fmt.Println(res.Path)
	// Output:
	// [(0,0) (1,0) (0,1) (2,0) (1,1) (0,2) (2,1) (1,2) (2,2)]
	// [(0,0) (1,0) (2,0) (2,1) (2,2)]
}

// ExampleBFS_unreachable shows that an unreachable End is an outcome, not an error.
func ExampleBFS_unreachable() {
	g, _ := gridgraph.FromRows([]string{
		"S.#E",
	})
	res, _ := bfs.BFS(g, g.Start(), g.End())
	fmt.Println(res.Outcome, res.Visited, len(res.Path))
	// Output:
	// exhausted [(0,0) (0,1)] 0
}
