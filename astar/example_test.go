package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleAStar compares the cells A* and Dijkstra visit on the same open board.
// The Manhattan estimate keeps A* on the straight row.
func ExampleAStar() {
	g, _ := gridgraph.FromRows([]string{
		"S...E",
		".....",
	})
	a, _ := astar.AStar(g, g.Start(), g.End())
	d, _ := dijkstra.Dijkstra(g, g.Start(), g.End())

	fmt.Println("astar visited:", a.Visited)
	fmt.Println("astar path:", a.Path)
	fmt.Println("dijkstra visited:", len(d.Visited))
	// Output:
	// astar visited: [(0,0) (0,1) (0,2) (0,3) (0,4)]
	// astar path: [(0,0) (0,1) (0,2) (0,3) (0,4)]
	// dijkstra visited: 8
}
