// Package gridtest holds board fixtures and reference oracles shared by the
// search packages' tests.
package gridtest

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Unreachable is the reference cost of a cell that cannot be reached.
const Unreachable = -1

// Random builds an h×w board with roughly wallPct percent walls and weightPct
// percent weights, and random distinct Start/End cells. The same rand source
// always yields the same board.
func Random(r *rand.Rand, h, w, wallPct, weightPct int) *gridgraph.Grid {
	start := gridgraph.Cell{Row: r.Intn(h), Col: r.Intn(w)}
	end := start
	for end == start {
		end = gridgraph.Cell{Row: r.Intn(h), Col: r.Intn(w)}
	}
	g, err := gridgraph.NewGrid(h, w, gridgraph.WithStart(start), gridgraph.WithEnd(end))
	if err != nil {
		panic(err)
	}
	for _, c := range g.Cells() {
		switch roll := r.Intn(100); {
		case roll < wallPct:
			_, _ = g.SetTerrain(c, gridgraph.Wall)
		case roll < wallPct+weightPct:
			_, _ = g.SetTerrain(c, gridgraph.Weight)
		}
	}

	return g
}

// MinCost computes the cheapest cost from start to every cell by exhaustive
// relaxation (Bellman-Ford style, no priority queue), independent of the
// implementations under test. Walls are impassable. Unreached cells report
// Unreachable. With unit set, every step costs 1.
func MinCost(g *gridgraph.Grid, start gridgraph.Cell, unit bool) []int {
	cost := make([]int, g.Len())
	for i := range cost {
		cost[i] = Unreachable
	}
	cost[g.Index(start)] = 0
	for changed := true; changed; {
		changed = false
		for _, c := range g.Cells() {
			cc := cost[g.Index(c)]
			if cc == Unreachable || !g.Traversable(c) {
				continue
			}
			for _, n := range g.OpenNeighbors(c) {
				step := g.EnterCost(n)
				if unit {
					step = 1
				}
				ni := g.Index(n)
				if cost[ni] == Unreachable || cc+step < cost[ni] {
					cost[ni] = cc + step
					changed = true
				}
			}
		}
	}

	return cost
}

// IsRoute reports whether path starts at start, ends at end, steps between
// orthogonally adjacent cells and never enters a wall.
func IsRoute(g *gridgraph.Grid, path []gridgraph.Cell, start, end gridgraph.Cell) bool {
	if len(path) == 0 || path[0] != start || path[len(path)-1] != end {
		return false
	}
	for i, c := range path {
		if !g.Traversable(c) {
			return false
		}
		if i > 0 && gridgraph.Manhattan(path[i-1], c) != 1 {
			return false
		}
	}

	return true
}
