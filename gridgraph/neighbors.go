package gridgraph

// OpenNeighbors returns the in-bounds orthogonal neighbors of c that are not walls,
// in the order up, down, left, right. Breadth-first search uses this variant: walls
// are treated as nonexistent.
// Complexity: O(1).
func (g *Grid) OpenNeighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range g.neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) && g.Kind(n) != Wall {
			out = append(out, n)
		}
	}

	return out
}

// AllNeighbors returns every in-bounds orthogonal neighbor of c, walls included,
// in the order up, down, left, right. The weighted searches use this variant and
// discard walls only once they are extracted from the unvisited set.
// Complexity: O(1).
func (g *Grid) AllNeighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range g.neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}
