package gridgraph

// ConnectedComponents finds all contiguous regions of traversable cells
// (anything but Wall) under 4-connectivity.
// Returns a slice of components; each component lists cell indices (row-major)
// in discovery order. Components are ordered by their first cell in row-major order.
//
// To convert an index back to a Cell, use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, g.Len())
	var comps [][]int

	for i0 := range seen {
		if seen[i0] || !g.Traversable(g.Coordinate(i0)) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, n := range g.OpenNeighbors(g.Coordinate(u)) {
				vi := g.Index(n)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether a and b lie in the same traversable region.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.Traversable(a) || !g.Traversable(b) {
		return false
	}
	if a == b {
		return true
	}
	for _, comp := range g.ConnectedComponents() {
		var hasA, hasB bool
		for _, i := range comp {
			switch g.Coordinate(i) {
			case a:
				hasA = true
			case b:
				hasB = true
			}
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}

	return false
}
