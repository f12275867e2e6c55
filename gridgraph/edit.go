package gridgraph

// ToggleWall flips c between Normal and Wall.
// Start, End and Weight cells are left untouched (changed == false).
func (g *Grid) ToggleWall(c Cell) (changed bool, err error) {
	return g.toggle(c, Wall)
}

// ToggleWeight flips c between Normal and Weight.
// Start, End and Wall cells are left untouched (changed == false).
func (g *Grid) ToggleWeight(c Cell) (changed bool, err error) {
	return g.toggle(c, Weight)
}

func (g *Grid) toggle(c Cell, k Kind) (bool, error) {
	if !g.InBounds(c) {
		return false, ErrOutOfBounds
	}
	if c == g.start || c == g.end {
		return false, nil
	}
	i := g.Index(c)
	switch g.terrain[i] {
	case k:
		g.terrain[i] = Normal
	case Normal:
		g.terrain[i] = k
	default:
		// a wall never becomes a weight in one step, and vice versa
		return false, nil
	}

	return true, nil
}

// SetTerrain overwrites the terrain of c with k (Normal, Wall or Weight).
// Start and End cells cannot receive terrain; a non-terrain kind is ignored.
func (g *Grid) SetTerrain(c Cell, k Kind) (changed bool, err error) {
	if !g.InBounds(c) {
		return false, ErrOutOfBounds
	}
	if !k.IsTerrain() || c == g.start || c == g.end {
		return false, nil
	}
	i := g.Index(c)
	if g.terrain[i] == k {
		return false, nil
	}
	g.terrain[i] = k

	return true, nil
}

// MoveStart relocates Start to c. Moving onto End is refused; moving onto a
// Wall or Weight clears that terrain first.
func (g *Grid) MoveStart(c Cell) (changed bool, err error) {
	if !g.InBounds(c) {
		return false, ErrOutOfBounds
	}
	if c == g.end {
		return false, ErrStartEndOverlap
	}
	if c == g.start {
		return false, nil
	}
	g.terrain[g.Index(c)] = Normal
	g.start = c

	return true, nil
}

// MoveEnd relocates End to c. Moving onto Start is refused; moving onto a
// Wall or Weight clears that terrain first.
func (g *Grid) MoveEnd(c Cell) (changed bool, err error) {
	if !g.InBounds(c) {
		return false, ErrOutOfBounds
	}
	if c == g.start {
		return false, ErrStartEndOverlap
	}
	if c == g.end {
		return false, nil
	}
	g.terrain[g.Index(c)] = Normal
	g.end = c

	return true, nil
}

// ClearTerrain removes every wall and weight. Start and End stay where they are.
// Reports whether anything was removed.
func (g *Grid) ClearTerrain() bool {
	changed := false
	for i, k := range g.terrain {
		if k != Normal {
			g.terrain[i] = Normal
			changed = true
		}
	}

	return changed
}
