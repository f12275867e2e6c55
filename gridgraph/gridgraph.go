// Package gridgraph provides the board model used by the search packages.
//
// Cells are addressed by (Row, Col); every traversal helper is bounds-checked and
// restricted to the four orthogonal directions.
package gridgraph

// NewGrid constructs an all-Normal board of the given size.
// Start defaults to (height/2, width/4) and End to (height/2, 3*width/4);
// WithStart / WithEnd override them.
// Returns ErrEmptyGrid for non-positive dimensions, ErrOutOfBounds if Start or End
// lie outside the board, ErrStartEndOverlap if they coincide.
// Complexity: O(W×H) time and memory.
func NewGrid(height, width int, opts ...Option) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}
	o := gridOptions{
		start: Cell{Row: height / 2, Col: width / 4},
		end:   Cell{Row: height / 2, Col: 3 * width / 4},
	}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		Height:  height,
		Width:   width,
		terrain: make([]Kind, height*width),
		start:   o.start,
		end:     o.end,
		// up, down, left, right
		neighborOffsets: [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}},
	}
	if !g.InBounds(g.start) || !g.InBounds(g.end) {
		return nil, ErrOutOfBounds
	}
	if g.start == g.end {
		return nil, ErrStartEndOverlap
	}

	return g, nil
}

// Default returns the standard 25×40 board with Start at (12,10) and End at (12,30).
func Default() *Grid {
	g, err := NewGrid(DefaultHeight, DefaultWidth)
	if err != nil {
		// the default dimensions are valid by construction
		panic(err)
	}

	return g
}

// InBounds reports whether c lies on the board.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// Len returns the number of cells, Height×Width.
func (g *Grid) Len() int {
	return g.Height * g.Width
}

// Index maps c to its row-major index: Row*Width + Col.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Cell) int {
	return c.Row*g.Width + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.Width, Col: idx % g.Width}
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Len())
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}

	return cells
}

// Start returns the Start cell.
func (g *Grid) Start() Cell { return g.start }

// End returns the End cell.
func (g *Grid) End() Cell { return g.end }

// Kind reports the kind of c. Start and End take precedence over terrain.
// Out-of-bounds cells report Wall, so they are never treated as traversable.
func (g *Grid) Kind(c Cell) Kind {
	if !g.InBounds(c) {
		return Wall
	}
	switch c {
	case g.start:
		return Start
	case g.end:
		return End
	}

	return g.terrain[g.Index(c)]
}

// Traversable reports whether c is on the board and not a Wall.
func (g *Grid) Traversable(c Cell) bool {
	return g.Kind(c) != Wall
}

// EnterCost returns the cost of stepping into c: WeightCost for Weight cells,
// UnitCost for everything else (walls included, for relaxation bookkeeping).
func (g *Grid) EnterCost(c Cell) int {
	if g.Kind(c) == Weight {
		return WeightCost
	}

	return UnitCost
}

// Clone returns a deep copy of the board.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.terrain = make([]Kind, len(g.terrain))
	copy(cp.terrain, g.terrain)

	return &cp
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
