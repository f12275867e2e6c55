package visual

import "github.com/katalvlaran/gridpath/gridgraph"

// Mark is the overlay state of one cell.
type Mark uint8

const (
	// Unmarked cells show only their terrain.
	Unmarked Mark = iota
	// VisitedMark is painted by the visited phase.
	VisitedMark
	// PathMark is painted by the path phase and wins over VisitedMark.
	PathMark
)

// Marks is a Height×Width overlay of reveal marks, row-major.
type Marks struct {
	Height, Width int
	cells         []Mark
}

// NewMarks returns an empty overlay sized h×w.
func NewMarks(h, w int) *Marks {
	return &Marks{Height: h, Width: w, cells: make([]Mark, h*w)}
}

// MarksFor returns an empty overlay sized to g.
func MarksFor(g *gridgraph.Grid) *Marks {
	return NewMarks(g.Height, g.Width)
}

func (m *Marks) index(c gridgraph.Cell) (int, bool) {
	if c.Row < 0 || c.Row >= m.Height || c.Col < 0 || c.Col >= m.Width {
		return 0, false
	}

	return c.Row*m.Width + c.Col, true
}

// Apply paints s. Steps outside the overlay are ignored.
func (m *Marks) Apply(s Step) {
	i, ok := m.index(s.Cell)
	if !ok {
		return
	}
	switch s.Phase {
	case PathPhase:
		m.cells[i] = PathMark
	case VisitedPhase:
		if m.cells[i] == Unmarked {
			m.cells[i] = VisitedMark
		}
	}
}

// At returns the mark of c; Unmarked outside the overlay.
func (m *Marks) At(c gridgraph.Cell) Mark {
	i, ok := m.index(c)
	if !ok {
		return Unmarked
	}

	return m.cells[i]
}

// Clear resets every cell to Unmarked.
func (m *Marks) Clear() {
	for i := range m.cells {
		m.cells[i] = Unmarked
	}
}

// Count returns how many cells carry mark k.
func (m *Marks) Count(k Mark) int {
	n := 0
	for _, v := range m.cells {
		if v == k {
			n++
		}
	}

	return n
}

// Clone returns an independent copy.
func (m *Marks) Clone() *Marks {
	cp := &Marks{Height: m.Height, Width: m.Width, cells: make([]Mark, len(m.cells))}
	copy(cp.cells, m.cells)

	return cp
}

// Empty reports whether no cell is marked.
func (m *Marks) Empty() bool {
	for _, v := range m.cells {
		if v != Unmarked {
			return false
		}
	}

	return true
}

// Overlay glyphs drawn over Normal and Weight terrain.
const (
	GlyphVisited = 'o'
	GlyphPath    = '*'
)

// Overlay renders g as layout rows with m painted on top. Start, End and Wall
// keep their own glyphs.
func Overlay(g *gridgraph.Grid, m *Marks) []string {
	rows := g.Rows()
	if m == nil {
		return rows
	}
	for r := range rows {
		buf := []byte(rows[r])
		for c := range buf {
			cell := gridgraph.Cell{Row: r, Col: c}
			switch g.Kind(cell) {
			case gridgraph.Start, gridgraph.End, gridgraph.Wall:
				continue
			}
			switch m.At(cell) {
			case VisitedMark:
				buf[c] = GlyphVisited
			case PathMark:
				buf[c] = GlyphPath
			}
		}
		rows[r] = string(buf)
	}

	return rows
}
