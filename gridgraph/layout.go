package gridgraph

import (
	"fmt"
	"strings"
)

// Layout glyphs.
const (
	GlyphNormal = '.'
	GlyphWall   = '#'
	GlyphWeight = 'w'
	GlyphStart  = 'S'
	GlyphEnd    = 'E'
)

// FromRows parses a text layout, one string per row. Every row must have the same
// length and the layout must contain exactly one 'S' and one 'E'.
// Both 'w' and 'W' denote a Weight cell.
//
// Example:
//
//	S.#.
//	.w#E
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	terrain := make([]Kind, h*w)
	var start, end Cell
	var hasStart, hasEnd bool
	for r, row := range rows {
		for c := 0; c < w; c++ {
			cell := Cell{Row: r, Col: c}
			switch ch := row[c]; ch {
			case GlyphNormal:
			case GlyphWall:
				terrain[r*w+c] = Wall
			case GlyphWeight, 'W':
				terrain[r*w+c] = Weight
			case GlyphStart:
				if hasStart {
					return nil, fmt.Errorf("%w: second at %v", ErrDuplicateStart, cell)
				}
				start, hasStart = cell, true
			case GlyphEnd:
				if hasEnd {
					return nil, fmt.Errorf("%w: second at %v", ErrDuplicateEnd, cell)
				}
				end, hasEnd = cell, true
			default:
				return nil, fmt.Errorf("%w %q at %v", ErrUnknownGlyph, ch, cell)
			}
		}
	}
	if !hasStart {
		return nil, ErrMissingStart
	}
	if !hasEnd {
		return nil, ErrMissingEnd
	}

	g, err := NewGrid(h, w, WithStart(start), WithEnd(end))
	if err != nil {
		return nil, err
	}
	g.terrain = terrain

	return g, nil
}

// Glyph returns the layout character for kind k.
func Glyph(k Kind) byte {
	switch k {
	case Wall:
		return GlyphWall
	case Weight:
		return GlyphWeight
	case Start:
		return GlyphStart
	case End:
		return GlyphEnd
	default:
		return GlyphNormal
	}
}

// Rows renders the board as a text layout accepted by FromRows.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	buf := make([]byte, g.Width)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			buf[c] = Glyph(g.Kind(Cell{Row: r, Col: c}))
		}
		rows[r] = string(buf)
	}

	return rows
}

// String renders the board as newline-separated layout rows.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
