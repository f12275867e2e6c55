// Package render draws a board and its reveal overlay as a PNG image.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/visual"
)

// ErrBadCellSize is returned for a non-positive cell size.
var ErrBadCellSize = errors.New("render: cell size must be positive")

// DefaultCellSize is the edge length of one cell in pixels.
const DefaultCellSize = 20

// Palette of the board.
var (
	ColorNormal  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorWall    = color.RGBA{R: 0x0c, G: 0x35, B: 0x47, A: 0xff}
	ColorWeight  = color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff}
	ColorStart   = color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
	ColorEnd     = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	ColorVisited = color.RGBA{R: 0x40, G: 0xce, B: 0xe3, A: 0xff}
	ColorPath    = color.RGBA{R: 0xff, G: 0xfe, B: 0x6a, A: 0xff}
	ColorGrid    = color.RGBA{R: 0xaf, G: 0xd8, B: 0xf8, A: 0xff}
)

// Options controls rendering.
type Options struct {
	CellSize int
}

// DefaultOptions returns DefaultCellSize.
func DefaultOptions() Options {
	return Options{CellSize: DefaultCellSize}
}

// Image draws g with marks painted over Normal and Weight cells. marks may be nil.
func Image(g *gridgraph.Grid, marks *visual.Marks, opts Options) (image.Image, error) {
	dc, err := draw(g, marks, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// PNG encodes the drawing to w.
func PNG(w io.Writer, g *gridgraph.Grid, marks *visual.Marks, opts Options) error {
	dc, err := draw(g, marks, opts)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode: %w", err)
	}
	return nil
}

// SavePNG writes the drawing to path.
func SavePNG(path string, g *gridgraph.Grid, marks *visual.Marks, opts Options) error {
	dc, err := draw(g, marks, opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

func draw(g *gridgraph.Grid, marks *visual.Marks, opts Options) (*gg.Context, error) {
	if opts.CellSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCellSize, opts.CellSize)
	}
	size := float64(opts.CellSize)
	dc := gg.NewContext(g.Width*opts.CellSize, g.Height*opts.CellSize)
	dc.SetColor(ColorNormal)
	dc.Clear()

	for _, c := range g.Cells() {
		x, y := float64(c.Col)*size, float64(c.Row)*size
		dc.DrawRectangle(x, y, size, size)
		dc.SetColor(fill(g.Kind(c), marks, c))
		dc.Fill()

		switch g.Kind(c) {
		case gridgraph.Start, gridgraph.End:
			dc.DrawCircle(x+size/2, y+size/2, size/4)
			dc.SetColor(ColorNormal)
			dc.Fill()
		}

		dc.DrawRectangle(x, y, size, size)
		dc.SetColor(ColorGrid)
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	return dc, nil
}

// fill picks the cell colour. Reveal marks cover Normal and Weight terrain only.
func fill(k gridgraph.Kind, marks *visual.Marks, c gridgraph.Cell) color.Color {
	switch k {
	case gridgraph.Wall:
		return ColorWall
	case gridgraph.Start:
		return ColorStart
	case gridgraph.End:
		return ColorEnd
	}
	if marks != nil {
		switch marks.At(c) {
		case visual.PathMark:
			return ColorPath
		case visual.VisitedMark:
			return ColorVisited
		}
	}
	if k == gridgraph.Weight {
		return ColorWeight
	}
	return ColorNormal
}
