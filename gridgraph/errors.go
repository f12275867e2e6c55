package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a board with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the board.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrStartEndOverlap indicates Start and End would occupy the same cell.
	ErrStartEndOverlap = errors.New("gridgraph: start and end must be distinct cells")
	// ErrMissingStart indicates a layout without an 'S' cell.
	ErrMissingStart = errors.New("gridgraph: layout has no start cell")
	// ErrMissingEnd indicates a layout without an 'E' cell.
	ErrMissingEnd = errors.New("gridgraph: layout has no end cell")
	// ErrDuplicateStart indicates a layout with more than one 'S' cell.
	ErrDuplicateStart = errors.New("gridgraph: layout has more than one start cell")
	// ErrDuplicateEnd indicates a layout with more than one 'E' cell.
	ErrDuplicateEnd = errors.New("gridgraph: layout has more than one end cell")
	// ErrUnknownGlyph indicates a layout character outside the glyph table.
	ErrUnknownGlyph = errors.New("gridgraph: unknown layout glyph")
)
