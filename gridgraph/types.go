// Package gridgraph defines the cell, kind and option types of the board model.
package gridgraph

import "fmt"

// Board dimensions and traversal costs.
const (
	// DefaultHeight is the number of rows of the standard board.
	DefaultHeight = 25
	// DefaultWidth is the number of columns of the standard board.
	DefaultWidth = 40

	// UnitCost is the cost of entering any non-Weight cell.
	UnitCost = 1
	// WeightCost is the cost of entering a Weight cell.
	WeightCost = 10
)

// Kind classifies a cell. Normal, Wall and Weight are terrain; Start and End are roles
// that always sit on Normal terrain.
type Kind uint8

const (
	// Normal is open terrain with unit cost.
	Normal Kind = iota
	// Wall is an obstacle; never traversable.
	Wall
	// Weight is open terrain that costs WeightCost to enter.
	Weight
	// Start is the search origin.
	Start
	// End is the search target.
	End
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Wall:
		return "wall"
	case Weight:
		return "weight"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// IsTerrain reports whether k can be stored as a cell's terrain.
func (k Kind) IsTerrain() bool {
	return k == Normal || k == Wall || k == Weight
}

// Cell identifies a board position. Row grows downward, Col grows rightward.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Option configures NewGrid.
type Option func(*gridOptions)

type gridOptions struct {
	start, end       Cell
	hasStart, hasEnd bool
}

// WithStart places the Start cell at c instead of the default (H/2, W/4).
func WithStart(c Cell) Option {
	return func(o *gridOptions) {
		o.start = c
		o.hasStart = true
	}
}

// WithEnd places the End cell at c instead of the default (H/2, 3W/4).
func WithEnd(c Cell) Option {
	return func(o *gridOptions) {
		o.end = c
		o.hasEnd = true
	}
}

// Grid is a fixed-size board. Height and Width never change after construction;
// terrain and the Start/End positions are mutated in place by the editing methods.
// A Grid is not safe for concurrent mutation; the engine serializes access.
type Grid struct {
	Height, Width int

	terrain         []Kind // row-major, Normal/Wall/Weight only
	start, end      Cell
	neighborOffsets [4][2]int
}
