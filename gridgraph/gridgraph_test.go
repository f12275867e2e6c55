package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty boards and bad roles.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		h, w int
		opts []gridgraph.Option
		err  error
	}{
		{"ZeroRows", 0, 5, nil, gridgraph.ErrEmptyGrid},
		{"NegativeCols", 3, -1, nil, gridgraph.ErrEmptyGrid},
		{"StartOutside", 3, 3, []gridgraph.Option{gridgraph.WithStart(gridgraph.Cell{Row: 3, Col: 0})}, gridgraph.ErrOutOfBounds},
		{"EndOutside", 3, 3, []gridgraph.Option{gridgraph.WithEnd(gridgraph.Cell{Row: 0, Col: -1})}, gridgraph.ErrOutOfBounds},
		{"Overlap", 1, 1, nil, gridgraph.ErrStartEndOverlap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.h, tc.w, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%d,%d) error = %v; want %v", tc.h, tc.w, err, tc.err)
			}
		})
	}
}

// TestDefault checks the standard board dimensions and role placement.
func TestDefault(t *testing.T) {
	g := gridgraph.Default()
	assert.Equal(t, 25, g.Height)
	assert.Equal(t, 40, g.Width)
	assert.Equal(t, gridgraph.Cell{Row: 12, Col: 10}, g.Start())
	assert.Equal(t, gridgraph.Cell{Row: 12, Col: 30}, g.End())
	assert.Equal(t, gridgraph.Start, g.Kind(g.Start()))
	assert.Equal(t, gridgraph.End, g.Kind(g.End()))
	assert.Equal(t, 1000, g.Len())
}

// TestInBounds checks InBounds on a 2×3 board.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid(2, 3)
	require.NoError(t, err)

	for _, c := range []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 1}} {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	for _, c := range []gridgraph.Cell{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 2, Col: 1}, {Row: 1, Col: -1}} {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
		if g.Traversable(c) {
			t.Errorf("Traversable(%v)=true outside the board", c)
		}
	}
}

// TestIndexCoordinate round-trips every cell through its row-major index.
func TestIndexCoordinate(t *testing.T) {
	g, err := gridgraph.NewGrid(4, 7)
	require.NoError(t, err)
	for i, c := range g.Cells() {
		require.Equal(t, i, g.Index(c))
		require.Equal(t, c, g.Coordinate(i))
	}
}

//----------------------------------------------------------------------------//
// Neighbor Tests
//----------------------------------------------------------------------------//

// TestNeighbors_OrderAndWalls verifies up/down/left/right order and wall filtering.
func TestNeighbors_OrderAndWalls(t *testing.T) {
	g, err := gridgraph.FromRows([]string{
		"S#.",
		"...",
		".wE",
	})
	require.NoError(t, err)

	center := gridgraph.Cell{Row: 1, Col: 1}
	all := g.AllNeighbors(center)
	assert.Equal(t, []gridgraph.Cell{{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}, all)

	open := g.OpenNeighbors(center)
	assert.Equal(t, []gridgraph.Cell{{Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}, open)
}

// TestNeighbors_Corner checks that out-of-bounds positions are filtered.
func TestNeighbors_Corner(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)

	got := g.AllNeighbors(gridgraph.Cell{Row: 0, Col: 0})
	assert.Equal(t, []gridgraph.Cell{{Row: 1, Col: 0}, {Row: 0, Col: 1}}, got)
	got = g.AllNeighbors(gridgraph.Cell{Row: 2, Col: 2})
	assert.Equal(t, []gridgraph.Cell{{Row: 1, Col: 2}, {Row: 2, Col: 1}}, got)
}

// TestEnterCost covers every kind.
func TestEnterCost(t *testing.T) {
	g, err := gridgraph.FromRows([]string{"Sw#.E"})
	require.NoError(t, err)

	want := []int{1, 10, 1, 1, 1}
	for col, cost := range want {
		c := gridgraph.Cell{Row: 0, Col: col}
		assert.Equal(t, cost, g.EnterCost(c), "EnterCost(%v) kind=%v", c, g.Kind(c))
	}
	assert.Equal(t, 7, gridgraph.Manhattan(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 3, Col: -4}))
}

//----------------------------------------------------------------------------//
// Editing Tests
//----------------------------------------------------------------------------//

// TestToggle_Exclusivity asserts that a cell is never Wall and Weight at once.
func TestToggle_Exclusivity(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3, gridgraph.WithStart(gridgraph.Cell{}), gridgraph.WithEnd(gridgraph.Cell{Row: 2, Col: 2}))
	require.NoError(t, err)
	c := gridgraph.Cell{Row: 1, Col: 1}

	changed, err := g.ToggleWall(c)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, gridgraph.Wall, g.Kind(c))

	changed, err = g.ToggleWeight(c)
	require.NoError(t, err)
	assert.False(t, changed, "weight must not be painted over a wall")
	assert.Equal(t, gridgraph.Wall, g.Kind(c))

	changed, _ = g.ToggleWall(c)
	assert.True(t, changed)
	assert.Equal(t, gridgraph.Normal, g.Kind(c))

	changed, _ = g.ToggleWeight(c)
	assert.True(t, changed)
	assert.Equal(t, gridgraph.Weight, g.Kind(c))

	changed, _ = g.ToggleWall(c)
	assert.False(t, changed, "wall must not be painted over a weight")
}

// TestToggle_Roles asserts that Start and End never receive terrain.
func TestToggle_Roles(t *testing.T) {
	g := gridgraph.Default()
	for _, c := range []gridgraph.Cell{g.Start(), g.End()} {
		changed, err := g.ToggleWall(c)
		require.NoError(t, err)
		assert.False(t, changed)
		changed, _ = g.ToggleWeight(c)
		assert.False(t, changed)
		changed, _ = g.SetTerrain(c, gridgraph.Wall)
		assert.False(t, changed)
	}
	_, err := g.ToggleWall(gridgraph.Cell{Row: 99, Col: 0})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

// TestMoveStartEnd covers relocation, overlap refusal and terrain clearing.
func TestMoveStartEnd(t *testing.T) {
	g, err := gridgraph.FromRows([]string{"S#E"})
	require.NoError(t, err)
	wall := gridgraph.Cell{Row: 0, Col: 1}

	_, err = g.MoveStart(g.End())
	assert.ErrorIs(t, err, gridgraph.ErrStartEndOverlap)
	_, err = g.MoveEnd(g.Start())
	assert.ErrorIs(t, err, gridgraph.ErrStartEndOverlap)

	changed, err := g.MoveStart(wall)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, wall, g.Start())
	assert.Equal(t, gridgraph.Normal, g.Kind(gridgraph.Cell{Row: 0, Col: 0}))

	// moving Start away again must not resurrect the wall
	_, err = g.MoveStart(gridgraph.Cell{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Normal, g.Kind(wall))

	changed, err = g.MoveEnd(g.End())
	require.NoError(t, err)
	assert.False(t, changed)
}

// TestClearTerrain removes walls and weights but keeps roles.
func TestClearTerrain(t *testing.T) {
	g, err := gridgraph.FromRows([]string{"S#w", "w#E"})
	require.NoError(t, err)
	start, end := g.Start(), g.End()

	assert.True(t, g.ClearTerrain())
	assert.False(t, g.ClearTerrain())
	assert.Equal(t, []string{"S..", "..E"}, g.Rows())
	assert.Equal(t, start, g.Start())
	assert.Equal(t, end, g.End())
}

// TestClone_Independent ensures a clone does not share terrain.
func TestClone_Independent(t *testing.T) {
	g, err := gridgraph.FromRows([]string{"S..E"})
	require.NoError(t, err)
	cp := g.Clone()
	_, _ = cp.ToggleWall(gridgraph.Cell{Row: 0, Col: 1})
	assert.Equal(t, "S..E", g.String())
	assert.Equal(t, "S#.E", cp.String())
}

//----------------------------------------------------------------------------//
// Layout Tests
//----------------------------------------------------------------------------//

// TestFromRows_Errors verifies layout validation.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"Empty", nil, gridgraph.ErrEmptyGrid},
		{"EmptyRow", []string{""}, gridgraph.ErrEmptyGrid},
		{"Ragged", []string{"S.", "E"}, gridgraph.ErrNonRectangular},
		{"NoStart", []string{"..E"}, gridgraph.ErrMissingStart},
		{"NoEnd", []string{"S.."}, gridgraph.ErrMissingEnd},
		{"TwoStarts", []string{"S.S", "..E"}, gridgraph.ErrDuplicateStart},
		{"TwoEnds", []string{"S.E", "..E"}, gridgraph.ErrDuplicateEnd},
		{"Glyph", []string{"S?E"}, gridgraph.ErrUnknownGlyph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.FromRows(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromRows(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestFromRows_RoundTrip parses and re-renders a layout; 'W' normalizes to 'w'.
func TestFromRows_RoundTrip(t *testing.T) {
	g, err := gridgraph.FromRows([]string{
		"S.#W",
		".w#E",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"S.#w", ".w#E"}, g.Rows())
	assert.Equal(t, gridgraph.Weight, g.Kind(gridgraph.Cell{Row: 0, Col: 3}))
	assert.Equal(t, "wall", g.Kind(gridgraph.Cell{Row: 0, Col: 2}).String())
}
