package bfs_test

import (
	"errors"
	"math/rand"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/gridtest"
	"github.com/katalvlaran/gridpath/search"
)

func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }

func mustRows(t *testing.T, rows ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromRows(rows)
	require.NoError(t, err)
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, cell(0, 0), cell(0, 1)); !errors.Is(err, search.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	g := gridgraph.Default()
	if _, err := bfs.BFS(g, cell(-1, 0), g.End()); !errors.Is(err, search.ErrStartOutOfBounds) {
		t.Errorf("bad start: want ErrStartOutOfBounds, got %v", err)
	}
	if _, err := bfs.BFS(g, g.Start(), cell(25, 0)); !errors.Is(err, search.ErrEndOutOfBounds) {
		t.Errorf("bad end: want ErrEndOutOfBounds, got %v", err)
	}
	if _, err := bfs.BFS(g, g.Start(), g.End(), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_Line covers the literal 1×5 scenario: path and visit order are the row itself.
func TestBFS_Line(t *testing.T) {
	g := mustRows(t, "S...E")
	res, err := bfs.BFS(g, g.Start(), g.End())
	require.NoError(t, err)

	want := []gridgraph.Cell{cell(0, 0), cell(0, 1), cell(0, 2), cell(0, 3), cell(0, 4)}
	assert.Equal(t, search.Found, res.Outcome)
	assert.Equal(t, want, res.Path)
	assert.Equal(t, want, res.Visited)
	assert.Equal(t, 4, res.Cost)
	assert.Equal(t, search.BFS, res.Algorithm)
}

// TestBFS_CornerBlocked covers the literal 3×3 scenario with both exits of Start walled.
func TestBFS_CornerBlocked(t *testing.T) {
	g := mustRows(t,
		"S#.",
		"#..",
		"..E",
	)
	res, err := bfs.BFS(g, g.Start(), g.End())
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, res.Outcome)
	assert.Empty(t, res.Path)
	assert.Equal(t, []gridgraph.Cell{g.Start()}, res.Visited)
}

// TestBFS_Enclosed: a Start walled on all four sides visits only itself.
func TestBFS_Enclosed(t *testing.T) {
	g := mustRows(t,
		".#...",
		"#S#..",
		".#..E",
	)
	res, err := bfs.BFS(g, g.Start(), g.End())
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, res.Outcome)
	assert.Equal(t, []gridgraph.Cell{g.Start()}, res.Visited)
	assert.Empty(t, res.Path)
	assert.Zero(t, res.Cost)
}

// TestBFS_StartIsEnd: the degenerate run finishes at once with a one-cell path.
func TestBFS_StartIsEnd(t *testing.T) {
	g := mustRows(t, "S.E")
	res, err := bfs.BFS(g, g.Start(), g.Start())
	require.NoError(t, err)
	assert.Equal(t, search.Found, res.Outcome)
	assert.Equal(t, []gridgraph.Cell{g.Start()}, res.Path)
	assert.Equal(t, []gridgraph.Cell{g.Start()}, res.Visited)
}

// TestBFS_IgnoresWeights: BFS walks straight through a weight when a cheaper detour exists.
func TestBFS_IgnoresWeights(t *testing.T) {
	g := mustRows(t,
		"SwE",
		"...",
	)
	res, err := bfs.BFS(g, g.Start(), g.End())
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{cell(0, 0), cell(0, 1), cell(0, 2)}, res.Path)
	assert.Equal(t, 11, res.Cost)
}

// TestBFS_NeverVisitsWalls checks that walls are neither visited nor routed through.
func TestBFS_NeverVisitsWalls(t *testing.T) {
	g := mustRows(t,
		"S.#..",
		".##.E",
		".....",
	)
	res, err := bfs.BFS(g, g.Start(), g.End())
	require.NoError(t, err)
	for _, c := range res.Visited {
		assert.NotEqual(t, gridgraph.Wall, g.Kind(c), "visited wall %v", c)
	}
	assert.True(t, gridtest.IsRoute(g, res.Path, g.Start(), g.End()))
}

// TestBFS_OpenBoardManhattan: without walls the path has Manhattan+1 cells.
func TestBFS_OpenBoardManhattan(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		g := gridtest.Random(r, 1+r.Intn(12), 2+r.Intn(12), 0, 20)
		res, err := bfs.BFS(g, g.Start(), g.End())
		require.NoError(t, err)
		require.True(t, res.Found())
		require.Equal(t, gridgraph.Manhattan(g.Start(), g.End())+1, res.PathLen(), "board:\n%s", g)
	}
}

// TestBFS_ShortestByCellCount compares against the exhaustive unit-cost oracle.
func TestBFS_ShortestByCellCount(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		g := gridtest.Random(r, 3+r.Intn(8), 3+r.Intn(8), 30, 10)
		res, err := bfs.BFS(g, g.Start(), g.End())
		require.NoError(t, err)

		ref := gridtest.MinCost(g, g.Start(), true)[g.Index(g.End())]
		if ref == gridtest.Unreachable {
			require.Equal(t, search.Exhausted, res.Outcome, "board:\n%s", g)
			require.Empty(t, res.Path)
			continue
		}
		require.Equal(t, search.Found, res.Outcome, "board:\n%s", g)
		require.Equal(t, ref+1, res.PathLen(), "board:\n%s", g)
		require.True(t, gridtest.IsRoute(g, res.Path, g.Start(), g.End()))
		require.Equal(t, g.End(), res.Visited[len(res.Visited)-1])
	}
}

// TestBFS_Idempotent: two runs on an unmodified board are identical.
func TestBFS_Idempotent(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	g := gridtest.Random(r, 25, 40, 25, 10)
	a, err := bfs.BFS(g, g.Start(), g.End())
	require.NoError(t, err)
	b, err := bfs.BFS(g, g.Start(), g.End())
	require.NoError(t, err)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("runs differ:\n%v\n%v", a, b)
	}
}

// TestBFS_MaxDepth limits the frontier to the given step count.
func TestBFS_MaxDepth(t *testing.T) {
	g := mustRows(t, "S...E")
	res, err := bfs.BFS(g, g.Start(), g.End(), bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, res.Outcome)
	assert.Equal(t, []gridgraph.Cell{cell(0, 0), cell(0, 1), cell(0, 2)}, res.Visited)

	res, err = bfs.BFS(g, g.Start(), g.End(), bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.True(t, res.Found())
}

// TestBFS_Hooks asserts that hooks fire in level order with depths.
func TestBFS_Hooks(t *testing.T) {
	g := mustRows(t, "S..E")
	var enq, vis []string
	entry := func(c gridgraph.Cell, d int) string { return c.String() + "@" + strconv.Itoa(d) }

	_, err := bfs.BFS(g, g.Start(), g.End(),
		bfs.WithOnEnqueue(func(c gridgraph.Cell, d int) { enq = append(enq, entry(c, d)) }),
		bfs.WithOnVisit(func(c gridgraph.Cell, d int) { vis = append(vis, entry(c, d)) }),
	)
	require.NoError(t, err)
	want := []string{"(0,0)@0", "(0,1)@1", "(0,2)@2", "(0,3)@3"}
	assert.Equal(t, want, enq)
	assert.Equal(t, want, vis)
}
