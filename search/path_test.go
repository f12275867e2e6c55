package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }

// TestReconstructPath_Chain walks a straight predecessor chain.
func TestReconstructPath_Chain(t *testing.T) {
	pred := search.Predecessors{}
	pred.Set(cell(0, 1), cell(0, 0))
	pred.Set(cell(0, 2), cell(0, 1))
	pred.Set(cell(1, 2), cell(0, 2))

	got := search.ReconstructPath(pred, cell(0, 0), cell(1, 2))
	assert.Equal(t, []gridgraph.Cell{cell(0, 0), cell(0, 1), cell(0, 2), cell(1, 2)}, got)

	parent, ok := pred.Parent(cell(0, 2))
	assert.True(t, ok)
	assert.Equal(t, cell(0, 1), parent)
	_, ok = pred.Parent(cell(0, 0))
	assert.False(t, ok, "start has no predecessor")
}

// TestReconstructPath_Degenerate covers start==end and an unreached end.
func TestReconstructPath_Degenerate(t *testing.T) {
	pred := search.Predecessors{}
	assert.Equal(t, []gridgraph.Cell{cell(3, 3)}, search.ReconstructPath(pred, cell(3, 3), cell(3, 3)))
	assert.Empty(t, search.ReconstructPath(pred, cell(0, 0), cell(3, 3)))
}

// TestReconstructPath_Corrupt ensures cycles and foreign roots never loop or leak.
func TestReconstructPath_Corrupt(t *testing.T) {
	cyclic := search.Predecessors{}
	cyclic.Set(cell(0, 1), cell(0, 2))
	cyclic.Set(cell(0, 2), cell(0, 1))
	assert.Empty(t, search.ReconstructPath(cyclic, cell(0, 0), cell(0, 2)))

	foreign := search.Predecessors{}
	foreign.Set(cell(0, 2), cell(0, 1)) // chain ends at (0,1), not at start
	assert.Empty(t, search.ReconstructPath(foreign, cell(0, 0), cell(0, 2)))
}

// TestPathCost sums entry costs after the first cell.
func TestPathCost(t *testing.T) {
	g, err := gridgraph.FromRows([]string{"S.w.E"})
	require.NoError(t, err)
	path := []gridgraph.Cell{cell(0, 0), cell(0, 1), cell(0, 2), cell(0, 3), cell(0, 4)}
	assert.Equal(t, 13, search.PathCost(g, path))
	assert.Equal(t, 0, search.PathCost(g, path[:1]))
	assert.Equal(t, 0, search.PathCost(g, nil))
}

// TestResultFinish fills the path only for Found outcomes.
func TestResultFinish(t *testing.T) {
	g, err := gridgraph.FromRows([]string{"SE"})
	require.NoError(t, err)
	pred := search.Predecessors{}
	pred.Set(g.End(), g.Start())

	res := (&search.Result{Outcome: search.Found, Start: g.Start(), End: g.End()}).Finish(g, pred)
	assert.True(t, res.Found())
	assert.Equal(t, 2, res.PathLen())
	assert.Equal(t, 1, res.Cost)

	res = (&search.Result{Outcome: search.Exhausted, Start: g.Start(), End: g.End()}).Finish(g, pred)
	assert.False(t, res.Found())
	assert.NotNil(t, res.Path)
	assert.Empty(t, res.Path)
	assert.Zero(t, res.Cost)
}

// TestValidate covers the shared precondition checks.
func TestValidate(t *testing.T) {
	g := gridgraph.Default()
	assert.ErrorIs(t, search.Validate(nil, cell(0, 0), cell(0, 1)), search.ErrGridNil)
	assert.ErrorIs(t, search.Validate(g, cell(-1, 0), cell(0, 1)), search.ErrStartOutOfBounds)
	assert.ErrorIs(t, search.Validate(g, cell(0, 0), cell(0, 40)), search.ErrEndOutOfBounds)
	assert.NoError(t, search.Validate(g, g.Start(), g.End()))
}

// TestParseAlgorithm covers names and aliases.
func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]search.Algorithm{
		"bfs": search.BFS, "Dijkstra": search.Dijkstra, "astar": search.AStar, "A*": search.AStar, " a-star ": search.AStar,
	} {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := search.ParseAlgorithm("greedy")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Len(t, search.Algorithms(), 3)
	assert.Equal(t, "exhausted", search.Exhausted.String())
}
