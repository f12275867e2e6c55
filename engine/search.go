package engine

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Search runs alg on g from its Start to its End. kind selects the frontier of
// the weighted searches and is ignored by BFS.
func Search(g *gridgraph.Grid, alg search.Algorithm, kind frontier.Kind) (*search.Result, error) {
	if g == nil {
		return nil, search.ErrGridNil
	}
	switch alg {
	case search.BFS:
		return bfs.BFS(g, g.Start(), g.End())
	case search.Dijkstra:
		return dijkstra.Dijkstra(g, g.Start(), g.End(), dijkstra.WithFrontier(kind))
	case search.AStar:
		return astar.AStar(g, g.Start(), g.End(), astar.WithFrontier(kind))
	default:
		return nil, fmt.Errorf("%w: %q", search.ErrUnknownAlgorithm, string(alg))
	}
}
