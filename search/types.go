// Package search defines the result, outcome and algorithm types shared by the
// grid searches.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for search input validation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell is off the board.
	ErrStartOutOfBounds = errors.New("search: start cell out of bounds")

	// ErrEndOutOfBounds is returned when the end cell is off the board.
	ErrEndOutOfBounds = errors.New("search: end cell out of bounds")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm for unsupported names.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm names a search strategy.
type Algorithm string

const (
	// BFS is breadth-first search; cost-blind.
	BFS Algorithm = "bfs"
	// Dijkstra is uniform-cost search.
	Dijkstra Algorithm = "dijkstra"
	// AStar is A* with the Manhattan heuristic.
	AStar Algorithm = "astar"
)

// Algorithms lists every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, Dijkstra, AStar}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// "a*" and "a-star" are accepted as aliases of "astar".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Outcome is the state of a search run.
type Outcome int

const (
	// Unstarted is the zero state, before the frontier is seeded.
	Unstarted Outcome = iota
	// Running means the frontier is being expanded.
	Running
	// Found means End was finalized.
	Found
	// Exhausted means the frontier emptied, or only unreachable cells remained.
	Exhausted
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Unstarted:
		return "unstarted"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the complete output of one search run.
type Result struct {
	Algorithm Algorithm
	Outcome   Outcome
	Start     gridgraph.Cell
	End       gridgraph.Cell
	Visited   []gridgraph.Cell
	Path      []gridgraph.Cell
	Cost      int
}

// Found reports whether End was reached.
func (r *Result) Found() bool {
	return r.Outcome == Found
}

// PathLen returns the number of cells on the path.
func (r *Result) PathLen() int {
	return len(r.Path)
}

// Validate checks the common preconditions of every search entry point.
func Validate(g *gridgraph.Grid, start, end gridgraph.Cell) error {
	if g == nil {
		return ErrGridNil
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return fmt.Errorf("%w: %v", ErrEndOutOfBounds, end)
	}

	return nil
}
