package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("astar: invalid option supplied")

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b gridgraph.Cell) int

// Options customizes one A* run.
type Options struct {
	// Frontier selects the unvisited-set implementation.
	Frontier frontier.Kind

	// Heuristic estimates the cost to End; gridgraph.Manhattan by default.
	Heuristic Heuristic

	// OnVisit is called for each visited cell with its g and f scores.
	OnVisit func(c gridgraph.Cell, g, f int)

	err error
}

// Option configures A* via functional arguments.
type Option func(*Options)

// DefaultOptions returns the scan frontier, the Manhattan heuristic and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Frontier:  frontier.Scan,
		Heuristic: gridgraph.Manhattan,
		OnVisit:   func(gridgraph.Cell, int, int) {},
	}
}

// WithFrontier selects the unvisited-set implementation.
func WithFrontier(kind frontier.Kind) Option {
	return func(o *Options) {
		if kind != frontier.Scan && kind != frontier.Heap {
			o.err = fmt.Errorf("%w: unknown frontier %v", ErrOptionViolation, kind)
			return
		}
		o.Frontier = kind
	}
}

// WithHeuristic replaces the Manhattan estimate. A nil heuristic is rejected.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithOnVisit registers a callback to run when a cell is finalized.
func WithOnVisit(fn func(c gridgraph.Cell, g, f int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
