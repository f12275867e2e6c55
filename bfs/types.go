// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridgraph.Grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnEnqueue is called when a cell is discovered and enqueued.
	// Receives the cell and its depth (steps from Start).
	OnEnqueue func(c gridgraph.Cell, depth int)

	// OnVisit is called when a cell is dequeued and appended to Visited.
	OnVisit func(c gridgraph.Cell, depth int)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks and no depth limit.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(gridgraph.Cell, int) {},
		OnVisit:   func(gridgraph.Cell, int) {},
		MaxDepth:  0,
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c gridgraph.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run when a cell is finalized.
func WithOnVisit(fn func(c gridgraph.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: cells deeper than d are never enqueued
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}
