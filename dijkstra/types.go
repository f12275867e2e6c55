// Package dijkstra defines the options and sentinel errors of uniform-cost search.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadFrontier indicates a frontier kind other than Scan or Heap.
	ErrBadFrontier = errors.New("dijkstra: unknown frontier kind")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Frontier    – which frontier.Priority backs the unvisited set.
// MaxDistance – if > 0, cells whose distance would exceed it are never visited.
//
//	0 means no cap.
//
// OnVisit     – called once per visited cell with its final distance.
// OnRelax     – called when dist[to] improves via from.
type Options struct {
	Frontier    frontier.Kind
	MaxDistance int
	OnVisit     func(c gridgraph.Cell, dist int)
	OnRelax     func(from, to gridgraph.Cell, dist int)

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns the reference configuration: linear-scan frontier,
// no distance cap and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Frontier:    frontier.Scan,
		MaxDistance: 0,
		OnVisit:     func(gridgraph.Cell, int) {},
		OnRelax:     func(gridgraph.Cell, gridgraph.Cell, int) {},
	}
}

// WithFrontier selects the unvisited-set implementation.
func WithFrontier(kind frontier.Kind) Option {
	return func(o *Options) {
		if kind != frontier.Scan && kind != frontier.Heap {
			o.err = fmt.Errorf("%w: %v", ErrBadFrontier, kind)
			return
		}
		o.Frontier = kind
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance exceeds this value are not visited and the run
// ends as Exhausted once only such cells remain.
func WithMaxDistance(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, limit)
			return
		}
		o.MaxDistance = limit
	}
}

// WithOnVisit registers a callback to run when a cell is finalized.
func WithOnVisit(fn func(c gridgraph.Cell, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnRelax registers a callback to run after each successful relaxation.
func WithOnRelax(fn func(from, to gridgraph.Cell, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
