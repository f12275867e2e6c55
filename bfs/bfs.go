// Package bfs provides breadth-first search over a gridgraph.Grid.
//
// BFS explores cells in increasing step count from Start, with optional
// hooks and depth limiting, and stops as soon as End is dequeued.
package bfs

import (
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  gridgraph.Cell
	depth int
}

// walker encapsulates mutable BFS state for one run.
type walker struct {
	grid  *gridgraph.Grid
	opts  Options
	end   gridgraph.Cell
	queue *frontier.Queue[queueItem]
	seen  []bool
	pred  search.Predecessors
	res   *search.Result
}

// BFS runs breadth-first search on g from start until end is dequeued or the
// queue empties, applying any number of functional Options.
// Returns search.ErrGridNil, search.ErrStartOutOfBounds or search.ErrEndOutOfBounds
// for invalid input and ErrOptionViolation for bad options. Failing to reach end is
// reported as Outcome Exhausted, never as an error.
func BFS(g *gridgraph.Grid, start, end gridgraph.Cell, opts ...Option) (*search.Result, error) {
	if err := search.Validate(g, start, end); err != nil {
		return nil, err
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		grid:  g,
		opts:  o,
		end:   end,
		queue: frontier.NewQueue[queueItem](),
		seen:  make([]bool, g.Len()),
		pred:  make(search.Predecessors),
		res: &search.Result{
			Algorithm: search.BFS,
			Outcome:   search.Unstarted,
			Start:     start,
			End:       end,
			Visited:   make([]gridgraph.Cell, 0, 64),
		},
	}

	// Seed queue with start (no predecessor)
	w.enqueue(start, 0)
	w.res.Outcome = search.Running
	w.loop()

	return w.res.Finish(g, w.pred), nil
}

// enqueue marks c seen, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(c gridgraph.Cell, depth int) {
	w.seen[w.grid.Index(c)] = true
	w.opts.OnEnqueue(c, depth)
	w.queue.Enqueue(queueItem{cell: c, depth: depth})
}

// loop processes the queue until End is dequeued or the queue is empty.
func (w *walker) loop() {
	for {
		item, ok := w.queue.Dequeue()
		if !ok {
			w.res.Outcome = search.Exhausted
			return
		}
		w.visit(item)
		if item.cell == w.end {
			w.res.Outcome = search.Found
			return
		}
		w.enqueueNeighbors(item)
	}
}

// visit records the cell in Visited and calls OnVisit.
func (w *walker) visit(item queueItem) {
	w.res.Visited = append(w.res.Visited, item.cell)
	w.opts.OnVisit(item.cell, item.depth)
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen open neighbor,
// recording the current cell as its predecessor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.OpenNeighbors(item.cell) {
		if w.seen[w.grid.Index(nbr)] {
			continue
		}
		w.pred.Set(nbr, item.cell)
		w.enqueue(nbr, nextDepth)
	}
}
