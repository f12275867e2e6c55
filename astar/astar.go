package astar

import (
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// runner holds the per-run state of one A* search.
type runner struct {
	grid  *gridgraph.Grid
	opts  Options
	end   gridgraph.Cell
	g, f  []int
	queue frontier.Priority[gridgraph.Cell]
	pred  search.Predecessors
	res   *search.Result
}

// AStar runs A* on grid from start to end.
// g[start] = 0 and f[start] = h(start, end); every other cell starts at ∞.
// An unreachable End yields Outcome Exhausted with an empty Path.
func AStar(grid *gridgraph.Grid, start, end gridgraph.Cell, opts ...Option) (*search.Result, error) {
	if err := search.Validate(grid, start, end); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := grid.Len()
	r := &runner{
		grid: grid,
		opts: o,
		end:  end,
		g:    make([]int, n),
		f:    make([]int, n),
		pred: make(search.Predecessors),
		res: &search.Result{
			Algorithm: search.AStar,
			Outcome:   search.Unstarted,
			Start:     start,
			End:       end,
			Visited:   make([]gridgraph.Cell, 0, 64),
		},
	}
	for i := 0; i < n; i++ {
		r.g[i], r.f[i] = frontier.Infinity, frontier.Infinity
	}
	si := grid.Index(start)
	r.g[si] = 0
	r.f[si] = o.Heuristic(start, end)
	r.queue = frontier.New[gridgraph.Cell](o.Frontier, r.key)
	r.queue.InsertAll(grid.Cells())

	r.res.Outcome = search.Running
	r.loop()

	return r.res.Finish(grid, r.pred), nil
}

// key reads the f score of c.
func (r *runner) key(c gridgraph.Cell) int {
	return r.f[r.grid.Index(c)]
}

func (r *runner) loop() {
	for {
		cur, _, ok := r.queue.ExtractMin()
		if !ok {
			r.res.Outcome = search.Exhausted
			return
		}
		ci := r.grid.Index(cur)
		if r.g[ci] == frontier.Infinity {
			r.res.Outcome = search.Exhausted
			return
		}
		if r.grid.Kind(cur) == gridgraph.Wall {
			continue
		}
		r.res.Visited = append(r.res.Visited, cur)
		r.opts.OnVisit(cur, r.g[ci], r.f[ci])
		if cur == r.end {
			r.res.Outcome = search.Found
			return
		}
		r.relax(cur)
	}
}

// relax considers every in-bounds neighbor, visited or not. Improving a visited
// cell only rewrites its predecessor; it is never extracted again.
func (r *runner) relax(cur gridgraph.Cell) {
	gc := r.g[r.grid.Index(cur)]
	for _, nb := range r.grid.AllNeighbors(cur) {
		ni := r.grid.Index(nb)
		tentative := gc + r.grid.EnterCost(nb)
		if tentative >= r.g[ni] {
			continue
		}
		r.pred.Set(nb, cur)
		r.g[ni] = tentative
		r.f[ni] = tentative + r.opts.Heuristic(nb, r.end)
		r.queue.Update(nb)
	}
}
