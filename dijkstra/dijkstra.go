package dijkstra

import (
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// runner holds the per-run state of one Dijkstra search.
type runner struct {
	grid  *gridgraph.Grid
	opts  Options
	end   gridgraph.Cell
	dist  []int
	queue frontier.Priority[gridgraph.Cell]
	pred  search.Predecessors
	res   *search.Result
}

// Dijkstra runs uniform-cost search on g from start to end.
//
// Steps:
//  1. Validate input and options.
//  2. Seed every cell into the unvisited set; dist[start] = 0, others ∞.
//  3. Extract the minimum; stop on ∞ (Exhausted) or End (Found); skip walls.
//  4. Relax unvisited neighbors with strict improvement.
//  5. Reconstruct the path from predecessors.
//
// An unreachable End yields Outcome Exhausted with an empty Path; it is not an error.
func Dijkstra(g *gridgraph.Grid, start, end gridgraph.Cell, opts ...Option) (*search.Result, error) {
	if err := search.Validate(g, start, end); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &runner{
		grid: g,
		opts: o,
		end:  end,
		dist: make([]int, g.Len()),
		pred: make(search.Predecessors),
		res: &search.Result{
			Algorithm: search.Dijkstra,
			Outcome:   search.Unstarted,
			Start:     start,
			End:       end,
			Visited:   make([]gridgraph.Cell, 0, 64),
		},
	}
	for i := range r.dist {
		r.dist[i] = frontier.Infinity
	}
	r.dist[g.Index(start)] = 0
	r.queue = frontier.New[gridgraph.Cell](o.Frontier, r.key)
	r.queue.InsertAll(g.Cells())

	r.res.Outcome = search.Running
	r.loop()

	return r.res.Finish(g, r.pred), nil
}

// key reads the tentative distance of c.
func (r *runner) key(c gridgraph.Cell) int {
	return r.dist[r.grid.Index(c)]
}

// loop extracts cells until End is visited or nothing reachable remains.
func (r *runner) loop() {
	for {
		cur, d, ok := r.queue.ExtractMin()
		if !ok || d == frontier.Infinity || r.beyondCap(d) {
			r.res.Outcome = search.Exhausted
			return
		}
		if r.grid.Kind(cur) == gridgraph.Wall {
			continue
		}
		r.res.Visited = append(r.res.Visited, cur)
		r.opts.OnVisit(cur, d)
		if cur == r.end {
			r.res.Outcome = search.Found
			return
		}
		r.relax(cur, d)
	}
}

// relax lowers the distance of each neighbor still in the unvisited set.
func (r *runner) relax(cur gridgraph.Cell, d int) {
	for _, nb := range r.grid.AllNeighbors(cur) {
		if !r.queue.Contains(nb) {
			continue
		}
		alt := d + r.grid.EnterCost(nb)
		if alt < r.dist[r.grid.Index(nb)] {
			r.dist[r.grid.Index(nb)] = alt
			r.pred.Set(nb, cur)
			r.queue.Update(nb)
			r.opts.OnRelax(cur, nb, alt)
		}
	}
}

func (r *runner) beyondCap(d int) bool {
	return r.opts.MaxDistance > 0 && d > r.opts.MaxDistance
}
