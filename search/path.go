package search

import "github.com/katalvlaran/gridpath/gridgraph"

// Predecessors maps a cell to the cell it was reached from.
// The start cell has no entry: its predecessor is "none".
type Predecessors map[gridgraph.Cell]gridgraph.Cell

// Set records parent as the predecessor of c.
func (p Predecessors) Set(c, parent gridgraph.Cell) {
	p[c] = parent
}

// Parent returns the predecessor of c; ok is false for the start cell
// and for cells never reached.
func (p Predecessors) Parent(c gridgraph.Cell) (parent gridgraph.Cell, ok bool) {
	parent, ok = p[c]
	return parent, ok
}

// ReconstructPath walks predecessor links backward from end until it reaches a
// cell with no predecessor, then reverses the walk into Start→End order.
//
// Returns:
//   - [start] when start == end.
//   - nil when end has no recorded predecessor (End was never reached).
//   - nil when the walk does not terminate at start, or is longer than the map
//     could possibly describe; a corrupt map never loops forever.
func ReconstructPath(pred Predecessors, start, end gridgraph.Cell) []gridgraph.Cell {
	if start == end {
		return []gridgraph.Cell{start}
	}
	if _, ok := pred[end]; !ok {
		return nil
	}

	// build reversed path
	path := make([]gridgraph.Cell, 0, 16)
	limit := len(pred) + 1
	for cur := end; ; {
		path = append(path, cur)
		if len(path) > limit {
			return nil
		}
		prev, ok := pred[cur]
		if !ok {
			break
		}
		cur = prev
	}
	if path[len(path)-1] != start {
		return nil
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathCost sums EnterCost over every step of path, i.e. over path[1:].
// The first cell is where the walker already stands and costs nothing.
func PathCost(g *gridgraph.Grid, path []gridgraph.Cell) int {
	cost := 0
	for i := 1; i < len(path); i++ {
		cost += g.EnterCost(path[i])
	}

	return cost
}

// Finish fills Path and Cost from pred according to the outcome of the run.
// Path stays empty unless the outcome is Found.
func (r *Result) Finish(g *gridgraph.Grid, pred Predecessors) *Result {
	if r.Outcome != Found {
		r.Path = []gridgraph.Cell{}
		r.Cost = 0
		return r
	}
	r.Path = ReconstructPath(pred, r.Start, r.End)
	r.Cost = PathCost(g, r.Path)

	return r
}
