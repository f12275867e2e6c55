// Package dijkstra implements uniform-cost search over a gridgraph.Grid.
//
// Overview:
//
//   - Every cell starts in the unvisited set, in row-major order, with distance ∞;
//     Start has distance 0.
//   - The cell with the smallest distance is extracted next; ties go to the cell
//     inserted first, so the visit order is fully deterministic.
//   - An extracted Wall is discarded: it is neither visited nor relaxed.
//   - Extracting End finishes the run (Found). Extracting a cell whose distance is
//     still ∞ means every remaining cell is unreachable (Exhausted).
//   - Each neighbor still in the unvisited set is relaxed with
//     dist[cur] + EnterCost(neighbor), replacing its distance only when strictly smaller.
//
// Cost model:
//
//   - Entering a Weight cell costs 10, any other cell costs 1. Walls receive a finite
//     tentative distance during relaxation but are dropped once extracted, so a path
//     never crosses them.
//
// Frontier:
//
//   - WithFrontier(frontier.Scan) uses the linear-scan MinSet (the reference behavior).
//   - WithFrontier(frontier.Heap) uses the indexed MinHeap. Both produce identical
//     Visited and Path sequences.
//
// Complexity:
//
//   - Scan:  O(V²) time, where V = Height×Width.
//   - Heap:  O((V + E) log V) time, E ≤ 4V.
//   - Space: O(V) for distances, predecessors and the frontier.
//
// Options:
//
//   - WithFrontier:    frontier implementation (default frontier.Scan).
//   - WithMaxDistance: stop once the cheapest unvisited distance exceeds the cap.
//   - WithOnVisit:     called for every visited cell with its final distance.
//   - WithOnRelax:     called for every successful relaxation.
//
// Errors (sentinel):
//
//   - search.ErrGridNil, search.ErrStartOutOfBounds, search.ErrEndOutOfBounds for bad input.
//   - ErrBadMaxDistance if MaxDistance < 0.
//   - ErrBadFrontier for an unknown frontier kind.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, g.Start(), g.End(), dijkstra.WithFrontier(frontier.Heap))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Outcome, res.Cost, res.Path)
package dijkstra
