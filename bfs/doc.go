// Package bfs provides breadth-first search over a gridgraph.Grid, producing the
// finalize order of every explored cell and the fewest-steps route to End.
//
// What
//
//   - Explore cells in non-decreasing step count from Start.
//   - Walls are treated as nonexistent: only OpenNeighbors are ever enqueued.
//   - Weights are ignored entirely. BFS is cost-blind; Result.Cost still reports the
//     weighted cost of the route it picked so it can be compared with Dijkstra.
//   - Returns a *search.Result:
//   - Visited: dequeue order (exactly BFS level order)
//   - Path:    Start→End, shortest by cell count, or empty
//   - Outcome: Found or Exhausted
//   - Supports hooks at two stages:
//   - OnEnqueue (when a cell is discovered)
//   - OnVisit   (when a cell is dequeued and finalized)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are enqueued in the fixed order up, down, left, right, so the visit
//	sequence is fully reproducible for a given board.
//
// Complexity (V = W×H cells)
//
//   - Time:   O(V)   (each cell enqueued at most once, at most 4 neighbors each)
//   - Memory: O(V)   (queue, seen flags, predecessor map)
//
// Usage
//
//	res, err := bfs.BFS(g, g.Start(), g.End())
//	if err != nil {
//	    // ErrGridNil, ErrStartOutOfBounds, ErrEndOutOfBounds (package search) or ErrOptionViolation
//	}
//	if res.Found() {
//	    fmt.Println(res.Path)
//	}
//
// Options
//
//   - DefaultOptions(): no-op hooks, no depth limit.
//   - WithOnEnqueue(fn): hook when a cell is discovered.
//   - WithOnVisit(fn):   hook when a cell is finalized.
//   - WithMaxDepth(d):   stop expanding beyond depth d (>0).
package bfs
