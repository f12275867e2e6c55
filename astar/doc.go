// Package astar implements A* search over a gridgraph.Grid.
//
// A* is Dijkstra with a goal bias: the unvisited set is ordered by
//
//	f(cell) = g(cell) + h(cell, End)
//
// where g is the accumulated entry cost from Start and h defaults to the
// Manhattan distance. Ties on f go to the cell inserted first (row-major order).
//
// Loop:
//
//   - Extract the cell with the smallest f. If its g is ∞, nothing reachable is
//     left and the run is Exhausted.
//   - A Wall is discarded without being visited or relaxed.
//   - Extracting End finishes the run (Found).
//   - Every in-bounds neighbor is relaxed with g[cur] + EnterCost(neighbor); on a
//     strict improvement its predecessor, g and f are replaced.
//
// Optimality:
//
//   - With unit costs everywhere, A* returns a path as cheap as Dijkstra's, usually
//     after visiting far fewer cells.
//   - The heuristic assumes unit steps. A* makes no optimality promise when Weight
//     cells lie on competing routes; the behavior is kept as is. Pass WithHeuristic
//     to experiment with other estimates.
//
// Complexity:
//
//   - Scan frontier: O(V²), heap frontier: O((V + E) log V), V = Height×Width.
//   - Space: O(V).
//
// Errors:
//
//   - search.ErrGridNil, search.ErrStartOutOfBounds, search.ErrEndOutOfBounds.
//   - ErrOptionViolation for an unknown frontier kind or a nil heuristic.
package astar
