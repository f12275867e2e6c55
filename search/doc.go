// Package search holds the contract shared by the bfs, dijkstra and astar packages:
// the Result every run produces, the Outcome state machine, the predecessor map and
// the path reconstruction that turns it into a Start→End route.
//
// Result
//
//   - Visited: cells in the order they were finalized (dequeued or extracted).
//     Walls never appear here. The slice is owned by the Result and is never
//     shared across runs.
//   - Path: Start→End route, or empty when End was not reached.
//   - Cost: sum of EnterCost over Path[1:]; 0 for an empty or single-cell path.
//
// Outcome
//
//	Unstarted → Running → {Found, Exhausted}
//
// Exhausted is a normal outcome, not an error: the frontier ran dry without
// finalizing End and Visited still lists everything that was explored.
//
// Errors
//
//   - ErrGridNil           the grid pointer is nil.
//   - ErrStartOutOfBounds  the start cell is off the board.
//   - ErrEndOutOfBounds    the end cell is off the board.
//   - ErrUnknownAlgorithm  ParseAlgorithm received an unsupported name.
package search
