// Package gridpath is a grid pathfinding engine: a board of open, wall and
// weight cells, three classic searches over it, and the feed a visualizer
// needs to animate them.
//
// What is inside?
//
//	gridgraph/ — the board: cells, terrain, Start/End, neighbors, edits, text layouts
//	frontier/  — FIFO queue and min-extraction sets (linear scan and indexed heap)
//	search/    — Result, Outcome, algorithm names, path reconstruction and cost
//	bfs/       — breadth-first search, cost-blind shortest path by step count
//	dijkstra/  — uniform-cost search, cheapest path under the weight model
//	astar/     — A* with the Manhattan heuristic
//	visual/    — reveal steps, timing and the visited/path overlay
//	engine/    — a Session: one board, one run at a time, edits ignored mid-run
//	config/    — YAML configuration
//	protocol/  — websocket JSON messages and their JSON Schema
//	server/    — websocket server, one Session per connection
//	render/    — PNG snapshots
//	cmd/gridpath — CLI: run, serve, schema
//
// Cost model:
//
//	Entering a Weight cell costs 10, any other cell costs 1. Walls are never
//	entered. Neighbors are the four orthogonal cells, in the order up, down,
//	left, right; that order and row-major tie-breaking make every run
//	deterministic.
//
// Quick example:
//
//	g, _ := gridgraph.FromRows([]string{
//	    "S.#.",
//	    ".w#E",
//	    "....",
//	})
//	res, _ := dijkstra.Dijkstra(g, g.Start(), g.End())
//	fmt.Println(res.Outcome, res.Cost, res.Path)
package gridpath
