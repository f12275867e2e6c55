// Package gridgraph models the board a pathfinding run is played on: a fixed
// Height×Width rectangle of cells, each carrying a terrain class and possibly the
// Start or End role.
//
// What:
//
//   - Cell is a (Row, Col) value; two cells are the same cell iff their coordinates match.
//   - Kind is one of Normal, Wall, Weight, Start, End.
//   - Grid owns the terrain of every cell plus the single Start and single End.
//   - OpenNeighbors / AllNeighbors give the 4-connected neighborhood (up, down, left, right),
//     with or without walls. Out-of-bounds positions are filtered silently.
//   - ToggleWall, ToggleWeight, MoveStart, MoveEnd, ClearTerrain mutate the board in place.
//   - FromRows / String round-trip a plain text layout.
//
// Cost model:
//
//   - Entering a Weight cell costs WeightCost (10); entering any other cell costs UnitCost (1).
//   - Walls are never traversable. Start and End are never Wall or Weight.
//
// Text layout glyphs:
//
//	'.' Normal   '#' Wall   'w'/'W' Weight   'S' Start   'E' End
//
// Complexity:
//
//   - Neighbor queries, Kind, EnterCost: O(1).
//   - NewGrid, Clone, ClearTerrain, String: O(W×H).
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: height or width is not positive.
//   - ErrNonRectangular: layout rows of differing lengths.
//   - ErrOutOfBounds: a cell outside the board was addressed.
//   - ErrStartEndOverlap: Start and End would share a cell.
//   - ErrMissingStart / ErrMissingEnd / ErrDuplicateStart / ErrDuplicateEnd: bad layout roles.
//   - ErrUnknownGlyph: a layout character outside the glyph table.
package gridgraph
