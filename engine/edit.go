package engine

import "github.com/katalvlaran/gridpath/gridgraph"

// edit applies fn to the board unless a run is in flight.
func (s *Session) edit(fn func(g *gridgraph.Grid) (bool, error)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false, nil
	}

	return fn(s.grid)
}

// ToggleWall flips c between Normal and Wall. Start, End and Weight cells are left alone.
func (s *Session) ToggleWall(c gridgraph.Cell) (bool, error) {
	return s.edit(func(g *gridgraph.Grid) (bool, error) { return g.ToggleWall(c) })
}

// ToggleWeight flips c between Normal and Weight. Start, End and Wall cells are left alone.
func (s *Session) ToggleWeight(c gridgraph.Cell) (bool, error) {
	return s.edit(func(g *gridgraph.Grid) (bool, error) { return g.ToggleWeight(c) })
}

// MoveStart relocates Start to c.
func (s *Session) MoveStart(c gridgraph.Cell) (bool, error) {
	return s.edit(func(g *gridgraph.Grid) (bool, error) { return g.MoveStart(c) })
}

// MoveEnd relocates End to c.
func (s *Session) MoveEnd(c gridgraph.Cell) (bool, error) {
	return s.edit(func(g *gridgraph.Grid) (bool, error) { return g.MoveEnd(c) })
}

// ClearPath removes every visited and path mark, keeping the terrain.
func (s *Session) ClearPath() bool {
	changed, _ := s.edit(func(*gridgraph.Grid) (bool, error) {
		had := !s.marks.Empty()
		s.marks.Clear()
		return had, nil
	})

	return changed
}

// ClearBoard removes every mark, wall and weight. Start and End stay put.
func (s *Session) ClearBoard() bool {
	changed, _ := s.edit(func(g *gridgraph.Grid) (bool, error) {
		had := !s.marks.Empty()
		s.marks.Clear()
		return g.ClearTerrain() || had, nil
	})

	return changed
}
