package game

// Snapshot is a read-only copy of a game for rendering
type Snapshot struct {
	Width      int
	Height     int
	Body       []Cell // oldest first, head last
	Head       Cell
	Food       Cell
	HasFood    bool
	Direction  Direction
	Growth     int
	Score      int
	Terminated bool
	Cause      Cause
}

// Snapshot copies the current state out
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Width:      s.grid.Width,
		Height:     s.grid.Height,
		Body:       s.body.cells(),
		Head:       s.body.head(),
		Food:       s.food,
		HasFood:    s.hasFood,
		Direction:  s.dir,
		Growth:     s.growth,
		Score:      s.body.len(),
		Terminated: s.cause != CauseNone,
		Cause:      s.cause,
	}
}

// Occupied reports whether the cell belongs to the snake
func (s *State) Occupied(c Cell) bool {
	return s.body.contains(c)
}
