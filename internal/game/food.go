package game

// rejectionLimit bounds the random attempts before placement falls back to
// enumerating the free cells, which only matters on a nearly full board.
const rejectionLimit = 64

func (s *State) placeFood() {
	s.placeFoodExcluding(Cell{X: -1, Y: -1})
}

// placeFoodExcluding samples a cell uniformly from the cells that are
// neither in the body nor equal to extra. When no such cell exists the
// board is left without food.
func (s *State) placeFoodExcluding(extra Cell) {
	free := func(c Cell) bool {
		return c != extra && !s.body.contains(c)
	}

	for i := 0; i < rejectionLimit; i++ {
		c := Cell{X: s.rng.Intn(s.grid.Width), Y: s.rng.Intn(s.grid.Height)}
		if free(c) {
			s.food, s.hasFood = c, true
			return
		}
	}

	cells := make([]Cell, 0, s.grid.Size()-s.body.len())
	for y := 0; y < s.grid.Height; y++ {
		for x := 0; x < s.grid.Width; x++ {
			if c := (Cell{X: x, Y: y}); free(c) {
				cells = append(cells, c)
			}
		}
	}
	if len(cells) == 0 {
		s.hasFood = false
		return
	}
	s.food, s.hasFood = cells[s.rng.Intn(len(cells))], true
}

// Food returns the food cell and whether the board has one
func (s *State) Food() (Cell, bool) {
	return s.food, s.hasFood
}
