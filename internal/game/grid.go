package game

// Cell is one discrete grid coordinate
type Cell struct {
	X int
	Y int
}

// Add returns the cell one step away in direction d
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Grid holds the immutable board dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains returns true if the cell is within bounds
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Center returns the starting cell of a new snake
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Size returns the number of cells on the board
func (g Grid) Size() int {
	return g.Width * g.Height
}

func (g Grid) index(c Cell) int {
	return c.Y*g.Width + c.X
}
