package game

// Direction is the snake's heading. None is only valid before the first
// input of a game.
type Direction uint8

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// String returns the name of the direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the cell offset of one step. Up decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Reverse returns the direction pointing the other way on the same axis
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// Opposed reports whether a and b lie on the same axis but point different
// ways. None is opposed to nothing.
func Opposed(a, b Direction) bool {
	return a != None && a.Reverse() == b
}

// CanTurn reports whether a snake heading d may switch to next
func (d Direction) CanTurn(next Direction) bool {
	return next != None && !Opposed(d, next)
}
