package game

// body is a ring-buffer deque of cells, oldest first and head last, with an
// occupancy bitmap over the grid for constant-time lookups. Cells pushed
// must be in bounds and not already present.
type body struct {
	grid     Grid
	ring     []Cell
	start    int
	n        int
	occupied []bool
}

func newBody(grid Grid, first Cell) *body {
	b := &body{
		grid:     grid,
		ring:     make([]Cell, 16),
		occupied: make([]bool, grid.Size()),
	}
	b.pushHead(first)
	return b
}

func (b *body) len() int {
	return b.n
}

func (b *body) at(i int) Cell {
	return b.ring[(b.start+i)%len(b.ring)]
}

func (b *body) head() Cell {
	return b.at(b.n - 1)
}

func (b *body) tail() Cell {
	return b.at(0)
}

func (b *body) contains(c Cell) bool {
	return b.grid.Contains(c) && b.occupied[b.grid.index(c)]
}

func (b *body) pushHead(c Cell) {
	if b.n == len(b.ring) {
		b.resize(2 * len(b.ring))
	}
	b.ring[(b.start+b.n)%len(b.ring)] = c
	b.n++
	b.occupied[b.grid.index(c)] = true
}

func (b *body) popTail() Cell {
	c := b.tail()
	b.start = (b.start + 1) % len(b.ring)
	b.n--
	b.occupied[b.grid.index(c)] = false
	return c
}

func (b *body) resize(capacity int) {
	ring := make([]Cell, capacity)
	for i := 0; i < b.n; i++ {
		ring[i] = b.at(i)
	}
	b.ring = ring
	b.start = 0
}

// cells copies the body out, oldest first
func (b *body) cells() []Cell {
	out := make([]Cell, b.n)
	for i := range out {
		out[i] = b.at(i)
	}
	return out
}
