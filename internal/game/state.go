// Package game is the snake simulation: movement, growth, food placement
// and collision. It knows nothing about windows, keys or frame rates.
package game

import (
	"math"

	"github.com/Sarwarhridoy4/snake-go/internal/dependencies/random"
)

// MaxDimension bounds each side of the grid so the occupancy bitmap stays
// small enough to allocate
const MaxDimension = 4096

// maxCountedTicks caps the ticks credited to a still snake in one call
const maxCountedTicks = math.MaxInt32

// Config holds the parameters fixed at game creation
type Config struct {
	Width  int
	Height int

	// TickInterval is the time in seconds between two snake moves
	TickInterval float64

	// GrowthRate is added to the pending growth each time food is eaten
	GrowthRate int

	// InitialGrowth preloads the pending growth of a new snake
	InitialGrowth int
}

// DefaultConfig returns the classic 32x32 board moving ten cells a second
func DefaultConfig() Config {
	return Config{
		Width:         32,
		Height:        32,
		TickInterval:  0.1,
		GrowthRate:    4,
		InitialGrowth: 4,
	}
}

// Validate returns the first violated construction precondition
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Width > MaxDimension || c.Height > MaxDimension {
		return ErrInvalidGrid
	}
	if c.Width*c.Height < 2 {
		return ErrInvalidGrid
	}
	if !(c.TickInterval > 0) || math.IsInf(c.TickInterval, 0) {
		return ErrInvalidTickInterval
	}
	if c.GrowthRate < 0 || c.InitialGrowth < 0 {
		return ErrInvalidGrowth
	}
	return nil
}

// Result summarises one Advance call
type Result struct {
	Steps int // discrete ticks run, including a terminating one
	Eaten int // food consumed
	Score int // body length after the call
}

// State is one play session. It is driven by a single goroutine and is not
// safe for concurrent use.
type State struct {
	grid       Grid
	body       *body
	dir        Direction
	turned     bool
	growth     int
	growthRate int
	food       Cell
	hasFood    bool
	interval   float64
	elapsed    float64
	ticks      int
	cause      Cause
	rng        random.Random
}

// New creates a motionless one-cell snake at the board center and places
// the first food anywhere else
func New(cfg Config, rng random.Random) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRandom
	}

	grid := Grid{Width: cfg.Width, Height: cfg.Height}
	s := &State{
		grid:       grid,
		body:       newBody(grid, grid.Center()),
		dir:        None,
		growth:     cfg.InitialGrowth,
		growthRate: cfg.GrowthRate,
		interval:   cfg.TickInterval,
		rng:        rng,
	}
	s.placeFood()
	return s, nil
}

// SetDirection applies a directional input. Requests that would reverse the
// snake, repeat a turn already taken this tick, or arrive after the game
// ended are ignored. It reports whether the heading was replaced.
func (s *State) SetDirection(d Direction) bool {
	if s.cause != CauseNone || s.turned || !s.dir.CanTurn(d) {
		return false
	}
	s.dir = d
	s.turned = true
	return true
}

// Grow adds n cells to the pending growth. It is a developer cheat and,
// like a turn, uses up the input of the current tick.
func (s *State) Grow(n int) {
	if s.cause != CauseNone || n <= 0 {
		return
	}
	s.growth += n
	s.turned = true
}

// Advance feeds dt seconds into the tick accumulator and runs one step per
// whole tick interval, keeping the remainder. Non-finite or negative dt
// counts as zero. It stops at the first collision and returns an error
// matching ErrTerminated; after that the state no longer changes.
func (s *State) Advance(dt float64) (Result, error) {
	if s.cause != CauseNone {
		return Result{Score: s.Score()}, ErrTerminated
	}
	if !(dt > 0) || math.IsInf(dt, 1) {
		dt = 0
	}
	s.elapsed += dt

	var res Result
	for s.elapsed >= s.interval {
		if s.dir == None {
			// A still snake only clears the turn flag, so skip the
			// remaining ticks in one go.
			rem := math.Mod(s.elapsed, s.interval)
			n := maxCountedTicks
			if q := math.Round((s.elapsed - rem) / s.interval); q < maxCountedTicks {
				n = int(q)
			}
			s.elapsed = rem
			s.turned = false
			s.ticks += n
			res.Steps += n
			break
		}

		s.elapsed -= s.interval
		res.Steps++
		ate, cause := s.step()
		if ate {
			res.Eaten++
		}
		if cause != CauseNone {
			s.cause = cause
			res.Score = s.Score()
			return res, cause.Err()
		}
	}
	res.Score = s.Score()
	return res, nil
}

// step moves the snake one cell. Collisions are detected before the body
// is touched, so a terminating step leaves the body as it was.
func (s *State) step() (ate bool, cause Cause) {
	s.ticks++
	s.turned = false

	next := s.body.head().Add(s.dir)
	if !s.grid.Contains(next) {
		return false, CauseWall
	}

	if s.hasFood && next == s.food {
		// The eaten cell joins the body below, so it cannot be offered
		// again; excluding it now keeps the new food off the head.
		s.placeFoodExcluding(next)
		s.growth += s.growthRate
		ate = true
	}

	vacating := s.growth == 0
	if s.body.contains(next) && !(vacating && next == s.body.tail()) {
		return ate, CauseSelf
	}

	if vacating {
		s.body.popTail()
	} else {
		s.growth--
	}
	s.body.pushHead(next)
	return ate, CauseNone
}

// Score is the current body length
func (s *State) Score() int {
	return s.body.len()
}

// Direction returns the current heading
func (s *State) Direction() Direction {
	return s.dir
}

// Terminated reports whether a collision ended the game
func (s *State) Terminated() bool {
	return s.cause != CauseNone
}

// Cause returns why the game ended, or CauseNone while it is running
func (s *State) Cause() Cause {
	return s.cause
}

// Elapsed returns the time accumulated towards the next tick
func (s *State) Elapsed() float64 {
	return s.elapsed
}

// Ticks returns the number of discrete steps run so far
func (s *State) Ticks() int {
	return s.ticks
}
