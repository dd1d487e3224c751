package game

import (
	"errors"
	"fmt"
)

var (
	// Construction errors
	ErrInvalidGrid         = errors.New("grid must be positive and hold at least two cells")
	ErrInvalidTickInterval = errors.New("tick interval must be positive and finite")
	ErrInvalidGrowth       = errors.New("growth amounts must not be negative")
	ErrNilRandom           = errors.New("random source is required")

	// Termination errors, all matching ErrTerminated
	ErrTerminated    = errors.New("game terminated")
	ErrWallCollision = fmt.Errorf("%w: wall collision", ErrTerminated)
	ErrSelfCollision = fmt.Errorf("%w: self collision", ErrTerminated)
)

// Cause records why a game ended
type Cause uint8

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

// String returns the cause name used in logs
func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// Err returns the termination error for the cause, or nil
func (c Cause) Err() error {
	switch c {
	case CauseWall:
		return ErrWallCollision
	case CauseSelf:
		return ErrSelfCollision
	default:
		return nil
	}
}
