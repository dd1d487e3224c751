package session

import "errors"

var (
	ErrNotOver   = errors.New("game is still running")
	ErrNilClock  = errors.New("clock is required")
	ErrNilLogger = errors.New("logger is required")
)
