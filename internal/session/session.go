// Package session owns the game currently being played. It turns wall
// clock frames into Advance calls, stops ticking once the snake dies and
// replaces the whole game on restart.
package session

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Sarwarhridoy4/snake-go/internal/dependencies/clock"
	"github.com/Sarwarhridoy4/snake-go/internal/dependencies/random"
	"github.com/Sarwarhridoy4/snake-go/internal/game"
)

// Phase is where the session is in its play / game over cycle
type Phase string

const (
	PhasePlaying Phase = "playing"
	PhaseOver    Phase = "over"
)

// maxFrameDelta caps the time fed into a single frame so a stalled window
// does not replay seconds of movement at once
const maxFrameDelta = 250 * time.Millisecond

// FrameReport describes what happened during one Frame call
type FrameReport struct {
	Result game.Result
	Ate    bool
	Over   bool       // the game ended during this frame
	Cause  game.Cause // set when Over
}

// Session holds at most one game at a time
type Session struct {
	cfg    game.Config
	rng    random.Random
	clock  clock.Clock
	logger *slog.Logger

	state  *game.State
	id     uuid.UUID
	phase  Phase
	last   time.Time
	best   int
	played int
}

// New creates a session and starts its first game
func New(cfg game.Config, rng random.Random, clk clock.Clock, logger *slog.Logger) (*Session, error) {
	if clk == nil {
		return nil, ErrNilClock
	}
	if logger == nil {
		return nil, ErrNilLogger
	}
	s := &Session{
		cfg:    cfg,
		rng:    rng,
		clock:  clk,
		logger: logger,
	}
	if err := s.start(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) start() error {
	state, err := game.New(s.cfg, s.rng)
	if err != nil {
		return err
	}
	s.state = state
	s.id = uuid.New()
	s.phase = PhasePlaying
	s.last = s.clock.Now()
	s.played++

	s.logger.Info("game started",
		slog.String("game_id", s.id.String()),
		slog.Int("width", s.cfg.Width),
		slog.Int("height", s.cfg.Height),
		slog.Float64("tick_interval", s.cfg.TickInterval),
	)
	return nil
}

// Steer forwards a directional input to the running game
func (s *Session) Steer(d game.Direction) bool {
	if s.phase != PhasePlaying {
		return false
	}
	accepted := s.state.SetDirection(d)
	if accepted {
		s.logger.Debug("direction changed",
			slog.String("game_id", s.id.String()),
			slog.String("direction", d.String()),
		)
	}
	return accepted
}

// Grow forwards the debug growth cheat to the running game
func (s *Session) Grow(n int) {
	if s.phase != PhasePlaying {
		return
	}
	s.state.Grow(n)
	s.logger.Debug("debug grow", slog.String("game_id", s.id.String()), slog.Int("cells", n))
}

// Frame advances the running game by the wall time since the previous
// frame. Once the game is over frames only move the time baseline.
func (s *Session) Frame() FrameReport {
	now, delta := clock.Delta(s.clock, s.last)
	s.last = now
	if s.phase != PhasePlaying {
		return FrameReport{}
	}
	if delta > maxFrameDelta {
		delta = maxFrameDelta
	}

	res, err := s.state.Advance(delta.Seconds())
	report := FrameReport{Result: res, Ate: res.Eaten > 0}
	if report.Ate {
		s.logger.Info("food eaten",
			slog.String("game_id", s.id.String()),
			slog.Int("score", res.Score),
		)
	}
	if err != nil {
		if !errors.Is(err, game.ErrTerminated) {
			s.logger.Error("unexpected advance error", slog.String("error", err.Error()))
		}
		s.finish()
		report.Over = true
		report.Cause = s.state.Cause()
	}
	return report
}

func (s *Session) finish() {
	s.phase = PhaseOver
	score := s.state.Score()
	if score > s.best {
		s.best = score
	}
	s.logger.Info("game over",
		slog.String("game_id", s.id.String()),
		slog.String("cause", s.state.Cause().String()),
		slog.Int("score", score),
		slog.Int("ticks", s.state.Ticks()),
	)
}

// Restart discards the finished game and starts a fresh one
func (s *Session) Restart() error {
	if s.phase != PhaseOver {
		return ErrNotOver
	}
	previous := s.id
	if err := s.start(); err != nil {
		return err
	}
	s.logger.Info("game restarted",
		slog.String("previous_game_id", previous.String()),
		slog.String("game_id", s.id.String()),
	)
	return nil
}

// Phase returns whether a game is running or waiting for a restart
func (s *Session) Phase() Phase {
	return s.phase
}

// Snapshot returns the current game's render view
func (s *Session) Snapshot() game.Snapshot {
	return s.state.Snapshot()
}

// Score returns the current game's score
func (s *Session) Score() int {
	return s.state.Score()
}

// Best returns the highest score reached since the process started
func (s *Session) Best() int {
	if score := s.state.Score(); s.phase == PhasePlaying && score > s.best {
		return score
	}
	return s.best
}

// GamesPlayed counts games started, including the current one
func (s *Session) GamesPlayed() int {
	return s.played
}

// GameID identifies the current game in logs
func (s *Session) GameID() uuid.UUID {
	return s.id
}
