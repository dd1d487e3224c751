package session

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Sarwarhridoy4/snake-go/internal/dependencies/mocks"
	"github.com/Sarwarhridoy4/snake-go/internal/game"
	"github.com/Sarwarhridoy4/snake-go/internal/testutil"
)

type SessionSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	cfg     game.Config
	session *Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom(0, 7)
	s.cfg = game.Config{Width: 8, Height: 8, TickInterval: 0.1, GrowthRate: 4, InitialGrowth: 4}

	var err error
	s.session, err = New(s.cfg, s.random, s.clock, testutil.NopLogger())
	s.Require().NoError(err)
}

func (s *SessionSuite) frame(d time.Duration) FrameReport {
	s.clock.Advance(d)
	return s.session.Frame()
}

// runIntoTopWall steers up until the snake leaves the board
func (s *SessionSuite) runIntoTopWall() FrameReport {
	s.Require().True(s.session.Steer(game.Up))
	for i := 0; i < 4; i++ {
		report := s.frame(100 * time.Millisecond)
		s.Require().False(report.Over)
	}
	return s.frame(100 * time.Millisecond)
}

// New tests

func (s *SessionSuite) TestNewStartsPlaying() {
	s.Equal(PhasePlaying, s.session.Phase())
	s.Equal(1, s.session.GamesPlayed())
	s.NotEqual(uuid.Nil, s.session.GameID())
	s.Equal([]game.Cell{{X: 4, Y: 4}}, s.session.Snapshot().Body)
	s.Equal(1, s.session.Score())
}

func (s *SessionSuite) TestNewRequiresDependencies() {
	_, err := New(s.cfg, s.random, nil, testutil.NopLogger())
	s.ErrorIs(err, ErrNilClock)

	_, err = New(s.cfg, s.random, s.clock, nil)
	s.ErrorIs(err, ErrNilLogger)
}

func (s *SessionSuite) TestNewRejectsInvalidGame() {
	cfg := s.cfg
	cfg.Width = 0
	_, err := New(cfg, s.random, s.clock, testutil.NopLogger())
	s.ErrorIs(err, game.ErrInvalidGrid)
}

// Frame tests

func (s *SessionSuite) TestFrameWithoutElapsedTimeDoesNothing() {
	s.session.Steer(game.Right)
	report := s.session.Frame()
	s.Zero(report.Result.Steps)
	s.Equal(game.Cell{X: 4, Y: 4}, s.session.Snapshot().Head)
}

func (s *SessionSuite) TestFrameMovesByElapsedTime() {
	s.session.Steer(game.Up)

	report := s.frame(100 * time.Millisecond)
	s.Equal(1, report.Result.Steps)
	s.False(report.Over)
	s.Equal(game.Cell{X: 4, Y: 3}, s.session.Snapshot().Head)
}

func (s *SessionSuite) TestFrameCapsLongStalls() {
	s.session.Steer(game.Up)

	report := s.frame(10 * time.Second)
	s.Equal(2, report.Result.Steps)
	s.Equal(game.Cell{X: 4, Y: 2}, s.session.Snapshot().Head)
}

func (s *SessionSuite) TestFrameReportsFood() {
	sess, err := New(s.cfg, mocks.NewMockRandom(4, 3), s.clock, testutil.NopLogger())
	s.Require().NoError(err)
	sess.Steer(game.Up)

	s.clock.Advance(100 * time.Millisecond)
	report := sess.Frame()
	s.True(report.Ate)
	s.Equal(2, report.Result.Score)
	s.Equal(2, sess.Best())
}

func (s *SessionSuite) TestFrameEndsGameOnCollision() {
	report := s.runIntoTopWall()

	s.True(report.Over)
	s.Equal(game.CauseWall, report.Cause)
	s.Equal(PhaseOver, s.session.Phase())
	s.Equal(5, s.session.Best())
	s.True(s.session.Snapshot().Terminated)
}

func (s *SessionSuite) TestFrameAfterGameOverIsIdle() {
	s.runIntoTopWall()
	before := s.session.Snapshot()

	report := s.frame(time.Second)
	s.Equal(FrameReport{}, report)
	s.Equal(before, s.session.Snapshot())
	s.False(s.session.Steer(game.Left))
}

// Restart tests

func (s *SessionSuite) TestRestartWhilePlayingFails() {
	s.ErrorIs(s.session.Restart(), ErrNotOver)
}

func (s *SessionSuite) TestRestartBuildsFreshGame() {
	s.runIntoTopWall()
	oldID := s.session.GameID()

	s.Require().NoError(s.session.Restart())
	s.Equal(PhasePlaying, s.session.Phase())
	s.Equal(2, s.session.GamesPlayed())
	s.NotEqual(oldID, s.session.GameID())

	snap := s.session.Snapshot()
	s.Equal([]game.Cell{{X: 4, Y: 4}}, snap.Body)
	s.Equal(game.None, snap.Direction)
	s.False(snap.Terminated)
	s.Equal(5, s.session.Best())
}

func (s *SessionSuite) TestRestartResetsFrameBaseline() {
	s.runIntoTopWall()
	s.clock.Advance(time.Minute)
	s.Require().NoError(s.session.Restart())
	s.session.Steer(game.Up)

	report := s.session.Frame()
	s.Zero(report.Result.Steps)
}

// Logging

func TestSessionLogsGameOver(t *testing.T) {
	var buf bytes.Buffer
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	cfg := game.Config{Width: 4, Height: 4, TickInterval: 0.1}

	sess, err := New(cfg, mocks.NewMockRandom(0, 0), clk, testutil.CaptureLogger(&buf))
	require.NoError(t, err)
	sess.Steer(game.Right)
	for sess.Phase() == PhasePlaying {
		clk.Advance(100 * time.Millisecond)
		sess.Frame()
	}

	records := testutil.Records(t, &buf)
	require.NotEmpty(t, records)
	assert.Equal(t, "game started", records[0]["msg"])
	last := records[len(records)-1]
	assert.Equal(t, "game over", last["msg"])
	assert.Equal(t, "wall", last["cause"])
}

func (s *SessionSuite) TestFrameIgnoresClockGoingBackwards() {
	s.session.Steer(game.Up)
	s.clock.Advance(-time.Second)

	report := s.session.Frame()
	s.Zero(report.Result.Steps)
	s.Equal(game.Cell{X: 4, Y: 4}, s.session.Snapshot().Head)

	report = s.frame(100 * time.Millisecond)
	s.Equal(1, report.Result.Steps)
}
