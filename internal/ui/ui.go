// Package ui runs a session inside an ebiten window: it polls keys,
// feeds frames and draws the board.
package ui

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Sarwarhridoy4/snake-go/internal/game"
	"github.com/Sarwarhridoy4/snake-go/internal/session"
	"github.com/Sarwarhridoy4/snake-go/internal/sound"
)

var (
	bgColor   = color.RGBA{0, 0, 0, 255}
	bodyColor = color.RGBA{204, 204, 204, 255}
	foodColor = color.RGBA{255, 0, 0, 255}
)

// Options controls presentation only
type Options struct {
	CellSize int
	Debug    bool // Space grows the snake while playing
	Mute     bool
}

// Game adapts a session to ebiten.Game
type Game struct {
	session *session.Session
	opts    Options
	logger  *slog.Logger
	keys    []ebiten.Key
	width   int
	height  int

	eatPlayer      *audio.Player
	gameOverPlayer *audio.Player
}

var _ ebiten.Game = (*Game)(nil)

// New wraps sess. It creates the process audio context unless muted, so
// it must be called at most once.
func New(sess *session.Session, opts Options, logger *slog.Logger) *Game {
	g := &Game{
		session: sess,
		opts:    opts,
		logger:  logger,
	}
	snap := sess.Snapshot()
	g.width, g.height = snap.Width*opts.CellSize, snap.Height*opts.CellSize

	if !opts.Mute {
		ctx := audio.NewContext(sound.SampleRate)
		g.eatPlayer = ctx.NewPlayerFromBytes(sound.Eat.PCM())
		g.gameOverPlayer = ctx.NewPlayerFromBytes(sound.GameOver.PCM())
	}
	return g
}

// Update handles input and advances the session by one frame
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])

	for _, k := range g.keys {
		if k == ebiten.KeyEscape {
			return ebiten.Termination
		}
	}

	if g.session.Phase() == session.PhaseOver {
		for _, k := range g.keys {
			if isRestartKey(k) {
				return g.session.Restart()
			}
		}
		g.session.Frame()
		return nil
	}

	for _, k := range g.keys {
		if d, ok := keyDirections[k]; ok {
			g.session.Steer(d)
			continue
		}
		if g.opts.Debug && k == ebiten.KeySpace {
			g.session.Grow(1)
		}
	}

	report := g.session.Frame()
	if report.Ate {
		g.play(g.eatPlayer)
	}
	if report.Over {
		g.play(g.gameOverPlayer)
	}
	return nil
}

func (g *Game) play(p *audio.Player) {
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		g.logger.Warn("could not rewind sound", slog.String("error", err.Error()))
		return
	}
	p.Play()
}

// Draw renders the board, or the game over screen
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	if g.session.Phase() == session.PhaseOver {
		g.drawGameOver(screen)
		return
	}

	snap := g.session.Snapshot()
	if snap.HasFood {
		g.drawCell(screen, snap.Food, foodColor)
	}
	for _, c := range snap.Body {
		g.drawCell(screen, c, bodyColor)
	}

	hud := fmt.Sprintf("Score: %d  Best: %d", snap.Score, g.session.Best())
	if g.opts.Debug {
		hud += "  [debug: Space grows]"
	}
	ebitenutil.DebugPrintAt(screen, hud, 4, 4)
}

func (g *Game) drawCell(screen *ebiten.Image, c game.Cell, clr color.Color) {
	size := float32(g.opts.CellSize)
	vector.DrawFilledRect(screen, float32(c.X)*size, float32(c.Y)*size, size, size, clr, false)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	w, h := g.width, g.height
	lines := []string{
		"Game Over",
		fmt.Sprintf("Score: %d  Best: %d  Games: %d", g.session.Score(), g.session.Best(), g.session.GamesPlayed()),
		"Press Space to play a new game or Esc to exit...",
	}
	const lineHeight = 16
	y := (h - len(lines)*lineHeight) / 2
	for i, line := range lines {
		// The debug font is 6 pixels wide
		x := (w - len(line)*6) / 2
		if x < 0 {
			x = 0
		}
		ebitenutil.DebugPrintAt(screen, line, x, y+i*lineHeight)
	}
}

// Layout keeps one logical pixel grid per cell; ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}
