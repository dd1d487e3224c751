package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Sarwarhridoy4/snake-go/internal/config"
	"github.com/Sarwarhridoy4/snake-go/internal/dependencies/clock"
	"github.com/Sarwarhridoy4/snake-go/internal/dependencies/random"
	"github.com/Sarwarhridoy4/snake-go/internal/session"
	"github.com/Sarwarhridoy4/snake-go/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "snake",
		Short: "Grid snake game",
		Long: `snake opens a window with a classic grid snake game.

Arrow keys or WASD steer, Space starts a new game after a crash and Esc
quits. Every flag can also be set with the SNAKE_* environment variable
of the same name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Width, "width", cfg.Width, "Board width in cells (env: SNAKE_WIDTH)")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "Board height in cells (env: SNAKE_HEIGHT)")
	flags.DurationVar(&cfg.Tick, "tick", cfg.Tick, "Time between snake moves (env: SNAKE_TICK)")
	flags.IntVar(&cfg.GrowthRate, "growth", cfg.GrowthRate, "Cells gained per food (env: SNAKE_GROWTH)")
	flags.IntVar(&cfg.InitialGrowth, "bonus", cfg.InitialGrowth, "Cells gained at the start of a game (env: SNAKE_BONUS)")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for time based (env: SNAKE_SEED)")
	flags.IntVar(&cfg.CellSize, "cell-size", cfg.CellSize, "Cell size in pixels (env: SNAKE_CELL_SIZE)")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Space grows the snake while playing (env: SNAKE_DEBUG)")
	flags.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable sound (env: SNAKE_MUTE)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: SNAKE_LOG_LEVEL)")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: json, text (env: SNAKE_LOG_FORMAT)")

	return cmd
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	rng := random.New(cfg.Seed)
	logger.Info("starting snake",
		slog.Uint64("seed", rng.Seed()),
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.Duration("tick", cfg.Tick),
	)

	sess, err := session.New(cfg.Game(), rng, clock.New(), logger)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	game := ui.New(sess, ui.Options{
		CellSize: cfg.CellSize,
		Debug:    cfg.Debug,
		Mute:     cfg.Mute,
	}, logger)

	ebiten.SetWindowSize(cfg.Width*cfg.CellSize, cfg.Height*cfg.CellSize)
	ebiten.SetWindowTitle("Snake game")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game loop failed", slog.String("error", err.Error()))
		return err
	}
	logger.Info("exiting",
		slog.Int("games_played", sess.GamesPlayed()),
		slog.Int("best_score", sess.Best()),
	)
	return nil
}
