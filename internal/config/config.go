// Package config gathers the settings of the snake binary from the
// environment; cmd/snake layers command line flags on top.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Sarwarhridoy4/snake-go/internal/game"
)

var (
	ErrInvalidCellSize  = errors.New("cell size must be positive")
	ErrInvalidLogLevel  = errors.New("unknown log level")
	ErrInvalidLogFormat = errors.New("log format must be json or text")
)

// Config holds every tunable of a run
type Config struct {
	Width         int
	Height        int
	Tick          time.Duration
	GrowthRate    int
	InitialGrowth int
	Seed          int64

	CellSize int
	Debug    bool
	Mute     bool

	LogLevel  string
	LogFormat string
}

// DefaultConfig returns a Config with default values, overridden by any
// SNAKE_* environment variables that parse
func DefaultConfig() *Config {
	def := game.DefaultConfig()
	return &Config{
		Width:         getEnvInt("SNAKE_WIDTH", def.Width),
		Height:        getEnvInt("SNAKE_HEIGHT", def.Height),
		Tick:          getEnvDuration("SNAKE_TICK", secondsToDuration(def.TickInterval)),
		GrowthRate:    getEnvInt("SNAKE_GROWTH", def.GrowthRate),
		InitialGrowth: getEnvInt("SNAKE_BONUS", def.InitialGrowth),
		Seed:          int64(getEnvInt("SNAKE_SEED", 0)),
		CellSize:      getEnvInt("SNAKE_CELL_SIZE", 13),
		Debug:         getEnvBool("SNAKE_DEBUG", false),
		Mute:          getEnvBool("SNAKE_MUTE", false),
		LogLevel:      getEnvOrDefault("SNAKE_LOG_LEVEL", "info"),
		LogFormat:     getEnvOrDefault("SNAKE_LOG_FORMAT", "json"),
	}
}

// Game returns the simulation parameters
func (c *Config) Game() game.Config {
	return game.Config{
		Width:         c.Width,
		Height:        c.Height,
		TickInterval:  c.Tick.Seconds(),
		GrowthRate:    c.GrowthRate,
		InitialGrowth: c.InitialGrowth,
	}
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []error
	if err := c.Game().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.CellSize <= 0 {
		errs = append(errs, ErrInvalidCellSize)
	}
	if _, err := c.level(); err != nil {
		errs = append(errs, err)
	}
	if f := strings.ToLower(c.LogFormat); f != "json" && f != "text" {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat))
	}
	return errors.Join(errs...)
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}

// Logger builds the structured logger described by LogLevel and LogFormat
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.LogFormat) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}
