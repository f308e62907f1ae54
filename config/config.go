package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/deitrix/blocks/board"
	"github.com/deitrix/blocks/log"
)

// ErrInvalid is returned by Validate for any out-of-range setting.
var ErrInvalid = errors.New("invalid config")

const (
	// minSide is the smallest board side that fits every tetromino in every rotation.
	minSide = 4
	// maxSide bounds the board so the renderers stay usable.
	maxSide = 64
)

// Config holds the settings fixed at process start.
type Config struct {
	// Unit is the size of one cell in pixels.
	Unit int
	// Cols and Rows are the board dimensions in cells.
	Cols, Rows int
	// Seed seeds the piece bag. Zero picks a time-based seed.
	Seed     uint64
	LogLevel string
	LogFile  string
	Mute     bool
}

func Default() Config {
	return Config{
		Unit:     32,
		Cols:     10,
		Rows:     20,
		LogLevel: "info",
	}
}

// RegisterFlags binds the config fields to flags on fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Unit, "unit", c.Unit, "Cell size in pixels")
	fs.IntVar(&c.Cols, "cols", c.Cols, "Board width in cells")
	fs.IntVar(&c.Rows, "rows", c.Rows, "Board height in cells")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Piece sequence seed (0 for random)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Write logs to this file instead of stdout")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "Disable sound")
}

func (c Config) Validate() error {
	if c.Unit <= 0 {
		return fmt.Errorf("%w: unit must be positive, got %d", ErrInvalid, c.Unit)
	}
	if c.Cols < minSide || c.Cols > maxSide {
		return fmt.Errorf("%w: cols must be between %d and %d, got %d", ErrInvalid, minSide, maxSide, c.Cols)
	}
	if c.Rows < minSide || c.Rows > maxSide {
		return fmt.Errorf("%w: rows must be between %d and %d, got %d", ErrInvalid, minSide, maxSide, c.Rows)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func (c Config) Board() board.Board {
	return board.New(c.Cols, c.Rows)
}

// BagSeed returns Seed, or a seed derived from now when Seed is zero.
func (c Config) BagSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}

// Parse parses args into a copy of c and validates the result.
func (c Config) Parse(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return c, fmt.Errorf("parsing flags: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}
