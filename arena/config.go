// Package arena models the fixed playing field: its configuration and the
// geometry of the four boundary walls.
package arena

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// World bounds and tuning constants used by Default.
const (
	LeftWall   = -450.0
	RightWall  = 450.0
	TopWall    = 250.0
	BottomWall = -250.0

	WallThickness = 30.0

	RacketSpeed      = 120.0
	RacketLength     = 120.0
	RacketThickness  = 40.0
	RacketWallOffset = 20.0

	BallSize = 30.0

	TickRate = 60
)

var (
	// ErrInvalidBounds reports an arena with non-positive width or height.
	ErrInvalidBounds = errors.New("arena: invalid bounds")
	// ErrInvalidConfig reports any other out-of-range setting.
	ErrInvalidConfig = errors.New("arena: invalid config")
)

// Bounds are the world coordinates of the wall centre lines.
type Bounds struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

type RacketConfig struct {
	Length     float64 `yaml:"length"`
	Thickness  float64 `yaml:"thickness"`
	WallOffset float64 `yaml:"wall_offset"`
}

type BallConfig struct {
	Size float64 `yaml:"size"`
}

// Config is built once at startup and shared read-only by pointer.
type Config struct {
	Bounds        Bounds       `yaml:"bounds"`
	WallThickness float64      `yaml:"wall_thickness"`
	RacketSpeed   float64      `yaml:"racket_speed"`
	TickRate      int          `yaml:"tick_rate"`
	Racket        RacketConfig `yaml:"racket"`
	Ball          BallConfig   `yaml:"ball"`

	// ClampRackets keeps rackets between the top and bottom walls. With it
	// off a held control moves a racket indefinitely.
	ClampRackets bool `yaml:"clamp_rackets"`
}

// Default returns the stock arena.
func Default() Config {
	return Config{
		Bounds: Bounds{
			Left:   LeftWall,
			Right:  RightWall,
			Top:    TopWall,
			Bottom: BottomWall,
		},
		WallThickness: WallThickness,
		RacketSpeed:   RacketSpeed,
		TickRate:      TickRate,
		Racket: RacketConfig{
			Length:     RacketLength,
			Thickness:  RacketThickness,
			WallOffset: RacketWallOffset,
		},
		Ball:         BallConfig{Size: BallSize},
		ClampRackets: true,
	}
}

// Validate checks the arena bounds and tuning values.
func (c *Config) Validate() error {
	if c.ArenaHeight() <= 0 {
		return fmt.Errorf("%w: height %.1f (top %.1f, bottom %.1f)", ErrInvalidBounds, c.ArenaHeight(), c.Bounds.Top, c.Bounds.Bottom)
	}
	if c.ArenaWidth() <= 0 {
		return fmt.Errorf("%w: width %.1f (left %.1f, right %.1f)", ErrInvalidBounds, c.ArenaWidth(), c.Bounds.Left, c.Bounds.Right)
	}
	if c.WallThickness <= 0 {
		return fmt.Errorf("%w: wall thickness %.1f", ErrInvalidConfig, c.WallThickness)
	}
	if c.RacketSpeed < 0 {
		return fmt.Errorf("%w: racket speed %.1f", ErrInvalidConfig, c.RacketSpeed)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d", ErrInvalidConfig, c.TickRate)
	}
	if c.Racket.Length <= 0 || c.Racket.Thickness <= 0 {
		return fmt.Errorf("%w: racket %.1fx%.1f", ErrInvalidConfig, c.Racket.Length, c.Racket.Thickness)
	}
	if inner := c.Inner().Size.Y; c.Racket.Length >= inner {
		return fmt.Errorf("%w: racket length %.1f does not fit the inner height %.1f", ErrInvalidConfig, c.Racket.Length, inner)
	}
	if c.Ball.Size <= 0 {
		return fmt.Errorf("%w: ball size %.1f", ErrInvalidConfig, c.Ball.Size)
	}
	return nil
}

// ArenaWidth is the distance between the left and right wall centre lines.
func (c *Config) ArenaWidth() float64 {
	return c.Bounds.Right - c.Bounds.Left
}

// ArenaHeight is the distance between the top and bottom wall centre lines.
func (c *Config) ArenaHeight() float64 {
	return c.Bounds.Top - c.Bounds.Bottom
}

// TimeStep is the fixed simulated duration of one tick in seconds.
func (c *Config) TimeStep() float64 {
	return 1.0 / float64(c.TickRate)
}

// Inner is the open area between the inner faces of the four walls.
func (c *Config) Inner() Rect {
	return Rect{
		Center: Vec2{
			X: (c.Bounds.Left + c.Bounds.Right) / 2,
			Y: (c.Bounds.Top + c.Bounds.Bottom) / 2,
		},
		Size: Vec2{
			X: c.ArenaWidth() - c.WallThickness,
			Y: c.ArenaHeight() - c.WallThickness,
		},
	}
}

// RacketStart is the spawn point of the given player's racket. Player 1 sits
// next to the left wall and player 2 next to the right wall.
func (c *Config) RacketStart(playerNumber int) Vec2 {
	inset := c.Racket.Thickness + c.Racket.WallOffset
	if playerNumber == 2 {
		return Vec2{X: c.Bounds.Right - inset}
	}
	return Vec2{X: c.Bounds.Left + inset}
}

// Load overlays the YAML document read from r onto Default and validates the
// result. An empty document yields the defaults.
func Load(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode arena config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile is Load for a file on disk.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open arena config: %w", err)
	}
	defer f.Close()

	return Load(f)
}
