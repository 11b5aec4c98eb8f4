// Package config provides YAML/TOML-based game configuration loading and
// rule presets for the breakout platform.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for the Breakout simulation.
// Units are world units (pixels of the reference 875x650 arena, y up).
type BreakoutConfig struct {
	TickRate int            `yaml:"tick_rate" toml:"tick_rate"`
	Arena    BreakoutArena  `yaml:"arena" toml:"arena"`
	Grid     BreakoutGrid   `yaml:"grid" toml:"grid"`
	Ball     BreakoutBall   `yaml:"ball" toml:"ball"`
	Paddle   BreakoutPaddle `yaml:"paddle" toml:"paddle"`
	Rules    BreakoutRules  `yaml:"rules" toml:"rules"`
	Audio    AudioConfig    `yaml:"audio" toml:"audio"`
}

// BreakoutArena positions the four walls by their centers.
type BreakoutArena struct {
	LeftWall         float64 `yaml:"left_wall" toml:"left_wall"`
	RightWall        float64 `yaml:"right_wall" toml:"right_wall"`
	TopWall          float64 `yaml:"top_wall" toml:"top_wall"`
	BottomWall       float64 `yaml:"bottom_wall" toml:"bottom_wall"`
	WallThickness    float64 `yaml:"wall_thickness" toml:"wall_thickness"`
	WallLength       float64 `yaml:"wall_length" toml:"wall_length"`             // Height of the side walls
	WallSpan         float64 `yaml:"wall_span" toml:"wall_span"`                 // Width of the top and bottom walls
	HorizontalOffset float64 `yaml:"horizontal_offset" toml:"horizontal_offset"` // X shift of the top and bottom walls
}

// BreakoutGrid describes the brick layout.
type BreakoutGrid struct {
	Rows       int     `yaml:"rows" toml:"rows"`
	Cols       int     `yaml:"cols" toml:"cols"`
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"`
	Spacing    float64 `yaml:"spacing" toml:"spacing"`
	Top        float64 `yaml:"top" toml:"top"`   // Center y of the first row
	Left       float64 `yaml:"left" toml:"left"` // Center x of the first column
}

// BreakoutBall defines the ball's initial state.
type BreakoutBall struct {
	StartX     float64 `yaml:"start_x" toml:"start_x"`
	StartY     float64 `yaml:"start_y" toml:"start_y"`
	Size       float64 `yaml:"size" toml:"size"`
	Speed      float64 `yaml:"speed" toml:"speed"` // Units per second
	DirectionX float64 `yaml:"direction_x" toml:"direction_x"`
	DirectionY float64 `yaml:"direction_y" toml:"direction_y"`
}

// BreakoutPaddle defines paddle geometry and movement.
type BreakoutPaddle struct {
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	ClampWidth float64 `yaml:"clamp_width" toml:"clamp_width"` // Width used for the travel bounds
	Speed      float64 `yaml:"speed" toml:"speed"`             // Units per tick
	FloorGap   float64 `yaml:"floor_gap" toml:"floor_gap"`     // Distance above the bottom wall center
}

// BreakoutRules toggles the features that distinguish the game iterations.
type BreakoutRules struct {
	Scoring     bool `yaml:"scoring" toml:"scoring"`           // Count bricks and raise explosion events
	Pause       bool `yaml:"pause" toml:"pause"`               // Enable the run/pause state machine
	StartPaused bool `yaml:"start_paused" toml:"start_paused"` // Begin behind the start overlay
	MaxEvents   int  `yaml:"max_events" toml:"max_events"`     // Per-tick event queue capacity
}

// AudioConfig points at optional sound files.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled" toml:"enabled"`
	CollisionFile string  `yaml:"collision_file" toml:"collision_file"`
	ExplosionFile string  `yaml:"explosion_file" toml:"explosion_file"`
	Volume        float64 `yaml:"volume" toml:"volume"` // 0.0 - 1.0
}

// PaddleLeftBound returns the smallest allowed paddle center x.
func (c BreakoutConfig) PaddleLeftBound() float64 {
	return c.Arena.LeftWall + c.Arena.WallThickness + c.Paddle.ClampWidth/2
}

// PaddleRightBound returns the largest allowed paddle center x.
func (c BreakoutConfig) PaddleRightBound() float64 {
	return c.Arena.RightWall - c.Arena.WallThickness - c.Paddle.ClampWidth/2
}

// PaddleY returns the paddle's fixed center y.
func (c BreakoutConfig) PaddleY() float64 {
	return c.Arena.BottomWall + c.Paddle.FloorGap
}

// TickSeconds returns the fixed tick duration in seconds.
func (c BreakoutConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 0
	}
	return 1.0 / float64(c.TickRate)
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid breakout config")

// Validate checks the values the simulation relies on.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	case c.Grid.Rows < 0 || c.Grid.Cols < 0:
		return fmt.Errorf("%w: grid must not be negative, got %dx%d", ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols)
	case c.Grid.CellWidth <= 0 || c.Grid.CellHeight <= 0:
		return fmt.Errorf("%w: brick cells need a positive size", ErrInvalidConfig)
	case c.Ball.Size <= 0:
		return fmt.Errorf("%w: ball size must be positive", ErrInvalidConfig)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle needs a positive size", ErrInvalidConfig)
	case c.Paddle.Speed < 0:
		return fmt.Errorf("%w: paddle speed must not be negative", ErrInvalidConfig)
	case c.Arena.LeftWall >= c.Arena.RightWall:
		return fmt.Errorf("%w: left wall %.1f is not left of right wall %.1f", ErrInvalidConfig, c.Arena.LeftWall, c.Arena.RightWall)
	case c.Arena.BottomWall >= c.Arena.TopWall:
		return fmt.Errorf("%w: bottom wall %.1f is not below top wall %.1f", ErrInvalidConfig, c.Arena.BottomWall, c.Arena.TopWall)
	case c.PaddleLeftBound() > c.PaddleRightBound():
		return fmt.Errorf("%w: paddle bounds [%.1f, %.1f] are empty", ErrInvalidConfig, c.PaddleLeftBound(), c.PaddleRightBound())
	case c.Rules.MaxEvents <= 0:
		return fmt.Errorf("%w: rules.max_events must be positive", ErrInvalidConfig)
	}
	return nil
}
