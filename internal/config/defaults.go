package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration
// (the "full" rule preset).
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		TickRate: 60,
		Arena: BreakoutArena{
			LeftWall:         -400,
			RightWall:        465,
			TopWall:          325,
			BottomWall:       -325,
			WallThickness:    10,
			WallLength:       650,
			WallSpan:         875,
			HorizontalOffset: 32.5,
		},
		Grid: BreakoutGrid{
			Rows:       5,
			Cols:       10,
			CellWidth:  80,
			CellHeight: 30,
			Spacing:    5,
			Top:        300,
			Left:       -350,
		},
		Ball: BreakoutBall{
			StartX:     0,
			StartY:     -50,
			Size:       30,
			Speed:      200,
			DirectionX: 0.5,
			DirectionY: -0.5,
		},
		Paddle: BreakoutPaddle{
			Width:      120,
			Height:     20,
			ClampWidth: 125,
			Speed:      10,
			FloorGap:   20,
		},
		Rules: BreakoutRules{
			Scoring:     true,
			Pause:       true,
			StartPaused: true,
			MaxEvents:   64,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBreakoutYAML
}
