package config

import "fmt"

// Preset names one of the rule sets the game shipped with over its
// iterations.
type Preset string

const (
	PresetClassic Preset = "classic" // Bounce and break, no score, no pause
	PresetScored  Preset = "scored"  // Adds the scoreboard and explosion events
	PresetFull    Preset = "full"    // Adds the start/pause state machine
)

// Presets returns all presets in release order.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetScored, PresetFull}
}

// ParsePreset converts a CLI string into a Preset.
// An empty string selects PresetFull.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "":
		return PresetFull, nil
	case PresetClassic, PresetScored, PresetFull:
		return Preset(s), nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want classic, scored or full)", s)
	}
}

// Description returns a one-line summary for menus and listings.
func (p Preset) Description() string {
	switch p {
	case PresetClassic:
		return "Walls, bricks and paddle; bricks vanish, no score"
	case PresetScored:
		return "Classic plus scoreboard and explosion sounds"
	case PresetFull:
		return "Scored plus start screen and pause"
	default:
		return ""
	}
}

// ApplyPreset modifies the rule flags for a preset. Geometry is untouched.
func ApplyPreset(cfg *BreakoutConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Rules.Scoring = false
		cfg.Rules.Pause = false
		cfg.Rules.StartPaused = false
	case PresetScored:
		cfg.Rules.Scoring = true
		cfg.Rules.Pause = false
		cfg.Rules.StartPaused = false
	case PresetFull:
		cfg.Rules.Scoring = true
		cfg.Rules.Pause = true
		cfg.Rules.StartPaused = true
	}
}
