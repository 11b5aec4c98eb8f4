// Package breakout adapts the engine simulation to the platform Game
// interface. Each rule preset is registered as its own game.
package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/engine"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// concurrentStep selects engine.StepConcurrent for new games.
var concurrentStep bool

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetConcurrentStep toggles the parallel physics/paddle step.
func SetConcurrentStep(on bool) {
	concurrentStep = on
}

// GameID returns the registry ID for a rule preset.
func GameID(p config.Preset) string {
	if p == config.PresetFull {
		return "breakout"
	}
	return "breakout_" + string(p)
}

// Game implements the Breakout game for one rule preset.
type Game struct {
	preset     config.Preset
	cfg        config.BreakoutConfig
	override   bool // cfg was supplied by the caller, skip loading
	concurrent bool

	runtime core.RuntimeConfig
	ctx     *engine.Context
	err     error
}

// New creates a game for the given preset using the loaded configuration.
func New(preset config.Preset) *Game {
	return &Game{preset: preset}
}

// NewWithConfig creates a game with an explicit base configuration.
// The preset's rules are still applied on Reset.
func NewWithConfig(preset config.Preset, cfg config.BreakoutConfig) *Game {
	return &Game{preset: preset, cfg: cfg, override: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID(g.preset)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	switch g.preset {
	case config.PresetClassic:
		return "Breakout (Classic)"
	case config.PresetScored:
		return "Breakout (Scored)"
	default:
		return "Breakout"
	}
}

// Description summarizes the preset's rules.
func (g *Game) Description() string {
	return g.preset.Description()
}

// Preset returns the rule preset this game runs.
func (g *Game) Preset() config.Preset {
	return g.preset
}

// Reset builds a fresh arena.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.concurrent = concurrentStep

	cfg := g.cfg
	if !g.override {
		loaded, err := config.LoadBreakout(configPath)
		if err != nil {
			loaded = config.DefaultBreakoutConfig()
		}
		cfg = loaded
	}
	config.ApplyPreset(&cfg, g.preset)
	if runtime.TickRate > 0 {
		cfg.TickRate = runtime.TickRate
	}

	g.ctx, g.err = engine.NewContext(cfg)
	if g.err != nil {
		g.err = fmt.Errorf("breakout: %w", g.err)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil || g.ctx == nil {
		return core.StepResult{State: g.State(), Err: g.err}
	}

	step := engine.Step
	if g.concurrent {
		step = engine.StepConcurrent
	}
	if err := step(g.ctx, inputFrom(in)); err != nil {
		g.err = fmt.Errorf("breakout tick %d: %w", g.ctx.Tick, err)
	}

	return core.StepResult{
		State:  g.State(),
		Events: g.ctx.Events.Drain(),
		Err:    g.err,
	}
}

func inputFrom(in core.InputFrame) engine.Input {
	return engine.Input{
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Confirm: in.Has(core.ActionConfirm),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctx == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:   g.ctx.Score,
		Paused:  !g.ctx.Running(),
		Overlay: g.ctx.Overlay.String(),
		Tick:    g.ctx.Tick,
		Bricks:  g.ctx.BricksLeft(),
	}
}

// Context exposes the simulation for frontends that draw the world directly.
func (g *Game) Context() *engine.Context {
	return g.ctx
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() engine.Snapshot {
	if g.ctx == nil {
		return engine.Snapshot{}
	}
	return g.ctx.Snapshot()
}

func init() {
	for _, p := range config.Presets() {
		preset := p
		registry.Register(GameID(preset), func() registry.Game {
			return New(preset)
		})
	}
}
