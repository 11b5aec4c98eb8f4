// Package gui runs a Breakout preset in a desktop window using ebiten.
// The simulation is shared with the terminal frontend; only input,
// drawing and timing differ.
package gui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// DefaultScale is the window pixels per world unit.
const DefaultScale = 1.0

// Options configures a window.
type Options struct {
	Store   *storage.Store // nil disables run history
	Sink    audio.Sink     // nil plays nothing
	Logger  *log.Logger
	Runtime core.RuntimeConfig
	Scale   float64
}

// Game implements ebiten.Game around one breakout preset.
type Game struct {
	game   *breakout.Game
	opts   Options
	cam    Camera
	state  core.GameState
	err    error
	runID  string
	closed bool
}

// NewGame resets the preset and frames its arena.
func NewGame(game *breakout.Game, opts Options) *Game {
	if opts.Sink == nil {
		opts.Sink = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}

	game.Reset(opts.Runtime)
	g := &Game{
		game:  game,
		opts:  opts,
		state: game.State(),
		runID: uuid.NewString(),
	}
	if ctx := game.Context(); ctx != nil {
		g.cam = NewCamera(ctx.Config.Arena, opts.Scale)
	}
	return g
}

// Update reads the keyboard and advances the simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.closed = true
		return ebiten.Termination
	}
	return g.step(readInput())
}

// readInput samples held movement keys and released confirm keys.
func readInput() core.InputFrame {
	frame := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		frame.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		frame.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEnter) || inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		frame.Set(core.ActionConfirm)
	}
	return frame
}

// step runs one tick and forwards its events to the sink.
func (g *Game) step(in core.InputFrame) error {
	if g.err != nil {
		return g.err
	}

	result := g.game.Step(in)
	g.state = result.State
	g.opts.Sink.Play(result.Events)

	if result.Err != nil {
		g.err = result.Err
		g.opts.Logger.Error("simulation stopped", "game", g.game.ID(), "tick", g.state.Tick, "err", result.Err)
		return result.Err
	}
	return nil
}

// Draw renders the arena, HUD and overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	ctx := g.game.Context()
	if ctx == nil {
		return
	}

	actors := ctx.World.Actors()
	for i := range actors {
		x, y, w, h := g.cam.Rect(actors[i].Box)
		ebitenutil.DrawRect(screen, x, y, w, h, actorColor(&actors[i]))
	}

	g.drawHUD(screen)

	switch g.state.Overlay {
	case "start":
		g.drawOverlay(screen, "BREAKOUT\n\nPress ENTER to start")
	case "pause":
		g.drawOverlay(screen, "PAUSED\n\nPress ENTER to resume")
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("Bricks: %d", g.state.Bricks)
	if ctx := g.game.Context(); ctx != nil && ctx.Config.Rules.Scoring {
		hud = fmt.Sprintf("Score: %d  %s", g.state.Score, hud)
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 4)
}

func (g *Game) drawOverlay(screen *ebiten.Image, text string) {
	w, h := g.cam.ScreenSize()
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), colorOverlay)
	ebitenutil.DebugPrintAt(screen, text, w/2-60, h/2-20)
}

// Layout returns the fixed logical screen size of the arena.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cam.ScreenSize()
}

// State returns the game state seen on the last tick.
func (g *Game) State() core.GameState {
	return g.state
}

// saveRun records the run once, skipping runs that never started.
func (g *Game) saveRun() {
	if g.opts.Store == nil || g.state.Tick == 0 {
		return
	}
	rec, err := g.opts.Store.SaveRun(storage.RunRecord{
		RunID:  g.runID,
		GameID: g.game.ID(),
		Score:  g.state.Score,
		Ticks:  g.state.Tick,
		Bricks: g.state.Bricks,
	})
	if err != nil {
		g.opts.Logger.Warn("could not save run", "game", g.game.ID(), "err", err)
		return
	}
	g.opts.Logger.Info("run saved", "game", rec.GameID, "run", rec.RunID, "score", rec.Score)
}

// Run opens a window and blocks until it is closed or the simulation fails.
func Run(game *breakout.Game, opts Options) error {
	g := NewGame(game, opts)

	w, h := g.cam.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	tps := opts.Runtime.TickRate
	if tps <= 0 {
		tps = 60
	}
	ebiten.SetTPS(tps)

	err := ebiten.RunGame(g)
	g.saveRun()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
