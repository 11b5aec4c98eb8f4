package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Options configures a game model.
type Options struct {
	Store   *storage.Store // nil disables run history
	Sink    audio.Sink     // nil plays nothing
	Logger  *log.Logger
	Runtime core.RuntimeConfig
	Session string // SSH user, empty for local play
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	opts    Options
	keys    *KeyMapper
	held    *heldKeys
	pending core.InputFrame // One-shot actions for the next tick
	state   core.GameState
	runID   string
	err     error

	embedded   bool // Running inside an SSH session
	quitting   bool
	backToMenu bool
	saved      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	if opts.Sink == nil {
		opts.Sink = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-footerRows, 1)),
		opts:    opts,
		keys:    NewKeyMapper(),
		held:    &heldKeys{},
		pending: core.NewInputFrame(),
		runID:   uuid.NewString(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// World coordinates do not depend on the terminal, so only the buffer changes
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.embedded && m.state.Paused && m.keys.MapKeyToMenuAction(msg) == MenuActionBack {
		m.saveRun()
		m.backToMenu = true
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.held.press(action)
	case core.ActionConfirm:
		m.pending.Set(action)
	}

	return m, nil
}

// handleTick runs one simulation step and forwards its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	frame := m.pending.Clone()
	m.held.apply(&frame)
	m.pending.Clear()
	m.held.decay()

	result := m.game.Step(frame)
	m.state = result.State
	m.opts.Sink.Play(result.Events)

	if result.Err != nil {
		m.err = result.Err
		m.opts.Logger.Error("simulation stopped", "game", m.game.ID(), "tick", m.state.Tick, "err", result.Err)
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveRun stores the current run once. Runs that never left the start
// overlay are not recorded.
func (m *Model) saveRun() {
	if m.saved || m.opts.Store == nil || m.state.Tick == 0 {
		return
	}
	m.saved = true

	rec, err := m.opts.Store.SaveRun(storage.RunRecord{
		RunID:   m.runID,
		GameID:  m.game.ID(),
		Score:   m.state.Score,
		Ticks:   m.state.Tick,
		Bricks:  m.state.Bricks,
		Session: m.opts.Session,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "game", m.game.ID(), "err", err)
		return
	}
	m.opts.Logger.Info("run saved", "game", rec.GameID, "run", rec.RunID, "score", rec.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.opts.Logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.err != nil {
		return RenderError(m.err) + "\n"
	}
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + RenderFooter(m.screen.Width(), m.state, m.embedded)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Err returns the fatal simulation error, if any.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game and returns the
// simulation error that stopped it, if any.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
