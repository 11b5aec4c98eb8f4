package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// SessionModel is the root model of one SSH connection. It moves between
// the preset picker, the scoreboard and a running game without ever ending
// the program until the player quits. Child models signal a transition by
// returning tea.Quit, which the session swallows.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	username   string
	logger     *log.Logger
	menu       MenuModel
	scoreboard *ScoreboardModel
	gameModel  *Model
	quitting   bool
}

func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	return SessionModel{
		store:    store,
		config:   cfg,
		username: username,
		logger:   logger.With("session", uuid.NewString(), "user", username),
		menu:     NewMenuModel(store, cfg),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}

	var cmd tea.Cmd
	switch {
	case m.gameModel != nil:
		next, c := m.gameModel.Update(msg)
		gm := next.(Model)
		m.gameModel, cmd = &gm, c
		return m.afterGame(cmd)
	case m.scoreboard != nil:
		next, c := m.scoreboard.Update(msg)
		sb := next.(ScoreboardModel)
		m.scoreboard, cmd = &sb, c
		return m.afterScoreboard(cmd)
	default:
		next, c := m.menu.Update(msg)
		m.menu, cmd = next.(MenuModel), c
		return m.afterMenu(cmd)
	}
}

func (m SessionModel) afterMenu(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.menu.IsQuitting() {
		return m.quit()
	}
	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		return m, sb.Init()
	}
	id, ok := m.menu.Selected()
	if !ok {
		return m, cmd
	}

	game, err := registry.Create(id)
	if err != nil {
		m.logger.Error("cannot create game", "game", id, "err", err)
		return m.toMenu()
	}
	gm := NewModel(game, Options{
		Store:   m.store,
		Sink:    audio.Nop{},
		Logger:  m.logger,
		Runtime: m.config,
		Session: m.username,
	})
	gm.embedded = true
	m.gameModel = &gm
	m.logger.Info("game started", "game", id)
	return m, gm.Init()
}

func (m SessionModel) afterScoreboard(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) afterGame(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch {
	case m.gameModel.BackToMenu():
		m.logger.Info("game left", "game", m.gameModel.game.ID(), "score", m.gameModel.State().Score)
		return m.toMenu()
	case m.gameModel.IsQuitting():
		return m.quit()
	}
	return m, cmd
}

// toMenu rebuilds the picker so best scores include the run just played.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.gameModel, m.scoreboard = nil, nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) View() string {
	switch {
	case m.gameModel != nil && (!m.quitting || m.gameModel.Err() != nil):
		return m.gameModel.View()
	case m.quitting:
		return ""
	case m.scoreboard != nil:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
