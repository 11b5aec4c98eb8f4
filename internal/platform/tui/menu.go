package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// presetEntry is one row of the preset picker.
type presetEntry struct {
	info registry.GameInfo
	best int
}

// menuExit records why the picker stopped.
type menuExit int

const (
	menuOpen menuExit = iota
	menuPlay
	menuScores
	menuQuit
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorBrightYellow.ANSI()))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 2)
)

const menuHelp = "↑/↓ choose  enter play  tab scores  q quit"

// MenuModel picks one of the registered rule presets.
type MenuModel struct {
	items  []presetEntry
	cursor int
	config core.RuntimeConfig
	keys   *KeyMapper
	exit   menuExit
}

// NewMenuModel lists every registered preset. Best scores come from store
// when it is not nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []presetEntry
	for _, info := range registry.List() {
		e := presetEntry{info: info}
		if store != nil {
			if best, err := store.HighScore(info.ID); err == nil {
				e.best = best
			}
		}
		items = append(items, e)
	}
	return MenuModel{items: items, config: cfg, keys: NewKeyMapper()}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = (m.cursor + len(m.items) - 1) % max(len(m.items), 1)
		case MenuActionDown:
			m.cursor = (m.cursor + 1) % max(len(m.items), 1)
		case MenuActionSelect:
			if len(m.items) == 0 {
				return m, nil
			}
			m.exit = menuPlay
			return m, tea.Quit
		case MenuActionScoreboard:
			m.exit = menuScores
			return m, tea.Quit
		case MenuActionQuit:
			m.exit = menuQuit
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.exit == menuQuit {
		return ""
	}

	rows := make([]string, 0, len(m.items)+2)
	for i, e := range m.items {
		line := fmt.Sprintf("  %-20s best %4d", e.info.Title, e.best)
		if i == m.cursor {
			line = menuCursorStyle.Render(fmt.Sprintf("▸ %-20s best %4d", e.info.Title, e.best))
		}
		rows = append(rows, line)
	}
	if len(m.items) > 0 {
		rows = append(rows, "", menuHintStyle.Render(m.items[m.cursor].info.Description))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		menuTitleStyle.Render("B R E A K O U T"),
		"",
		menuFrameStyle.Render(strings.Join(rows, "\n")),
		"",
		menuHintStyle.Render(menuHelp),
	)
	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return body
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the chosen preset id once the player pressed enter.
func (m MenuModel) Selected() (string, bool) {
	if m.exit != menuPlay || len(m.items) == 0 {
		return "", false
	}
	return m.items[m.cursor].info.ID, true
}

func (m MenuModel) IsQuitting() bool      { return m.exit == menuQuit }
func (m MenuModel) WantsScoreboard() bool { return m.exit == menuScores }

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText left-pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult is what the standalone picker hands back to the CLI loop.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the picker in the alt screen until the player chooses.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	if id, ok := m.Selected(); ok {
		res.GameID = id
	} else if m.WantsScoreboard() {
		res.WantsScoreboard = true
	} else {
		res.Quit = true
	}
	return res, nil
}
