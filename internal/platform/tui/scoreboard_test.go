package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func TestRunRows(t *testing.T) {
	created := time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC)
	rows := runRows([]storage.RunRecord{
		{Score: 12, Ticks: 3750, Bricks: 3, Session: "alice", CreatedAt: created},
		{Score: 4, Ticks: 59, Bricks: 11, CreatedAt: created},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "12", "1:02", "3", "alice", "Mar 04 05:06"}, []string(rows[0]))
	assert.Equal(t, "0:00", rows[1][2])
	assert.Equal(t, "local", rows[1][4])
}

func TestScoreboardCyclesPresets(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	m := NewScoreboardModel(store, 100, 30)
	require.GreaterOrEqual(t, len(m.games), 2)

	second := m.games[1].ID
	_, err = store.SaveRun(storage.RunRecord{GameID: second, Score: 9, Ticks: 600})
	require.NoError(t, err)

	assert.Empty(t, m.runs)
	assert.Contains(t, m.View(), "No runs recorded yet")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	require.Len(t, m.runs, 1)
	assert.Equal(t, 9, m.runs[0].Score)
	assert.Contains(t, m.statsLine(), "best 9")

	// Wraps around in both directions
	for range len(m.games) {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		m = next.(ScoreboardModel)
	}
	assert.Equal(t, 1, m.current)
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	assert.Equal(t, "no runs", m.statsLine())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	back := next.(ScoreboardModel)
	assert.NotNil(t, cmd)
	assert.True(t, back.IsGoingBack())
	assert.False(t, back.IsQuitting())
	assert.Empty(t, back.View())

	next, _ = m.Update(runeKey('q'))
	assert.True(t, next.(ScoreboardModel).IsQuitting())
}
