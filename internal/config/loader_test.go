package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestLoadBreakoutEmbeddedMatchesDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := LoadBreakout("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBreakoutConfig(), cfg)
}

func TestLoadBreakoutPartialYAML(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_rate: 30\npaddle:\n  speed: 12\n"), 0o600))

	cfg, err := LoadBreakout(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, 12.0, cfg.Paddle.Speed)
	// Untouched fields keep their defaults
	assert.Equal(t, 120.0, cfg.Paddle.Width)
	assert.Equal(t, 10, cfg.Grid.Cols)
}

func TestLoadBreakoutTOML(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	body := "tick_rate = 120\n\n[grid]\nrows = 2\ncols = 3\n\n[rules]\npause = false\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := LoadBreakout(path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.TickRate)
	assert.Equal(t, 2, cfg.Grid.Rows)
	assert.Equal(t, 3, cfg.Grid.Cols)
	assert.False(t, cfg.Rules.Pause)
	assert.True(t, cfg.Rules.Scoring)
}

func TestLoadBreakoutErrors(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	_, err := LoadBreakout(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tick_rate: [oops"), 0o600))
	_, err = LoadBreakout(bad)
	assert.Error(t, err)

	ini := filepath.Join(dir, "cfg.ini")
	require.NoError(t, os.WriteFile(ini, []byte("x=1"), 0o600))
	_, err = LoadBreakout(ini)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("tick_rate: 0\n"), 0o600))
	_, err = LoadBreakout(invalid)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadBreakoutUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "breakout.yaml"), []byte("ball:\n  speed: 350\n"), 0o600))

	cfg, err := LoadBreakout("")
	require.NoError(t, err)
	assert.Equal(t, 350.0, cfg.Ball.Speed)
}

func TestPaddleBounds(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	assert.InDelta(t, -327.5, cfg.PaddleLeftBound(), 1e-9)
	assert.InDelta(t, 392.5, cfg.PaddleRightBound(), 1e-9)
	assert.InDelta(t, -305.0, cfg.PaddleY(), 1e-9)
	assert.InDelta(t, 1.0/60.0, cfg.TickSeconds(), 1e-12)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
	}{
		{"zero tick rate", func(c *BreakoutConfig) { c.TickRate = 0 }},
		{"negative grid", func(c *BreakoutConfig) { c.Grid.Rows = -1 }},
		{"flat bricks", func(c *BreakoutConfig) { c.Grid.CellHeight = 0 }},
		{"no ball", func(c *BreakoutConfig) { c.Ball.Size = 0 }},
		{"flat paddle", func(c *BreakoutConfig) { c.Paddle.Height = 0 }},
		{"reverse paddle", func(c *BreakoutConfig) { c.Paddle.Speed = -1 }},
		{"swapped walls", func(c *BreakoutConfig) { c.Arena.LeftWall = 500 }},
		{"swapped floor", func(c *BreakoutConfig) { c.Arena.BottomWall = 400 }},
		{"paddle wider than arena", func(c *BreakoutConfig) { c.Paddle.ClampWidth = 2000 }},
		{"no event room", func(c *BreakoutConfig) { c.Rules.MaxEvents = 0 }},
	}

	require.NoError(t, DefaultBreakoutConfig().Validate())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestPresets(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, PresetFull, p)

	_, err = ParsePreset("turbo")
	assert.Error(t, err)

	tests := []struct {
		preset                      Preset
		scoring, pause, startPaused bool
	}{
		{PresetClassic, false, false, false},
		{PresetScored, true, false, false},
		{PresetFull, true, true, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			ApplyPreset(&cfg, tc.preset)
			assert.Equal(t, tc.scoring, cfg.Rules.Scoring)
			assert.Equal(t, tc.pause, cfg.Rules.Pause)
			assert.Equal(t, tc.startPaused, cfg.Rules.StartPaused)
			assert.NotEmpty(t, tc.preset.Description())
		})
	}

	assert.Len(t, Presets(), 3)
}
