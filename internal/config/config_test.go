package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/tailwindcolor"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swatches.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
window:
  width: 800
grid:
  rows: 4
  shuffle_ticks: 0
family: Rose
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, 4, cfg.Grid.Rows)
	assert.Equal(t, 20, cfg.Grid.Cols)
	assert.Equal(t, 0, cfg.Grid.ShuffleTicks)
	assert.Equal(t, "Rose", cfg.Family)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "state.yml", cfg.StatePath)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":    "window: [",
		"width":       "window: {width: 0}",
		"grid":        "grid: {cols: -1}",
		"cell":        "grid: {cell: 0}",
		"gap":         "grid: {gap: -2}",
		"shuffle":     "grid: {shuffle_ticks: -1}",
		"font size":   "font: {size: 0}",
		"unknown fam": "family: mauve",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body))
			assert.Error(t, err)
		})
	}

	_, err := Load(writeFile(t, "family: mauve"))
	assert.ErrorIs(t, err, tailwindcolor.ErrUnknownFamily)
}

func TestSaveLoad(t *testing.T) {
	cfg := Default()
	cfg.Family = "teal"
	cfg.Grid.Gap = 4
	path := filepath.Join(t.TempDir(), "out.yml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestExampleFileMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "swatches.example.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
