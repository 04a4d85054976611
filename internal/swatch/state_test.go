package swatch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/tailwindcolor"
)

func TestStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.yml")
	want := State{Family: "emerald", Seed: 99, Shuffles: 3}
	require.NoError(t, SaveState(path, want))

	got, err := LoadState(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "family: emerald\nseed: 99\nshuffles: 3\n", string(b))
}

func TestLoadStateErrors(t *testing.T) {
	_, err := LoadState(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("seed: [1"), 0644))
	_, err = LoadState(path)
	assert.Error(t, err)
}

func TestRestoreReplaysGrid(t *testing.T) {
	g := NewGrid(4, 6, tailwindcolor.Gray, 2024)
	g.Shuffle()
	g.SetFamily(tailwindcolor.Violet)
	g.Shuffle()
	st := g.State()
	assert.Equal(t, State{Family: "violet", Seed: 2024, Shuffles: 3}, st)

	r := Restore(st, 4, 6, tailwindcolor.Blue)
	assert.True(t, r.Settled())
	assert.Equal(t, "violet", r.Family().Name())
	assert.Equal(t, gridShades(g), gridShades(r))
	assert.Equal(t, st, r.State())
}

func TestRestoreUnknownFamily(t *testing.T) {
	r := Restore(State{Family: "mauve"}, 2, 2, tailwindcolor.Amber)
	assert.Equal(t, "amber", r.Family().Name())

	r = Restore(State{}, 2, 2, tailwindcolor.Cyan)
	assert.Equal(t, "cyan", r.Family().Name())
}
