package swatch

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/example/tailwindcolor"
)

// State is the part of the demo view restored between runs.
type State struct {
	Family string `yaml:"family"`
	Seed   uint64 `yaml:"seed"`
	// Shuffles counts reshuffles so far; replaying them from Seed
	// restores the exact grid.
	Shuffles int `yaml:"shuffles"`
}

// SaveState writes s as YAML, creating parent directories as needed.
func SaveState(path string, s State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&s); err != nil {
		return err
	}
	return enc.Close()
}

// LoadState reads a state file written by SaveState.
func LoadState(path string) (State, error) {
	var s State
	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, err
	}
	return s, nil
}

// Restore builds the grid described by s and settles it. An unknown
// family falls back to fam.
func Restore(s State, rows, cols int, fam tailwindcolor.Family) *Grid {
	if f, ok := tailwindcolor.FamilyByName(s.Family); ok {
		fam = f
	}
	g := NewGrid(rows, cols, fam, s.Seed)
	for i := 0; i < s.Shuffles; i++ {
		g.Shuffle()
	}
	for !g.Settled() {
		g.Step()
	}
	return g
}
