// Package config loads the swatch demo settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/tailwindcolor"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Grid struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
	// Cell is the swatch edge in pixels, Gap the space between swatches.
	Cell int `yaml:"cell"`
	Gap  int `yaml:"gap"`
	// ShuffleTicks is the number of 60Hz ticks between reshuffles; 0 disables.
	ShuffleTicks int `yaml:"shuffle_ticks"`
}

type Font struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

type Log struct {
	Path      string `yaml:"path"`
	Level     string `yaml:"level"`
	MaxSizeMB int    `yaml:"max_size_mb"`
}

// Config is the full demo configuration.
type Config struct {
	Window    Window `yaml:"window"`
	Grid      Grid   `yaml:"grid"`
	Font      Font   `yaml:"font"`
	Log       Log    `yaml:"log"`
	Family    string `yaml:"family"`
	StatePath string `yaml:"state"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Window: Window{Width: 1280, Height: 720, Title: "Tailwind Color"},
		Grid:   Grid{Rows: 8, Cols: 20, Cell: 32, Gap: 8, ShuffleTicks: 90},
		Font:   Font{Path: "res/Roboto-Regular.ttf", Size: 16},
		Log:    Log{Level: "info", MaxSizeMB: 10},
		Family: "blue",

		StatePath: "state.yml",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Validate reports the first field holding an unusable value.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Grid.Rows <= 0 || c.Grid.Cols <= 0:
		return fmt.Errorf("grid %dx%d must be positive", c.Grid.Rows, c.Grid.Cols)
	case c.Grid.Cell <= 0:
		return fmt.Errorf("grid.cell %d must be positive", c.Grid.Cell)
	case c.Grid.Gap < 0:
		return fmt.Errorf("grid.gap %d must not be negative", c.Grid.Gap)
	case c.Grid.ShuffleTicks < 0:
		return fmt.Errorf("grid.shuffle_ticks %d must not be negative", c.Grid.ShuffleTicks)
	case c.Font.Size <= 0:
		return fmt.Errorf("font.size %g must be positive", c.Font.Size)
	}
	if _, ok := tailwindcolor.FamilyByName(c.Family); !ok {
		return fmt.Errorf("family: %w: %q", tailwindcolor.ErrUnknownFamily, c.Family)
	}
	return nil
}
