// Command swatches previews the Tailwind color palette, either in a
// window or in the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	tw "github.com/example/tailwindcolor"
	"github.com/example/tailwindcolor/internal/config"
	"github.com/example/tailwindcolor/internal/logger"
	"github.com/example/tailwindcolor/internal/swatch"
)

type Game struct {
	cfg config.Config
	log *slog.Logger

	grid             *swatch.Grid
	layout           swatch.Layout
	screenW, screenH int
	ticks            int
	picked           string

	ui          *UI
	renderer    *Renderer
	input       *InputManager
	contextMenu *ContextMenu
}

func NewGame(cfg config.Config, fam tw.Family, log *slog.Logger) *Game {
	g := &Game{cfg: cfg, log: log, screenW: cfg.Window.Width, screenH: cfg.Window.Height}
	g.ui = NewUI(cfg.Font, log)
	g.renderer = NewRenderer()
	g.input = NewInputManager()
	g.contextMenu = NewContextMenu()
	g.layout = swatch.NewLayout(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.Cell, cfg.Grid.Gap, cfg.Window.Width, cfg.Window.Height)

	// Restore the last view from the state file; a missing or broken
	// file just means a fresh grid.
	st, err := swatch.LoadState(cfg.StatePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		st = swatch.State{Seed: uint64(time.Now().UnixNano())}
	case err != nil:
		log.Warn("could not load state", "path", cfg.StatePath, "err", err)
		st = swatch.State{Seed: uint64(time.Now().UnixNano())}
	}
	if fam.Name() != "" {
		st.Family = fam.Name()
	}
	g.grid = swatch.Restore(st, cfg.Grid.Rows, cfg.Grid.Cols, familyOr(cfg.Family))
	log.Info("grid ready", "family", g.grid.Family().Name(), "rows", cfg.Grid.Rows, "cols", cfg.Grid.Cols)
	return g
}

// familyOr returns the named family, or Blue for an unknown name.
func familyOr(name string) tw.Family {
	if f, ok := tw.FamilyByName(name); ok {
		return f
	}
	return tw.Blue
}

func (g *Game) cycleFamily(delta int) {
	fam := swatch.CycleFamily(g.grid.Family().Name(), delta)
	g.grid.SetFamily(fam)
	g.ticks = 0
	g.log.Debug("family changed", "family", fam.Name())
}

func (g *Game) shuffle() {
	g.grid.Shuffle()
	g.ticks = 0
}

func (g *Game) selectSwatch(row, col int) {
	cell := g.grid.Cell(row, col)
	g.picked = tw.Name(g.grid.Family().Name(), cell.Shade) + " " + cell.Target.Hex()
	g.log.Info("swatch picked", "name", tw.Name(g.grid.Family().Name(), cell.Shade), "hex", cell.Target.Hex())
}

func (g *Game) saveState() {
	if err := swatch.SaveState(g.cfg.StatePath, g.grid.State()); err != nil {
		g.log.Error("save state failed", "path", g.cfg.StatePath, "err", err)
		return
	}
	g.log.Debug("state saved", "path", g.cfg.StatePath)
}

func (g *Game) handleMenuAction(a MenuAction) {
	switch a {
	case MenuActionNextFamily:
		g.cycleFamily(1)
	case MenuActionPrevFamily:
		g.cycleFamily(-1)
	case MenuActionShuffle:
		g.shuffle()
	case MenuActionExportPalette:
		exportWithDialog(tw.Families(), "Export Palette", g.log)
	case MenuActionExportFamily:
		exportWithDialog([]tw.Family{g.grid.Family()}, "Export "+g.grid.Family().Name(), g.log)
	case MenuActionSaveState:
		g.saveState()
	}
}

func (g *Game) Update() error {
	g.input.Update(g)
	g.handleMenuAction(g.contextMenu.Update())

	g.grid.Step()
	g.ticks++
	if n := g.cfg.Grid.ShuffleTicks; n > 0 && g.ticks >= n && !g.contextMenu.Visible() {
		g.shuffle()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	g.renderer.DrawGrid(screen, g.grid, g.layout, g.input)
	g.renderer.DrawTitleCard(screen, g.layout, "Tailwind Color", "Tailwind Colors for Go", g.ui.titleFace, g.ui.face)

	g.ui.Draw(screen, g)
	if g.picked != "" {
		drawTextAt(screen, g.ui.face, "Picked: "+g.picked, 8, 8+g.ui.face.Metrics().Height.Ceil(), ColorText)
	}

	g.contextMenu.Draw(screen, g.ui.face)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Re-center the grid so resizing keeps it in the middle.
	if outsideWidth != g.screenW || outsideHeight != g.screenH {
		g.screenW, g.screenH = outsideWidth, outsideHeight
		g.layout = swatch.NewLayout(g.cfg.Grid.Rows, g.cfg.Grid.Cols, g.cfg.Grid.Cell, g.cfg.Grid.Gap, g.screenW, g.screenH)
	}
	return outsideWidth, outsideHeight
}

func run() error {
	configPath := flag.String("config", "swatches.yml", "path of the YAML config file")
	familyName := flag.String("family", "", "family shown at start; overrides config and saved state")
	term := flag.Bool("term", false, "draw the palette in the terminal instead of a window")
	exportPath := flag.String("export", "", "write the palette to `file` (format from extension) and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	log, closer := logger.New(logger.Options{Path: cfg.Log.Path, Level: cfg.Log.Level, MaxSizeMB: cfg.Log.MaxSizeMB})
	defer closer.Close()

	var fam tw.Family
	if *familyName != "" {
		f, ok := tw.FamilyByName(*familyName)
		if !ok {
			return fmt.Errorf("-family: %w: %q", tw.ErrUnknownFamily, *familyName)
		}
		fam = f
	}

	if *exportPath != "" {
		fams := tw.Families()
		if fam.Name() != "" {
			fams = []tw.Family{fam}
		}
		return exportFile(*exportPath, fams, log)
	}

	if *term {
		if fam.Name() == "" {
			fam = familyOr(cfg.Family)
		}
		return runTerminal(fam, log)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	g := NewGame(cfg, fam, log)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	g.saveState()
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "swatches:", err)
		os.Exit(1)
	}
}
