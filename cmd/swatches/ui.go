package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	tw "github.com/example/tailwindcolor"
	"github.com/example/tailwindcolor/internal/config"
)

// UI holds the text faces and draws the HUD.
type UI struct {
	face      font.Face
	titleFace font.Face
}

// NewUI loads the configured TTF at body and title sizes, falling back
// to the basic bitmap font.
func NewUI(cfg config.Font, log *slog.Logger) *UI {
	ui := &UI{face: basicfont.Face7x13, titleFace: basicfont.Face7x13}

	b, err := os.ReadFile(cfg.Path)
	if err != nil {
		log.Warn("could not read font file, falling back to basic font", "path", cfg.Path, "err", err)
		return ui
	}
	tt, err := opentype.Parse(b)
	if err != nil {
		log.Warn("could not parse ttf, falling back to basic font", "path", cfg.Path, "err", err)
		return ui
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: cfg.Size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Warn("could not create font face, falling back to basic font", "err", err)
		return ui
	}
	titleFace, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: cfg.Size * 3, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Warn("could not create title face", "err", err)
		titleFace = face
	}
	ui.face = face
	ui.titleFace = titleFace
	return ui
}

// Draw renders the HUD and, when a swatch is hovered, its name tooltip.
func (ui *UI) Draw(screen *ebiten.Image, g *Game) {
	screenH := screen.Bounds().Dy()
	fam := g.grid.Family().Name()
	drawTextAt(screen, ui.face, fmt.Sprintf("Family: %s", fam), 8, 8, ColorText)
	drawTextAt(screen, ui.face, "Left/Right or Tab - change family   Space - shuffle   Right-click - menu", 8, screenH-24, ColorText)

	row, col, ok := g.input.Hovered()
	if !ok {
		return
	}
	cell := g.grid.Cell(row, col)
	label := fmt.Sprintf("%s  %s", tw.Name(fam, cell.Shade), cell.Target.Hex())
	b := g.layout.CellBounds(row, col)
	w := textWidth(ui.face, label) + 2*InnerPadding
	h := ui.face.Metrics().Height.Ceil() + 2*InnerPadding
	x := b.X + b.W/2 - w/2
	y := b.Y - h - 4
	if y < 0 {
		y = b.Y + b.H + 4
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), ColorTooltipBg, false)
	drawTextAt(screen, ui.face, label, x+InnerPadding, y+InnerPadding, ColorTooltipText)
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// drawTextAt draws text using the provided face. If face is nil, falls back to ebitenutil.DebugPrintAt.
func drawTextAt(screen *ebiten.Image, face font.Face, s string, x, y int, col color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, x, y)
		return
	}
	// text.Draw expects y to be baseline; DebugPrintAt uses top-left.
	ascent := face.Metrics().Ascent.Round()
	text.Draw(screen, s, face, x, y+ascent, col)
}
