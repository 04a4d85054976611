package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/example/tailwindcolor/internal/swatch"
)

// Renderer handles all drawing operations for the swatch screen.
type Renderer struct{}

// NewRenderer creates a new Renderer instance.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// DrawGrid renders every swatch at its current transition color.
func (r *Renderer) DrawGrid(screen *ebiten.Image, grid *swatch.Grid, l swatch.Layout, im *InputManager) {
	hr, hc, hovered := im.Hovered()
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			b := l.CellBounds(row, col)
			if hovered && row == hr && col == hc {
				bw := HoverBorderWidth
				drawRoundedRect(screen, b.X-bw, b.Y-bw, b.W+2*bw, b.H+2*bw, SwatchRadius+bw, ColorHover)
			}
			drawRoundedRect(screen, b.X, b.Y, b.W, b.H, SwatchRadius, grid.Color(row, col))
		}
	}
}

// DrawTitleCard renders the centered title over the grid.
func (r *Renderer) DrawTitleCard(screen *ebiten.Image, l swatch.Layout, title, subtitle string, titleFace, face font.Face) {
	b := l.Centered(CardWidth, CardHeight)
	x, y := float32(b.X), float32(b.Y)
	w, h := float32(b.W), float32(b.H)
	vector.DrawFilledRect(screen, x, y, w, h, ColorCard, false)
	vector.StrokeRect(screen, x, y, w, h, CardBorderWidth, ColorCardBorder, false)

	titleW := textWidth(titleFace, title)
	th := titleFace.Metrics().Height.Ceil()
	sw := textWidth(face, subtitle)
	sh := face.Metrics().Height.Ceil()
	gap := 8
	top := b.Y + (b.H-th-gap-sh)/2
	drawTextAt(screen, titleFace, title, b.X+(b.W-titleW)/2, top, ColorTitle)
	drawTextAt(screen, face, subtitle, b.X+(b.W-sw)/2, top+th+gap, ColorSubtitle)
}

// drawRoundedRect fills a rectangle with circular corners. Pieces
// overlap, so clr should be opaque.
func drawRoundedRect(screen *ebiten.Image, x, y, w, h, radius int, clr color.Color) {
	if radius*2 > w {
		radius = w / 2
	}
	if radius*2 > h {
		radius = h / 2
	}
	fx, fy := float32(x), float32(y)
	fw, fh, fr := float32(w), float32(h), float32(radius)
	vector.DrawFilledRect(screen, fx+fr, fy, fw-2*fr, fh, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fr, fw, fh-2*fr, clr, false)
	vector.DrawFilledCircle(screen, fx+fr, fy+fr, fr, clr, true)
	vector.DrawFilledCircle(screen, fx+fw-fr, fy+fr, fr, clr, true)
	vector.DrawFilledCircle(screen, fx+fr, fy+fh-fr, fr, clr, true)
	vector.DrawFilledCircle(screen, fx+fw-fr, fy+fh-fr, fr, clr, true)
}
