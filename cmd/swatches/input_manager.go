package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputManager turns keyboard and mouse input into grid changes.
// It owns transient state like the hovered swatch; the ContextMenu
// manages its own visibility and selection state.
type InputManager struct {
	hoverRow, hoverCol int
	hovering           bool
}

func NewInputManager() *InputManager {
	return &InputManager{hoverRow: -1, hoverCol: -1}
}

// Hovered returns the swatch under the cursor, if any.
func (im *InputManager) Hovered() (row, col int, ok bool) {
	return im.hoverRow, im.hoverCol, im.hovering
}

// Update handles one tick of input. While the context menu is open it
// only watches for the right click that reopens it elsewhere.
func (im *InputManager) Update(g *Game) {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.contextMenu.Show(mx, my)
		im.hovering = false
		return
	}
	if g.contextMenu.Visible() {
		return
	}

	im.hoverRow, im.hoverCol, im.hovering = g.layout.HitTest(mx, my)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.cycleFamily(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.cycleFamily(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.cycleFamily(-1)
		} else {
			g.cycleFamily(1)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.shuffle()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && im.hovering:
		g.selectSwatch(im.hoverRow, im.hoverCol)
	}
}
