package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// MenuAction describes what action was selected in the context menu
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionNextFamily
	MenuActionPrevFamily
	MenuActionShuffle
	MenuActionExportPalette
	MenuActionExportFamily
	MenuActionSaveState
)

// menuItems pairs labels with actions, in display order.
var menuItems = []struct {
	label  string
	action MenuAction
}{
	{"Next Family", MenuActionNextFamily},
	{"Previous Family", MenuActionPrevFamily},
	{"Shuffle", MenuActionShuffle},
	{"Export Palette...", MenuActionExportPalette},
	{"Export Family...", MenuActionExportFamily},
	{"Save State", MenuActionSaveState},
}

// ContextMenu is the right-click menu. It owns its visibility and hover
// state and reports the chosen action from Update.
type ContextMenu struct {
	visible  bool
	x, y     int
	selected int
}

func NewContextMenu() *ContextMenu {
	return &ContextMenu{selected: -1}
}

func (cm *ContextMenu) Show(x, y int) {
	cm.visible = true
	cm.x = x
	cm.y = y
	cm.selected = -1
}

func (cm *ContextMenu) Hide() {
	cm.visible = false
	cm.selected = -1
}

func (cm *ContextMenu) Visible() bool { return cm.visible }

// itemAt returns the index of the item under the point, or -1.
func (cm *ContextMenu) itemAt(mx, my int) int {
	if mx < cm.x || mx > cm.x+MenuWidth || my < cm.y || my >= cm.y+MenuItemHeight*len(menuItems) {
		return -1
	}
	return (my - cm.y) / MenuItemHeight
}

// Update returns a MenuAction for any selection triggered, and may hide the menu
// as part of its behavior.
func (cm *ContextMenu) Update() MenuAction {
	if !cm.visible {
		return MenuActionNone
	}

	cm.selected = cm.itemAt(ebiten.CursorPosition())

	// left click selects or closes
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		sel := cm.selected
		cm.Hide()
		if sel >= 0 {
			return menuItems[sel].action
		}
		return MenuActionNone
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		cm.Hide()
	}
	return MenuActionNone
}

func (cm *ContextMenu) Draw(screen *ebiten.Image, face font.Face) {
	if !cm.visible {
		return
	}
	x := cm.x
	y := cm.y
	// background with small padding
	bgX := float32(x - MenuPadding)
	bgY := float32(y - MenuPadding)
	bgW := float32(MenuWidth + MenuPadding*2)
	bgH := float32(MenuItemHeight*len(menuItems) + MenuPadding*2)
	vector.DrawFilledRect(screen, bgX, bgY, bgW, bgH, ColorMenuBg, false)
	vector.StrokeRect(screen, bgX, bgY, bgW, bgH, 2, ColorMenuBorder, false)

	for i, it := range menuItems {
		iy := y + i*MenuItemHeight
		// highlight on hover
		if cm.selected == i {
			vector.DrawFilledRect(screen, float32(x), float32(iy), MenuWidth, MenuItemHeight, ColorMenuHighlight, false)
		}
		drawTextAt(screen, face, it.label, x+InnerPadding+2, iy+InnerPadding, ColorMenuText)
	}
}
