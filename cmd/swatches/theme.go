package main

import (
	"image/color"

	tw "github.com/example/tailwindcolor"
)

// Chrome colors, taken from the palette itself.
var (
	ColorBackground    = color.White
	ColorCard          = tw.Slate.Shade(tw.Shade50).WithOpacity(0.8) // Title card, translucent over the grid
	ColorCardBorder    = tw.Slate.Shade(tw.Shade200)
	ColorTitle         = tw.Slate.Shade(tw.Shade900)
	ColorSubtitle      = tw.Slate.Shade(tw.Shade500)
	ColorText          = tw.Slate.Shade(tw.Shade700)                 // HUD text
	ColorHover         = tw.Slate.Shade(tw.Shade950)                 // Outline of the hovered swatch
	ColorTooltipBg     = tw.Slate.Shade(tw.Shade900).WithOpacity(0.9)
	ColorTooltipText   = tw.Slate.Shade(tw.Shade50)
	ColorMenuBg        = tw.Slate.Shade(tw.Shade800)
	ColorMenuBorder    = tw.Slate.Shade(tw.Shade600)
	ColorMenuHighlight = tw.Sky.Shade(tw.Shade600)
	ColorMenuText      = tw.Slate.Shade(tw.Shade50)
)

// Layout Constants
const (
	CardWidth        = 520
	CardHeight       = 150
	CardBorderWidth  = 1
	SwatchRadius     = 8
	HoverBorderWidth = 2
	InnerPadding     = 6

	// Context menu
	MenuItemHeight = 28
	MenuWidth      = 220
	MenuPadding    = 4
)
