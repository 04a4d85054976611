package main

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"

	tw "github.com/example/tailwindcolor"
)

const (
	termLabelWidth = 10
	termCellWidth  = 5
)

// termView draws the whole palette as rows of colored cells, one row
// per family, with the selected family marked.
type termView struct {
	screen   tcell.Screen
	families []tw.Family
	selected int
}

func runTerminal(fam tw.Family, log *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &termView{screen: screen, families: tw.Families()}
	for i, f := range v.families {
		if f.Name() == fam.Name() {
			v.selected = i
		}
	}
	log.Info("terminal view started", "family", fam.Name())

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	v.draw()
	for ev := range events {
		if !v.handle(ev) {
			break
		}
		v.draw()
	}
	return nil
}

// handle applies one event and reports whether to keep running.
func (v *termView) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.selected = (v.selected + len(v.families) - 1) % len(v.families)
		case tcell.KeyDown, tcell.KeyTab:
			v.selected = (v.selected + 1) % len(v.families)
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *termView) draw() {
	s := v.screen
	s.Clear()
	plain := tcell.StyleDefault

	drawString(s, 0, 0, "family", plain.Bold(true))
	for i, shade := range tw.Shades {
		drawString(s, termLabelWidth+i*termCellWidth, 0, shade.String(), plain.Bold(true))
	}

	for row, f := range v.families {
		y := row + 1
		label := f.Name()
		style := plain
		if row == v.selected {
			label = "> " + label
			style = style.Reverse(true)
		}
		drawString(s, 0, y, label, style)
		for i := range tw.Shades {
			n := f.At(i).NRGBA()
			bg := plain.Background(tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B)))
			for dx := 0; dx < termCellWidth-1; dx++ {
				s.SetContent(termLabelWidth+i*termCellWidth+dx, y, ' ', nil, bg)
			}
		}
	}

	sel := v.families[v.selected]
	footer := len(v.families) + 2
	for i, e := range sel.Entries() {
		drawString(s, (i%4)*20, footer+i/4, tw.Name(e.Family, e.Shade)+" "+e.Hex, plain)
	}
	drawString(s, 0, footer+4, "Up/Down select family   q/Esc quit", plain.Dim(true))
	s.Show()
}

func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
