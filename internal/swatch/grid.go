// Package swatch holds the window-independent model of the swatch demo:
// a grid of randomly shaded cells for one family, its screen layout and
// the persisted view state.
package swatch

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/example/tailwindcolor"
)

// DefaultSpeed is the transition progress added per tick, about half a
// second at 60 ticks per second.
const DefaultSpeed = 1.0 / 30

// Cell is one swatch of the grid.
type Cell struct {
	Shade  tailwindcolor.Shade
	// Target is the palette color the cell shows once settled.
	Target tailwindcolor.RGBColor

	from colorful.Color
	to   colorful.Color
	t    float64
}

// Grid is a rows x cols block of swatches drawn from one family. Each
// shuffle assigns every cell a random shade and blends from the old
// color to the new one over successive Step calls.
type Grid struct {
	Rows, Cols int
	Speed      float64

	family   tailwindcolor.Family
	cells    []Cell
	rng      *rand.Rand
	seed     uint64
	shuffles int
}

// NewGrid returns a settled grid for fam. The same seed yields the same
// sequence of shuffles.
func NewGrid(rows, cols int, fam tailwindcolor.Family, seed uint64) *Grid {
	g := &Grid{
		Rows:   rows,
		Cols:   cols,
		Speed:  DefaultSpeed,
		family: fam,
		cells:  make([]Cell, rows*cols),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed:   seed,
	}
	for i := range g.cells {
		s := g.randomShade()
		target := fam.Shade(s)
		c := toColorful(target)
		g.cells[i] = Cell{Shade: s, Target: target, from: c, to: c, t: 1}
	}
	return g
}

func toColorful(c tailwindcolor.RGBColor) colorful.Color {
	return colorful.Color{R: c.Red(), G: c.Green(), B: c.Blue()}
}

func (g *Grid) randomShade() tailwindcolor.Shade {
	return tailwindcolor.Shades[g.rng.IntN(len(tailwindcolor.Shades))]
}

func (g *Grid) Family() tailwindcolor.Family { return g.family }

// SetFamily switches the grid to fam and starts a shuffle toward it.
func (g *Grid) SetFamily(fam tailwindcolor.Family) {
	g.family = fam
	g.Shuffle()
}

// Shuffle picks a new random shade for every cell. Cells start blending
// from whatever color they currently show.
func (g *Grid) Shuffle() {
	g.shuffles++
	for i := range g.cells {
		c := &g.cells[i]
		c.from = c.current()
		c.Shade = g.randomShade()
		c.Target = g.family.Shade(c.Shade)
		c.to = toColorful(c.Target)
		c.t = 0
	}
}

// State returns what SaveState needs to rebuild the grid.
func (g *Grid) State() State {
	return State{Family: g.family.Name(), Seed: g.seed, Shuffles: g.shuffles}
}

// Step advances every transition by Speed.
func (g *Grid) Step() {
	for i := range g.cells {
		c := &g.cells[i]
		if c.t >= 1 {
			continue
		}
		c.t += g.Speed
		if c.t > 1 {
			c.t = 1
		}
	}
}

// Settled reports whether all transitions are complete.
func (g *Grid) Settled() bool {
	for _, c := range g.cells {
		if c.t < 1 {
			return false
		}
	}
	return true
}

// Cell returns the cell at row, col.
func (g *Grid) Cell(row, col int) Cell {
	return g.cells[row*g.Cols+col]
}

// Color returns the color currently shown at row, col.
func (g *Grid) Color(row, col int) colorful.Color {
	return g.cells[row*g.Cols+col].current()
}

// Settled reports whether the cell has reached its target.
func (c Cell) Settled() bool { return c.t >= 1 }

func (c Cell) current() colorful.Color {
	if c.t >= 1 {
		return c.to
	}
	return c.from.BlendRgb(c.to, easeOutCubic(c.t))
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// CycleFamily returns the family delta steps away from name in palette
// order, wrapping at both ends. Unknown names start from the first family.
func CycleFamily(name string, delta int) tailwindcolor.Family {
	fams := tailwindcolor.Families()
	idx := 0
	for i, f := range fams {
		if f.Name() == name {
			idx = i
			break
		}
	}
	n := len(fams)
	idx = ((idx+delta)%n + n) % n
	return fams[idx]
}
