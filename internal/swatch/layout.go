package swatch

// Bounds is an on-screen rectangle in pixels.
type Bounds struct {
	X, Y int
	W, H int
}

// Contains reports whether the point lies inside b. The right and
// bottom edges are exclusive.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Center returns the midpoint of b.
func (b Bounds) Center() (x, y int) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Layout places a grid of square cells centered on the screen.
type Layout struct {
	Rows, Cols int
	Cell, Gap  int
	OriginX    int
	OriginY    int
}

// NewLayout centers a rows x cols grid inside a screenW x screenH area.
// The origin may be negative when the grid is larger than the screen.
func NewLayout(rows, cols, cell, gap, screenW, screenH int) Layout {
	l := Layout{Rows: rows, Cols: cols, Cell: cell, Gap: gap}
	b := l.Bounds()
	l.OriginX = (screenW - b.W) / 2
	l.OriginY = (screenH - b.H) / 2
	return l
}

// Bounds returns the rectangle covering every cell.
func (l Layout) Bounds() Bounds {
	w, h := 0, 0
	if l.Cols > 0 {
		w = l.Cols*l.Cell + (l.Cols-1)*l.Gap
	}
	if l.Rows > 0 {
		h = l.Rows*l.Cell + (l.Rows-1)*l.Gap
	}
	return Bounds{X: l.OriginX, Y: l.OriginY, W: w, H: h}
}

// CellBounds returns the rectangle of the cell at row, col.
func (l Layout) CellBounds(row, col int) Bounds {
	step := l.Cell + l.Gap
	return Bounds{
		X: l.OriginX + col*step,
		Y: l.OriginY + row*step,
		W: l.Cell,
		H: l.Cell,
	}
}

// HitTest returns the cell under the point. Points in the gaps between
// cells miss.
func (l Layout) HitTest(x, y int) (row, col int, ok bool) {
	if !l.Bounds().Contains(x, y) {
		return -1, -1, false
	}
	step := l.Cell + l.Gap
	dx := x - l.OriginX
	dy := y - l.OriginY
	col = dx / step
	row = dy / step
	if dx%step >= l.Cell || dy%step >= l.Cell {
		return -1, -1, false
	}
	return row, col, true
}

// Centered returns a w x h rectangle centered on the grid.
func (l Layout) Centered(w, h int) Bounds {
	cx, cy := l.Bounds().Center()
	return Bounds{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}
