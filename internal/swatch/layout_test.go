package swatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutCentered(t *testing.T) {
	l := NewLayout(8, 20, 32, 8, 1280, 720)
	b := l.Bounds()
	assert.Equal(t, 20*32+19*8, b.W)
	assert.Equal(t, 8*32+7*8, b.H)
	assert.Equal(t, (1280-b.W)/2, b.X)
	assert.Equal(t, (720-b.H)/2, b.Y)

	cx, cy := b.Center()
	assert.InDelta(t, 640, cx, 1)
	assert.InDelta(t, 360, cy, 1)
}

func TestLayoutCellBounds(t *testing.T) {
	l := Layout{Rows: 2, Cols: 3, Cell: 10, Gap: 5, OriginX: 100, OriginY: 50}
	assert.Equal(t, Bounds{X: 100, Y: 50, W: 10, H: 10}, l.CellBounds(0, 0))
	assert.Equal(t, Bounds{X: 130, Y: 65, W: 10, H: 10}, l.CellBounds(1, 2))
	assert.Equal(t, Bounds{X: 100, Y: 50, W: 40, H: 25}, l.Bounds())
}

func TestLayoutHitTest(t *testing.T) {
	l := Layout{Rows: 2, Cols: 3, Cell: 10, Gap: 5, OriginX: 100, OriginY: 50}
	tests := []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{100, 50, 0, 0, true},
		{109, 59, 0, 0, true},
		{110, 50, -1, -1, false}, // gap
		{115, 50, 0, 1, true},
		{139, 74, 1, 2, true},
		{140, 74, -1, -1, false}, // right edge
		{99, 50, -1, -1, false},
		{105, 62, -1, -1, false}, // gap between rows
	}
	for _, tt := range tests {
		row, col, ok := l.HitTest(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "(%d,%d)", tt.x, tt.y)
		assert.Equal(t, tt.row, row, "(%d,%d)", tt.x, tt.y)
		assert.Equal(t, tt.col, col, "(%d,%d)", tt.x, tt.y)
	}
}

func TestLayoutEmpty(t *testing.T) {
	l := NewLayout(0, 0, 32, 8, 100, 100)
	assert.Equal(t, Bounds{X: 50, Y: 50}, l.Bounds())
	_, _, ok := l.HitTest(50, 50)
	assert.False(t, ok)
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{X: 0, Y: 0, W: 4, H: 2}
	assert.True(t, b.Contains(0, 0))
	assert.True(t, b.Contains(3, 1))
	assert.False(t, b.Contains(4, 1))
	assert.False(t, b.Contains(3, 2))
	assert.False(t, b.Contains(-1, 0))
}

func TestCentered(t *testing.T) {
	l := Layout{Rows: 2, Cols: 3, Cell: 10, Gap: 5, OriginX: 100, OriginY: 50}
	assert.Equal(t, Bounds{X: 110, Y: 57, W: 20, H: 10}, l.Centered(20, 10))
}
