package window

import "snake-classic/game/types"

// Layout maps grid cells to window pixels.
type Layout struct {
	WindowSize int
	Rows       int
	CellSize   float32
	LineWidth  float32
}

// Line is a segment in window coordinates.
type Line struct {
	X1, Y1, X2, Y2 float32
}

func NewLayout(windowSize, rows, lineWidth int) Layout {
	return Layout{
		WindowSize: windowSize,
		Rows:       rows,
		CellSize:   float32(windowSize) / float32(rows),
		LineWidth:  float32(lineWidth),
	}
}

// CellRect returns the top-left corner and extent of the cell covering p.
// Each far edge is rounded on its own axis so neighbouring cells leave no gaps.
func (l Layout) CellRect(p types.Point) (x, y, w, h int32) {
	x = int32(float32(p.X) * l.CellSize)
	y = int32(float32(p.Y) * l.CellSize)
	w = int32(float32(p.X+1)*l.CellSize) - x
	h = int32(float32(p.Y+1)*l.CellSize) - y
	return x, y, w, h
}

// GridLines returns Rows+1 vertical and Rows+1 horizontal lines spanning the window.
// No lines are drawn when the line width is zero.
func (l Layout) GridLines() []Line {
	if l.LineWidth <= 0 {
		return nil
	}
	side := float32(l.WindowSize)
	lines := make([]Line, 0, 2*(l.Rows+1))
	for i := 0; i <= l.Rows; i++ {
		c := float32(i) * l.CellSize
		lines = append(lines,
			Line{X1: c, Y1: 0, X2: c, Y2: side},
			Line{X1: 0, Y1: c, X2: side, Y2: c},
		)
	}
	return lines
}
