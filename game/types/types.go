package types

import "fmt"

// Point is a cell on the grid. Grid coordinates are 0-indexed, Y grows downwards.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Equal(o Point) bool {
	return p == o
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is a square arena of Rows x Rows cells. The outermost ring is wall.
type Grid struct {
	Rows int
}

// InBounds reports whether p lies inside [0, Rows) on both axes.
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Rows && p.Y >= 0 && p.Y < g.Rows
}

// IsBorder reports whether p is on the wall ring or outside the grid altogether.
func (g Grid) IsBorder(p Point) bool {
	if !g.InBounds(p) {
		return true
	}
	return p.X == 0 || p.Y == 0 || p.X == g.Rows-1 || p.Y == g.Rows-1
}

// InteriorCells is the number of walkable cells, (Rows-2)^2.
func (g Grid) InteriorCells() int {
	side := g.Rows - 2
	if side <= 0 {
		return 0
	}
	return side * side
}

// Center is where a fresh snake starts.
func (g Grid) Center() Point {
	return Point{X: g.Rows / 2, Y: g.Rows / 2}
}

// Color is an opaque RGB triple. Frontends convert it to their own color type.
type Color struct {
	R, G, B uint8
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
