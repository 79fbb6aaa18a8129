package types

import "testing"

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite of opposite is %v", d, d.Opposite().Opposite())
		}
		sum := d.ToPoint().Add(d.Opposite().ToPoint())
		if sum != (Point{}) {
			t.Errorf("%v: vector plus opposite vector = %v, want (0,0)", d, sum)
		}
	}
	if None.Opposite() != None {
		t.Errorf("None.Opposite() = %v", None.Opposite())
	}
	if None.Valid() {
		t.Error("None must not be a valid heading")
	}
}

func TestGridBorder(t *testing.T) {
	g := Grid{Rows: 5}

	tests := []struct {
		p      Point
		border bool
	}{
		{Point{0, 2}, true},
		{Point{4, 2}, true},
		{Point{2, 0}, true},
		{Point{2, 4}, true},
		{Point{-1, 2}, true},
		{Point{2, 5}, true},
		{Point{1, 1}, false},
		{Point{3, 3}, false},
		{Point{2, 2}, false},
	}

	for _, tt := range tests {
		if got := g.IsBorder(tt.p); got != tt.border {
			t.Errorf("IsBorder(%v) = %v, want %v", tt.p, got, tt.border)
		}
	}
}

func TestGridInteriorCells(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{5, 9},
		{20, 324},
		{3, 1},
		{2, 0},
		{1, 0},
	}
	for _, tt := range tests {
		if got := (Grid{Rows: tt.rows}).InteriorCells(); got != tt.want {
			t.Errorf("Rows=%d: InteriorCells() = %d, want %d", tt.rows, got, tt.want)
		}
	}
}

func TestColorHex(t *testing.T) {
	c := Color{R: 255, G: 0, B: 150}
	if got := c.Hex(); got != "#ff0096" {
		t.Errorf("Hex() = %q", got)
	}
}
