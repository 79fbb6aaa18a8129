package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/types"
)

// Palette holds the colors a frontend paints with. Snake and food carry their
// own colors; these cover everything else.
type Palette struct {
	Background types.Color
	Line       types.Color
	Border     types.Color
	Text       types.Color
}

// CellKind is what occupies a drawn cell.
type CellKind int

const (
	CellBorder CellKind = iota
	CellFood
	CellBody
	CellHead
)

type Cell struct {
	Pos   types.Point
	Kind  CellKind
	Color types.Color
}

// Scene lists cells in paint order: border, food, body from tail to neck,
// then the head, so later cells cover earlier ones.
func Scene(g *game.Game, p Palette) []Cell {
	rows := g.Grid.Rows
	segs := g.GetSnake().Segments()
	cells := make([]Cell, 0, 4*rows+len(segs)+1)

	for i := 0; i < rows; i++ {
		cells = append(cells,
			Cell{Pos: types.Point{X: i, Y: 0}, Kind: CellBorder, Color: p.Border},
			Cell{Pos: types.Point{X: i, Y: rows - 1}, Kind: CellBorder, Color: p.Border},
		)
	}
	for i := 1; i < rows-1; i++ {
		cells = append(cells,
			Cell{Pos: types.Point{X: 0, Y: i}, Kind: CellBorder, Color: p.Border},
			Cell{Pos: types.Point{X: rows - 1, Y: i}, Kind: CellBorder, Color: p.Border},
		)
	}

	food := g.GetFood()
	cells = append(cells, Cell{Pos: food.Pos, Kind: CellFood, Color: food.Color})

	for i := len(segs) - 1; i > 0; i-- {
		cells = append(cells, Cell{Pos: segs[i].Pos, Kind: CellBody, Color: segs[i].Color})
	}
	cells = append(cells, Cell{Pos: segs[0].Pos, Kind: CellHead, Color: segs[0].Color})
	return cells
}

func ScoreText(g *game.Game) string {
	return fmt.Sprintf("Current score: %d", g.Score())
}
