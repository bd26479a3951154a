package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/zucenko/smalldream/model"
)

const (
	runeWall        = '█'
	runeSpawn       = '@'
	runeCollectible = '*'
	runeHazard      = 'x'
)

var (
	styleWall        = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleFloor       = tcell.StyleDefault
	styleSpawn       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleCollectible = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHazard      = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Grid renders a layout as (2*cols+1) x (2*rows+1) cells, indexed grid[y][x]. Maze cells
// sit on odd coordinates and the walls between them on the even ones.
func Grid(l model.Layout) [][]Cell {
	m := l.Maze
	w, h := 2*m.Cols+1, 2*m.Rows+1
	grid := make([][]Cell, h)
	for y := range grid {
		grid[y] = make([]Cell, w)
		for x := range grid[y] {
			grid[y][x] = Cell{runeWall, styleWall}
		}
	}
	for c := 0; c < m.Cols; c++ {
		for r := 0; r < m.Rows; r++ {
			x, y := 2*c+1, 2*r+1
			grid[y][x] = Cell{' ', styleFloor}
			cell := m.Matrix[c][r]
			if !cell.Walls[model.East] && c+1 < m.Cols {
				grid[y][x+1] = Cell{' ', styleFloor}
			}
			if !cell.Walls[model.South] && r+1 < m.Rows {
				grid[y+1][x] = Cell{' ', styleFloor}
			}
		}
	}
	mark := func(p model.Pos, r rune, s tcell.Style) {
		grid[2*p.Row+1][2*p.Col+1] = Cell{r, s}
	}
	for _, p := range l.Placement.Collectibles {
		mark(p, runeCollectible, styleCollectible)
	}
	for _, p := range l.Placement.Hazards {
		mark(p, runeHazard, styleHazard)
	}
	mark(l.Spawn, runeSpawn, styleSpawn)
	return grid
}
