package model

import (
	"math/rand"
	"time"
)

// NewEmptyModel builds a cols x rows grid with every wall standing.
func NewEmptyModel(cols, rows int) *Maze {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	matrix := make([][]*Cell, 0, cols)
	for c := 0; c < cols; c++ {
		column := make([]*Cell, 0, rows)
		for r := 0; r < rows; r++ {
			column = append(column, &Cell{Col: c, Row: r, Walls: [4]bool{true, true, true, true}})
		}
		matrix = append(matrix, column)
	}
	return &Maze{Cols: cols, Rows: rows, Matrix: matrix}
}

// Generate carves a perfect maze by randomized depth-first search from the center cell.
// The result is a spanning tree over the grid and depends only on rng.
func Generate(cols, rows int, rng *rand.Rand) *Maze {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m := NewEmptyModel(cols, rows)

	start := m.Center()
	m.Matrix[start.Col][start.Row].Visited = true
	stack := []Pos{start}

	candidates := make([]int, 0, 4)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range carveOrder {
			n := m.Neighbor(curr.Col, curr.Row, d)
			if n != nil && !n.Visited {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		next := m.Neighbor(curr.Col, curr.Row, d)
		m.Matrix[curr.Col][curr.Row].Walls[d] = false
		next.Walls[Opposite(d)] = false
		next.Visited = true
		stack = append(stack, next.Pos())
	}
	return m
}

// connect opens the passage on side d of (c,r) and its facing side.
func (m *Maze) connect(c, r, d int) {
	n := m.Neighbor(c, r, d)
	if n == nil {
		return
	}
	m.Matrix[c][r].Walls[d] = false
	n.Walls[Opposite(d)] = false
}
