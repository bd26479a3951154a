package model

// Directions index Cell.Walls. Opposite(d) is the facing side of the neighbor.
const (
	East = iota
	South
	West
	North
)

var dirOffsets = [4][2]int{
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
	North: {0, -1},
}

// carveOrder is the order neighbors are inspected while carving: up, right, down, left.
var carveOrder = [4]int{North, East, South, West}

func Opposite(d int) int {
	return (d + 2) % 4
}

// Pos is a grid coordinate.
type Pos struct {
	Col, Row int
}

type Cell struct {
	Col, Row int
	Walls    [4]bool
	Visited  bool
}

func (c *Cell) Pos() Pos {
	return Pos{Col: c.Col, Row: c.Row}
}

// Maze is a grid of cells indexed Matrix[col][row].
type Maze struct {
	Cols, Rows int
	Matrix     [][]*Cell
}

func (m *Maze) InBounds(c, r int) bool {
	return c >= 0 && c < m.Cols && r >= 0 && r < m.Rows
}

func (m *Maze) Cell(c, r int) *Cell {
	if !m.InBounds(c, r) {
		return nil
	}
	return m.Matrix[c][r]
}

// Center is the spawn and carving origin.
func (m *Maze) Center() Pos {
	return Pos{Col: m.Cols / 2, Row: m.Rows / 2}
}

// Neighbor returns the adjacent cell in direction d, or nil at the border.
func (m *Maze) Neighbor(c, r, d int) *Cell {
	o := dirOffsets[d]
	return m.Cell(c+o[0], r+o[1])
}

// Open reports whether the side d of (c,r) leads to an in-bounds neighbor without a wall.
func (m *Maze) Open(c, r, d int) bool {
	cell := m.Cell(c, r)
	if cell == nil || cell.Walls[d] {
		return false
	}
	return m.Neighbor(c, r, d) != nil
}

func (m *Maze) Degree(c, r int) int {
	n := 0
	for d := 0; d < 4; d++ {
		if m.Open(c, r, d) {
			n++
		}
	}
	return n
}

// OpenEdges counts passages between adjacent cells, each counted once.
func (m *Maze) OpenEdges() int {
	n := 0
	for c := 0; c < m.Cols; c++ {
		for r := 0; r < m.Rows; r++ {
			if m.Open(c, r, East) {
				n++
			}
			if m.Open(c, r, South) {
				n++
			}
		}
	}
	return n
}

// Reachable returns how many cells can be reached from (c,r) through open sides.
func (m *Maze) Reachable(c, r int) int {
	if !m.InBounds(c, r) {
		return 0
	}
	seen := make(map[Pos]bool, m.Cols*m.Rows)
	queue := []Pos{{c, r}}
	seen[queue[0]] = true
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for d := 0; d < 4; d++ {
			if !m.Open(p.Col, p.Row, d) {
				continue
			}
			n := m.Neighbor(p.Col, p.Row, d).Pos()
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}
