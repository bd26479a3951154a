package model

import "math"

type Vec struct {
	X, Y float64
}

func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64  { return v.Sub(o).Len() }

func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// ClampLen shortens v to at most max.
func (v Vec) ClampLen(max float64) Vec {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Rect is an axis-aligned box given by its center and full size.
type Rect struct {
	Center Vec
	Size   Vec
}

// Geometry maps grid coordinates to world space. The maze is centered on the origin,
// rows grow downwards.
type Geometry struct {
	CellSize float64
	Origin   Vec
	Cols     int
	Rows     int
}

// NewGeometry fits the maze into a bounds envelope of the given width and height.
func NewGeometry(m *Maze, width, height float64) Geometry {
	size := math.Min(width/float64(m.Cols), height/float64(m.Rows))
	return Geometry{
		CellSize: size,
		Origin:   Vec{-size * float64(m.Cols) / 2, -size * float64(m.Rows) / 2},
		Cols:     m.Cols,
		Rows:     m.Rows,
	}
}

func (g Geometry) CellCenter(c, r int) Vec {
	return Vec{
		X: g.Origin.X + (float64(c)+0.5)*g.CellSize,
		Y: g.Origin.Y + (float64(r)+0.5)*g.CellSize,
	}
}

// Walls returns one rectangle per standing wall segment. Shared sides appear once:
// every cell contributes its north and west walls, the last column its east walls and
// the last row its south walls.
func (g Geometry) Walls(m *Maze, thickness float64) []Rect {
	rects := make([]Rect, 0, m.Cols*m.Rows*2)
	half := g.CellSize / 2
	long := g.CellSize + thickness
	for c := 0; c < m.Cols; c++ {
		for r := 0; r < m.Rows; r++ {
			cell := m.Matrix[c][r]
			center := g.CellCenter(c, r)
			if cell.Walls[North] {
				rects = append(rects, Rect{Center: center.Add(Vec{0, -half}), Size: Vec{long, thickness}})
			}
			if cell.Walls[West] {
				rects = append(rects, Rect{Center: center.Add(Vec{-half, 0}), Size: Vec{thickness, long}})
			}
			if c == m.Cols-1 && cell.Walls[East] {
				rects = append(rects, Rect{Center: center.Add(Vec{half, 0}), Size: Vec{thickness, long}})
			}
			if r == m.Rows-1 && cell.Walls[South] {
				rects = append(rects, Rect{Center: center.Add(Vec{0, half}), Size: Vec{long, thickness}})
			}
		}
	}
	return rects
}
