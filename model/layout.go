package model

import "math/rand"

// LevelShape holds what a layout needs from the level configuration.
type LevelShape struct {
	Cols, Rows int
	Required   int
	Bounds     Vec
	MinDist    float64
}

// NewLayout generates a maze and places its content, spawning in the center cell.
func NewLayout(shape LevelShape, rng *rand.Rand) Layout {
	m := Generate(shape.Cols, shape.Rows, rng)
	geo := NewGeometry(m, shape.Bounds.X, shape.Bounds.Y)
	spawn := m.Center()
	return Layout{
		Maze:      m,
		Spawn:     spawn,
		Placement: Place(m, geo, spawn, shape.Required, shape.MinDist, rng),
	}
}
