package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGenerateIsSpanningTree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cols := rapid.IntRange(2, 12).Draw(t, "cols")
		rows := rapid.IntRange(2, 12).Draw(t, "rows")
		seed := rapid.Int64().Draw(t, "seed")

		m := Generate(cols, rows, rand.New(rand.NewSource(seed)))

		if got := m.OpenEdges(); got != cols*rows-1 {
			t.Fatalf("open edges = %d, want %d", got, cols*rows-1)
		}
		for _, p := range []Pos{{0, 0}, {cols - 1, rows - 1}, m.Center()} {
			if got := m.Reachable(p.Col, p.Row); got != cols*rows {
				t.Fatalf("reachable from %v = %d, want %d", p, got, cols*rows)
			}
		}
	})
}

func TestGenerateWallsAreSymmetric(t *testing.T) {
	m := Generate(9, 7, rand.New(rand.NewSource(3)))
	for c := 0; c < m.Cols; c++ {
		for r := 0; r < m.Rows; r++ {
			for d := 0; d < 4; d++ {
				n := m.Neighbor(c, r, d)
				if n == nil {
					assert.True(t, m.Matrix[c][r].Walls[d], "border wall %d,%d side %d", c, r, d)
					continue
				}
				assert.Equal(t, m.Matrix[c][r].Walls[d], n.Walls[Opposite(d)], "cell %d,%d side %d", c, r, d)
			}
			assert.True(t, m.Matrix[c][r].Visited)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(11, 11, rand.New(rand.NewSource(42)))
	b := Generate(11, 11, rand.New(rand.NewSource(42)))
	for c := 0; c < a.Cols; c++ {
		for r := 0; r < a.Rows; r++ {
			require.Equal(t, a.Matrix[c][r].Walls, b.Matrix[c][r].Walls)
		}
	}
}

func TestGenerateDegenerateSizes(t *testing.T) {
	cases := []struct {
		name       string
		cols, rows int
	}{
		{"single", 1, 1},
		{"row", 8, 1},
		{"column", 1, 8},
		{"clamped", 0, -3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := Generate(c.cols, c.rows, rand.New(rand.NewSource(1)))
			total := m.Cols * m.Rows
			assert.Equal(t, total-1, m.OpenEdges())
			assert.Equal(t, total, m.Reachable(0, 0))
		})
	}
}

func TestDegreeCountsOpenSides(t *testing.T) {
	m := NewEmptyModel(3, 3)
	assert.Equal(t, 0, m.Degree(1, 1))
	m.connect(1, 1, North)
	m.connect(1, 1, East)
	assert.Equal(t, 2, m.Degree(1, 1))
	assert.Equal(t, 1, m.Degree(1, 0))
	// borders never count even without a wall flag
	m.Matrix[0][0].Walls[West] = false
	assert.Equal(t, 0, m.Degree(0, 0))
}

func TestGeometryCentersMaze(t *testing.T) {
	m := NewEmptyModel(5, 5)
	g := NewGeometry(m, 20, 20)
	assert.InDelta(t, 4.0, g.CellSize, 1e-9)
	center := g.CellCenter(2, 2)
	assert.InDelta(t, 0, center.X, 1e-9)
	assert.InDelta(t, 0, center.Y, 1e-9)
	corner := g.CellCenter(0, 0)
	assert.InDelta(t, -8, corner.X, 1e-9)
	assert.InDelta(t, -8, corner.Y, 1e-9)
}

func TestGeometryWallsCountSharedSidesOnce(t *testing.T) {
	m := Generate(7, 7, rand.New(rand.NewSource(9)))
	g := NewGeometry(m, 20, 20)
	// a closed grid has 2*C*R + C + R sides, each passage removes one
	sides := 2*7*7 + 7 + 7
	assert.Len(t, g.Walls(m, 0.2), sides-m.OpenEdges())
}
