package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var configuredLevels = []struct {
	name       string
	cols, rows int
	required   int
}{
	{"act1", 7, 7, 4},
	{"act2", 9, 9, 6},
	{"act3", 11, 11, 8},
}

func TestPlaceSufficientAndDisjoint(t *testing.T) {
	for _, lvl := range configuredLevels {
		t.Run(lvl.name, func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				seed := rapid.Int64().Draw(t, "seed")
				rng := rand.New(rand.NewSource(seed))
				m := Generate(lvl.cols, lvl.rows, rng)
				geo := NewGeometry(m, 20, 20)
				spawn := m.Center()
				p := Place(m, geo, spawn, lvl.required, 2.5, rng)

				if len(p.Collectibles) < lvl.required {
					t.Fatalf("placed %d collectibles, need %d", len(p.Collectibles), lvl.required)
				}
				if len(p.Collectibles) > lvl.required+CollectiblePadding {
					t.Fatalf("placed %d collectibles, cap %d", len(p.Collectibles), lvl.required+CollectiblePadding)
				}
				if len(p.Hazards) > (lvl.required+CollectiblePadding)/2 {
					t.Fatalf("placed %d hazards", len(p.Hazards))
				}
				seen := map[Pos]bool{spawn: true}
				for _, c := range append(append([]Pos{}, p.Collectibles...), p.Hazards...) {
					if seen[c] {
						t.Fatalf("cell %v used twice", c)
					}
					seen[c] = true
					if geo.CellCenter(c.Col, c.Row).Dist(geo.CellCenter(spawn.Col, spawn.Row)) < 2.5 {
						t.Fatalf("cell %v too close to spawn", c)
					}
				}
			})
		})
	}
}

func TestPlaceSevenBySevenScenario(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := Generate(7, 7, rng)
	spawn := m.Center()

	nonSpawn := 0
	for c := 0; c < m.Cols; c++ {
		for r := 0; r < m.Rows; r++ {
			if (Pos{c, r}) != spawn {
				nonSpawn++
			}
		}
	}
	assert.Equal(t, 48, nonSpawn)

	p := Place(m, NewGeometry(m, 20, 20), spawn, 4, 2.5, rng)
	assert.GreaterOrEqual(t, len(p.Collectibles), 4)
	assert.LessOrEqual(t, len(p.Hazards), 3)
}

func TestPlacePrefersDeadEnds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m := Generate(9, 9, rng)
	geo := NewGeometry(m, 20, 20)
	spawn := m.Center()

	deadEnds := 0
	for c := 0; c < m.Cols; c++ {
		for r := 0; r < m.Rows; r++ {
			p := Pos{c, r}
			if p != spawn && m.Degree(c, r) <= 1 && geo.CellCenter(c, r).Dist(geo.CellCenter(spawn.Col, spawn.Row)) >= 2.5 {
				deadEnds++
			}
		}
	}
	require.Greater(t, deadEnds, 0)

	p := Place(m, geo, spawn, 6, 2.5, rng)
	want := deadEnds
	if want > len(p.Collectibles) {
		want = len(p.Collectibles)
	}
	for i := 0; i < want; i++ {
		c := p.Collectibles[i]
		assert.LessOrEqual(t, m.Degree(c.Col, c.Row), 1, "collectible %d at %v should be a dead end", i, c)
	}
}

func TestPlaceUnderSupplyDegrades(t *testing.T) {
	// a 2x2 maze has three non-spawn cells
	m := Generate(2, 2, rand.New(rand.NewSource(1)))
	p := Place(m, NewGeometry(m, 20, 20), m.Center(), 8, 0, rand.New(rand.NewSource(1)))
	assert.Len(t, p.Collectibles, 3)
	assert.Empty(t, p.Hazards)
}

func TestPlaceMinDistanceFiltersEverything(t *testing.T) {
	m := Generate(7, 7, rand.New(rand.NewSource(1)))
	p := Place(m, NewGeometry(m, 20, 20), m.Center(), 4, 100, rand.New(rand.NewSource(1)))
	assert.Empty(t, p.Collectibles)
	assert.Empty(t, p.Hazards)
}
