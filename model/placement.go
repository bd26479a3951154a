package model

import (
	"math/rand"
	"time"
)

// Extra collectibles placed beyond the required count.
const CollectiblePadding = 2

type Placement struct {
	Collectibles []Pos
	Hazards      []Pos
}

// Place distributes collectibles and hazards over the maze cells. Dead ends are preferred
// over corridors, cells closer than minDist to the spawn are skipped and no cell is used
// twice. When the pools run dry it places what it can.
func Place(m *Maze, geo Geometry, spawn Pos, required int, minDist float64, rng *rand.Rand) Placement {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	spawnAt := geo.CellCenter(spawn.Col, spawn.Row)

	deadEnds := make([]Pos, 0)
	corridors := make([]Pos, 0)
	for c := 0; c < m.Cols; c++ {
		for r := 0; r < m.Rows; r++ {
			p := Pos{c, r}
			if p == spawn {
				continue
			}
			if geo.CellCenter(c, r).Dist(spawnAt) < minDist {
				continue
			}
			if m.Degree(c, r) <= 1 {
				deadEnds = append(deadEnds, p)
			} else {
				corridors = append(corridors, p)
			}
		}
	}
	shuffle(deadEnds, rng)
	shuffle(corridors, rng)

	if required < 0 {
		required = 0
	}
	whitesDesired := required + CollectiblePadding
	negDesired := whitesDesired / 2

	used := make(map[Pos]bool, whitesDesired+negDesired)
	ordered := append(append(make([]Pos, 0, len(deadEnds)+len(corridors)), deadEnds...), corridors...)

	var out Placement
	for _, p := range ordered {
		if len(out.Collectibles) >= whitesDesired {
			break
		}
		out.Collectibles = append(out.Collectibles, p)
		used[p] = true
	}

	for _, p := range ordered {
		if len(out.Hazards) >= negDesired {
			break
		}
		if used[p] {
			continue
		}
		out.Hazards = append(out.Hazards, p)
		used[p] = true
	}
	return out
}

func shuffle(ps []Pos, rng *rand.Rand) {
	rng.Shuffle(len(ps), func(i, j int) {
		ps[i], ps[j] = ps[j], ps[i]
	})
}
