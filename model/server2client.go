package model

// ClientMessage asks the level feed for the layout of an act.
type ClientMessage struct {
	Act  int
	Seed int64
}

type ServerMessage struct {
	Setup  []Setup
	Errors []string
}

// Setup carries a complete level layout. Walls is indexed [col*Rows+row].
type Setup struct {
	Act          int
	Seed         int64
	Cols, Rows   int
	Walls        [][4]bool
	Spawn        Pos
	Collectibles []Pos
	Hazards      []Pos
}

func NewSetup(act int, seed int64, l Layout) Setup {
	m := l.Maze
	walls := make([][4]bool, 0, m.Cols*m.Rows)
	for c := 0; c < m.Cols; c++ {
		for r := 0; r < m.Rows; r++ {
			walls = append(walls, m.Matrix[c][r].Walls)
		}
	}
	return Setup{
		Act:          act,
		Seed:         seed,
		Cols:         m.Cols,
		Rows:         m.Rows,
		Walls:        walls,
		Spawn:        l.Spawn,
		Collectibles: append([]Pos(nil), l.Placement.Collectibles...),
		Hazards:      append([]Pos(nil), l.Placement.Hazards...),
	}
}

// Layout rebuilds the maze described by the setup.
func (s Setup) Layout() (Layout, bool) {
	if s.Cols < 1 || s.Rows < 1 || len(s.Walls) != s.Cols*s.Rows {
		return Layout{}, false
	}
	m := NewEmptyModel(s.Cols, s.Rows)
	for c := 0; c < s.Cols; c++ {
		for r := 0; r < s.Rows; r++ {
			m.Matrix[c][r].Walls = s.Walls[c*s.Rows+r]
			m.Matrix[c][r].Visited = true
		}
	}
	return Layout{
		Maze:      m,
		Spawn:     s.Spawn,
		Placement: Placement{Collectibles: s.Collectibles, Hazards: s.Hazards},
	}, true
}
