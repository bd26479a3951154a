package flow

import (
	"math/rand"

	"github.com/zucenko/smalldream/model"
	"github.com/zucenko/smalldream/physics"
)

// FlagStore persists whether the tutorial has been shown.
type FlagStore interface {
	TutorialSeen() bool
	MarkTutorialSeen()
}

// Physics moves the player body against static walls.
type Physics interface {
	Reset()
	AddWall(r model.Rect)
	AddPlayer(pos model.Vec, radius float64) *physics.Body
	Step(dt float64)
	// Bumps counts new wall contacts since the last call.
	Bumps() int
}

// LevelSource supplies the maze and placement for an act.
type LevelSource interface {
	Layout(act int, shape model.LevelShape) (model.Layout, error)
}

// LocalLevels generates layouts in-process.
type LocalLevels struct {
	Rand *rand.Rand
}

func (l *LocalLevels) Layout(act int, shape model.LevelShape) (model.Layout, error) {
	return model.NewLayout(shape, l.Rand), nil
}

// memoryFlags keeps the tutorial flag for one run only.
type memoryFlags struct {
	seen bool
}

func (m *memoryFlags) TutorialSeen() bool { return m.seen }
func (m *memoryFlags) MarkTutorialSeen()  { m.seen = true }
