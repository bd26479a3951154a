// Package entity holds the level's physical objects and the arena that owns them.
package entity

import (
	"fmt"

	"github.com/zucenko/smalldream/model"
	"github.com/zucenko/smalldream/render"
)

type ID uint64

type Kind int

const (
	KindPlayer Kind = iota + 1
	KindMemory
	KindShadow
	KindWall
)

func (k Kind) Name() string {
	switch k {
	case KindPlayer:
		return "PLAYER"
	case KindMemory:
		return "MEMORY"
	case KindShadow:
		return "SHADOW"
	case KindWall:
		return "WALL"
	default:
		return fmt.Sprintf("N/A(%d)", k)
	}
}

// Host is what entities see of the running level.
type Host interface {
	Now() float64
	// Direction is the player's movement input, each axis in [-1,1].
	Direction() model.Vec
	PlayerPos() model.Vec
	PickupRadius() float64
	Speed() float64
	CollectMemory(m *Memory)
	TouchShadow(s *Shadow)
	Play(c render.Cue)
	Rand() float64
}

type Entity interface {
	ID() ID
	Kind() Kind
	Pos() model.Vec
	Update(h Host)
	Render(now float64, f *render.Frame)
	bind(id ID)
}

type base struct {
	id ID
}

func (b *base) ID() ID     { return b.id }
func (b *base) bind(id ID) { b.id = id }
