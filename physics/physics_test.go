package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/smalldream/model"
)

func TestPlayerMovesFreely(t *testing.T) {
	s := NewSpace()
	b := s.AddPlayer(model.V(0, 0), 0.3)
	b.SetVelocity(model.V(6, 0))
	for i := 0; i < 60; i++ {
		s.Step(1.0 / 60)
	}
	// the target velocity is picked up after the first position update
	assert.InDelta(t, 5.9, b.Position().X, 0.01)
	assert.InDelta(t, 0, b.Position().Y, 0.05)
}

func TestWallBlocksPlayer(t *testing.T) {
	s := NewSpace()
	s.AddWall(model.Rect{Center: model.V(2, 0), Size: model.V(0.2, 4)})
	b := s.AddPlayer(model.V(0, 0), 0.3)
	for i := 0; i < 120; i++ {
		b.SetVelocity(model.V(5, 0))
		s.Step(1.0 / 60)
	}
	assert.Less(t, b.Position().X, 1.9)
	assert.Greater(t, b.Position().X, 1.4)
	assert.GreaterOrEqual(t, s.Bumps(), 1)
	assert.Zero(t, s.Bumps())
}

func TestThinWallHoldsAtPlayerSpeed(t *testing.T) {
	s := NewSpace()
	s.AddWall(model.Rect{Center: model.V(1, 0), Size: model.V(0.18, 3)})
	b := s.AddPlayer(model.V(0, 0), 0.28)
	for i := 0; i < 300; i++ {
		b.SetVelocity(model.V(7, 0.2))
		s.Step(1.0 / 60)
		require.Less(t, b.Position().X, 1.0, "step %d", i)
	}
}

func TestSlidesAlongWall(t *testing.T) {
	s := NewSpace()
	s.AddWall(model.Rect{Center: model.V(1, 0), Size: model.V(0.2, 20)})
	b := s.AddPlayer(model.V(0, 0), 0.3)
	for i := 0; i < 60; i++ {
		b.SetVelocity(model.V(4, 3))
		s.Step(1.0 / 60)
	}
	assert.Less(t, b.Position().X, 0.9)
	assert.InDelta(t, 2.95, b.Position().Y, 0.1)
}

func TestResetClearsBumps(t *testing.T) {
	s := NewSpace()
	s.AddWall(model.Rect{Center: model.V(0.5, 0), Size: model.V(0.2, 4)})
	b := s.AddPlayer(model.V(0, 0), 0.3)
	b.SetVelocity(model.V(3, 0))
	for i := 0; i < 30; i++ {
		s.Step(1.0 / 60)
	}
	s.Reset()
	assert.Zero(t, s.Bumps())
}

func TestResetClearsBodies(t *testing.T) {
	s := NewSpace()
	s.AddWall(model.Rect{Center: model.V(1, 0), Size: model.V(0.2, 4)})
	s.Reset()
	b := s.AddPlayer(model.V(0, 0), 0.3)
	for i := 0; i < 60; i++ {
		b.SetVelocity(model.V(3, 0))
		s.Step(1.0 / 60)
	}
	assert.Greater(t, b.Position().X, 2.5)
}

func TestStepIgnoresNonPositive(t *testing.T) {
	s := NewSpace()
	b := s.AddPlayer(model.V(1, 1), 0.3)
	b.SetVelocity(model.V(3, 3))
	s.Step(0)
	s.Step(-1)
	assert.Equal(t, model.V(1, 1), b.Position())
}
