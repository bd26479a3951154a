// Package physics resolves the player against maze walls with Chipmunk2D.
package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/zucenko/smalldream/model"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypePlayer
)

// Space owns the Chipmunk space for one level. Gravity is zero. The player body takes
// its target velocity during velocity integration, so the contact solver can still
// cancel the part that pushes into a wall.
type Space struct {
	space *cp.Space
	bumps int
}

func NewSpace() *Space {
	s := &Space{}
	s.Reset()
	return s
}

// Reset drops every body and shape.
func (s *Space) Reset() {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	handler := space.NewCollisionHandler(collisionTypePlayer, collisionTypeSolid)
	handler.BeginFunc = func(_ *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		s.bumps++
		return true
	}
	s.space = space
	s.bumps = 0
}

// AddWall adds a static box.
func (s *Space) AddWall(r model.Rect) {
	bb := cp.BB{
		L: r.Center.X - r.Size.X/2,
		B: r.Center.Y - r.Size.Y/2,
		R: r.Center.X + r.Size.X/2,
		T: r.Center.Y + r.Size.Y/2,
	}
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeSolid)
	s.space.AddShape(shape)
}

// AddPlayer adds a dynamic circle and returns its handle.
func (s *Space) AddPlayer(pos model.Vec, radius float64) *Body {
	mass := 1.0
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})

	b := &Body{body: body}
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		body.SetVelocityVector(b.target)
		body.SetAngularVelocity(0)
	})

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypePlayer)

	s.space.AddBody(body)
	s.space.AddShape(shape)
	return b
}

func (s *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}
	s.space.Step(dt)
}

// Bumps returns how many times the player started touching a wall since the last call.
func (s *Space) Bumps() int {
	n := s.bumps
	s.bumps = 0
	return n
}

// Body is a handle to a dynamic body.
type Body struct {
	body   *cp.Body
	target cp.Vector
}

func (b *Body) Position() model.Vec {
	p := b.body.Position()
	return model.Vec{X: p.X, Y: p.Y}
}

// SetVelocity sets the velocity the body moves at from the next step on, in world units
// per second. Contacts may cancel part of it.
func (b *Body) SetVelocity(v model.Vec) {
	b.target = cp.Vector{X: v.X, Y: v.Y}
	b.body.Activate()
}
