package entity

import (
	"math"

	"github.com/zucenko/smalldream/model"
	"github.com/zucenko/smalldream/render"
)

// Mover is the physics handle that carries the player.
type Mover interface {
	Position() model.Vec
	SetVelocity(v model.Vec)
}

type Player struct {
	base
	body Mover
}

func NewPlayer(body Mover) *Player {
	return &Player{body: body}
}

func (p *Player) Kind() Kind     { return KindPlayer }
func (p *Player) Pos() model.Vec { return p.body.Position() }

// Update turns the movement input into a velocity; the physics step moves the body.
func (p *Player) Update(h Host) {
	dir := h.Direction().ClampLen(1)
	p.body.SetVelocity(dir.Scale(h.Speed()))
	if h.Rand() < 0.003 {
		h.Play(render.Cue{Kind: render.CuePulse, Pos: p.Pos(), Volume: 0.15, Pitch: 1 + (h.Rand()-0.5)*0.04})
	}
}

func (p *Player) Render(now float64, f *render.Frame) {
	DrawSpark(f, p.Pos(), 0)
}

// DrawSpark draws the player's glow; bloom in [0,1] widens it.
func DrawSpark(f *render.Frame, pos model.Vec, bloom float64) {
	f.Add(
		render.Circle{In: render.World, Pos: pos, Radius: 0.28 + 1.2*bloom, Color: render.HSL(0.58, 0.8, 0.8, 0.5)},
		render.Circle{In: render.World, Pos: pos, Radius: 0.12 + 0.9*bloom, Color: render.RGBA(1, 1, 1, 0.9)},
	)
}

// orb is the shared hovering body of memory and shadow orbs.
type orb struct {
	base
	at    model.Vec
	phase float64
	bob   float64
}

func (o *orb) Pos() model.Vec {
	return o.at.Add(model.Vec{Y: o.bob})
}

func (o *orb) hover(now float64) {
	o.bob = 0.09 * math.Sin(now*2+o.phase)
}

func (o *orb) radius(now float64) float64 {
	return 0.30 + 0.035*math.Sin(now*6+o.phase)
}

// Memory is a collectible orb. Orbs are interchangeable: the story line shown on pickup
// follows collection order, not the orb.
type Memory struct {
	orb
}

func NewMemory(at model.Vec, phase float64) *Memory {
	return &Memory{orb: orb{at: at, phase: phase}}
}

func (m *Memory) Kind() Kind { return KindMemory }

func (m *Memory) Update(h Host) {
	m.hover(h.Now())
	if h.Rand() < 0.002 {
		h.Play(render.Cue{Kind: render.CuePulse, Pos: m.Pos(), Volume: 0.12, Pitch: 1.5})
	}
	if m.Pos().Dist(h.PlayerPos()) < h.PickupRadius() {
		h.CollectMemory(m)
	}
}

func (m *Memory) Render(now float64, f *render.Frame) {
	r := m.radius(now)
	pos := m.Pos()
	f.Add(
		render.Circle{In: render.World, Pos: pos, Radius: r * 3.4, Color: render.RGBA(0.4, 0.7, 1, 0.07)},
		render.Circle{In: render.World, Pos: pos, Radius: r * 2.0, Color: render.RGBA(0.4, 0.7, 1, 0.12)},
		render.Circle{In: render.World, Pos: pos, Radius: r, Color: render.RGBA(0.9, 0.97, 1, 0.9)},
	)
}

// Shadow is a hazard orb.
type Shadow struct {
	orb
}

func NewShadow(at model.Vec, phase float64) *Shadow {
	return &Shadow{orb: orb{at: at, phase: phase}}
}

func (s *Shadow) Kind() Kind { return KindShadow }

func (s *Shadow) Update(h Host) {
	s.hover(h.Now())
	if s.Pos().Dist(h.PlayerPos()) < h.PickupRadius() {
		h.TouchShadow(s)
	}
}

func (s *Shadow) Render(now float64, f *render.Frame) {
	r := s.radius(now)
	pos := s.Pos()
	f.Add(
		render.Circle{In: render.World, Pos: pos, Radius: r * 3.0, Color: render.RGBA(0.35, 0.1, 0.45, 0.10)},
		render.Circle{In: render.World, Pos: pos, Radius: r * 1.8, Color: render.RGBA(0.2, 0.05, 0.3, 0.25)},
		render.Circle{In: render.World, Pos: pos, Radius: r, Color: render.RGBA(0.05, 0.02, 0.08, 0.95)},
	)
}

type Wall struct {
	base
	Rect model.Rect
}

func NewWall(r model.Rect) *Wall {
	return &Wall{Rect: r}
}

func (w *Wall) Kind() Kind     { return KindWall }
func (w *Wall) Pos() model.Vec { return w.Rect.Center }
func (w *Wall) Update(Host)    {}

func (w *Wall) Render(now float64, f *render.Frame) {
	f.Add(render.Rect{In: render.World, Pos: w.Rect.Center, Size: w.Rect.Size, Color: render.RGBA(0.45, 0.6, 1, 0.35)})
}
