package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/smalldream/model"
	"github.com/zucenko/smalldream/render"
)

type fakeHost struct {
	now       float64
	dir       model.Vec
	player    model.Vec
	collected []*Memory
	touched   []*Shadow
	cues      []render.Cue
}

func (h *fakeHost) Now() float64            { return h.now }
func (h *fakeHost) Direction() model.Vec    { return h.dir }
func (h *fakeHost) PlayerPos() model.Vec    { return h.player }
func (h *fakeHost) PickupRadius() float64   { return 0.85 }
func (h *fakeHost) Speed() float64          { return 7 }
func (h *fakeHost) CollectMemory(m *Memory) { h.collected = append(h.collected, m) }
func (h *fakeHost) TouchShadow(s *Shadow)   { h.touched = append(h.touched, s) }
func (h *fakeHost) Play(c render.Cue)       { h.cues = append(h.cues, c) }
func (h *fakeHost) Rand() float64           { return 0.5 }

type fakeBody struct {
	pos model.Vec
	vel model.Vec
}

func (b *fakeBody) Position() model.Vec     { return b.pos }
func (b *fakeBody) SetVelocity(v model.Vec) { b.vel = v }

func TestSpawnAssignsFreshIDs(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(NewWall(model.Rect{}))
	b := w.Spawn(NewMemory(model.V(1, 1), 0))
	assert.NotEqual(t, a, b)

	require.True(t, w.Destroy(a))
	assert.False(t, w.Destroy(a))
	c := w.Spawn(NewShadow(model.V(2, 2), 0))
	assert.NotEqual(t, a, c)
	assert.Equal(t, 2, w.Len())

	e, ok := w.Get(b)
	require.True(t, ok)
	assert.Equal(t, KindMemory, e.Kind())
	assert.Equal(t, b, e.ID())
}

func TestDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	var ids []ID
	for i := 0; i < 5; i++ {
		ids = append(ids, w.Spawn(NewMemory(model.V(float64(i), 0), 0)))
	}

	var visited []ID
	w.Each(func(e Entity) {
		visited = append(visited, e.ID())
		if e.ID() == ids[1] {
			w.Destroy(ids[2])
			w.Destroy(ids[1])
			w.Spawn(NewShadow(model.Vec{}, 0))
		}
	})
	assert.Equal(t, []ID{ids[0], ids[1], ids[3], ids[4]}, visited)
	assert.Equal(t, 4, w.Len())
	assert.Equal(t, 3, w.Count(KindMemory))
	assert.Equal(t, 1, w.Count(KindShadow))

	visited = nil
	w.Each(func(e Entity) { visited = append(visited, e.ID()) })
	assert.Len(t, visited, 4)
}

func TestDestroyAllDuringIteration(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 3; i++ {
		w.Spawn(NewWall(model.Rect{}))
	}
	calls := 0
	w.Each(func(e Entity) {
		calls++
		w.DestroyAll()
		w.Spawn(NewWall(model.Rect{}))
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, w.Len())
}

func TestMemoryCollectedInRange(t *testing.T) {
	h := &fakeHost{player: model.V(10, 10)}
	m := NewMemory(model.V(0, 0), 0)
	m.Update(h)
	assert.Empty(t, h.collected)

	h.player = model.V(0.5, 0)
	m.Update(h)
	require.Len(t, h.collected, 1)
	assert.Same(t, m, h.collected[0])
}

func TestShadowTouchedInRange(t *testing.T) {
	h := &fakeHost{player: model.V(0, 0.3)}
	s := NewShadow(model.V(0, 0), 1)
	s.Update(h)
	assert.Len(t, h.touched, 1)
}

func TestOrbsBob(t *testing.T) {
	h := &fakeHost{player: model.V(50, 50)}
	m := NewMemory(model.V(0, 0), 0)
	for _, now := range []float64{0, 0.3, 1.1, 2.7} {
		h.now = now
		m.Update(h)
		assert.LessOrEqual(t, m.Pos().Dist(model.V(0, 0)), 0.09+1e-9)
	}
}

func TestPlayerVelocityFromInput(t *testing.T) {
	body := &fakeBody{}
	p := NewPlayer(body)
	h := &fakeHost{dir: model.V(1, 1)}
	p.Update(h)
	assert.InDelta(t, 7, body.vel.Len(), 1e-9)

	h.dir = model.Vec{}
	p.Update(h)
	assert.Equal(t, model.Vec{}, body.vel)
}

func TestRenderEmitsWorldCommands(t *testing.T) {
	f := render.NewFrame(100, 100, render.Camera{Scale: 10}, render.Black)
	NewMemory(model.Vec{}, 0).Render(0, f)
	NewShadow(model.Vec{}, 0).Render(0, f)
	NewWall(model.Rect{Size: model.V(1, 0.1)}).Render(0, f)
	require.Len(t, f.Commands, 7)
	for _, c := range f.Commands {
		assert.Equal(t, render.World, c.Space())
	}
}

func TestKindName(t *testing.T) {
	assert.Equal(t, "MEMORY", KindMemory.Name())
	assert.Equal(t, "N/A(0)", Kind(0).Name())
}
