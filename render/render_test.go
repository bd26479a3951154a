package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zucenko/smalldream/model"
)

func TestHSL(t *testing.T) {
	cases := []struct {
		name    string
		h, s, l float64
		want    Color
	}{
		{"red", 0, 1, 0.5, RGB(1, 0, 0)},
		{"green", 1.0 / 3, 1, 0.5, RGB(0, 1, 0)},
		{"blue", 2.0 / 3, 1, 0.5, RGB(0, 0, 1)},
		{"grey", 0.3, 0, 0.5, RGB(0.5, 0.5, 0.5)},
		{"wrapped hue", 1, 1, 0.5, RGB(1, 0, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := HSL(c.h, c.s, c.l, 1)
			assert.InDelta(t, c.want.R, got.R, 1e-9)
			assert.InDelta(t, c.want.G, got.G, 1e-9)
			assert.InDelta(t, c.want.B, got.B, 1e-9)
			assert.Equal(t, 1.0, got.A)
		})
	}
}

func TestCameraToScreen(t *testing.T) {
	cam := Camera{Pos: model.V(2, 3), Scale: 10}
	assert.Equal(t, model.V(640, 360), cam.ToScreen(model.V(2, 3), 1280, 720))
	assert.Equal(t, model.V(650, 350), cam.ToScreen(model.V(3, 2), 1280, 720))
}

func TestContains(t *testing.T) {
	pos, size := model.V(100, 100), model.V(40, 20)
	assert.True(t, Contains(pos, size, model.V(119, 109)))
	assert.False(t, Contains(pos, size, model.V(121, 100)))
	assert.False(t, Contains(pos, size, model.V(100, 89)))
}

func TestFrameCollects(t *testing.T) {
	f := NewFrame(1280, 720, Camera{Scale: 28}, Black)
	f.Fill(White.WithAlpha(0.5))
	f.Play(Cue{Kind: CuePulse, Volume: 0.2, Pitch: 1})
	assert.Len(t, f.Commands, 1)
	assert.Equal(t, World, f.Commands[0].Space())
	assert.Equal(t, 0.5, f.Commands[0].(Rect).Color.A)
	assert.Len(t, f.Cues, 1)
	assert.Equal(t, model.V(640, 72), f.ScreenAt(0.5, 0.1))
}
