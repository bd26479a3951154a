// Package render describes a frame as plain data. The game core fills a Frame each tick
// and a backend turns it into pixels and sound.
package render

import (
	"math"

	"github.com/zucenko/smalldream/model"
)

type Space int

const (
	World Space = iota
	Screen
)

type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

type Color struct {
	R, G, B, A float64
}

func RGB(r, g, b float64) Color     { return Color{r, g, b, 1} }
func RGBA(r, g, b, a float64) Color { return Color{r, g, b, a} }

// HSL builds a color from hue, saturation and lightness in [0,1].
func HSL(h, s, l, a float64) Color {
	h = h - math.Floor(h)
	q := l * (1 + s)
	if l >= 0.5 {
		q = l + s - l*s
	}
	p := 2*l - q
	return Color{hueToRGB(p, q, h+1.0/3), hueToRGB(p, q, h), hueToRGB(p, q, h-1.0/3), a}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
)

// Command is one draw instruction.
type Command interface {
	Space() Space
}

type Circle struct {
	In     Space
	Pos    model.Vec
	Radius float64
	Color  Color
}

// Rect is filled; a zero Size in world space covers the whole camera view.
type Rect struct {
	In    Space
	Pos   model.Vec
	Size  model.Vec
	Color Color
}

type Text struct {
	In           Space
	Pos          model.Vec
	Str          string
	Size         float64
	Color        Color
	Align        Align
	Outline      float64
	OutlineColor Color
}

// Panel is a bordered screen-space button or card.
type Panel struct {
	Pos    model.Vec
	Size   model.Vec
	Fill   Color
	Border Color
}

func (c Circle) Space() Space { return c.In }
func (r Rect) Space() Space   { return r.In }
func (t Text) Space() Space   { return t.In }
func (Panel) Space() Space    { return Screen }

type CueKind int

const (
	CueCollect CueKind = iota
	CuePulse
	CueShadow
	CueBump
)

// Cue is a fire-and-forget sound. Delay is in seconds from the frame that emitted it.
type Cue struct {
	Kind   CueKind
	Pos    model.Vec
	Volume float64
	Pitch  float64
	Delay  float64
}

type Camera struct {
	Pos   model.Vec
	Scale float64
}

// Frame is everything a backend needs to present one tick.
type Frame struct {
	Camera   Camera
	Clear    Color
	Width    float64
	Height   float64
	Commands []Command
	Cues     []Cue
}

func NewFrame(width, height float64, cam Camera, clear Color) *Frame {
	return &Frame{Camera: cam, Clear: clear, Width: width, Height: height}
}

func (f *Frame) Add(cmds ...Command) {
	f.Commands = append(f.Commands, cmds...)
}

func (f *Frame) Play(c Cue) {
	f.Cues = append(f.Cues, c)
}

// ScreenAt maps fractions of the screen to pixels.
func (f *Frame) ScreenAt(x, y float64) model.Vec {
	return model.Vec{X: f.Width * x, Y: f.Height * y}
}

// Fill covers the camera view in world space.
func (f *Frame) Fill(c Color) {
	f.Add(Rect{In: World, Pos: f.Camera.Pos, Color: c})
}

// ToScreen projects a world point through the camera.
func (cam Camera) ToScreen(p model.Vec, width, height float64) model.Vec {
	return model.Vec{
		X: (p.X-cam.Pos.X)*cam.Scale + width/2,
		Y: (p.Y-cam.Pos.Y)*cam.Scale + height/2,
	}
}

// Contains reports whether a screen point falls within a box centered at pos.
func Contains(pos, size, p model.Vec) bool {
	return p.X >= pos.X-size.X/2 && p.X <= pos.X+size.X/2 &&
		p.Y >= pos.Y-size.Y/2 && p.Y <= pos.Y+size.Y/2
}
