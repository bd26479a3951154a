package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/smalldream/config"
	"github.com/zucenko/smalldream/flow"
	"github.com/zucenko/smalldream/model"
	"github.com/zucenko/smalldream/render"
)

// tickSeconds is one ebiten update at the default 60 TPS.
const tickSeconds = 1.0 / 60

const dotSize = 64

type Game struct {
	Session *flow.Session
	Fonts   *Fonts
	Audio   *Audio
	Configs <-chan config.Config

	dot    *ebiten.Image
	border *Nine
	fill   *Nine
}

func NewGame(session *flow.Session, fonts *Fonts, audio *Audio, configs <-chan config.Config) (*Game, error) {
	dot, err := ebiten.NewImageFromImage(discImage(dotSize), ebiten.FilterLinear)
	if err != nil {
		return nil, err
	}
	border, err := NewNine(roundedImage(24, 8), 8)
	if err != nil {
		return nil, err
	}
	fill, err := NewNine(roundedImage(24, 8), 8)
	if err != nil {
		return nil, err
	}
	return &Game{
		Session: session,
		Fonts:   fonts,
		Audio:   audio,
		Configs: configs,
		dot:     dot,
		border:  border,
		fill:    fill,
	}, nil
}

// StrokeSource is a pointer that can press on the screen.
type StrokeSource interface {
	Position() (int, int)
	IsJustPressed() bool
}

// MouseStrokeSource is a StrokeSource implementation of mouse.
type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustPressed() bool {
	return true
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// sampleInput reads the keyboard, mouse and touch state for this update.
func sampleInput() flow.Input {
	in := flow.Input{
		Up:     anyPressed(ebiten.KeyUp, ebiten.KeyW),
		Down:   anyPressed(ebiten.KeyDown, ebiten.KeyS),
		Left:   anyPressed(ebiten.KeyLeft, ebiten.KeyA),
		Right:  anyPressed(ebiten.KeyRight, ebiten.KeyD),
		Enter:  inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Space:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Escape: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		R:      inpututil.IsKeyJustPressed(ebiten.KeyR),
		H:      inpututil.IsKeyJustPressed(ebiten.KeyH),
	}
	sources := []StrokeSource{&MouseStrokeSource{}}
	for _, id := range inpututil.JustPressedTouchIDs() {
		sources = append(sources, &TouchStrokeSource{id})
	}
	x, y := sources[0].Position()
	in.Mouse = model.V(float64(x), float64(y))
	for _, s := range sources {
		if s.IsJustPressed() {
			x, y := s.Position()
			in.Click = true
			in.Mouse = model.V(float64(x), float64(y))
			break
		}
	}
	return in
}

func (g *Game) update(screen *ebiten.Image) error {
	select {
	case cfg := <-g.Configs:
		log.Info("config reloaded, applying at the next level")
		g.Session.SetConfig(cfg)
	default:
	}

	f := g.Session.Tick(sampleInput(), tickSeconds)
	for _, c := range f.Cues {
		g.Audio.Play(c)
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.draw(screen, f)
	return nil
}

func toColor(c render.Color) color.Color {
	return color.NRGBA{
		R: uint8(clampUnit(c.R) * 255),
		G: uint8(clampUnit(c.G) * 255),
		B: uint8(clampUnit(c.B) * 255),
		A: uint8(clampUnit(c.A) * 255),
	}
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func (g *Game) draw(screen *ebiten.Image, f *render.Frame) {
	if err := screen.Fill(toColor(f.Clear)); err != nil {
		log.Warnf("fill: %v", err)
	}
	toScreen := func(p model.Vec) model.Vec {
		return f.Camera.ToScreen(p, f.Width, f.Height)
	}
	for _, cmd := range f.Commands {
		switch c := cmd.(type) {
		case render.Circle:
			pos, r := c.Pos, c.Radius
			if c.In == render.World {
				pos, r = toScreen(pos), r*f.Camera.Scale
			}
			g.drawDot(screen, pos, r, c.Color)
		case render.Rect:
			pos, size := c.Pos, c.Size
			if c.In == render.World {
				if size == (model.Vec{}) {
					pos, size = model.V(f.Width/2, f.Height/2), model.V(f.Width, f.Height)
				} else {
					pos, size = toScreen(pos), size.Scale(f.Camera.Scale)
				}
			}
			ebitenutil.DrawRect(screen, pos.X-size.X/2, pos.Y-size.Y/2, size.X, size.Y, toColor(c.Color))
		case render.Text:
			pos := c.Pos
			if c.In == render.World {
				pos = toScreen(pos)
			}
			g.Fonts.Draw(screen, c, pos)
		case render.Panel:
			g.drawPanel(screen, c)
		}
	}
}

func (g *Game) drawDot(screen *ebiten.Image, center model.Vec, radius float64, c render.Color) {
	if radius <= 0 || c.A <= 0 {
		return
	}
	s := 2 * radius / dotSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(center.X-radius, center.Y-radius)
	op.ColorM.Scale(c.R, c.G, c.B, c.A)
	screen.DrawImage(g.dot, op)
}

func (g *Game) drawPanel(screen *ebiten.Image, p render.Panel) {
	x, y := int(p.Pos.X-p.Size.X/2), int(p.Pos.Y-p.Size.Y/2)
	w, h := int(p.Size.X), int(p.Size.Y)

	g.border.SetColor(p.Border)
	g.border.SetPosition(x, y)
	g.border.SetSize(w, h)
	g.border.Draw(screen)

	const inset = 2
	g.fill.SetColor(p.Fill)
	g.fill.SetPosition(x+inset, y+inset)
	g.fill.SetSize(w-2*inset, h-2*inset)
	g.fill.Draw(screen)
}

// discImage is a white anti-aliased disc used for every circle.
func discImage(size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r)
			a := clampUnit(r - d)
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a * 255)})
		}
	}
	return img
}

// roundedImage is a white rounded square with corner radius r, the source of a Nine.
func roundedImage(size, r int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	fr := float64(r)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cx := math.Max(fr, math.Min(float64(size)-fr, float64(x)+0.5))
			cy := math.Max(fr, math.Min(float64(size)-fr, float64(y)+0.5))
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			a := clampUnit(fr - d + 0.5)
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a * 255)})
		}
	}
	return img
}
