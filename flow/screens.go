package flow

import (
	"fmt"
	"math"
	"strings"

	"github.com/zucenko/smalldream/entity"
	"github.com/zucenko/smalldream/model"
	"github.com/zucenko/smalldream/render"
)

type button struct {
	Pos   model.Vec
	Size  model.Vec
	Label string
}

func (s *Session) screen(x, y float64) model.Vec {
	return model.V(float64(s.cfg.Window.Width)*x, float64(s.cfg.Window.Height)*y)
}

func (s *Session) startButton() button {
	return button{Pos: s.screen(0.5, 0.62), Size: model.V(280, 64), Label: "Start"}
}

func (s *Session) helpButton() button {
	return button{Pos: s.screen(0.5, 0.74), Size: model.V(200, 48), Label: "Help"}
}

func (s *Session) completeButtons() (restart, next button) {
	name := "Next Act"
	if s.finalAct() {
		name = "Finale"
	}
	restart = button{Pos: s.screen(0.32, 0.55), Size: model.V(260, 60), Label: "Restart"}
	next = button{Pos: s.screen(0.68, 0.55), Size: model.V(260, 60), Label: name}
	return
}

func (s *Session) clicked(b button) bool {
	return s.in.Click && render.Contains(b.Pos, b.Size, s.in.Mouse)
}

func (s *Session) frame() *render.Frame {
	bg := render.HSL(0.62+0.02*math.Sin(s.now*0.1), 0.45, 0.06+0.02*math.Sin(s.now*0.2), 1)
	f := render.NewFrame(float64(s.cfg.Window.Width), float64(s.cfg.Window.Height), s.camera, bg)

	switch s.state {
	case Menu:
		s.drawMenu(f)
	case Tutorial:
		s.drawTutorial(f)
	default:
		s.world.Each(func(e entity.Entity) {
			e.Render(s.now, f)
		})
	}

	switch s.state {
	case ActIntro:
		s.drawIntro(f)
	case Play:
		s.drawHUD(f)
	case GameOver:
		s.drawHUD(f)
		s.drawGameOver(f)
	case LevelComplete:
		s.drawComplete(f)
	case Ending:
		s.ending.Draw(s.now, f)
	}

	f.Cues = append(f.Cues, s.cues...)
	s.cues = nil
	return f
}

func cover(f *render.Frame, c render.Color) {
	f.Add(render.Rect{In: render.Screen, Pos: f.ScreenAt(0.5, 0.5), Size: model.V(f.Width, f.Height), Color: c})
}

func label(f *render.Frame, x, y float64, str string, size float64, c render.Color) render.Text {
	return render.Text{In: render.Screen, Pos: f.ScreenAt(x, y), Str: str, Size: size, Color: c}
}

func (s *Session) drawButton(f *render.Frame, b button) {
	fill := render.RGBA(0.1, 0.14, 0.3, 0.85)
	if render.Contains(b.Pos, b.Size, s.in.Mouse) {
		fill = render.RGBA(0.2, 0.28, 0.55, 0.9)
	}
	f.Add(
		render.Panel{Pos: b.Pos, Size: b.Size, Fill: fill, Border: render.RGBA(0.6, 0.75, 1, 0.9)},
		render.Text{In: render.Screen, Pos: b.Pos, Str: b.Label, Size: 26, Color: render.White},
	)
}

func (s *Session) drawMenu(f *render.Frame) {
	bob := 0.1 * math.Sin(s.now*2)
	entity.DrawSpark(f, s.camera.Pos.Add(model.V(0, 0.3+bob)), 0.1+0.05*math.Sin(s.now*3))

	title := label(f, 0.5, 0.32, s.cfg.Title, 64, render.White)
	title.Outline = 4
	title.OutlineColor = render.RGBA(0, 0, 0, 0.6)
	f.Add(title, label(f, 0.5, 0.42, s.cfg.Subtitle, 22, render.RGBA(0.8, 0.85, 1, 0.8)))

	s.drawButton(f, s.startButton())
	s.drawButton(f, s.helpButton())
	f.Add(label(f, 0.5, 0.84, "Press Enter or Space to begin, H for help", 18, render.RGBA(1, 1, 1, 0.6)))
}

func (s *Session) drawTutorial(f *render.Frame) {
	cover(f, render.RGBA(0, 0, 0, 0.5))
	f.Add(render.Panel{
		Pos:    f.ScreenAt(0.5, 0.5),
		Size:   model.V(f.Width*0.62, f.Height*0.46),
		Fill:   render.RGBA(0.06, 0.08, 0.18, 0.92),
		Border: render.RGBA(0.6, 0.75, 1, 0.8),
	})
	page := s.page
	if page >= len(s.cfg.Tutorial) {
		page = len(s.cfg.Tutorial) - 1
	}
	f.Add(
		label(f, 0.5, 0.34, "How to play", 40, render.White),
		label(f, 0.5, 0.5, s.cfg.Tutorial[page], 24, render.RGBA(0.9, 0.93, 1, 1)),
		label(f, 0.5, 0.6, fmt.Sprintf("%d / %d", page+1, len(s.cfg.Tutorial)), 18, render.RGBA(1, 1, 1, 0.6)),
		label(f, 0.5, 0.67, "Press Enter, Space or click to continue", 18, render.RGBA(1, 1, 1, 0.6)),
	)
}

func (s *Session) drawIntro(f *render.Frame) {
	a := s.overlay.introAlpha
	if a <= 0 {
		return
	}
	cover(f, render.RGBA(0, 0, 0, 0.55*a))
	f.Add(
		label(f, 0.5, 0.42, fmt.Sprintf("Act %d", s.act), 56, render.RGBA(1, 1, 1, a)),
		label(f, 0.5, 0.52, s.cfg.Level(s.act).Name, 28, render.RGBA(0.8, 0.87, 1, a)),
		label(f, 0.5, 0.62, "Press Enter to begin", 18, render.RGBA(1, 1, 1, 0.6*a)),
	)
}

func (s *Session) drawHUD(f *render.Frame) {
	darkness := 0.25 + 0.5*(1-s.countdown.Ratio(s.now))
	vignette(f, darkness)

	remaining := s.countdown.Remaining(s.now)
	timeColor := render.RGBA(1, 1, 1, 0.9)
	if remaining < 10 {
		timeColor = render.RGBA(1, 0.55, 0.55, 0.95)
	}
	timer := label(f, 0.96, 0.06, fmt.Sprintf("%ds", int(math.Ceil(remaining))), 28, timeColor)
	timer.Align = render.AlignRight
	f.Add(timer)

	if s.overlay.penalty.Active(s.now) {
		p := label(f, 0.96, 0.12, fmt.Sprintf("-%gs", s.cfg.Timing.Penalty), 22, render.RGBA(1, 0.4, 0.5, 1-s.overlay.penalty.Percent(s.now)))
		p.Align = render.AlignRight
		f.Add(p)
	}

	have := s.collected
	if have > s.required {
		have = s.required
	}
	dots := strings.Repeat("●", have) + strings.Repeat("○", s.required-have)
	f.Add(label(f, 0.5, 0.06, dots, 24, render.RGBA(0.85, 0.93, 1, 0.9)))

	if s.overlay.flash.Active(s.now) && s.overlay.textAlpha > 0 {
		t := label(f, 0.5, 0.9, s.overlay.text, 26, render.RGBA(1, 1, 1, 0.9*s.overlay.textAlpha))
		t.Outline = 2
		t.OutlineColor = render.RGBA(0, 0, 0, 0.5*s.overlay.textAlpha)
		f.Add(t)
	}
}

// vignette darkens the screen edges with stacked translucent bands.
func vignette(f *render.Frame, darkness float64) {
	const bands = 4
	a := darkness / bands
	for i := 1; i <= bands; i++ {
		w := f.Width * 0.05 * float64(i)
		h := f.Height * 0.07 * float64(i)
		c := render.RGBA(0, 0, 0, a)
		f.Add(
			render.Rect{In: render.Screen, Pos: model.V(w/2, f.Height/2), Size: model.V(w, f.Height), Color: c},
			render.Rect{In: render.Screen, Pos: model.V(f.Width-w/2, f.Height/2), Size: model.V(w, f.Height), Color: c},
			render.Rect{In: render.Screen, Pos: model.V(f.Width/2, h/2), Size: model.V(f.Width, h), Color: c},
			render.Rect{In: render.Screen, Pos: model.V(f.Width/2, f.Height-h/2), Size: model.V(f.Width, h), Color: c},
		)
	}
}

func (s *Session) drawGameOver(f *render.Frame) {
	cover(f, render.RGBA(0, 0, 0, 0.5))
	f.Add(
		label(f, 0.5, 0.45, "The dream slips into the dark", 44, render.RGBA(0.9, 0.85, 1, 1)),
		label(f, 0.5, 0.55, "Press R to restart", 22, render.RGBA(1, 1, 1, 0.7)),
	)
}

func (s *Session) drawComplete(f *render.Frame) {
	cover(f, render.RGBA(0, 0, 0, 0.5))
	f.Add(label(f, 0.5, 0.36, fmt.Sprintf("Act %d complete", s.act), 48, render.White))
	restart, next := s.completeButtons()
	s.drawButton(f, restart)
	s.drawButton(f, next)
	f.Add(
		label(f, 0.32, 0.63, "Press R", 16, render.RGBA(1, 1, 1, 0.6)),
		label(f, 0.68, 0.63, "Press Enter or Space", 16, render.RGBA(1, 1, 1, 0.6)),
	)
}
