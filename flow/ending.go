package flow

import (
	"math"

	"github.com/zucenko/smalldream/config"
	"github.com/zucenko/smalldream/entity"
	"github.com/zucenko/smalldream/model"
	"github.com/zucenko/smalldream/render"
)

const endingOrbs = 8

// Finale is the closing cinematic. Every visual is a function of the time since it
// started; only the audio schedule keeps state.
type Finale struct {
	start    float64
	total    float64
	center   model.Vec
	camStart float64

	title    string
	phrases  []string
	epilogue string
	credits  string

	nextChime float64
	nextPulse float64
	sustained bool
}

func NewFinale(now float64, cfg config.Config, center model.Vec, camScale float64) *Finale {
	return &Finale{
		start:     now,
		total:     cfg.Timing.Ending,
		center:    center,
		camStart:  camScale,
		title:     cfg.Title,
		phrases:   cfg.Ending.Phrases,
		epilogue:  cfg.Ending.Epilogue,
		credits:   cfg.Ending.Credits,
		nextChime: now,
		nextPulse: now,
	}
}

// T is the time into the ending, clamped to its length.
func (e *Finale) T(now float64) float64 {
	return math.Max(0, math.Min(now-e.start, e.total))
}

func (e *Finale) Done(now float64) bool {
	return now-e.start >= e.total
}

// Camera zooms in on the player between 3s and 6s.
func (e *Finale) Camera(now float64) render.Camera {
	t := e.T(now)
	return render.Camera{
		Pos:   e.center,
		Scale: mix(e.camStart, e.camStart*1.6, smoothstep(3, 6, t)),
	}
}

// Update returns the sound cues due at now. rnd jitters the intervals and pitches.
func (e *Finale) Update(now float64, rnd func() float64) []render.Cue {
	t := e.T(now)
	var cues []render.Cue
	if t < 3 && now >= e.nextChime {
		e.nextChime = now + 0.4 + (rnd()-0.5)*0.16
		cues = append(cues, render.Cue{Kind: render.CueCollect, Pos: e.center, Volume: 0.2, Pitch: 1 + (rnd()-0.5)*0.1})
	}
	if t < 6 && now >= e.nextPulse {
		e.nextPulse = now + 0.8 + (rnd()-0.5)*0.2
		rise := smoothstep(0, 6, t)
		cues = append(cues, render.Cue{Kind: render.CuePulse, Pos: e.center, Volume: mix(0.05, 0.18, rise), Pitch: 0.5 + 0.5*rise})
	}
	if t >= 8 && !e.sustained {
		e.sustained = true
		for i := 0; i < 4; i++ {
			cues = append(cues, render.Cue{Kind: render.CuePulse, Pos: e.center, Volume: 0.15, Pitch: 0.8, Delay: 0.12 * float64(i)})
		}
	}
	return cues
}

// OrbPos is where orbiting orb i sits at time t into the ending.
func (e *Finale) OrbPos(i int, t float64) model.Vec {
	bloom := smoothstep(0, 6, t)
	a := float64(i)/endingOrbs*2*math.Pi + orbitTravel(t)
	r := mix(0.7, 1.1, smoothstep(0, 3, t)) + float64(i)*0.02
	r *= 1 + 0.03*math.Sin(t*0.7+float64(i)*0.6)*(0.3+0.7*bloom)
	return e.center.Add(model.V(math.Cos(a)*r, math.Sin(a)*r))
}

func (e *Finale) Draw(now float64, f *render.Frame) {
	t := e.T(now)
	bloom := smoothstep(0, 6, t)
	white := smoothstep(3, 6, t)

	entity.DrawSpark(f, e.center, bloom)
	if alpha := (1 - smoothstep(3, 6, t)) * 0.9; alpha > 0 {
		for i := 0; i < endingOrbs; i++ {
			f.Add(render.Circle{
				In:     render.World,
				Pos:    e.OrbPos(i, t),
				Radius: 0.12 * (1 + 0.3*bloom),
				Color:  render.HSL(0.58, 0.7, 0.85, alpha),
			})
		}
	}
	if white > 0 {
		cover(f, render.RGBA(1, 1, 1, white*0.95))
	}
	if t >= 8 && t < 12 {
		cover(f, render.White)
	}

	for i, phrase := range e.phrases {
		a := window(t, 6+0.7*float64(i), 3, 0.6)
		if a <= 0 {
			continue
		}
		// Text darkens as the screen whitens.
		f.Add(render.Text{
			In:           render.Screen,
			Pos:          f.ScreenAt(0.5, 0.42+0.07*float64(i)),
			Str:          phrase,
			Size:         40,
			Color:        render.RGBA(mix(1, 0.1, white), mix(1, 0.12, white), mix(1, 0.2, white), a),
			Outline:      2,
			OutlineColor: render.RGBA(mix(0, 1, white), mix(0, 1, white), mix(0, 1, white), 0.3*a),
		})
	}

	if t >= 10 {
		cover(f, render.RGBA(0, 0, 0, smoothstep(10, 12, t)))
	}
	if a := smoothstep(12, 13.5, t) * (1 - smoothstep(16, 17, t)); t >= 12 && t < 17 && a > 0 {
		f.Add(render.Text{In: render.Screen, Pos: f.ScreenAt(0.5, 0.5), Str: e.epilogue, Size: 30, Color: render.RGBA(0.9, 0.92, 1, a)})
	}
	if t >= 17 {
		a := smoothstep(17, 18, t) * (1 - smoothstep(21, 22, t))
		f.Add(
			render.Text{In: render.Screen, Pos: f.ScreenAt(0.5, 0.45), Str: e.title, Size: 52, Color: render.RGBA(1, 1, 1, a)},
			render.Text{In: render.Screen, Pos: f.ScreenAt(0.5, 0.55), Str: e.credits, Size: 24, Color: render.RGBA(0.75, 0.8, 0.95, a)},
		)
	}
}

// orbitTravel is the angle an orb has covered after t seconds when its angular speed
// eases from 0.6 to 1.2 rad/s over the first three seconds.
func orbitTravel(t float64) float64 {
	if t <= 0 {
		return 0
	}
	var eased float64
	if t <= 3 {
		u := t / 3
		eased = 3 * (u*u*u - u*u*u*u/2)
	} else {
		eased = 1.5 + t - 3
	}
	return 0.6*t + 0.6*eased
}

// window is an alpha envelope: zero outside [start, start+length], ramping over fade at
// both ends.
func window(t, start, length, fade float64) float64 {
	if t < start || t > start+length {
		return 0
	}
	return smoothstep(start, start+fade, t) * (1 - smoothstep(start+length-fade, start+length, t))
}

func smoothstep(a, b, x float64) float64 {
	if b <= a {
		if x < a {
			return 0
		}
		return 1
	}
	t := math.Max(0, math.Min(1, (x-a)/(b-a)))
	return t * t * (3 - 2*t)
}

func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}
