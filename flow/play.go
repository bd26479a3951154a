package flow

import (
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/zucenko/smalldream/entity"
	"github.com/zucenko/smalldream/model"
	"github.com/zucenko/smalldream/render"
)

const cameraFollow = 5.0

// bumpGap keeps wall knocks apart when the player slides along several segments.
const bumpGap = 0.25

func (s *Session) updatePlay(dt float64) {
	if s.pending && s.grace.Elapsed(s.now) {
		s.complete()
		return
	}
	s.world.Each(func(e entity.Entity) {
		e.Update(s)
	})
	if s.state != Play {
		return
	}
	s.physics.Step(dt)
	if s.physics.Bumps() > 0 && !s.bump.Active(s.now) {
		s.bump.Set(s.now, bumpGap)
		s.Play(render.Cue{Kind: render.CueBump, Pos: s.player.Pos(), Volume: 0.12, Pitch: 0.9 + 0.2*s.rng.Float64()})
	}
	s.camera.Pos = s.camera.Pos.Lerp(s.player.Pos(), 1-math.Exp(-cameraFollow*dt))
	if s.countdown.Expired(s.now) {
		s.lose()
	}
}

func (s *Session) Now() float64          { return s.now }
func (s *Session) Direction() model.Vec  { return s.in.Direction() }
func (s *Session) PickupRadius() float64 { return s.cfg.World.PickupRadius }
func (s *Session) Speed() float64        { return s.cfg.World.Speed }
func (s *Session) Rand() float64         { return s.rng.Float64() }
func (s *Session) Play(c render.Cue)     { s.cues = append(s.cues, c) }

func (s *Session) PlayerPos() model.Vec {
	if s.player == nil {
		return s.camera.Pos
	}
	return s.player.Pos()
}

// CollectMemory takes a memory orb. Collection is suspended while completion is pending.
func (s *Session) CollectMemory(m *entity.Memory) {
	if s.state != Play || s.pending || !s.world.Destroy(m.ID()) {
		return
	}
	s.Play(render.Cue{Kind: render.CueCollect, Pos: m.Pos(), Volume: 0.35, Pitch: 1 + 0.08*float64(s.collected)})

	// The last memory of the last act is left to the ending.
	if !(s.finalAct() && s.collected+1 >= s.required) {
		s.flash(s.line(s.cfg.LineOffset(s.act) + s.collected))
	}
	s.collected++
	log.WithFields(log.Fields{
		"act":       s.act,
		"collected": s.collected,
		"required":  s.required,
	}).Debug("memory collected")

	if s.collected >= s.required {
		s.pending = true
		s.grace.Set(s.now, s.cfg.Timing.Grace)
	}
}

// TouchShadow consumes a shadow orb: one memory is lost, any pending completion is
// cancelled and the penalty comes off the clock.
func (s *Session) TouchShadow(sh *entity.Shadow) {
	if s.state != Play || !s.world.Destroy(sh.ID()) {
		return
	}
	s.Play(render.Cue{Kind: render.CueShadow, Pos: sh.Pos(), Volume: 0.4, Pitch: 1})
	if s.collected > 0 {
		s.collected--
	}
	s.pending = false
	s.grace.Unset()
	remaining, exhausted := s.countdown.ApplyPenalty(s.now, s.cfg.Timing.Penalty)
	s.overlay.penalty.Set(s.now, 1.2)
	log.WithFields(log.Fields{
		"act":       s.act,
		"collected": s.collected,
		"remaining": remaining,
	}).Debug("shadow touched")
	if exhausted {
		s.lose()
	}
}

func (s *Session) line(i int) string {
	lines := s.cfg.Lines()
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}

// flash shows text above the bottom edge, fading in and out over the flash duration.
func (s *Session) flash(text string) {
	if text == "" {
		return
	}
	d := s.cfg.Timing.Flash
	s.overlay.text = text
	s.overlay.flash.Set(s.now, d)
	s.overlay.textAlpha = 0
	s.overlay.flashGen++
	gen := s.overlay.flashGen
	set := func(v float32) {
		if s.overlay.flashGen == gen {
			s.overlay.textAlpha = float64(v)
		}
	}
	s.tweens.add(gween.New(0, 1, float32(d*0.15), ease.OutQuad), set).
		next(gween.New(1, 1, float32(d*0.55), ease.Linear), set).
		next(gween.New(1, 0, float32(d*0.3), ease.InQuad), set).
		addOnFinish(func() {
			if s.overlay.flashGen == gen {
				s.overlay.text = ""
				s.overlay.flash.Unset()
			}
		})
}
