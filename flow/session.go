// Package flow runs the game: the screen state machine, the level lifecycle and the play
// rules. A Session is advanced once per frame and answers with a render.Frame.
package flow

import (
	"math"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/zucenko/smalldream/clock"
	"github.com/zucenko/smalldream/config"
	"github.com/zucenko/smalldream/entity"
	"github.com/zucenko/smalldream/model"
	"github.com/zucenko/smalldream/physics"
	"github.com/zucenko/smalldream/render"
)

type Options struct {
	Config  config.Config
	Flags   FlagStore
	Physics Physics
	Levels  LevelSource
	// Seed drives generation and every random effect; zero picks one from the clock.
	Seed int64
	// OnTransition is called after every state change.
	OnTransition func(from, to State)
}

type Session struct {
	cfg          config.Config
	nextCfg      *config.Config
	flags        FlagStore
	physics      Physics
	levels       LevelSource
	local        *LocalLevels
	rng          *rand.Rand
	onTransition func(from, to State)

	state State
	now   float64
	in    Input

	act       int
	required  int
	collected int
	pending   bool
	grace     clock.Timer
	countdown clock.Countdown
	intro     clock.Timer
	bump      clock.Timer

	world  *entity.World
	player *entity.Player
	layout model.Layout
	camera render.Camera

	page           int
	tutorialToMenu bool

	overlay overlay
	ending  *Finale
	tweens  Tweens
	cues    []render.Cue
}

// overlay is the transient HUD state.
type overlay struct {
	text       string
	flash      clock.Timer
	flashGen   int
	textAlpha  float64
	penalty    clock.Timer
	introGen   int
	introAlpha float64
}

func NewSession(opts Options) *Session {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Warn("falling back to the default config")
		cfg = config.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		cfg:          cfg,
		flags:        opts.Flags,
		physics:      opts.Physics,
		levels:       opts.Levels,
		local:        &LocalLevels{Rand: rng},
		rng:          rng,
		onTransition: opts.OnTransition,
		state:        Menu,
		act:          1,
		world:        entity.NewWorld(),
		camera:       render.Camera{Scale: cfg.World.CameraScale},
		tweens:       make(Tweens),
	}
	if s.flags == nil {
		s.flags = &memoryFlags{}
	}
	if s.physics == nil {
		s.physics = physics.NewSpace()
	}
	if s.levels == nil {
		s.levels = s.local
	}
	return s
}

// SetConfig replaces the configuration from the next level reset on.
func (s *Session) SetConfig(cfg config.Config) {
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Warn("ignoring config update")
		return
	}
	s.nextCfg = &cfg
}

func (s *Session) Config() config.Config { return s.cfg }
func (s *Session) State() State          { return s.state }
func (s *Session) Act() int              { return s.act }
func (s *Session) Collected() int        { return s.collected }
func (s *Session) Required() int         { return s.required }
func (s *Session) Pending() bool         { return s.pending }
func (s *Session) Page() int             { return s.page }
func (s *Session) Camera() render.Camera { return s.camera }
func (s *Session) World() *entity.World  { return s.world }
func (s *Session) Layout() model.Layout  { return s.layout }

// Remaining is the level time left.
func (s *Session) Remaining() float64 {
	return s.countdown.Remaining(s.now)
}

// Tick advances the session by dt seconds with this frame's input and describes the
// resulting frame.
func (s *Session) Tick(in Input, dt float64) *render.Frame {
	if dt < 0 {
		dt = 0
	}
	s.now += dt
	s.in = in
	s.tweens.Update(dt)
	s.update(dt)
	return s.frame()
}

func (s *Session) update(dt float64) {
	in := s.in
	switch s.state {
	case Menu:
		switch {
		case in.H || s.clicked(s.helpButton()):
			s.openTutorial(true)
		case in.advance():
			s.start()
		}
	case Tutorial:
		if in.advance() || in.skip() {
			s.turnPage()
		}
	case ActIntro:
		if in.advance() || s.intro.Elapsed(s.now) {
			s.beginPlay()
		}
	case Play:
		s.updatePlay(dt)
	case LevelComplete:
		restart, next := s.completeButtons()
		switch {
		case in.R || s.clicked(restart):
			s.restartLevel()
		case in.keyAdvance() || s.clicked(next):
			s.nextAct()
		}
	case GameOver:
		if in.R {
			s.enterActIntro(s.act)
		}
	case Ending:
		s.cues = append(s.cues, s.ending.Update(s.now, s.rng.Float64)...)
		s.camera = s.ending.Camera(s.now)
		if in.advance() || in.skip() || s.ending.Done(s.now) {
			s.toMenu()
		}
	}
}

func (s *Session) setState(to State) {
	from := s.state
	s.state = to
	log.WithFields(log.Fields{
		"from": from.Name(),
		"to":   to.Name(),
		"act":  s.act,
	}).Info("state change")
	if s.onTransition != nil {
		s.onTransition(from, to)
	}
}

func (s *Session) start() {
	s.overlay = overlay{}
	s.tweens.clear()
	s.resetLevel(1)
	if !s.flags.TutorialSeen() {
		s.page = 0
		s.tutorialToMenu = false
		s.setState(Tutorial)
		return
	}
	s.introduce()
}

func (s *Session) openTutorial(toMenu bool) {
	s.page = 0
	s.tutorialToMenu = toMenu
	s.setState(Tutorial)
}

func (s *Session) turnPage() {
	s.page++
	if s.page < len(s.cfg.Tutorial) {
		return
	}
	s.flags.MarkTutorialSeen()
	if s.tutorialToMenu {
		s.setState(Menu)
		return
	}
	s.introduce()
}

func (s *Session) enterActIntro(act int) {
	s.resetLevel(act)
	s.introduce()
}

func (s *Session) introduce() {
	d := s.cfg.Timing.Intro
	s.intro.Set(s.now, d)
	s.overlay.introAlpha = 0
	s.overlay.introGen++
	gen := s.overlay.introGen
	set := func(v float32) {
		if s.overlay.introGen == gen {
			s.overlay.introAlpha = float64(v)
		}
	}
	s.tweens.add(gween.New(0, 1, float32(d*0.2), ease.OutQuad), set).
		next(gween.New(1, 1, float32(d*0.6), ease.Linear), set).
		next(gween.New(1, 0, float32(d*0.2), ease.InQuad), set)
	s.setState(ActIntro)
}

func (s *Session) beginPlay() {
	s.intro.Unset()
	s.overlay.introGen++
	s.overlay.introAlpha = 0
	s.countdown.Start(s.now, s.cfg.Level(s.act).Seconds)
	s.setState(Play)
}

func (s *Session) restartLevel() {
	s.resetLevel(s.act)
	s.beginPlay()
}

func (s *Session) nextAct() {
	if s.finalAct() {
		s.startEnding()
		return
	}
	s.enterActIntro(s.act + 1)
}

func (s *Session) complete() {
	s.pending = false
	s.grace.Unset()
	s.countdown.Stop()
	if s.finalAct() {
		s.startEnding()
		return
	}
	s.setState(LevelComplete)
}

// lose moves to GameOver; it only ever fires from Play.
func (s *Session) lose() {
	if s.state != Play {
		return
	}
	s.setState(GameOver)
}

func (s *Session) startEnding() {
	s.ending = NewFinale(s.now, s.cfg, s.PlayerPos(), s.camera.Scale)
	s.setState(Ending)
}

func (s *Session) toMenu() {
	s.ending = nil
	s.camera.Pos = model.Vec{}
	from := s.camera.Scale
	s.tweens.add(gween.New(float32(from), float32(s.cfg.World.CameraScale), 0.8, ease.OutQuad), func(v float32) {
		s.camera.Scale = float64(v)
	}).addOnFinish(func() {
		// float32 tween values land close to, not on, the configured scale
		s.camera.Scale = s.cfg.World.CameraScale
	})
	s.setState(Menu)
}

func (s *Session) finalAct() bool {
	return s.act >= len(s.cfg.Levels)
}

// resetLevel destroys every entity and builds the act from a fresh layout.
func (s *Session) resetLevel(act int) {
	if s.nextCfg != nil {
		s.cfg = *s.nextCfg
		s.nextCfg = nil
	}
	if act < 1 {
		act = 1
	}
	if act > len(s.cfg.Levels) {
		act = len(s.cfg.Levels)
	}
	s.act = act
	s.required = s.cfg.Level(act).Required
	s.collected = 0
	s.pending = false
	s.grace.Unset()
	s.countdown.Stop()
	s.intro.Unset()
	s.bump.Unset()
	s.overlay.flash.Unset()
	s.overlay.penalty.Unset()
	s.ending = nil

	s.world.DestroyAll()
	s.physics.Reset()

	shape := s.cfg.Shape(act)
	layout, err := s.levels.Layout(act, shape)
	if err != nil || layout.Maze == nil {
		log.WithError(err).WithField("act", act).Warn("level source failed, generating locally")
		layout, _ = s.local.Layout(act, shape)
	}
	s.layout = layout

	geo := model.NewGeometry(layout.Maze, shape.Bounds.X, shape.Bounds.Y)
	for _, r := range geo.Walls(layout.Maze, s.cfg.World.WallThickness) {
		s.world.Spawn(entity.NewWall(r))
		s.physics.AddWall(r)
	}
	spawn := geo.CellCenter(layout.Spawn.Col, layout.Spawn.Row)
	s.player = entity.NewPlayer(s.physics.AddPlayer(spawn, s.cfg.World.PlayerRadius))
	s.world.Spawn(s.player)

	for _, p := range layout.Placement.Collectibles {
		s.world.Spawn(entity.NewMemory(geo.CellCenter(p.Col, p.Row), s.rng.Float64()*2*math.Pi))
	}
	for _, p := range layout.Placement.Hazards {
		s.world.Spawn(entity.NewShadow(geo.CellCenter(p.Col, p.Row), s.rng.Float64()*2*math.Pi))
	}
	s.camera = render.Camera{Pos: spawn, Scale: s.cfg.World.CameraScale}

	log.WithFields(log.Fields{
		"act":          act,
		"size":         layout.Maze.Cols,
		"collectibles": len(layout.Placement.Collectibles),
		"hazards":      len(layout.Placement.Hazards),
	}).Info("level reset")
}
