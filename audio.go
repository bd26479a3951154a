package main

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/audio"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/smalldream/render"
	"github.com/zucenko/smalldream/sound"
)

type toneKey struct {
	kind  render.CueKind
	pitch int
}

// Audio plays synthesized cues. A nil *Audio is silent.
type Audio struct {
	ctx *audio.Context

	mu      sync.Mutex
	tones   map[toneKey][]float64
	playing []*audio.Player
}

func NewAudio() (*Audio, error) {
	ctx, err := audio.NewContext(sound.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	return &Audio{ctx: ctx, tones: make(map[toneKey][]float64)}, nil
}

// Play starts the cue now or after its delay. It never blocks.
func (a *Audio) Play(c render.Cue) {
	if a == nil || c.Volume <= 0 {
		return
	}
	if c.Delay > 0 {
		time.AfterFunc(time.Duration(c.Delay*float64(time.Second)), func() {
			a.play(c)
		})
		return
	}
	a.play(c)
}

func (a *Audio) play(c render.Cue) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := toneKey{kind: c.Kind, pitch: int(math.Round(c.Pitch * 100))}
	samples, ok := a.tones[key]
	if !ok {
		samples = sound.Synth(c.Kind, float64(key.pitch)/100)
		a.tones[key] = samples
	}
	p, err := audio.NewPlayerFromBytes(a.ctx, sound.PCM16Stereo(samples, c.Volume))
	if err != nil {
		log.Warnf("audio player: %v", err)
		return
	}
	if err := p.Play(); err != nil {
		log.Warnf("audio play: %v", err)
		return
	}

	live := a.playing[:0]
	for _, q := range a.playing {
		if q.IsPlaying() {
			live = append(live, q)
			continue
		}
		if err := q.Close(); err != nil {
			log.Debugf("audio close: %v", err)
		}
	}
	a.playing = append(live, p)
}
