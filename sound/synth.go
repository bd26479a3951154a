// Package sound synthesizes the game's short cues into PCM buffers.
package sound

import (
	"encoding/binary"
	"math"

	"github.com/zucenko/smalldream/render"
)

const SampleRate = 44100

// Waveform types
const (
	waveSine = iota
	waveTriangle
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

type voice struct {
	wave    int
	freq    float64
	length  float64
	attack  float64
	release float64
	gain    float64
}

// cue recipes: a soft chime, a low pulse, a falling shadow tone and a dull wall knock
var recipes = map[render.CueKind][]voice{
	render.CueCollect: {
		{wave: waveSine, freq: 522, length: 0.4, attack: 0.01, release: 0.3, gain: 0.6},
		{wave: waveSine, freq: 783, length: 0.35, attack: 0.01, release: 0.3, gain: 0.3},
	},
	render.CuePulse: {
		{wave: waveTriangle, freq: 220, length: 0.33, attack: 0.02, release: 0.23, gain: 0.7},
	},
	render.CueShadow: {
		{wave: waveTriangle, freq: 147, length: 0.5, attack: 0.01, release: 0.4, gain: 0.7},
		{wave: waveSine, freq: 110, length: 0.5, attack: 0.01, release: 0.4, gain: 0.5},
	},
	render.CueBump: {
		{wave: waveSine, freq: 82, length: 0.12, attack: 0.005, release: 0.1, gain: 0.8},
	},
}

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(SampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveTriangle:
			buf[i] = 4*math.Abs(phase-0.5) - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(SampleRate))
	releaseSamples := int(releaseSec * float64(SampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mix adds b into a scaled by gain, growing a when b is longer
func mix(a, b floatBuffer, gain float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * gain
	}
	return a
}

// Synth renders a cue at the given pitch multiplier. Samples stay within [-1,1].
func Synth(kind render.CueKind, pitch float64) []float64 {
	if pitch <= 0 {
		pitch = 1
	}
	var out floatBuffer
	for _, v := range recipes[kind] {
		n := int(v.length * SampleRate)
		buf := oscillator(v.wave, v.freq*pitch, n)
		applyEnvelope(buf, v.attack, v.release)
		out = mix(out, buf, v.gain)
	}
	peak := 0.0
	for _, s := range out {
		peak = math.Max(peak, math.Abs(s))
	}
	if peak > 1 {
		for i := range out {
			out[i] /= peak
		}
	}
	return out
}

// PCM16Stereo converts mono samples to 16-bit little-endian interleaved stereo.
func PCM16Stereo(samples []float64, volume float64) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := int16(math.Max(-1, math.Min(1, s*volume)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
