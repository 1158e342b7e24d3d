package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves with a linear frequency sweep
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newSweep(freq, 0, duration, wave, rate)
}

func newSweep(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewPCG(uint64(freq), uint64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		freq := math.Max(o.freq+o.sweep*t, 0)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and an exponential-looking release
type envelope struct {
	streamer      beep.Streamer
	position      int
	attackSamples int
	totalSamples  int
}

// NewEnvelope shapes s over duration with the given attack
func NewEnvelope(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:      s,
		attackSamples: rate.N(attack),
		totalSamples:  rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else {
			remaining := float64(e.totalSamples-e.position) / float64(e.totalSamples)
			vol = remaining * remaining
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume factor
// math.Log2(0) is -Inf, so 0 volume is rendered silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

const cueAttack = 5 * time.Millisecond

// createShipBulletSound is a short rising square chirp
func createShipBulletSound(rate beep.SampleRate) beep.Streamer {
	d := constants.ShipBulletSoundDuration
	osc := newSweep(constants.ShipBulletFreq, 2000, d, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, d, cueAttack, rate), 0.3)
}

// createInvaderBulletSound is a falling saw zap
func createInvaderBulletSound(rate beep.SampleRate) beep.Streamer {
	d := constants.InvaderBulletSoundDuration
	osc := newSweep(constants.InvaderBulletFreq, -600, d, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, d, cueAttack, rate), 0.3)
}

// createShipHitSound mixes a noise burst with a low rumble
func createShipHitSound(rate beep.SampleRate) beep.Streamer {
	d := constants.ShipHitSoundDuration
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, cueAttack, rate)
	rumble := NewEnvelope(NewOscillator(constants.ShipHitFreq, d, WaveSine, rate), d, cueAttack, rate)
	return beep.Mix(newVolume(noise, 0.4), newVolume(rumble, 0.5))
}

// createInvaderHitSound is a pure tone blip followed by a noise tail
func createInvaderHitSound(rate beep.SampleRate) beep.Streamer {
	d := constants.InvaderHitSoundDuration
	tone, err := generators.SineTone(rate, constants.InvaderHitFreq)
	if err != nil {
		tone = NewOscillator(constants.InvaderHitFreq, d/2, WaveSine, rate)
	}
	blip := NewEnvelope(beep.Take(rate.N(d/2), tone), d/2, cueAttack, rate)
	tail := NewEnvelope(NewOscillator(0, d/2, WaveNoise, rate), d/2, 0, rate)
	return beep.Seq(newVolume(blip, 0.4), newVolume(tail, 0.2))
}

// GetSoundEffect returns a fresh streamer for the cue, nil for unknown cues
func GetSoundEffect(sound core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch sound {
	case core.SoundShipBullet:
		return createShipBulletSound(rate)
	case core.SoundInvaderBullet:
		return createInvaderBulletSound(rate)
	case core.SoundShipHit:
		return createShipHitSound(rate)
	case core.SoundInvaderHit:
		return createInvaderHitSound(rate)
	default:
		return nil
	}
}
