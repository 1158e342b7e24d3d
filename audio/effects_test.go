package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-invaders/core"
)

// drain reads a streamer to completion, failing if it exceeds limit samples
func drain(t *testing.T, s beep.Streamer, limit int) (n int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for {
		got, ok := s.Stream(buf)
		for i := 0; i < got; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		n += got
		if !ok {
			return n, peak
		}
		if n > limit {
			t.Fatalf("Streamer did not end within %d samples", limit)
		}
	}
}

func TestSoundEffectsAreFinite(t *testing.T) {
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			streamer := GetSoundEffect(s, sampleRate)
			if streamer == nil {
				t.Fatal("Expected a streamer")
			}
			n, peak := drain(t, streamer, sampleRate.N(time.Second))
			if n == 0 {
				t.Error("Expected samples")
			}
			if peak == 0 || peak > 1 {
				t.Errorf("Expected audible, unclipped output, peak %v", peak)
			}
		})
	}

	if GetSoundEffect(core.SoundTypeCount, sampleRate) != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}

func TestOscillatorDuration(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, sampleRate)
	n, _ := drain(t, osc, sampleRate.N(time.Second))
	if want := sampleRate.N(10 * time.Millisecond); n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
}

func TestNewVolumeSilent(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSquare, sampleRate)
	_, peak := drain(t, newVolume(osc, 0), sampleRate.N(time.Second))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, peak %v", peak)
	}
}
