// Package audio synthesizes the game's sound cues with beep and mixes them
// into a single speaker stream.
package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager manages all game audio
// Every method is safe on an uninitialized manager; playback is then silent
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	output      *beep.Ctrl // Pauses the whole mix when muted
	volume      float64
	muted       bool
	initialized bool

	// Cue counter, read by tests and the status line
	played [core.SoundTypeCount]int
}

// NewSoundManager creates a new sound manager with a master volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		output: &beep.Ctrl{Streamer: mixer},
		volume: core.Clamp(volume, 0, 1),
	}
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.output)
	sm.initialized = true
	log.Printf("[AUDIO] initialized at %d Hz", constants.AudioSampleRate)
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()

	sm.initialized = false
}

// Play mixes a new instance of the cue into the output
func (sm *SoundManager) Play(sound core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sound < 0 || sound >= core.SoundTypeCount {
		return
	}
	sm.played[sound]++

	if !sm.initialized || sm.muted {
		return
	}

	streamer := GetSoundEffect(sound, sampleRate)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(streamer, sm.volume))
	speaker.Unlock()
}

// SetMuted pauses or resumes the mix
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized {
		sm.output.Paused = muted
		return
	}

	speaker.Lock()
	sm.output.Paused = muted
	if muted {
		sm.mixer.Clear()
	}
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.IsMuted()
	sm.SetMuted(muted)
	return muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether the speaker is running
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayCount returns how many times the cue was requested
func (sm *SoundManager) PlayCount(sound core.SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sound < 0 || sound >= core.SoundTypeCount {
		return 0
	}
	return sm.played[sound]
}
