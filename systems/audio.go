package systems

import (
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
)

// AudioSystem consumes sound request events and plays audio
// Decouples game systems from direct SoundManager access
type AudioSystem struct {
	ctx *engine.GameContext
}

// NewAudioSystem creates an audio system playing through the context's player
func NewAudioSystem(ctx *engine.GameContext) *AudioSystem {
	return &AudioSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return constants.PriorityHUD
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventSoundRequest,
	}
}

// HandleEvent processes sound request events
func (s *AudioSystem) HandleEvent(event engine.GameEvent) {
	if event.Type != engine.EventSoundRequest || s.ctx.Sound == nil {
		return
	}
	if sound, ok := event.Payload.(core.SoundType); ok {
		s.ctx.Sound.Play(sound)
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
