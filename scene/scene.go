// Package scene holds the presented scenes and the director that swaps them.
package scene

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/render"
	"github.com/lixenwraith/vi-invaders/status"
)

// Scene is one presented screen driven by the frame callback
type Scene interface {
	// Name identifies the scene in logs and the status line
	Name() string

	// Update is the per-frame callback; currentTime is the scene clock
	Update(currentTime time.Duration)

	// HandleEvent receives input forwarded by the director
	HandleEvent(event engine.GameEvent)

	// Draw paints the scene; the director begins and shows the frame
	Draw(r *render.Renderer)
}

// Presenter swaps the presented scene
type Presenter interface {
	// Present schedules next after transition; returns false if a swap is already pending
	Present(next Scene, transition time.Duration) bool
}

// Deps are shared by every scene of one process
type Deps struct {
	Config *config.Config
	Sound  engine.SoundPlayer
	Status *status.Registry
	Rand   *rand.Rand
}

func (d Deps) withDefaults() Deps {
	if d.Config == nil {
		d.Config = config.Default()
	}
	if d.Status == nil {
		d.Status = status.NewRegistry()
	}
	if d.Rand == nil {
		d.Rand = engine.NewRand(d.Config.Seed)
	}
	return d
}
