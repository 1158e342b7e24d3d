package scene

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/render"
	"github.com/lixenwraith/vi-invaders/status"
)

// Muter toggles audio output; audio.SoundManager implements it
type Muter interface {
	ToggleMute() bool
}

// Director owns the presented scene and its clock
//
// Thread-Safety:
//   - PushEvent: any goroutine (input polling)
//   - Everything else: frame goroutine only
type Director struct {
	deps  Deps
	queue *engine.EventQueue
	clock *engine.PausableClock

	current   Scene
	pending   Scene
	pendingAt time.Duration

	showStatus bool

	statFrames *atomic.Int64
	statScene  *status.AtomicString
	statClock  *status.AtomicFloat
}

// NewDirector creates a director with no scene; provider nil uses the wall clock
func NewDirector(deps Deps, provider engine.TimeProvider) *Director {
	deps = deps.withDefaults()
	return &Director{
		deps:       deps,
		queue:      engine.NewEventQueue(),
		clock:      engine.NewPausableClock(provider),
		showStatus: deps.Config.Render.ShowStatus,
		statFrames: deps.Status.Ints.Get("frames"),
		statScene:  deps.Status.Strings.Get("scene"),
		statClock:  deps.Status.Floats.Get("clock"),
	}
}

// Start presents a new game immediately
func (d *Director) Start() {
	d.Present(NewGameScene(d, d.deps, 0), 0)
}

// PushEvent queues an input event for the next frame
func (d *Director) PushEvent(eventType engine.EventType, payload any) {
	d.queue.Push(engine.GameEvent{Type: eventType, Payload: payload})
}

// Present schedules next to replace the current scene once transition has
// elapsed on the scene clock
func (d *Director) Present(next Scene, transition time.Duration) bool {
	if d.pending != nil {
		log.Printf("[SCENE] ignoring %s: %s already pending", next.Name(), d.pending.Name())
		return false
	}
	d.pending = next
	d.pendingAt = d.clock.Elapsed() + transition
	return true
}

// Tick runs one frame: input, scene swap, then the frame callback
// The callback is skipped while paused
func (d *Director) Tick() {
	for _, ev := range d.queue.Consume() {
		d.route(ev)
	}

	if d.pending != nil && d.clock.Elapsed() >= d.pendingAt {
		d.swap()
	}

	if d.current == nil || d.clock.IsPaused() {
		return
	}

	now := d.clock.Elapsed()
	d.statFrames.Add(1)
	d.statClock.Set(now.Seconds())
	d.current.Update(now)
}

// Draw renders the current scene and overlays
func (d *Director) Draw(r *render.Renderer) {
	r.BeginFrame()
	if d.current != nil {
		d.current.Draw(r)
	}
	if d.clock.IsPaused() {
		r.DrawPaused()
	}
	if d.showStatus {
		r.DrawStatus(d.deps.Status.Line())
	}
	r.Show()
}

// Current returns the presented scene
func (d *Director) Current() Scene {
	return d.current
}

// Pending returns the scheduled scene, nil when none
func (d *Director) Pending() Scene {
	return d.pending
}

// IsPaused reports whether the scene clock is stopped
func (d *Director) IsPaused() bool {
	return d.clock.IsPaused()
}

// ShowStatus reports whether the debug line is drawn
func (d *Director) ShowStatus() bool {
	return d.showStatus
}

func (d *Director) swap() {
	d.current = d.pending
	d.pending = nil
	paused := d.clock.IsPaused()
	d.clock.Restart()
	if paused {
		d.clock.Pause()
	}
	d.statScene.Store(d.current.Name())
	log.Printf("[SCENE] presenting %s", d.current.Name())
}

func (d *Director) route(ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventPauseToggle:
		paused := d.clock.Toggle()
		log.Printf("[SCENE] paused=%v", paused)

	case engine.EventMuteToggle:
		if m, ok := d.deps.Sound.(Muter); ok {
			muted := m.ToggleMute()
			log.Printf("[AUDIO] muted=%v", muted)
		}

	case engine.EventStatusToggle:
		d.showStatus = !d.showStatus

	default:
		if d.current != nil && !d.clock.IsPaused() {
			d.current.HandleEvent(ev)
		}
	}
}
