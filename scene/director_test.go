package scene

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/render"
)

type fakeScene struct {
	name    string
	updates []time.Duration
	events  []engine.EventType
	draws   int
}

func (f *fakeScene) Name() string                   { return f.name }
func (f *fakeScene) Update(now time.Duration)       { f.updates = append(f.updates, now) }
func (f *fakeScene) HandleEvent(e engine.GameEvent) { f.events = append(f.events, e.Type) }
func (f *fakeScene) Draw(*render.Renderer)          { f.draws++ }

type fakeSound struct {
	muted  bool
	played []core.SoundType
}

func (s *fakeSound) Play(sound core.SoundType) { s.played = append(s.played, sound) }
func (s *fakeSound) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

func newTestDirector(t *testing.T) (*Director, *engine.MockTimeProvider, *fakeSound) {
	t.Helper()
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	sound := &fakeSound{}
	d := NewDirector(Deps{
		Config: config.Default(),
		Sound:  sound,
		Rand:   engine.NewRand(42),
	}, clock)
	return d, clock, sound
}

func TestDirectorPresentZeroTransitionSwapsOnNextTick(t *testing.T) {
	d, _, _ := newTestDirector(t)
	s := &fakeScene{name: "a"}

	if !d.Present(s, 0) {
		t.Fatal("first Present rejected")
	}
	if d.Current() != nil {
		t.Fatal("scene swapped before Tick")
	}

	d.Tick()
	if d.Current() != s {
		t.Fatalf("current = %v, want a", d.Current())
	}
	if len(s.updates) != 1 || s.updates[0] != 0 {
		t.Errorf("updates = %v, want [0]", s.updates)
	}
}

func TestDirectorTransitionWaitsAndSwapsOnce(t *testing.T) {
	d, clock, _ := newTestDirector(t)
	a := &fakeScene{name: "a"}
	b := &fakeScene{name: "b"}
	c := &fakeScene{name: "c"}

	d.Present(a, 0)
	d.Tick()

	if !d.Present(b, time.Second) {
		t.Fatal("Present(b) rejected")
	}
	if d.Present(c, 0) {
		t.Error("second Present accepted while one is pending")
	}

	clock.Advance(500 * time.Millisecond)
	d.Tick()
	if d.Current() != a {
		t.Fatalf("swapped early to %s", d.Current().Name())
	}

	clock.Advance(500 * time.Millisecond)
	d.Tick()
	if d.Current() != b {
		t.Fatalf("current = %s, want b", d.Current().Name())
	}
	if d.Pending() != nil {
		t.Error("pending not cleared after swap")
	}
	// Scene clock restarts on presentation
	if got := b.updates[0]; got != 0 {
		t.Errorf("first update of b at %v, want 0", got)
	}
	if got := d.deps.Status.Strings.Get("scene").Load(); got != "b" {
		t.Errorf("status scene = %q, want b", got)
	}
}

func TestDirectorPauseStopsFrameCallback(t *testing.T) {
	d, clock, _ := newTestDirector(t)
	s := &fakeScene{name: "a"}
	d.Present(s, 0)
	d.Tick()

	d.PushEvent(engine.EventPauseToggle, nil)
	d.Tick()
	if !d.IsPaused() {
		t.Fatal("not paused")
	}
	before := len(s.updates)

	clock.Advance(2 * time.Second)
	d.PushEvent(engine.EventTap, nil)
	d.Tick()
	if len(s.updates) != before {
		t.Error("Update called while paused")
	}
	if len(s.events) != 0 {
		t.Errorf("events forwarded while paused: %v", s.events)
	}

	d.PushEvent(engine.EventPauseToggle, nil)
	d.Tick()
	if d.IsPaused() {
		t.Fatal("still paused")
	}
	last := s.updates[len(s.updates)-1]
	if last >= 2*time.Second {
		t.Errorf("scene clock advanced during pause: %v", last)
	}
}

func TestDirectorRoutesToggles(t *testing.T) {
	d, _, sound := newTestDirector(t)
	s := &fakeScene{name: "a"}
	d.Present(s, 0)
	d.Tick()

	d.PushEvent(engine.EventMuteToggle, nil)
	d.PushEvent(engine.EventStatusToggle, nil)
	d.PushEvent(engine.EventTap, nil)
	d.Tick()

	if !sound.muted {
		t.Error("mute not toggled")
	}
	if !d.ShowStatus() {
		t.Error("status line not toggled on")
	}
	if len(s.events) != 1 || s.events[0] != engine.EventTap {
		t.Errorf("forwarded = %v, want [Tap]", s.events)
	}
}

func TestDirectorDrawOverlays(t *testing.T) {
	d, _, _ := newTestDirector(t)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(48, 32)
	r := render.NewRenderer(screen, 480, 640)

	s := &fakeScene{name: "a"}
	d.Present(s, 0)
	d.PushEvent(engine.EventPauseToggle, nil)
	d.Tick()
	d.Draw(r)

	if s.draws != 1 {
		t.Errorf("draws = %d, want 1", s.draws)
	}
	var b strings.Builder
	for x := 0; x < 48; x++ {
		ch, _, _, _ := screen.GetContent(x, 16)
		b.WriteRune(ch)
	}
	if !strings.Contains(b.String(), constants.PausedText) {
		t.Errorf("row 16 = %q, want %q", b.String(), constants.PausedText)
	}
}
