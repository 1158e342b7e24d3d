package engine

import (
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/status"
)

// SoundPlayer plays audio cues; audio.SoundManager implements it
type SoundPlayer interface {
	Play(sound core.SoundType)
}

// silentPlayer discards every cue
type silentPlayer struct{}

func (silentPlayer) Play(core.SoundType) {}

// GameContext holds all state of one game scene including the ECS world
type GameContext struct {
	// ===== Immutable After Init =====

	World  *World
	Queue  *EventQueue
	Router *Router
	State  *GameState
	Config *config.Config
	Status *status.Registry
	Sound  SoundPlayer
	Rand   *rand.Rand

	// Scene dimensions in points
	Width, Height float64

	// ===== Frame-Goroutine Exclusive =====

	Time *TimeResource
	HUD  *HUDResource

	// ShipEntity is the singleton ship; NoEntity before setup
	ShipEntity core.Entity
}

// ContextOption customizes a GameContext during construction
type ContextOption func(*GameContext)

// WithSound sets the sound player
func WithSound(p SoundPlayer) ContextOption {
	return func(c *GameContext) {
		if p != nil {
			c.Sound = p
		}
	}
}

// WithStatus shares a metrics registry across scenes
func WithStatus(r *status.Registry) ContextOption {
	return func(c *GameContext) {
		if r != nil {
			c.Status = r
		}
	}
}

// WithHighScore carries the in-process high score into a new game
func WithHighScore(score int) ContextOption {
	return func(c *GameContext) {
		c.State = NewGameState(c.State.maxHealth, score)
	}
}

// WithRand sets the random source used for invader fire
func WithRand(r *rand.Rand) ContextOption {
	return func(c *GameContext) {
		if r != nil {
			c.Rand = r
		}
	}
}

// NewGameContext creates a GameContext with an empty world
func NewGameContext(cfg *config.Config, opts ...ContextOption) *GameContext {
	if cfg == nil {
		cfg = config.Default()
	}

	queue := NewEventQueue()
	world := NewWorld()

	ctx := &GameContext{
		World:  world,
		Queue:  queue,
		Router: NewRouter(queue),
		State:  NewGameState(constants.ShipMaxHealth, 0),
		Config: cfg,
		Status: status.NewRegistry(),
		Sound:  silentPlayer{},
		Rand:   NewRand(cfg.Seed),
		Width:  cfg.Scene.Width,
		Height: cfg.Scene.Height,
		Time:   &TimeResource{},
		HUD: &HUDResource{
			Score:     Label{Color: tcell.ColorGreen, Visible: true},
			Health:    Label{Color: tcell.ColorRed, Visible: true},
			HighScore: Label{Color: tcell.ColorYellow, Visible: cfg.Render.ShowHighScore},
		},
	}

	for _, opt := range opts {
		opt(ctx)
	}

	world.SetEventMetadata(queue, func() int64 { return ctx.Time.FrameNumber })

	return ctx
}

// NewRand returns a PCG source; seed 0 seeds from the wall clock
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// PushEvent emits an event onto this scene's queue
func (c *GameContext) PushEvent(eventType EventType, payload any) {
	c.World.PushEvent(eventType, payload)
}

// ShipAlive reports whether the ship is still in the scene
func (c *GameContext) ShipAlive() bool {
	return c.World.Ships.Has(c.ShipEntity)
}
