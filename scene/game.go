package scene

import (
	"time"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/render"
	"github.com/lixenwraith/vi-invaders/systems"
)

// GameScene is the playing field
// Once the game ends the scene freezes until the director swaps it out
type GameScene struct {
	ctx       *engine.GameContext
	presenter Presenter
	deps      Deps

	movement *systems.InvaderMovementSystem
	gameOver *systems.GameOverSystem
}

// NewGameScene builds a fresh game carrying highScore from earlier games
func NewGameScene(p Presenter, deps Deps, highScore int) *GameScene {
	deps = deps.withDefaults()
	ctx := engine.NewGameContext(deps.Config,
		engine.WithSound(deps.Sound),
		engine.WithStatus(deps.Status),
		engine.WithRand(deps.Rand),
		engine.WithHighScore(highScore),
	)

	s := &GameScene{
		ctx:       ctx,
		presenter: p,
		deps:      deps,
	}

	systems.SetupScene(ctx)

	s.movement = systems.NewInvaderMovementSystem(ctx)
	s.gameOver = systems.NewGameOverSystem(ctx, s.endGame)

	control := systems.NewShipControlSystem(ctx)
	fire := systems.NewShipFireSystem(ctx)
	contact := systems.NewContactSystem(ctx)
	audio := systems.NewAudioSystem(ctx)

	// Event handlers run before systems each frame
	ctx.Router.Register(control)
	ctx.Router.Register(fire)
	ctx.Router.Register(contact)
	ctx.Router.Register(audio)

	ctx.World.AddSystem(s.gameOver)
	ctx.World.AddSystem(control)
	ctx.World.AddSystem(fire)
	ctx.World.AddSystem(contact)
	ctx.World.AddSystem(s.movement)
	ctx.World.AddSystem(systems.NewInvaderFireSystem(ctx))
	ctx.World.AddSystem(systems.NewHUDSystem(ctx))
	ctx.World.AddSystem(audio)
	ctx.World.AddSystem(systems.NewPhysicsSystem(ctx))

	return s
}

// Name returns the scene name
func (s *GameScene) Name() string { return "game" }

// Context exposes the game state
func (s *GameScene) Context() *engine.GameContext { return s.ctx }

// Update runs one frame: queued events first, then systems by priority
func (s *GameScene) Update(currentTime time.Duration) {
	s.ctx.Time.Advance(currentTime)
	if s.ctx.State.IsEnding() {
		return
	}
	s.ctx.Router.DispatchAll()
	s.ctx.World.Update()
}

// HandleEvent queues forwarded input for the next frame callback
func (s *GameScene) HandleEvent(event engine.GameEvent) {
	switch event.Type {
	case engine.EventTap, engine.EventShipMove, engine.EventTilt:
		s.ctx.PushEvent(event.Type, event.Payload)
	}
}

// Draw paints sprites and the HUD
func (s *GameScene) Draw(r *render.Renderer) {
	r.DrawWorld(s.ctx.World)
	r.DrawHUD(s.ctx.HUD)
}

// Movement exposes the invader grid state
func (s *GameScene) Movement() *systems.InvaderMovementSystem { return s.movement }

// HighScore returns the best score including this game
func (s *GameScene) HighScore() int {
	return s.ctx.State.HighScore()
}

func (s *GameScene) endGame(payload engine.GameOverPayload) {
	next := NewGameOverScene(s.presenter, s.deps, payload.Score, s.ctx.State.HighScore())
	s.presenter.Present(next, constants.SceneTransitionDuration)
}
