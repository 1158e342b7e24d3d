package systems

import (
	"log"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
)

// GameOverSystem checks the terminal conditions at the start of every frame
// and ends the game exactly once
type GameOverSystem struct {
	ctx    *engine.GameContext
	onOver func(engine.GameOverPayload)
}

// NewGameOverSystem creates the system; onOver runs once when the game ends and may be nil
func NewGameOverSystem(ctx *engine.GameContext, onOver func(engine.GameOverPayload)) *GameOverSystem {
	return &GameOverSystem{
		ctx:    ctx,
		onOver: onOver,
	}
}

// Priority returns the system's priority
func (s *GameOverSystem) Priority() int {
	return constants.PriorityGameOver
}

// Update ends the game when any terminal condition holds
func (s *GameOverSystem) Update() {
	if s.ctx.State.IsEnding() {
		return
	}
	if reason := s.Reasons(); reason != 0 {
		s.End(reason)
	}
}

// Reasons returns every terminal condition that currently holds
func (s *GameOverSystem) Reasons() engine.GameOverReason {
	w := s.ctx.World
	var reason engine.GameOverReason

	invaders := w.Invaders.All()
	if len(invaders) == 0 {
		reason |= engine.ReasonInvadersCleared
	}

	floor := s.ctx.Config.Gameplay.MinInvaderBottomHeight
	for _, e := range invaders {
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		sprite, _ := w.Sprites.Get(e)
		if sprite.Frame(pos).MinY <= floor {
			reason |= engine.ReasonInvaderTooLow
			break
		}
	}

	if !s.ctx.ShipAlive() {
		reason |= engine.ReasonShipDestroyed
	}
	return reason
}

// End finishes the game; later calls are no-ops
// Returns true for the call that ended the game
func (s *GameOverSystem) End(reason engine.GameOverReason) bool {
	if !s.ctx.State.BeginEnding() {
		return false
	}

	payload := engine.GameOverPayload{Reason: reason, Score: s.ctx.State.Score()}
	log.Printf("[GAME] over: reason=%s score=%d", reason, payload.Score)

	s.ctx.PushEvent(engine.EventGameOver, &payload)
	if s.onOver != nil {
		s.onOver(payload)
	}
	return true
}
