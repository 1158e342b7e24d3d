package systems

import (
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
)

// HUDSystem keeps the label texts in step with the game state
type HUDSystem struct {
	ctx *engine.GameContext
}

// NewHUDSystem creates a new HUD system
func NewHUDSystem(ctx *engine.GameContext) *HUDSystem {
	return &HUDSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *HUDSystem) Priority() int {
	return constants.PriorityHUD
}

// Update refreshes the labels
func (s *HUDSystem) Update() {
	RefreshHUD(s.ctx)
}
