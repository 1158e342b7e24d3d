package engine

import (
	"sync"
	"sync/atomic"
)

// GameState centralizes the score, ship health and ending flag of one game
type GameState struct {
	// ===== ONE-SHOT FLAG (lock-free) =====

	// gameEnding is set by the first terminal condition; never cleared for this game
	gameEnding atomic.Bool

	// ===== FRAME STATE (mutex protected) =====
	// Written on the frame goroutine, read by the renderer and tests

	mu         sync.RWMutex
	score      int
	highScore  int
	shipHealth float64
	maxHealth  float64
}

// NewGameState creates the state of a new game; highScore carries over from earlier games
func NewGameState(maxHealth float64, highScore int) *GameState {
	return &GameState{
		highScore:  highScore,
		shipHealth: maxHealth,
		maxHealth:  maxHealth,
	}
}

// AddScore adds points and returns the new score; the high score follows when exceeded
func (gs *GameState) AddScore(points int) int {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.score += points
	if gs.score > gs.highScore {
		gs.highScore = gs.score
	}
	return gs.score
}

// Score returns the current score
func (gs *GameState) Score() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.score
}

// HighScore returns the best score of this process
func (gs *GameState) HighScore() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.highScore
}

// AdjustShipHealth applies delta and returns the new health, clamped to [0, maxHealth]
func (gs *GameState) AdjustShipHealth(delta float64) float64 {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.shipHealth += delta
	if gs.shipHealth < 0 {
		gs.shipHealth = 0
	}
	if gs.shipHealth > gs.maxHealth {
		gs.shipHealth = gs.maxHealth
	}
	return gs.shipHealth
}

// ShipHealth returns the current ship health
func (gs *GameState) ShipHealth() float64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.shipHealth
}

// BeginEnding sets the ending flag; only the first caller gets true
func (gs *GameState) BeginEnding() bool {
	return gs.gameEnding.CompareAndSwap(false, true)
}

// IsEnding reports whether the game has ended
func (gs *GameState) IsEnding() bool {
	return gs.gameEnding.Load()
}
