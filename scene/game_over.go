package scene

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/render"
)

// GameOverScene shows the result and restarts on tap
type GameOverScene struct {
	presenter  Presenter
	deps       Deps
	score      int
	highScore  int
	restarting bool
}

// NewGameOverScene creates the scene for a finished game
func NewGameOverScene(p Presenter, deps Deps, score, highScore int) *GameOverScene {
	return &GameOverScene{
		presenter: p,
		deps:      deps.withDefaults(),
		score:     score,
		highScore: highScore,
	}
}

// Name returns the scene name
func (s *GameOverScene) Name() string { return "gameOver" }

// Update implements Scene (no frame logic)
func (s *GameOverScene) Update(time.Duration) {}

// HandleEvent restarts on the first tap
func (s *GameOverScene) HandleEvent(event engine.GameEvent) {
	if event.Type != engine.EventTap || s.restarting {
		return
	}
	s.restarting = true
	log.Printf("[SCENE] restart with high score %d", s.highScore)
	s.presenter.Present(NewGameScene(s.presenter, s.deps, s.highScore), constants.SceneTransitionDuration)
}

// Draw paints the title, prompt and optional high score
func (s *GameOverScene) Draw(r *render.Renderer) {
	r.DrawGameOver()
	if s.deps.Config.Render.ShowHighScore {
		row := r.Viewport().RowBelowTop(constants.HighScoreLabelOffset)
		r.DrawCentered(fmt.Sprintf(constants.HighScoreFormat, s.highScore), row, tcell.ColorYellow)
	}
}

// Score returns the final score of the finished game
func (s *GameOverScene) Score() int { return s.score }

// HighScore returns the best score of this process
func (s *GameOverScene) HighScore() int { return s.highScore }
