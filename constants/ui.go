package constants

// HUD Layout
const (
	// ScoreLabelOffset and HealthLabelOffset are distances below the scene top edge
	ScoreLabelOffset     = 40.0
	HealthLabelOffset    = 80.0
	HighScoreLabelOffset = 120.0

	ScoreFormat     = "Score: %04d"
	HealthFormat    = "Health: %.1f%%"
	HighScoreFormat = "High Score: %04d"
)

// Game over scene text
const (
	GameOverTitle  = "Game Over!"
	GameOverPrompt = "(Tap to Play Again)"
	PausedText     = "PAUSED"
)
