package systems

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
)

// SetupScene creates the invader grid, the ship and the HUD of a new game
func SetupScene(ctx *engine.GameContext) {
	SetupInvaders(ctx)
	SetupShip(ctx)
	SetupHUD(ctx)
}

// SetupInvaders lays out the invader grid and returns the number created
// The column loop starts at 1, so a grid of R rows and C columns holds R*(C-1) invaders
func SetupInvaders(ctx *engine.GameContext) int {
	w := ctx.World
	size := core.Size{W: constants.InvaderWidth, H: constants.InvaderHeight}
	origin := core.Point{X: ctx.Width / 3, Y: ctx.Height / 2}

	count := 0
	for row := 0; row < ctx.Config.Grid.Rows; row++ {
		invaderType := components.InvaderTypeForRow(row)
		y := float64(row)*(size.H*2) + origin.Y
		pos := core.Point{X: origin.X, Y: y}

		for col := 1; col < ctx.Config.Grid.Cols; col++ {
			e := w.CreateEntity()
			w.Positions.Set(e, components.PositionAt(pos))
			w.Sprites.Set(e, components.SpriteComponent{
				Name:  constants.InvaderName,
				Size:  size,
				Color: invaderType.Color(),
				Rune:  constants.InvaderRune,
				Alpha: 1,
			})
			w.Bodies.Set(e, components.BodyComponent{
				Category: components.CategoryInvader,
			})
			w.Invaders.Set(e, components.InvaderComponent{Type: invaderType, Row: row, Col: col})
			count++

			pos = pos.Add(size.W+constants.InvaderGridSpacingX, 0)
		}
	}
	return count
}

// SetupShip places the ship at the bottom centre of the scene
func SetupShip(ctx *engine.GameContext) core.Entity {
	w := ctx.World
	size := core.Size{W: constants.ShipWidth, H: constants.ShipHeight}

	e := w.CreateEntity()
	w.Positions.Set(e, components.PositionComponent{X: ctx.Width / 2, Y: size.H / 2})
	w.Sprites.Set(e, components.SpriteComponent{
		Name:  constants.ShipName,
		Size:  size,
		Color: tcell.ColorGreen,
		Rune:  constants.ShipRune,
		Alpha: 1,
	})
	w.Bodies.Set(e, components.BodyComponent{
		Category:  components.CategoryShip,
		Collision: components.CategorySceneEdge,
		Dynamic:   true,
	})
	w.Ships.Set(e, components.ShipComponent{Health: ctx.State.ShipHealth()})

	ctx.ShipEntity = e
	return e
}

// SetupHUD places the labels and writes their initial text
func SetupHUD(ctx *engine.GameContext) {
	ctx.HUD.Score.Offset = constants.ScoreLabelOffset
	ctx.HUD.Health.Offset = constants.HealthLabelOffset
	ctx.HUD.HighScore.Offset = constants.HighScoreLabelOffset
	RefreshHUD(ctx)
}

// RefreshHUD rewrites the label texts from the game state
func RefreshHUD(ctx *engine.GameContext) {
	ctx.HUD.Score.Text = fmt.Sprintf(constants.ScoreFormat, ctx.State.Score())
	ctx.HUD.Health.Text = fmt.Sprintf(constants.HealthFormat, ctx.State.ShipHealth()*100)
	ctx.HUD.HighScore.Text = fmt.Sprintf(constants.HighScoreFormat, ctx.State.HighScore())
}
