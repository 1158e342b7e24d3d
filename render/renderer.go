// Package render draws scenes into a tcell screen.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
)

// Renderer paints scene content into a tcell screen through a viewport
type Renderer struct {
	screen   tcell.Screen
	viewport Viewport
	sceneW   float64
	sceneH   float64
	base     tcell.Style
}

// NewRenderer creates a renderer for a scene of the given size in points
func NewRenderer(screen tcell.Screen, sceneW, sceneH float64) *Renderer {
	r := &Renderer{
		screen: screen,
		sceneW: sceneW,
		sceneH: sceneH,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
	r.Resize()
	return r
}

// Resize recomputes the viewport from the current screen size
func (r *Renderer) Resize() {
	cols, rows := r.screen.Size()
	r.viewport = NewViewport(cols, rows, r.sceneW, r.sceneH)
}

// Viewport returns the current mapping
func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// BeginFrame clears the screen to the background
func (r *Renderer) BeginFrame() {
	r.screen.SetStyle(r.base)
	r.screen.Clear()
}

// Show flushes the frame to the terminal
func (r *Renderer) Show() {
	r.screen.Show()
}

// DrawWorld paints every sprite in insertion order
func (r *Renderer) DrawWorld(w *engine.World) {
	for _, e := range w.Sprites.All() {
		sprite, ok := w.Sprites.Get(e)
		if !ok || sprite.Alpha <= 0 {
			continue
		}
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		r.DrawSprite(pos, sprite)
	}
}

// DrawSprite fills the cells covered by the sprite frame with its glyph
func (r *Renderer) DrawSprite(pos components.PositionComponent, sprite components.SpriteComponent) {
	cells, ok := r.viewport.CoverRect(sprite.Frame(pos))
	if !ok {
		return
	}
	style := r.base.Foreground(Dim(sprite.Color, sprite.Alpha))
	glyph := sprite.Rune
	if glyph == 0 {
		glyph = '█'
	}
	for y := cells.Y0; y <= cells.Y1; y++ {
		for x := cells.X0; x <= cells.X1; x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

// DrawHUD paints the visible labels centred at their offsets below the top edge
func (r *Renderer) DrawHUD(hud *engine.HUDResource) {
	for _, l := range hud.Labels() {
		r.DrawCentered(l.Text, r.viewport.RowBelowTop(l.Offset), l.Color)
	}
}

// DrawGameOver paints the game over title and prompt
func (r *Renderer) DrawGameOver() {
	mid := r.viewport.Rows / 2
	r.DrawCentered(constants.GameOverTitle, mid-1, RgbTitle)
	r.DrawCentered(constants.GameOverPrompt, mid+1, RgbPrompt)
}

// DrawPaused paints the pause banner in the middle of the screen
func (r *Renderer) DrawPaused() {
	r.DrawCentered(constants.PausedText, r.viewport.Rows/2, RgbPaused)
}

// DrawStatus paints a debug line on the bottom row
func (r *Renderer) DrawStatus(line string) {
	r.DrawText(0, r.viewport.Rows-1, line, RgbStatusText)
}

// DrawCentered paints text centred horizontally on row
func (r *Renderer) DrawCentered(text string, row int, color tcell.Color) {
	x := (r.viewport.Cols - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	r.DrawText(x, row, text, color)
}

// DrawText paints text starting at (x, row), clipped at the right edge
func (r *Renderer) DrawText(x, row int, text string, color tcell.Color) {
	if row < 0 || row >= r.viewport.Rows {
		return
	}
	style := r.base.Foreground(color)
	for _, ch := range text {
		if x >= r.viewport.Cols {
			return
		}
		r.screen.SetContent(x, row, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
