package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black space
	RgbStatusText = tcell.NewRGBColor(180, 180, 180) // Gray debug line
	RgbTitle      = tcell.NewRGBColor(255, 255, 255) // Game over title
	RgbPrompt     = tcell.NewRGBColor(200, 200, 200) // Game over prompt
	RgbPaused     = tcell.NewRGBColor(255, 165, 0)   // Orange pause banner
)

// Dim blends c towards the background by 1-alpha
// alpha 1 returns c unchanged, alpha 0 returns the background
func Dim(c tcell.Color, alpha float64) tcell.Color {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}

	r, g, b := c.RGB()
	if r < 0 {
		// Default or invalid colours have no RGB value
		return c
	}
	br, bg, bb := RgbBackground.RGB()
	blend := func(fg, bgc int32) int32 {
		return bgc + int32(float64(fg-bgc)*alpha)
	}
	return tcell.NewRGBColor(blend(r, br), blend(g, bg), blend(b, bb))
}
