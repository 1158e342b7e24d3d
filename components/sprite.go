package components

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-invaders/core"
)

// SpriteComponent is the visual of a coloured rectangle sprite
type SpriteComponent struct {
	Name  string      // Node name used by enumeration helpers and logs
	Size  core.Size   // Size in scene points
	Color tcell.Color // Fill colour
	Rune  rune        // Glyph painted into every covered cell
	Alpha float64     // 0.0 (invisible) to 1.0 (opaque)
}

// Frame returns the sprite rectangle centred on pos
func (s SpriteComponent) Frame(pos PositionComponent) core.Rect {
	return core.FrameAt(pos.Point(), s.Size)
}
