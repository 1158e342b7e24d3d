package components

import "github.com/lixenwraith/vi-invaders/core"

// PositionComponent is the centre of an entity in scene points
type PositionComponent struct {
	X, Y float64
}

// Point returns the position as a core.Point
func (p PositionComponent) Point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

// PositionAt builds a PositionComponent from a point
func PositionAt(p core.Point) PositionComponent {
	return PositionComponent{X: p.X, Y: p.Y}
}
