package render

import (
	"math"

	"github.com/lixenwraith/vi-invaders/core"
)

// CellRect is an inclusive range of terminal cells
type CellRect struct {
	X0, Y0, X1, Y1 int
}

// Viewport maps scene points (origin bottom-left, y up) onto terminal cells
// (origin top-left, y down), scaling the whole scene into the screen
type Viewport struct {
	Cols, Rows     int
	SceneW, SceneH float64
	sx, sy         float64
}

// NewViewport creates a viewport for a screen of cols x rows cells
func NewViewport(cols, rows int, sceneW, sceneH float64) Viewport {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return Viewport{
		Cols:   cols,
		Rows:   rows,
		SceneW: sceneW,
		SceneH: sceneH,
		sx:     float64(cols) / sceneW,
		sy:     float64(rows) / sceneH,
	}
}

// ToCell returns the cell containing p, clamped to the screen
func (v Viewport) ToCell(p core.Point) (col, row int) {
	col = clampInt(int(math.Floor(p.X*v.sx)), 0, v.Cols-1)
	up := clampInt(int(math.Floor(p.Y*v.sy)), 0, v.Rows-1)
	return col, v.Rows - 1 - up
}

// ToScene returns the scene point at the centre of a cell
func (v Viewport) ToScene(col, row int) core.Point {
	return core.Point{
		X: (float64(col) + 0.5) / v.sx,
		Y: (float64(v.Rows-row) - 0.5) / v.sy,
	}
}

// CoverRect returns the cells covered by r; a visible rectangle covers at least one cell
// ok is false when r lies entirely outside the scene
func (v Viewport) CoverRect(r core.Rect) (CellRect, bool) {
	if r.MaxX <= 0 || r.MinX >= v.SceneW || r.MaxY <= 0 || r.MinY >= v.SceneH {
		return CellRect{}, false
	}

	x0 := int(math.Floor(r.MinX * v.sx))
	x1 := int(math.Ceil(r.MaxX*v.sx)) - 1
	y0 := int(math.Floor(r.MinY * v.sy))
	y1 := int(math.Ceil(r.MaxY*v.sy)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	x0, x1 = clampInt(x0, 0, v.Cols-1), clampInt(x1, 0, v.Cols-1)
	y0, y1 = clampInt(y0, 0, v.Rows-1), clampInt(y1, 0, v.Rows-1)

	// Flip: scene top maps to row 0
	return CellRect{X0: x0, Y0: v.Rows - 1 - y1, X1: x1, Y1: v.Rows - 1 - y0}, true
}

// RowBelowTop returns the row at offset points below the scene top edge
func (v Viewport) RowBelowTop(offset float64) int {
	// Epsilon absorbs float error for offsets that land exactly on a row boundary
	return clampInt(int(math.Floor(offset*v.sy+1e-9)), 0, v.Rows-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
