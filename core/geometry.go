package core

// Point is a position in scene space (points, origin bottom-left, y up)
type Point struct {
	X, Y float64
}

// Add returns p translated by (dx, dy)
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Lerp returns the point at fraction t of the segment p->q, t clamped to [0, 1]
func (p Point) Lerp(q Point, t float64) Point {
	if t <= 0 {
		return p
	}
	if t >= 1 {
		return q
	}
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Size is a width/height pair in points
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in scene space
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// FrameAt returns the frame of a sprite of the given size centred on c
func FrameAt(c Point, s Size) Rect {
	return Rect{
		MinX: c.X - s.W/2,
		MinY: c.Y - s.H/2,
		MaxX: c.X + s.W/2,
		MaxY: c.Y + s.H/2,
	}
}

// Intersects reports whether the two rectangles overlap with non-zero area
func (r Rect) Intersects(o Rect) bool {
	return r.MinX < o.MaxX && o.MinX < r.MaxX &&
		r.MinY < o.MaxY && o.MinY < r.MaxY
}

// Width of the rectangle
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height of the rectangle
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
