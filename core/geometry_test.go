package core

import "testing"

func TestFrameAt(t *testing.T) {
	r := FrameAt(Point{X: 100, Y: 50}, Size{W: 24, H: 16})
	if r.MinX != 88 || r.MaxX != 112 || r.MinY != 42 || r.MaxY != 58 {
		t.Errorf("unexpected frame %+v", r)
	}
	if r.Width() != 24 || r.Height() != 16 {
		t.Errorf("expected 24x16, got %vx%v", r.Width(), r.Height())
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"Overlap", Rect{MinX: 5, MinY: 5, MaxX: 15, MaxY: 15}, true},
		{"Contained", Rect{MinX: 2, MinY: 2, MaxX: 4, MaxY: 4}, true},
		{"Touching edge", Rect{MinX: 10, MinY: 0, MaxX: 20, MaxY: 10}, false},
		{"Disjoint", Rect{MinX: 20, MinY: 20, MaxX: 30, MaxY: 30}, false},
		{"Vertical only", Rect{MinX: 2, MinY: 11, MaxX: 4, MaxY: 12}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects is not symmetric")
			}
		})
	}
}

func TestPointLerp(t *testing.T) {
	p := Point{X: 0, Y: 0}
	q := Point{X: 10, Y: -20}

	if got := p.Lerp(q, 0.5); got != (Point{X: 5, Y: -10}) {
		t.Errorf("midpoint = %+v", got)
	}
	if got := p.Lerp(q, -1); got != p {
		t.Errorf("t<0 should clamp to start, got %+v", got)
	}
	if got := p.Lerp(q, 2); got != q {
		t.Errorf("t>1 should clamp to end, got %+v", got)
	}
}
