package engine

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 100, Y: 50, W: 40, H: 20}
	if r.Left() != 80 || r.Right() != 120 || r.Top() != 40 || r.Bottom() != 60 {
		t.Errorf("unexpected edges: left=%v right=%v top=%v bottom=%v",
			r.Left(), r.Right(), r.Top(), r.Bottom())
	}
}

func TestRectPadded(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 80, H: 100}
	p := r.Padded(10)
	if p.X != r.X || p.Y != r.Y {
		t.Errorf("padding moved the center: %+v", p)
	}
	if p.W != 90 || p.H != 110 {
		t.Errorf("expected 90x110, got %vx%v", p.W, p.H)
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := Rect{X: 100, Y: 100, W: 100, H: 100}

	tests := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"fully inside", Rect{X: 100, Y: 100, W: 50, H: 50}, true},
		{"exact fit", Rect{X: 100, Y: 100, W: 100, H: 100}, true},
		{"touching left edge", Rect{X: 75, Y: 100, W: 50, H: 50}, true},
		{"one unit past left edge", Rect{X: 74, Y: 100, W: 50, H: 50}, false},
		{"one unit past bottom edge", Rect{X: 100, Y: 126, W: 50, H: 50}, false},
		{"larger than outer", Rect{X: 100, Y: 100, W: 120, H: 50}, false},
		{"disjoint", Rect{X: 300, Y: 300, W: 10, H: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.ContainsRect(tt.inner); got != tt.want {
				t.Errorf("ContainsRect(%+v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 20, H: 20}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{X: 10, Y: 10, W: 20, H: 20}, true},
		{"contained", Rect{X: 0, Y: 0, W: 5, H: 5}, true},
		{"edge touching is not overlap", Rect{X: 20, Y: 0, W: 20, H: 20}, false},
		{"disjoint", Rect{X: 100, Y: 100, W: 20, H: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestClampCenter(t *testing.T) {
	world := Rect{X: 500, Y: 500, W: 1000, H: 1000}

	tests := []struct {
		name string
		pos  Position
		w, h float64
		want Position
	}{
		{"inside untouched", Position{X: 500, Y: 500}, 50, 50, Position{X: 500, Y: 500}},
		{"clamped left", Position{X: -40, Y: 500}, 50, 50, Position{X: 25, Y: 500}},
		{"clamped bottom-right", Position{X: 2000, Y: 2000}, 50, 50, Position{X: 975, Y: 975}},
		{"oversized body collapses to center", Position{X: 10, Y: 10}, 2000, 50, Position{X: 500, Y: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := world.ClampCenter(tt.pos, tt.w, tt.h); got != tt.want {
				t.Errorf("ClampCenter(%+v, %v, %v) = %+v, want %+v", tt.pos, tt.w, tt.h, got, tt.want)
			}
		})
	}
}
