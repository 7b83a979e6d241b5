package engine

// Rect is an axis-aligned rectangle identified by its center point and size.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Left returns the rectangle's minimum x coordinate.
func (r Rect) Left() float64 { return r.X - r.W/2 }

// Right returns the rectangle's maximum x coordinate.
func (r Rect) Right() float64 { return r.X + r.W/2 }

// Top returns the rectangle's minimum y coordinate.
func (r Rect) Top() float64 { return r.Y - r.H/2 }

// Bottom returns the rectangle's maximum y coordinate.
func (r Rect) Bottom() float64 { return r.Y + r.H/2 }

// Padded returns a copy grown by pad units on each axis, keeping the center.
func (r Rect) Padded(pad float64) Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W + pad, H: r.H + pad}
}

// ContainsRect reports whether other lies entirely within r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Left() >= r.Left() &&
		other.Right() <= r.Right() &&
		other.Top() >= r.Top() &&
		other.Bottom() <= r.Bottom()
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() < other.Right() &&
		r.Right() > other.Left() &&
		r.Top() < other.Bottom() &&
		r.Bottom() > other.Top()
}

// ClampCenter returns pos adjusted so a body of the given size centered on it
// stays inside r. Bodies larger than r collapse to the center.
func (r Rect) ClampCenter(pos Position, w, h float64) Position {
	minX, maxX := r.Left()+w/2, r.Right()-w/2
	minY, maxY := r.Top()+h/2, r.Bottom()-h/2

	if minX > maxX {
		pos.X = r.X
	} else if pos.X < minX {
		pos.X = minX
	} else if pos.X > maxX {
		pos.X = maxX
	}

	if minY > maxY {
		pos.Y = r.Y
	} else if pos.Y < minY {
		pos.Y = minY
	} else if pos.Y > maxY {
		pos.Y = maxY
	}

	return pos
}
