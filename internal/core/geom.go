package core

// Rect is an axis-aligned rectangle in world space, stored as top-left
// corner and size.
type Rect struct {
	Pos  Vec
	Size Vec
}

// NewRect creates a rectangle from position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Pos: Vec{x, y}, Size: Vec{w, h}}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.Pos.X() }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.Pos.X() + r.Size.X() }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Pos.Y() }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Pos.Y() + r.Size.Y() }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{r.Pos.X() + r.Size.X()*0.5, r.Pos.Y() + r.Size.Y()*0.5}
}

// ClosestPoint returns the point inside the rectangle closest to p.
// For a point already inside it returns p itself.
func (r Rect) ClosestPoint(p Vec) Vec {
	return Vec{
		ClampF(p.X(), r.Left(), r.Right()),
		ClampF(p.Y(), r.Top(), r.Bottom()),
	}
}

// Overlaps reports whether two rectangles intersect.
func (r Rect) Overlaps(o Rect) bool {
	if r.Left() > o.Right() || o.Left() > r.Right() {
		return false
	}
	if r.Top() > o.Bottom() || o.Top() > r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point p lies inside the rectangle.
func (r Rect) Contains(p Vec) bool {
	return p.X() >= r.Left() && p.X() <= r.Right() &&
		p.Y() >= r.Top() && p.Y() <= r.Bottom()
}
