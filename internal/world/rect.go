package world

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions in pixels
}

// Right returns the x coordinate just past the rectangle.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y coordinate just past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Center returns the center coordinates of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inflate grows the rectangle by dx and dy around its center.
// Negative deltas shrink it, possibly down to an empty rectangle.
func (r Rect) Inflate(dx, dy int) Rect {
	return Rect{
		X:      r.X - dx/2,
		Y:      r.Y - dy/2,
		Width:  r.Width + dx,
		Height: r.Height + dy,
	}
}

// Translate returns the rectangle moved by dx and dy.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects returns true if this rectangle overlaps with another.
// Empty rectangles never overlap anything.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.Right(), other.Right()) - x,
		Height: max(r.Bottom(), other.Bottom()) - y,
	}
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// collides tests two rectangles shrunk by one pixel per side, so rooms
// sharing a grid border do not count as overlapping.
func collides(a, b Rect) bool {
	return a.Inflate(-2, -2).Intersects(b.Inflate(-2, -2))
}
