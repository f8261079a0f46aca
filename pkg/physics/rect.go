// pkg/physics/rect.go
package physics

// Rect is an integer-valued axis-aligned rectangle. X and Y are the
// top-left corner; Width and Height extend right and down. A zero-size
// rect is valid and intersects nothing.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a rect from a top-left corner and a size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive right edge coordinate.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge coordinate.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Center returns the center point of the rect.
func (r Rect) Center() Vector2D {
	return Vector2D{
		X: float64(r.X) + float64(r.Width)/2,
		Y: float64(r.Y) + float64(r.Height)/2,
	}
}

// Intersects reports whether the two rects share any interior area.
// Edge-touching rects do not intersect, and a rect without interior
// never intersects anything, wherever it sits.
func (r Rect) Intersects(other Rect) bool {
	if r.Width <= 0 || r.Height <= 0 || other.Width <= 0 || other.Height <= 0 {
		return false
	}
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// MoveTo returns a copy of the rect positioned at the given corner.
func (r Rect) MoveTo(x, y int) Rect {
	return Rect{X: x, Y: y, Width: r.Width, Height: r.Height}
}

// CenteredAt returns a copy of the rect whose center is the given point.
func (r Rect) CenteredAt(x, y int) Rect {
	return Rect{X: x - r.Width/2, Y: y - r.Height/2, Width: r.Width, Height: r.Height}
}
