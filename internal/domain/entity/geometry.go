// Package entity defines domain entities for the desktop session.
package entity

// Point is a position in desktop coordinates. Values may be negative:
// windows are allowed to be dragged off screen.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the offset from o to p.
func (p Point) Sub(o Point) (dx, dy int) {
	return p.X - o.X, p.Y - o.Y
}

// Size is a width/height pair.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect is an axis-aligned rectangle used for layout and hit testing.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// RectAt builds a rectangle from a position and a size.
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.Width, H: s.Height}
}

// Contains reports whether p lies inside the rectangle (right/bottom edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}
