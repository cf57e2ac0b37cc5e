package world

// Rect represents a rectangular room in the dungeon.
// The covered cells are [X, X+Width) × [Y, Y+Height).
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// RectWithSize creates a rect from its top-left corner and size.
func RectWithSize(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Center returns the integer midpoint of the rect's corners.
func (r Rect) Center() Point {
	return Point{
		X: (r.X + r.X + r.Width) / 2,
		Y: (r.Y + r.Y + r.Height) / 2,
	}
}

// Contains returns true if the given point is inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersect returns true if this rect overlaps or touches another.
// Edges are inclusive, so rooms sharing a border count as overlapping.
func (r Rect) Intersect(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// ForEach calls fn for every cell covered by the rect, row by row.
func (r Rect) ForEach(fn func(p Point)) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}
