// Package camera tracks the visible window over the dungeon.
package camera

import "github.com/samdwyer/dungeoncrawl/internal/world"

// minExtent keeps the center strictly inside the bounds.
const minExtent = 2

// Viewport is a window of world coordinates centered on a tracked point.
// Bounds are half-open: [Left, Right) × [Top, Bottom).
type Viewport struct {
	Center world.Point
	Left   int
	Right  int
	Top    int
	Bottom int

	width, height int // display size in cells
}

// New creates a viewport of the given display size centered on center.
// Sizes below 2 are raised to 2.
func New(center world.Point, width, height int) *Viewport {
	v := &Viewport{
		width:  max(width, minExtent),
		height: max(height, minExtent),
	}
	v.OnMove(center)
	return v
}

// OnMove recenters the viewport. Bounds are not clamped to the map; cells
// outside the map are simply not drawn.
func (v *Viewport) OnMove(center world.Point) {
	v.Center = center
	v.Left = center.X - v.width/2
	v.Right = center.X + v.width/2
	v.Top = center.Y - v.height/2
	v.Bottom = center.Y + v.height/2
}

// Offset returns the world coordinate of the viewport's top-left cell.
func (v *Viewport) Offset() world.Point {
	return world.Point{X: v.Left, Y: v.Top}
}

// ToLocal maps a world coordinate onto viewport-local coordinates.
func (v *Viewport) ToLocal(p world.Point) world.Point {
	return p.Sub(v.Offset())
}

// Contains reports whether p falls on the drawn window, which spans the full
// display size from the top-left bound. For odd sizes that window also covers
// the Right or Bottom line; the center is inside it either way.
func (v *Viewport) Contains(p world.Point) bool {
	return p.X >= v.Left && p.X < v.Left+v.width && p.Y >= v.Top && p.Y < v.Top+v.height
}

// Size returns the display size in cells.
func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}
