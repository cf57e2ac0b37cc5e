package world

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a grid is requested with a non-positive size.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Grid is a fixed-size, row-major tile map.
// Tiles[y*Width+x] holds the tile at (x, y).
type Grid struct {
	Width  int
	Height int
	Tiles  []Tile
}

// NewGrid creates a new grid filled with walls.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	g := &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([]Tile, width*height),
	}
	g.Fill(TileWall)
	return g, nil
}

// Index returns the row-major index of (x, y). The coordinate must be in bounds.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// TryIndex returns the index of p, or false if p is outside the grid.
func (g *Grid) TryIndex(p Point) (int, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.Index(p.X, p.Y), true
}

// CanEnter reports whether p is in bounds and walkable.
// All movement checks go through here.
func (g *Grid) CanEnter(p Point) bool {
	idx, ok := g.TryIndex(p)
	return ok && g.Tiles[idx].IsPassable()
}

// At returns the tile at p. Out-of-bounds points read as walls.
func (g *Grid) At(p Point) Tile {
	idx, ok := g.TryIndex(p)
	if !ok {
		return TileWall
	}
	return g.Tiles[idx]
}

// Set replaces the tile at p. Out-of-bounds points are ignored.
func (g *Grid) Set(p Point, t Tile) {
	if idx, ok := g.TryIndex(p); ok {
		g.Tiles[idx] = t
	}
}

// Fill sets every tile to t.
func (g *Grid) Fill(t Tile) {
	for i := range g.Tiles {
		g.Tiles[i] = t
	}
}
